package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common"
	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
)

func conversion(id string) *persistence.Conversion {
	return &persistence.Conversion{
		ID:         id,
		Name:       "nameplate.csv",
		Format:     "csv",
		Project:    "IDTA_02006_Nameplate",
		SpecNumber: "02006",
		Status:     persistence.StatusCompleted,
		Statistics: model.Statistics{Types: 2, Fields: 5},
		IVML:       "project IDTA_02006_Nameplate {}",
		Index:      "IDTA_02006_Nameplate::Nameplate = Nameplate",
		Created:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func document(t *testing.T, v any) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var d bson.D
	require.NoError(t, bson.Unmarshal(raw, &d))
	return d
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, New(mt.Coll).Create(ctx, conversion("c-1")))
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		err := New(mt.Coll).Create(ctx, conversion("c-1"))
		require.ErrorIs(mt, err, smterrors.ErrConversionAlreadyExists)
		assert.True(mt, common.IsErrConflict(err))
	})

	mt.Run("get", func(mt *mtest.T) {
		want := conversion("c-1")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, document(mt.T, want)))
		got, err := New(mt.Coll).Get(ctx, "c-1")
		require.NoError(mt, err)
		assert.Equal(mt, want.Project, got.Project)
		assert.Equal(mt, want.Statistics, got.Statistics)
		assert.Equal(mt, want.IVML, got.IVML)
		assert.True(mt, want.Created.Equal(got.Created))
	})

	mt.Run("get missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		_, err := New(mt.Coll).Get(ctx, "missing")
		assert.True(mt, common.IsErrNotFound(err))
	})

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			document(mt.T, conversion("a").Summary()),
			document(mt.T, conversion("b").Summary()),
			document(mt.T, conversion("c").Summary())))
		page, next, err := New(mt.Coll).List(ctx, 2, "")
		require.NoError(mt, err)
		require.Len(mt, page, 2)
		assert.Equal(mt, "a", page[0].ID)
		assert.Equal(mt, "c", next)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		require.NoError(mt, New(mt.Coll).Delete(ctx, "c-1"))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := New(mt.Coll).Delete(ctx, "c-1")
		require.ErrorIs(mt, err, smterrors.ErrConversionNotFound)
	})

	mt.Run("failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))
		err := New(mt.Coll).Delete(ctx, "c-1")
		require.ErrorIs(mt, err, smterrors.ErrStorageFailure)
	})
}
