package artifacts

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common"
	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
)

type fakeS3 struct {
	objects map[string]string
	putErr  error
	deleted []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	key := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return &s3.DeleteObjectOutput{}, nil
}

func conversion() *persistence.Conversion {
	return &persistence.Conversion{ID: "c-1", Project: "P", SpecNumber: "02006", IVML: "project P {}", Index: "P::x = y"}
}

func TestPutAndGet(t *testing.T) {
	client := newFakeS3()
	sink := New(client, "templates", "ivml")

	require.NoError(t, sink.Put(context.Background(), conversion()))
	assert.Equal(t, "project P {}", client.objects["templates/ivml/c-1/model.ivml"])
	assert.Equal(t, "P::x = y", client.objects["templates/ivml/c-1/index.text"])

	data, err := sink.Get(context.Background(), "c-1", KindIndex)
	require.NoError(t, err)
	assert.Equal(t, "P::x = y", string(data))
}

func TestGetMissing(t *testing.T) {
	sink := New(newFakeS3(), "templates", "")

	_, err := sink.Get(context.Background(), "c-1", KindModel)
	require.ErrorIs(t, err, smterrors.ErrArtifactNotFound)
	assert.True(t, common.IsErrNotFound(err))
}

func TestPutFailure(t *testing.T) {
	client := newFakeS3()
	client.putErr = &smithy.GenericAPIError{Code: "AccessDenied", Message: "no write access"}
	sink := New(client, "templates", "")

	err := sink.Put(context.Background(), conversion())
	require.ErrorIs(t, err, smterrors.ErrArtifactUploadFailed)
	assert.Contains(t, err.Error(), "AccessDenied: no write access")
}

func TestDelete(t *testing.T) {
	client := newFakeS3()
	sink := New(client, "templates", "a/")
	require.NoError(t, sink.Put(context.Background(), conversion()))

	require.NoError(t, sink.Delete(context.Background(), "c-1"))
	assert.Empty(t, client.objects)
	assert.Equal(t, []string{"templates/a/c-1/model.ivml", "templates/a/c-1/index.text"}, client.deleted)
}

func TestIsNotFound(t *testing.T) {
	tests := map[string]struct {
		err  error
		want bool
	}{
		"no such key":   {&s3types.NoSuchKey{}, true},
		"not found":     {&s3types.NotFound{}, true},
		"generic code":  {&smithy.GenericAPIError{Code: "NoSuchKey"}, true},
		"access denied": {&smithy.GenericAPIError{Code: "AccessDenied"}, false},
		"plain":         {errors.New("timeout"), false},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, isNotFound(tc.err))
		})
	}
}
