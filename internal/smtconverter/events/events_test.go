package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
)

type message struct {
	subject string
	data    []byte
}

type fakeConn struct {
	messages []message
	err      error
	drained  bool
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message{subject, data})
	return nil
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func TestPublishCompleted(t *testing.T) {
	c := &fakeConn{}
	p := newPublisher(c, "")
	conversion := &persistence.Conversion{
		ID:          "c-1",
		Project:     "IDTA_02006_Nameplate",
		Status:      persistence.StatusCompleted,
		Statistics:  model.Statistics{Types: 3},
		Diagnostics: []model.Diagnostic{{Code: "TYPE_RENAMED"}},
	}

	require.NoError(t, p.Publish(context.Background(), Completed(conversion)))

	require.Len(t, c.messages, 1)
	assert.Equal(t, DefaultSubject+".conversion.completed", c.messages[0].subject)
	var e Event
	require.NoError(t, json.Unmarshal(c.messages[0].data, &e))
	assert.Equal(t, "c-1", e.ConversionID)
	assert.Equal(t, 3, e.Statistics.Types)
	assert.Equal(t, 1, e.Diagnostics)

	p.Close()
	assert.True(t, c.drained)
}

func TestPublishDeleted(t *testing.T) {
	c := &fakeConn{}
	require.NoError(t, newPublisher(c, "smt").Publish(context.Background(), Deleted("c-1")))
	assert.Equal(t, "smt.conversion.deleted", c.messages[0].subject)
}

func TestPublishFailures(t *testing.T) {
	c := &fakeConn{err: errors.New("connection closed")}
	err := newPublisher(c, "smt").Publish(context.Background(), Deleted("c-1"))
	require.ErrorIs(t, err, smterrors.ErrEventPublishFailed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = newPublisher(&fakeConn{}, "smt").Publish(ctx, Deleted("c-1"))
	require.ErrorIs(t, err, smterrors.ErrEventPublishFailed)
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.Publish(context.Background(), Deleted("x")))
	p.Close()
}
