package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCursor(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"a":           "YQ",
		"hello world": "aGVsbG8gd29ybGQ",
		"?>>":         "Pz4-",
		"??~":         "Pz9-",
	}
	for id, want := range tests {
		assert.Equal(t, want, EncodeCursor(id), id)
	}
}

func TestDecodeCursor(t *testing.T) {
	for _, id := range []string{"", "0b6f8a2e-4c1d-4f6b-9a55-1f2e3d4c5b6a", "Hello, 世界!"} {
		got, err := DecodeCursor(EncodeCursor(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	got, err := DecodeCursor("YQ==")
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	_, err = DecodeCursor("!@#$")
	assert.True(t, IsErrBadRequest(err))
}
