package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common/model"
)

func TestStatusCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":         {nil, http.StatusOK},
		"bad request": {NewErrBadRequest("x"), http.StatusBadRequest},
		"not found":   {NewErrNotFound("x"), http.StatusNotFound},
		"denied":      {NewErrDenied("x"), http.StatusForbidden},
		"conflict":    {NewErrConflict("x"), http.StatusConflict},
		"wrapped":     {fmt.Errorf("store: %w", NewErrNotFound("x")), http.StatusNotFound},
		"internal":    {NewInternalServerError("x"), http.StatusInternalServerError},
		"plain":       {errors.New("boom"), http.StatusInternalServerError},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(NewErrNotFound("c-1"), http.StatusNotFound, "SMTCONV", "GetConversionByID", "NotFound")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	result, ok := resp.Body.(model.Result)
	require.True(t, ok)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, "SMTCONV-GETCONVERSIONBYID-NotFound", result.Messages[0].Code)
	assert.Equal(t, "Error", result.Messages[0].MessageType)
	assert.Contains(t, result.Messages[0].Text, "c-1")
	assert.NotEmpty(t, result.Messages[0].Timestamp)
}

func TestNewAccessDeniedResponse(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, NewAccessDeniedResponse().Code)
}
