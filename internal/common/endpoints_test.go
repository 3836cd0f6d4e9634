package common

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthEndpoint(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := map[string]struct {
		backends []Pinger
		code     int
		body     string
	}{
		"no backends":  {nil, http.StatusOK, `{"status":"UP"}`},
		"backend up":   {[]Pinger{up}, http.StatusOK, `{"status":"UP"}`},
		"backend down": {[]Pinger{up, down}, http.StatusServiceUnavailable, `{"status":"DOWN"}`},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := chi.NewRouter()
			AddHealthEndpoint(r, &Config{Server: ServerConfig{ContextPath: "/api"}}, tc.backends...)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			assert.Equal(t, tc.code, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}
