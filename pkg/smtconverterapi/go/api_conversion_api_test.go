package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common/model"
)

type recordingService struct {
	request ConversionRequest
	limit   int32
	cursor  string
	id      string
}

func (s *recordingService) PostConversion(_ context.Context, r ConversionRequest) (model.ImplResponse, error) {
	s.request = r
	return model.Response(http.StatusCreated, map[string]string{"id": "c-1"}), nil
}

func (s *recordingService) PostAASConversion(_ context.Context, r ConversionRequest) (model.ImplResponse, error) {
	s.request = r
	return model.Response(http.StatusCreated, map[string]string{"id": "c-2"}), nil
}

func (s *recordingService) GetAllConversions(_ context.Context, limit int32, cursor string) (model.ImplResponse, error) {
	s.limit, s.cursor = limit, cursor
	return model.Response(http.StatusOK, GetConversionsResult{Result: nil}), nil
}

func (s *recordingService) GetConversionByID(_ context.Context, id string) (model.ImplResponse, error) {
	s.id = id
	if id == "missing" {
		return model.Response(http.StatusNotFound, model.Result{Messages: []model.Message{{Code: "SMTCONV-GETCONVERSIONBYID-NotFound"}}}), nil
	}
	return model.Response(http.StatusOK, map[string]string{"id": id}), nil
}

func (s *recordingService) GetConversionIVMLByID(_ context.Context, id string) (model.ImplResponse, error) {
	return model.Response(http.StatusOK, model.TextDocument{Filename: "P.ivml", ContentType: "text/plain; charset=utf-8", Content: []byte("project P {}")}), nil
}

func (s *recordingService) GetConversionIndexByID(_ context.Context, id string) (model.ImplResponse, error) {
	return model.Response(http.StatusOK, model.TextDocument{Filename: "P.text", ContentType: "text/plain; charset=utf-8", Content: []byte("P::x")}), nil
}

func (s *recordingService) DeleteConversionByID(_ context.Context, id string) (model.ImplResponse, error) {
	s.id = id
	return model.Response(http.StatusNoContent, nil), nil
}

func newTestRouter(s ConversionAPIAPIServicer, opts ...ConversionAPIAPIOption) http.Handler {
	return NewRouter(
		NewConversionAPIAPIController(s, "/api", opts...),
		NewDescriptionAPIAPIController(NewDescriptionAPIAPIService("converter", "1.0", []string{"profile"}), "/api"),
	)
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPostConversionRoute(t *testing.T) {
	s := &recordingService{}
	h := newTestRouter(s)

	rec := do(t, h, http.MethodPost, "/api/conversions?name=nameplate", "text/csv", "a,b\n")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"c-1"}`, rec.Body.String())
	assert.Equal(t, "nameplate", s.request.Name)
	assert.Equal(t, "csv", s.request.Format)
	assert.Equal(t, "a,b\n", string(s.request.Data))
}

func TestPostConversionFormatQueryWins(t *testing.T) {
	s := &recordingService{}

	do(t, newTestRouter(s), http.MethodPost, "/api/conversions?format=json", "text/csv", `{"sheets":[]}`)

	assert.Equal(t, "json", s.request.Format)
}

func TestPostAASConversionRoute(t *testing.T) {
	s := &recordingService{}

	rec := do(t, newTestRouter(s), http.MethodPost, "/api/conversions/aas?specNumber=2006", "application/json", `{"submodels":[]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "aas", s.request.Format)
	assert.Equal(t, "2006", s.request.SpecNumber)
}

func TestPostConversionRejectsBody(t *testing.T) {
	h := newTestRouter(&recordingService{}, WithMaxUploadBytes(4))

	rec := do(t, h, http.MethodPost, "/api/conversions", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/conversions", "text/csv", "a,b,c,d\n")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var result model.Result
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "SMTCONV-POSTCONVERSION-PayloadTooLarge", result.Messages[0].Code)
}

func TestGetAllConversionsRoute(t *testing.T) {
	s := &recordingService{}
	h := newTestRouter(s)

	rec := do(t, h, http.MethodGet, "/api/conversions", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(100), s.limit)

	do(t, h, http.MethodGet, "/api/conversions?limit=5&cursor=abc", "", "")
	assert.Equal(t, int32(5), s.limit)
	assert.Equal(t, "abc", s.cursor)

	for _, limit := range []string{"0", "1001", "x"} {
		rec = do(t, h, http.MethodGet, "/api/conversions?limit="+limit, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
	}
}

func TestGetConversionRoutes(t *testing.T) {
	s := &recordingService{}
	h := newTestRouter(s)

	rec := do(t, h, http.MethodGet, "/api/conversions/c-9", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c-9", s.id)

	rec = do(t, h, http.MethodGet, "/api/conversions/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SMTCONV-GETCONVERSIONBYID-NotFound")

	rec = do(t, h, http.MethodGet, "/api/conversions/c-9/ivml", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "P.ivml")
	assert.Equal(t, "project P {}", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/conversions/c-9/index", "", "")
	assert.Equal(t, "P::x", rec.Body.String())
}

func TestDeleteConversionRoute(t *testing.T) {
	s := &recordingService{}

	rec := do(t, newTestRouter(s), http.MethodDelete, "/api/conversions/c-3", "", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "c-3", s.id)
}

func TestGetDescriptionRoute(t *testing.T) {
	rec := do(t, newTestRouter(&recordingService{}), http.MethodGet, "/api/description", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"converter","version":"1.0","profiles":["profile"]}`, rec.Body.String())
}
