package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/pipeline"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/validation"
)

func result() *pipeline.Result {
	s := model.NewSpecSummary()
	t := model.NewType("Nameplate", false, false)
	t.Kind = model.SmeKindSubmodel
	f := model.NewField()
	f.IDShort = "SerialNumber"
	t.AddField(f)
	s.Types = append(s.Types, t)
	return &pipeline.Result{
		Summary:  s,
		Duration: 20 * time.Millisecond,
		Report: validation.Report{Diagnostics: []model.Diagnostic{
			{Level: model.DiagnosticWarning, Code: validation.CodeValueTypeUndefined},
			{Level: model.DiagnosticWarning, Code: validation.CodeFieldUnbraced},
		}},
	}
}

func TestObserveConversion(t *testing.T) {
	m := New(false)

	m.ObserveConversion(pipeline.FormatCSV, result(), nil)
	m.ObserveConversion(pipeline.FormatCSV, nil, errors.New("broken"))
	m.ObserveConversion(pipeline.FormatAAS, result(), nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("csv", StatusSucceeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("csv", StatusFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("aas", StatusSucceeded)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.elements.WithLabelValues("type")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.elements.WithLabelValues("field")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.diagnostics.WithLabelValues("WARNING")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestHandler(t *testing.T) {
	m := New(true)
	m.ObserveConversion(pipeline.FormatJSON, result(), nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `smtconverter_conversions_total{format="json",status="succeeded"} 1`)
	assert.Contains(t, body, "smtconverter_conversion_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}
