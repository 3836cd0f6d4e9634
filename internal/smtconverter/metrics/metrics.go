/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package metrics exposes Prometheus metrics of conversions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/pipeline"
)

const namespace = "smtconverter"

// Conversion outcomes used as status label.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Metrics collects conversion metrics in its own registry.
type Metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	elements    *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
}

// New creates the metrics. With withRuntime the Go runtime and process collectors are
// registered as well.
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Number of document conversions by input format and status.",
		}, []string{"format", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Duration of successful document conversions.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"format"}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extracted_elements_total",
			Help:      "Number of extracted model elements by kind.",
		}, []string{"kind"}),
		diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostics_total",
			Help:      "Number of validation diagnostics by severity.",
		}, []string{"severity"}),
	}
	m.registry.MustRegister(m.conversions, m.duration, m.elements, m.diagnostics)
	if withRuntime {
		m.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	return m
}

// ObserveConversion records a finished conversion.
func (m *Metrics) ObserveConversion(format pipeline.Format, result *pipeline.Result, err error) {
	if err != nil || result == nil {
		m.conversions.WithLabelValues(string(format), StatusFailed).Inc()
		return
	}
	m.conversions.WithLabelValues(string(format), StatusSucceeded).Inc()
	m.duration.WithLabelValues(string(format)).Observe(result.Duration.Seconds())
	st := result.Summary.Statistics()
	m.elements.WithLabelValues("type").Add(float64(st.Types))
	m.elements.WithLabelValues("field").Add(float64(st.Fields))
	m.elements.WithLabelValues("operation").Add(float64(st.Operations))
	m.elements.WithLabelValues("enum").Add(float64(st.Enums))
	for _, d := range result.Report.Diagnostics {
		m.diagnostics.WithLabelValues(string(d.Level)).Inc()
	}
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
