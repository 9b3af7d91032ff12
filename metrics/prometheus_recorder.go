// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package metrics

import (
	"strconv"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	applies         *prom.CounterVec
	togglesChanged  prom.Histogram
	toggleChanges   *prom.CounterVec
	blendFuncCalls  *prom.CounterVec
	attributeResets prom.Counter
}

// NewPrometheusRecorder constructs the collectors and registers them with
// reg. A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		applies: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "glstate",
			Name:      "applies_total",
			Help:      "State applies by outcome",
		}, []string{"result"}),
		togglesChanged: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "glstate",
			Name:      "toggles_changed",
			Help:      "Toggles dispatched per non-trivial apply",
			Buckets:   prom.LinearBuckets(1, 1, 5),
		}),
		toggleChanges: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "glstate",
			Name:      "toggle_changes_total",
			Help:      "Toggle handler invocations by toggle and new value",
		}, []string{"toggle", "state"}),
		blendFuncCalls: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "glstate",
			Name:      "blend_func_calls_total",
			Help:      "Blend function device calls by blend mode",
		}, []string{"mode"}),
		attributeResets: prom.NewCounter(prom.CounterOpts{
			Namespace: "glstate",
			Name:      "attribute_resets_total",
			Help:      "Vertex attribute resets",
		}),
	}
	reg.MustRegister(pr.applies, pr.togglesChanged, pr.toggleChanges, pr.blendFuncCalls, pr.attributeResets)
	return pr
}

func (p *PrometheusRecorder) IncApply(result ApplyResult) {
	p.applies.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveChangedToggles(n int) {
	p.togglesChanged.Observe(float64(n))
}

func (p *PrometheusRecorder) IncToggleChange(toggle string, enabled bool) {
	p.toggleChanges.WithLabelValues(toggle, strconv.FormatBool(enabled)).Inc()
}

func (p *PrometheusRecorder) IncBlendFunc(mode string) {
	p.blendFuncCalls.WithLabelValues(mode).Inc()
}

func (p *PrometheusRecorder) IncAttributeReset() {
	p.attributeResets.Inc()
}
