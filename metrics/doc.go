// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package metrics records how much work a glstate.Manager saves and spends.
//
// Components receive a Recorder through dependency injection. The default
// is NoopRecorder, whose methods do nothing, so the manager never checks
// for a nil recorder:
//
//	m := glstate.New(dev) // NoopRecorder
//
//	reg := prometheus.NewRegistry()
//	m = glstate.New(dev, glstate.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder exports, under the "glstate" namespace:
//   - applies_total{result}: applied, skipped (early-out), forced
//   - toggles_changed: histogram of toggles dispatched per apply
//   - toggle_changes_total{toggle,state}
//   - blend_func_calls_total{mode}
//   - attribute_resets_total
package metrics
