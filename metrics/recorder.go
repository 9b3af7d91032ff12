// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package metrics

// ApplyResult enumerates apply outcomes for counters.
type ApplyResult string

const (
	ApplyApplied ApplyResult = "applied"
	ApplySkipped ApplyResult = "skipped"
	ApplyForced  ApplyResult = "forced"
)

// Recorder defines the observability hooks of a state manager.
// Implementations are called from the render loop and must be cheap.
type Recorder interface {
	IncApply(result ApplyResult)
	ObserveChangedToggles(n int)
	IncToggleChange(toggle string, enabled bool)
	IncBlendFunc(mode string)
	IncAttributeReset()
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncApply(ApplyResult)         {}
func (NoopRecorder) ObserveChangedToggles(int)    {}
func (NoopRecorder) IncToggleChange(string, bool) {}
func (NoopRecorder) IncBlendFunc(string)          {}
func (NoopRecorder) IncAttributeReset()           {}
