package models

import "time"

// RunSummary aggregates the outcome of a whole run for the closing console
// line and the optional notification.
type RunSummary struct {
	Target            Target
	TotalRepositories int
	CleanRepositories int
	FailedScans       int
	CriticalFindings  int
	MediumFindings    int
	Duration          time.Duration
	Interrupted       bool
}

// TotalFindings returns the finding count across both severities.
func (s RunSummary) TotalFindings() int {
	return s.CriticalFindings + s.MediumFindings
}

// RunSummaryBuilder helps in constructing RunSummary objects from a stream of
// per-repository results.
type RunSummaryBuilder struct {
	summary RunSummary
	started time.Time
}

// NewRunSummaryBuilder creates a builder stamped with the current time.
func NewRunSummaryBuilder(target Target) *RunSummaryBuilder {
	return &RunSummaryBuilder{
		summary: RunSummary{Target: target},
		started: time.Now(),
	}
}

// AddResult folds one repository result into the summary.
func (b *RunSummaryBuilder) AddResult(result ScanResult) *RunSummaryBuilder {
	b.summary.TotalRepositories++
	switch result.Status {
	case StatusClean:
		b.summary.CleanRepositories++
	case StatusFailed:
		b.summary.FailedScans++
	}
	b.summary.CriticalFindings += result.CriticalCount()
	b.summary.MediumFindings += result.MediumCount()
	return b
}

// WithInterrupted marks the run as cut short by a signal.
func (b *RunSummaryBuilder) WithInterrupted(interrupted bool) *RunSummaryBuilder {
	b.summary.Interrupted = interrupted
	return b
}

// Build finalizes the summary, recording the elapsed duration.
func (b *RunSummaryBuilder) Build() RunSummary {
	b.summary.Duration = time.Since(b.started)
	return b.summary
}
