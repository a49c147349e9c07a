package metadata

import (
	"time"
)

/*
Recorder captures structured run events for post-run auditability.

It must not:
- perform I/O decisions
- affect control flow
- impose a logging backend

Metadata is write-only during a run. No component may read recorded
events to influence generation or sync decisions; the CLI drains them
once, after the run, to print a summary.
*/
type Recorder struct {
	runId     string
	errors    []ErrorEvent
	artifacts []ArtifactEvent
	stats     *runStats
}

// ErrorEvent is one recorded, classified failure observation.
type ErrorEvent struct {
	ObservedAt  time.Time
	PackageName string
	Action      string
	Cause       ErrorCause
	ErrorString string
	Attrs       []Attribute
}

// ArtifactEvent records one artifact the run produced.
type ArtifactEvent struct {
	Kind  ArtifactKind
	Path  string
	Attrs []Attribute
}

func NewRecorder(runId string) *Recorder {
	return &Recorder{
		runId: runId,
	}
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
	r.errors = append(r.errors, ErrorEvent{
		ObservedAt:  observedAt,
		PackageName: packageName,
		Action:      action,
		Cause:       cause,
		ErrorString: errorString,
		Attrs:       attrs,
	})
}

func (r *Recorder) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {
	r.artifacts = append(r.artifacts, ArtifactEvent{
		Kind:  kind,
		Path:  path,
		Attrs: attrs,
	})
}

/*
RecordFinalRunStats records a terminal, derived summary of a completed
run.

Contract:
  - MUST be called exactly once per run.
  - MUST be called only after the run finished.
  - The counts MUST be derived from the component results, not
    accumulated by reading back recorded events.
  - Recorded stats MUST NOT influence control flow.
*/
func (r *Recorder) RecordFinalRunStats(
	totalFixtures int,
	totalSkipped int,
	totalErrors int,
	totalCopied int,
) {
	r.stats = &runStats{
		totalFixtures: totalFixtures,
		totalSkipped:  totalSkipped,
		totalErrors:   totalErrors,
		totalCopied:   totalCopied,
	}
}

// Errors returns the recorded error events in arrival order. Intended
// for the post-run summary only.
func (r *Recorder) Errors() []ErrorEvent {
	return r.errors
}

// Artifacts returns the recorded artifact events in arrival order.
func (r *Recorder) Artifacts() []ArtifactEvent {
	return r.artifacts
}

type MetadataSink interface {
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		errorString string,
		attrs []Attribute,
	)
	RecordArtifact(kind ArtifactKind, path string, attrs []Attribute)
}
