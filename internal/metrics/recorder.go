package metrics

import "time"

// OutcomeLabel enumerates generation outcomes.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
	OutcomeSkipped OutcomeLabel = "skipped" // watch mode: input unchanged
)

// DocumentLabel enumerates what happened to a single source document.
type DocumentLabel string

const (
	DocumentIndexed    DocumentLabel = "indexed"
	DocumentUntitled   DocumentLabel = "untitled"
	DocumentUnreadable DocumentLabel = "unreadable"
)

// Recorder defines observability hooks for index generation. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveGenerateDuration(d time.Duration)
	IncGenerateOutcome(outcome OutcomeLabel)
	IncDocumentResult(result DocumentLabel, n int)
	SetIndexedPosts(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerateDuration(time.Duration)  {}
func (NoopRecorder) IncGenerateOutcome(OutcomeLabel)        {}
func (NoopRecorder) IncDocumentResult(DocumentLabel, int)   {}
func (NoopRecorder) SetIndexedPosts(int)                    {}
