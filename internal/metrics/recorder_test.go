package metrics

import (
	"time"
)

// testRecorder counts calls; used to check the interface stays implementable.
type testRecorder struct {
	durations int
	outcomes  map[OutcomeLabel]int
	documents map[DocumentLabel]int
	indexed   int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{outcomes: map[OutcomeLabel]int{}, documents: map[DocumentLabel]int{}}
}

func (t *testRecorder) ObserveGenerateDuration(time.Duration)     { t.durations++ }
func (t *testRecorder) IncGenerateOutcome(o OutcomeLabel)         { t.outcomes[o]++ }
func (t *testRecorder) IncDocumentResult(r DocumentLabel, n int)  { t.documents[r] += n }
func (t *testRecorder) SetIndexedPosts(n int)                     { t.indexed = n }

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = newTestRecorder()
)
