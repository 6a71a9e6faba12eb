package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveGenerateDuration(150 * time.Millisecond)
	pr.IncGenerateOutcome(OutcomeSuccess)
	pr.IncGenerateOutcome(OutcomeSuccess)
	pr.IncDocumentResult(DocumentIndexed, 3)
	pr.IncDocumentResult(DocumentUntitled, 0)
	pr.SetIndexedPosts(3)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)

	require.Equal(t, 2.0, testutil.ToFloat64(pr.outcomes.WithLabelValues("success")))
	require.Equal(t, 3.0, testutil.ToFloat64(pr.documents.WithLabelValues("indexed")))
	require.Equal(t, 3.0, testutil.ToFloat64(pr.indexedPosts))
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveGenerateDuration(time.Second)
	pr.IncGenerateOutcome(OutcomeFailed)
	pr.IncDocumentResult(DocumentUnreadable, 1)
	pr.SetIndexedPosts(1)
}

func TestHTTPHandlerServesMetrics(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.SetIndexedPosts(7)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "postindex_indexed_posts 7")
}
