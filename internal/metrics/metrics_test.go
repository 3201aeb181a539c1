package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	t.Parallel()

	r := New()
	r.PageView("Home")
	r.PageView("Home")
	r.PageView("About")
	r.Redirect()
	r.ProjectLookup(LookupNotFound)
	r.ContactSubmission(SubmissionSent)

	require.Equal(t, 2.0, testutil.ToFloat64(r.pageViews.WithLabelValues("Home")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.pageViews.WithLabelValues("About")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.redirects))
	require.Equal(t, 1.0, testutil.ToFloat64(r.lookups.WithLabelValues(LookupNotFound)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.submissions.WithLabelValues(SubmissionSent)))
}

func TestNilRecorderIsSafe(t *testing.T) {
	t.Parallel()

	var r *Recorder
	r.PageView("Home")
	r.Redirect()
	r.ProjectLookup(LookupFound)
	r.ContactSubmission(SubmissionIncomplete)
}

func TestHandlerExposesCounters(t *testing.T) {
	t.Parallel()

	r := New()
	r.Redirect()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "portfolio_redirects_total 1")
	require.Contains(t, rec.Body.String(), "go_goroutines")
}
