package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"solanki.dev/portfolio/internal/content"
	"solanki.dev/portfolio/internal/metrics"
	"solanki.dev/portfolio/internal/route"
	"solanki.dev/portfolio/internal/testutil"
	"solanki.dev/portfolio/internal/view"
)

func newTestHandlers(t *testing.T) (*Handlers, *metrics.Recorder) {
	t.Helper()

	c, err := content.LoadEmbedded()
	require.NoError(t, err)
	renderer, err := view.New(nil, false)
	require.NoError(t, err)
	rec := metrics.New()

	h, err := New(Dependencies{Content: c, Renderer: renderer, Metrics: rec})
	require.NoError(t, err)
	return h, rec
}

func TestDispatchResolvesThroughTable(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlers(t)
	dispatch := h.Dispatch(route.NewTable())

	cases := map[string]string{
		"/":         "Home | Pratham Solanki",
		"/home":     "Home | Pratham Solanki",
		"/projects": "Projects | Pratham Solanki",
		"/about":    "About | Pratham Solanki",
		"/contact":  "Contact | Pratham Solanki",
	}
	for path, title := range cases {
		rec := httptest.NewRecorder()
		dispatch(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)

		doc := testutil.ParseHTML(t, rec.Body.Bytes())
		require.Equal(t, title, strings.TrimSpace(doc.Find("title").Text()), path)
	}
}

func TestDispatchRedirectsUnknownPaths(t *testing.T) {
	t.Parallel()

	h, rec := newTestHandlers(t)
	dispatch := h.Dispatch(route.NewTable())

	for _, path := range []string{"/Home", "/contact/", "/project-details/1", "/blog"} {
		w := httptest.NewRecorder()
		dispatch(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusMovedPermanently, w.Code, path)
		require.Equal(t, "/", w.Header().Get("Location"), path)
	}

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Contains(t, w.Body.String(), "portfolio_redirects_total 4")
}
