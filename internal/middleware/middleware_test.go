package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"solanki.dev/portfolio/internal/observability"
)

func TestHTMXFlags(t *testing.T) {
	t.Parallel()

	var gotHTMX, gotBoosted bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHTMX = IsHTMX(r.Context())
		gotBoosted = IsBoosted(r.Context())
	}))

	tests := []struct {
		name    string
		headers map[string]string
		htmx    bool
		boosted bool
	}{
		{"plain", nil, false, false},
		{"htmx", map[string]string{"HX-Request": "true"}, true, false},
		{"boosted", map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, true, true},
		{"boost header alone", map[string]string{"HX-Boosted": "true"}, false, false},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, tc.htmx, gotHTMX, tc.name)
		require.Equal(t, tc.boosted, gotBoosted, tc.name)
	}
}

func TestRequestLoggerRecordsStatusAndRoute(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(RequestLogger(zap.New(core)))
	r.Get("/projects", func(w http.ResponseWriter, r *http.Request) {
		observability.FromContext(r.Context()).Debug("inside handler")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	require.Equal(t, 1, logs.FilterMessage("inside handler").Len())
	done := logs.FilterMessage("request completed").All()
	require.Len(t, done, 1)
	require.Equal(t, zapcore.WarnLevel, done[0].Level)
	fields := done[0].ContextMap()
	require.Equal(t, int64(http.StatusTeapot), fields["status"])
	require.Equal(t, "/projects", fields["route"])
	require.Equal(t, int64(5), fields["bytes"])
}

func TestRecoveryLogsAndReturns500(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	h := RequestLogger(zap.New(core))(Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	require.Equal(t, zapcore.ErrorLevel, logs.FilterMessage("request completed").All()[0].Level)
}

func TestTraceStoresTraceID(t *testing.T) {
	t.Parallel()

	called := false
	h := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		// The global no-op provider yields no trace id.
		require.Empty(t, TraceID(r.Context()))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil))
	require.True(t, called)
}

func TestAssetsWithCache(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"css/site.css": {Data: []byte("body{}")}}
	h := AssetsWithCache(fsys, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")

	req := httptest.NewRequest(http.MethodGet, "/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	dev := AssetsWithCache(fsys, true)
	rec = httptest.NewRecorder()
	dev.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/site.css", nil))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Empty(t, rec.Header().Get("ETag"))
}
