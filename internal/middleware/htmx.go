// Package middleware provides the HTTP middleware stack: htmx detection,
// tracing, request logging, panic recovery and cached static assets.
package middleware

import (
	"net/http"
)

// HTMX marks requests coming from htmx so handlers can render fragments.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		ctx := WithHTMX(r.Context(), is)
		ctx = WithBoosted(ctx, is && r.Header.Get("HX-Boosted") == "true")
		if is {
			// Fragment and full responses share URLs.
			w.Header().Add("Vary", "HX-Request")
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
