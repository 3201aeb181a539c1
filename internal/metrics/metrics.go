// Package metrics exposes Prometheus counters for page traffic and contact submissions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

// Lookup results for project details.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
)

// Contact submission results.
const (
	SubmissionSent       = "sent"
	SubmissionIncomplete = "incomplete"
	SubmissionCanceled   = "canceled"
)

// Recorder owns a private registry so tests can build as many as they like.
type Recorder struct {
	registry    *prometheus.Registry
	pageViews   *prometheus.CounterVec
	redirects   prometheus.Counter
	lookups     *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

// New registers the portfolio counters plus Go runtime and process collectors.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered pages by page name.",
		}, []string{"page"}),
		redirects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirects_total",
			Help:      "Unknown paths redirected to the home page.",
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "project_lookups_total",
			Help:      "Project details lookups by result.",
		}, []string{"result"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Simulated contact form submissions by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		r.pageViews,
		r.redirects,
		r.lookups,
		r.submissions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// PageView counts one rendered page.
func (r *Recorder) PageView(page string) {
	if r == nil {
		return
	}
	r.pageViews.WithLabelValues(page).Inc()
}

// Redirect counts one fallback redirect.
func (r *Recorder) Redirect() {
	if r == nil {
		return
	}
	r.redirects.Inc()
}

// ProjectLookup counts a details lookup with LookupFound or LookupNotFound.
func (r *Recorder) ProjectLookup(result string) {
	if r == nil {
		return
	}
	r.lookups.WithLabelValues(result).Inc()
}

// ContactSubmission counts a submission outcome.
func (r *Recorder) ContactSubmission(result string) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(result).Inc()
}

// Registry exposes the underlying registry for tests and custom collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
