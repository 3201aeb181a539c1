// Package handlers renders the site's pages.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"solanki.dev/portfolio/internal/contact"
	"solanki.dev/portfolio/internal/content"
	"solanki.dev/portfolio/internal/metrics"
	"solanki.dev/portfolio/internal/middleware"
	"solanki.dev/portfolio/internal/nav"
	"solanki.dev/portfolio/internal/observability"
	"solanki.dev/portfolio/internal/route"
	"solanki.dev/portfolio/internal/seo"
	"solanki.dev/portfolio/internal/view"
)

// Dependencies collects everything the page handlers need.
type Dependencies struct {
	Content  *content.Content
	Renderer *view.Renderer
	Contact  *contact.Simulator
	Metrics  *metrics.Recorder
	// BaseURL enables canonical and Open Graph URLs when set.
	BaseURL string
}

// Handlers exposes one HTTP handler per page.
type Handlers struct {
	content  *content.Content
	renderer *view.Renderer
	contact  *contact.Simulator
	metrics  *metrics.Recorder
	site     seo.Site
}

// New wires the handler set. Content and Renderer are required.
func New(deps Dependencies) (*Handlers, error) {
	if deps.Content == nil || deps.Content.Catalog == nil {
		return nil, errors.New("handlers: content is required")
	}
	if deps.Renderer == nil {
		return nil, errors.New("handlers: renderer is required")
	}
	sim := deps.Contact
	if sim == nil {
		sim = contact.NewSimulator()
	}
	return &Handlers{
		content:  deps.Content,
		renderer: deps.Renderer,
		contact:  sim,
		metrics:  deps.Metrics,
		site: seo.Site{
			Name:    deps.Content.Site.FullName,
			BaseURL: strings.TrimRight(deps.BaseURL, "/"),
			Image:   deps.Content.Site.ProfileImage,
		},
	}, nil
}

// For returns the GET handler of a page.
func (h *Handlers) For(p route.Page) http.HandlerFunc {
	switch p {
	case route.Home:
		return h.Home
	case route.Projects:
		return h.Projects
	case route.About:
		return h.About
	case route.Contact:
		return h.Contact
	case route.ProjectDetails:
		return h.ProjectDetails
	}
	return h.Fallback
}

// Dispatch resolves the request path against table and serves the matching
// page. Paths the table does not know are redirected home.
func (h *Handlers) Dispatch(table *route.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := table.Match(r.URL.Path)
		if !ok {
			h.Fallback(w, r)
			return
		}
		h.For(p)(w, r)
	}
}

// Fallback permanently redirects unknown paths to the home page.
func (h *Handlers) Fallback(w http.ResponseWriter, r *http.Request) {
	h.metrics.Redirect()
	observability.FromContext(r.Context()).Debug("redirecting unknown path", zap.String("path", r.URL.Path))
	http.Redirect(w, r, "/", http.StatusMovedPermanently)
}

// Home renders the landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	s := h.content.Site
	meta := h.site.Page(route.Home.Name(), s.Bio, "/", "website").WithJSONLD(
		seo.Person(s.FullName, s.Title, h.site.Absolute("/"), s.ProfileImage, s.Social.GitHub, s.Social.LinkedIn, s.Social.Twitter),
		seo.WebSite(s.FullName, h.site.Absolute("/")),
	)
	data := HomeData{Site: s, Featured: h.content.Catalog.Featured(featuredLimit)}
	h.render(w, r, route.Home, meta, h.renderer.Component("page/home", data), http.StatusOK)
}

// About renders the biography, experience timeline and skills.
func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	s := h.content.Site
	meta := h.site.Page(route.About.Name(), s.About, route.About.Path(), "profile")
	data := AboutData{
		Site:        s,
		Experience:  h.content.Experience,
		SkillGroups: content.GroupSkills(h.content.Skills),
	}
	h.render(w, r, route.About, meta, h.renderer.Component("page/about", data), http.StatusOK)
}

// Projects renders the catalog listing.
func (h *Handlers) Projects(w http.ResponseWriter, r *http.Request) {
	meta := h.site.Page(route.Projects.Name(), projectsDescription, route.Projects.Path(), "website")
	data := ProjectsData{Projects: h.content.Catalog.All()}
	h.render(w, r, route.Projects, meta, h.renderer.Component("page/projects", data), http.StatusOK)
}

// ProjectDetails renders one project selected by the id query parameter,
// or the not-found view with status 404.
func (h *Handlers) ProjectDetails(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	p, ok := h.content.Catalog.Lookup(raw)
	if !ok {
		h.metrics.ProjectLookup(metrics.LookupNotFound)
		observability.FromContext(r.Context()).Info("project not found", zap.String("id", raw))
		meta := h.site.Page("Project not found", "", route.ProjectDetails.Path(), "website")
		h.render(w, r, route.ProjectDetails, meta, h.renderer.Component("page/project-not-found", nil), http.StatusNotFound)
		return
	}
	h.metrics.ProjectLookup(metrics.LookupFound)

	url := h.site.Absolute(route.DetailsURL(p.ID))
	crumbs := nav.Breadcrumbs(p.Title)
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		item := url
		if c.Href != "" {
			item = h.site.Absolute(c.Href)
		}
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: item})
	}
	meta := h.site.Page(p.Title, p.Description, route.DetailsURL(p.ID), "article").WithJSONLD(
		seo.CreativeWork(p.Title, p.Description, url, p.ImageURL, h.content.Site.FullName, p.Year, p.Technologies),
		seo.BreadcrumbList(items),
	)
	data := DetailsData{Project: p, Crumbs: crumbs}
	h.render(w, r, route.ProjectDetails, meta, h.renderer.Component("page/project-details", data), http.StatusOK)
}

// Contact renders the contact page with an empty form.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, r, &contact.Form{}, http.StatusOK)
}

// ContactSubmit runs the simulated submission. htmx posts get only the form back.
func (h *Handlers) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := &contact.Form{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	status := http.StatusOK
	err := h.contact.Submit(r.Context(), form)
	switch {
	case err == nil:
		h.metrics.ContactSubmission(metrics.SubmissionSent)
	case errors.Is(err, contact.ErrIncomplete):
		h.metrics.ContactSubmission(metrics.SubmissionIncomplete)
		status = http.StatusUnprocessableEntity
	default:
		// The client went away during the wait.
		h.metrics.ContactSubmission(metrics.SubmissionCanceled)
		return
	}

	if middleware.IsHTMX(r.Context()) && !middleware.IsBoosted(r.Context()) {
		h.serve(w, r, h.renderer.Component("contact/form", form), status)
		return
	}
	h.renderContact(w, r, form, status)
}

func (h *Handlers) renderContact(w http.ResponseWriter, r *http.Request, form *contact.Form, status int) {
	s := h.content.Site
	meta := h.site.Page(route.Contact.Name(), "Get in touch with "+s.FullName+". Currently "+s.Contact.Availability+" for new collaborations.", route.Contact.Path(), "website")
	data := ContactData{Site: s, Form: form}
	h.render(w, r, route.Contact, meta, h.renderer.Component("page/contact", data), status)
}

// render wraps page in the shell. Boosted navigations receive the fragment only.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, p route.Page, meta seo.Meta, page templ.Component, status int) {
	h.metrics.PageView(p.Name())
	shell := view.Shell{
		Meta: meta,
		Nav:  nav.Build(r.URL.Path),
		Site: h.content.Site,
		Path: r.URL.Path,
	}
	h.serve(w, r, h.renderer.Page(shell, page, middleware.IsBoosted(r.Context())), status)
}

func (h *Handlers) serve(w http.ResponseWriter, r *http.Request, c templ.Component, status int) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
