// Package route owns the page table: the closed set of logical pages, the
// normalizer that turns page names into URL paths, and exact path matching.
package route

import (
	"regexp"
	"strconv"
	"strings"
)

// Page identifies one of the site's logical pages.
type Page int

const (
	Home Page = iota + 1
	Projects
	About
	Contact
	ProjectDetails
)

var pageNames = map[Page]string{
	Home:           "Home",
	Projects:       "Projects",
	About:          "About",
	Contact:        "Contact",
	ProjectDetails: "Project Details",
}

// Name returns the human-readable page name, e.g. "Project Details".
func (p Page) Name() string {
	return pageNames[p]
}

// Path returns the canonical path for the page.
func (p Page) Path() string {
	return PageURL(p.Name())
}

func (p Page) String() string {
	if n, ok := pageNames[p]; ok {
		return n
	}
	return "Page(" + strconv.Itoa(int(p)) + ")"
}

var (
	// \s in the browser also covers NBSP, the Unicode space separators and the BOM.
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{feff}]+`)
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
)

// PageURL converts a page name into a path: whitespace runs become a single
// hyphen, a hyphen is inserted at every lower→upper camelCase boundary, the
// result is lowercased and rooted at "/". The empty name maps to "/".
//
// Names that already start with "/" are treated as rooted, which keeps
// PageURL(PageURL(s)) == PageURL(s).
func PageURL(name string) string {
	if name == "" {
		return "/"
	}
	kebab := strings.TrimLeft(name, "/")
	kebab = whitespaceRun.ReplaceAllString(kebab, "-")
	kebab = camelBoundary.ReplaceAllString(kebab, "$1-$2")
	return "/" + strings.ToLower(kebab)
}

// DetailsURL links to the details page of the project with the given id.
func DetailsURL(id int) string {
	return PageURL("ProjectDetails?id=" + strconv.Itoa(id))
}

// Route binds a path to a page.
type Route struct {
	Path string
	Page Page
}

// Table is the immutable path → page mapping.
type Table struct {
	byPath map[string]Page
	routes []Route
}

// NewTable registers the site's pages. Home is bound to the root path and to
// its own name; every other page to its normalized name.
func NewTable() *Table {
	t := &Table{byPath: map[string]Page{}}
	t.add("/", Home)
	for _, p := range []Page{Home, Projects, About, Contact, ProjectDetails} {
		t.add(p.Path(), p)
	}
	return t
}

func (t *Table) add(path string, p Page) {
	if _, exists := t.byPath[path]; exists {
		return
	}
	t.byPath[path] = p
	t.routes = append(t.routes, Route{Path: path, Page: p})
}

// Match resolves a request path by exact string comparison.
func (t *Table) Match(path string) (Page, bool) {
	p, ok := t.byPath[path]
	return p, ok
}

// Routes returns the registered routes in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}
