// Package view parses the site's html/template files and exposes them as templ components.
package view

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/bmatcuk/doublestar/v4"

	"solanki.dev/portfolio/internal/content"
	"solanki.dev/portfolio/internal/format"
	"solanki.dev/portfolio/internal/nav"
	"solanki.dev/portfolio/internal/route"
	"solanki.dev/portfolio/internal/seo"
)

//go:embed templates
var embedded embed.FS

// Templates returns the embedded template tree rooted at templates/.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Shell is the persistent frame around every page.
type Shell struct {
	Meta seo.Meta
	Nav  []nav.Item
	Site content.Site
	Path string
	Year int
	Main template.HTML
}

// Renderer executes named templates. In dev mode the tree is re-read on every render.
type Renderer struct {
	fsys fs.FS
	dev  bool
	tmpl *template.Template
}

// New parses every template under fsys (nil means the embedded tree).
// Parsing happens up front in both modes so broken templates fail at start-up.
func New(fsys fs.FS, dev bool) (*Renderer, error) {
	if fsys == nil {
		fsys = Templates()
	}
	t, err := Parse(fsys)
	if err != nil {
		return nil, err
	}
	return &Renderer{fsys: fsys, dev: dev, tmpl: t}, nil
}

// Parse discovers **/*.tmpl in fsys and parses them into one template set.
func Parse(fsys fs.FS) (*template.Template, error) {
	files, err := doublestar.Glob(fsys, "**/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("view: glob templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("view: no templates found")
	}
	sort.Strings(files)
	t, err := template.New("_root").Funcs(Funcs()).ParseFS(fsys, files...)
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return t, nil
}

func (r *Renderer) templates() (*template.Template, error) {
	if !r.dev {
		return r.tmpl, nil
	}
	return Parse(r.fsys)
}

// Component renders the named template with data.
func (r *Renderer) Component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t, err := r.templates()
		if err != nil {
			return err
		}
		return t.ExecuteTemplate(w, name, data)
	})
}

// Page wraps page in the shell. A fragment render returns only the page body
// plus an out-of-band navigation update, for boosted navigations.
func (r *Renderer) Page(shell Shell, page templ.Component, fragment bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		main, err := templ.ToGoHTML(ctx, page)
		if err != nil {
			return err
		}
		shell.Main = main
		if shell.Year == 0 {
			shell.Year = time.Now().Year()
		}
		name := "layout"
		if fragment {
			name = "fragment"
		}
		t, err := r.templates()
		if err != nil {
			return err
		}
		return t.ExecuteTemplate(w, name, shell)
	})
}

// Funcs is the template function map.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"pageURL":    route.PageURL,
		"detailsURL": route.DetailsURL,
		"label":      format.Label,
		"period":     format.Period,
		"year":       format.Year,
		"take":       take,
		"initial":    initial,
		"jsonld":     jsonLD,
	}
}

// jsonLD marks an already marshalled JSON-LD document as safe script content.
// encoding/json escapes <, > and & so the payload cannot close the script element.
func jsonLD(doc string) template.JS {
	return template.JS(doc)
}

func take(n int, items []string) []string {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// initial returns the first letter of s, used for the logo badge.
func initial(s string) string {
	s = strings.TrimSpace(s)
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}
