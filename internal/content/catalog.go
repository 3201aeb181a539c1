package content

import (
	"fmt"
	"html/template"
	"strconv"
)

// Project is a catalog record.
type Project struct {
	ID              int
	Title           string
	Description     string
	LongDescription string        // markdown source
	Body            template.HTML // sanitized rendering of LongDescription
	ImageURL        string
	Technologies    []string
	GitHubURL       string
	LiveURL         string
	Year            int
	Duration        string
	Client          string
	Featured        bool
}

// Catalog is the immutable, id-keyed collection of projects.
type Catalog struct {
	projects []Project
	byKey    map[string]int
}

// NewCatalog validates the records and indexes them by the decimal form of their id.
func NewCatalog(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		byKey:    make(map[string]int, len(projects)),
	}
	for _, p := range projects {
		if p.ID <= 0 {
			return nil, fmt.Errorf("content: project %q: id must be positive, got %d", p.Title, p.ID)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("content: project %d: title is required", p.ID)
		}
		key := strconv.Itoa(p.ID)
		if _, dup := c.byKey[key]; dup {
			return nil, fmt.Errorf("content: duplicate project id %d", p.ID)
		}
		c.byKey[key] = len(c.projects)
		c.projects = append(c.projects, cloneProject(p))
	}
	return c, nil
}

// All returns every project in catalog order.
func (c *Catalog) All() []Project {
	if c == nil {
		return nil
	}
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = cloneProject(p)
	}
	return out
}

// Len reports the number of projects.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.projects)
}

// Featured returns up to limit projects flagged as featured, in catalog order.
// When none are flagged the first projects are used.
func (c *Catalog) Featured(limit int) []Project {
	if c == nil || limit <= 0 {
		return nil
	}
	var out []Project
	for _, p := range c.projects {
		if p.Featured {
			out = append(out, cloneProject(p))
			if len(out) == limit {
				return out
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, p := range c.projects {
		out = append(out, cloneProject(p))
		if len(out) == limit {
			break
		}
	}
	return out
}

// Lookup resolves the raw value of an id query parameter. Absent, malformed and
// unknown ids all report ok=false.
func (c *Catalog) Lookup(raw string) (Project, bool) {
	if c == nil || raw == "" {
		return Project{}, false
	}
	i, ok := c.byKey[raw]
	if !ok {
		return Project{}, false
	}
	return cloneProject(c.projects[i]), true
}

// Get returns the project with the given id or ErrNotFound.
func (c *Catalog) Get(id int) (Project, error) {
	p, ok := c.Lookup(strconv.Itoa(id))
	if !ok {
		return Project{}, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	return p, nil
}

func cloneProject(src Project) Project {
	cp := src
	if src.Technologies != nil {
		cp.Technologies = append([]string(nil), src.Technologies...)
	}
	return cp
}
