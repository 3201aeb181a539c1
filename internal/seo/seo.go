// Package seo assembles page metadata: titles, canonical links, Open Graph,
// Twitter cards and JSON-LD documents.
package seo

import (
	"strings"
)

// OpenGraph holds og:* tags.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	URL         string
	Type        string
}

// Twitter holds twitter:* tags.
type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is everything rendered into <head> for one page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	// JSONLD holds pre-marshalled schema.org documents.
	JSONLD []string
}

// Site describes the owner used to build titles and absolute URLs.
type Site struct {
	Name    string
	BaseURL string
	Image   string
	Twitter string
}

// Absolute joins path onto the site base URL. Without a base URL it returns "".
// Already absolute URLs are returned unchanged.
func (s Site) Absolute(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if s.BaseURL == "" {
		return ""
	}
	if path == "" || path == "/" {
		return s.BaseURL + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.BaseURL + path
}

// Title formats "<page> | <site>", or just the site name for an empty page.
func (s Site) Title(page string) string {
	page = strings.TrimSpace(page)
	switch {
	case page == "":
		return s.Name
	case s.Name == "":
		return page
	}
	return page + " | " + s.Name
}

// Page builds Meta for a page at path. description may contain markup; it is flattened.
func (s Site) Page(title, description, path, ogType string) Meta {
	desc := PlainText(description, maxDescription)
	if ogType == "" {
		ogType = "website"
	}
	m := Meta{
		Title:       s.Title(title),
		Description: desc,
		Canonical:   s.Absolute(path),
		OG: OpenGraph{
			Title:       s.Title(title),
			Description: desc,
			Image:       s.Absolute(s.Image),
			URL:         s.Absolute(path),
			Type:        ogType,
		},
		Twitter: Twitter{
			Card:  "summary",
			Site:  s.Twitter,
			Image: s.Absolute(s.Image),
		},
	}
	if m.OG.Image != "" {
		m.Twitter.Card = "summary_large_image"
	}
	return m
}

// WithJSONLD appends marshalled schema documents, skipping ones that fail to encode.
func (m Meta) WithJSONLD(docs ...map[string]any) Meta {
	for _, doc := range docs {
		if s := JSON(doc); s != "" {
			m.JSONLD = append(m.JSONLD, s)
		}
	}
	return m
}
