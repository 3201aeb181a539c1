// Package nav builds the main navigation and breadcrumb trails.
package nav

import (
	"solanki.dev/portfolio/internal/route"
)

// Item is a view model for one header link.
type Item struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main lists the pages shown in the header, in display order.
var Main = []route.Page{route.Home, route.Projects, route.About, route.Contact}

// Build renders navigation items. An item is active only when currentPath equals its href.
func Build(currentPath string) []Item {
	items := make([]Item, 0, len(Main))
	for _, p := range Main {
		href := p.Path()
		items = append(items, Item{
			Href:   href,
			Label:  p.Name(),
			Active: currentPath == href,
		})
	}
	return items
}

// Breadcrumbs builds Home › Projects › <title> for a project details page.
// An empty title stops at Projects.
func Breadcrumbs(projectTitle string) []Crumb {
	crumbs := []Crumb{
		{Href: route.Home.Path(), Label: route.Home.Name()},
		{Href: route.Projects.Path(), Label: route.Projects.Name()},
	}
	if projectTitle == "" {
		crumbs[len(crumbs)-1].Active = true
		return crumbs
	}
	return append(crumbs, Crumb{Label: projectTitle, Active: true})
}
