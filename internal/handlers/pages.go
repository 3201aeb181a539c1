package handlers

import (
	"solanki.dev/portfolio/internal/contact"
	"solanki.dev/portfolio/internal/content"
	"solanki.dev/portfolio/internal/nav"
)

// HomeData feeds page/home.
type HomeData struct {
	Site     content.Site
	Featured []content.Project
}

// AboutData feeds page/about.
type AboutData struct {
	Site        content.Site
	Experience  []content.Experience
	SkillGroups []content.SkillGroup
}

// ProjectsData feeds page/projects.
type ProjectsData struct {
	Projects []content.Project
}

// DetailsData feeds page/project-details.
type DetailsData struct {
	Project content.Project
	Crumbs  []nav.Crumb
}

// ContactData feeds page/contact.
type ContactData struct {
	Site content.Site
	Form *contact.Form
}

const (
	featuredLimit       = 3
	projectsDescription = "A showcase of my work in data science, machine learning, and software development"
)
