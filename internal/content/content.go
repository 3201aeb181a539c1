// Package content loads the site copy, experience, skills and project catalog
// from YAML, either embedded or from a directory.
package content

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// ErrNotFound is returned when a content record cannot be located.
var ErrNotFound = errors.New("content: not found")

// Content bundles every record the pages render. It is loaded once and never mutated.
type Content struct {
	Site       Site
	Catalog    *Catalog
	Experience []Experience
	Skills     []Skill
}

// Site holds the owner's profile, contact details and home page copy.
type Site struct {
	FullName     string
	Title        string
	Bio          string
	About        string
	ProfileImage string
	Tagline      string
	Contact      ContactInfo
	Social       SocialLinks
	Competencies []Competency
}

// ContactInfo is shown on the contact page.
type ContactInfo struct {
	Email        string
	Phone        string
	Location     string
	Availability string
}

// SocialLinks are rendered in the footer and on the contact page.
type SocialLinks struct {
	GitHub   string
	LinkedIn string
	Twitter  string
}

// Competency is a home page "core competency" card.
type Competency struct {
	Title       string
	Description string
}

// Experience is one entry of the work history timeline.
type Experience struct {
	Position     string
	Company      string
	Location     string
	StartDate    time.Time
	EndDate      time.Time
	Current      bool
	Type         string
	Description  string
	Achievements []string
	Skills       []string
}

// Skill is a single named skill with its category and proficiency.
type Skill struct {
	Name        string
	Category    string
	Proficiency string
}

type siteFile struct {
	FullName     string `yaml:"full_name"`
	Title        string `yaml:"title"`
	Bio          string `yaml:"bio"`
	About        string `yaml:"about"`
	ProfileImage string `yaml:"profile_image"`
	Tagline      string `yaml:"tagline"`
	Contact      struct {
		Email        string `yaml:"email"`
		Phone        string `yaml:"phone"`
		Location     string `yaml:"location"`
		Availability string `yaml:"availability"`
	} `yaml:"contact"`
	Social struct {
		GitHub   string `yaml:"github"`
		LinkedIn string `yaml:"linkedin"`
		Twitter  string `yaml:"twitter"`
	} `yaml:"social"`
	Competencies []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"competencies"`
}

type projectsFile struct {
	Projects []struct {
		ID              int      `yaml:"id"`
		Title           string   `yaml:"title"`
		Description     string   `yaml:"description"`
		LongDescription string   `yaml:"long_description"`
		ImageURL        string   `yaml:"image_url"`
		Technologies    []string `yaml:"technologies"`
		GitHubURL       string   `yaml:"github_url"`
		LiveURL         string   `yaml:"live_url"`
		Year            int      `yaml:"year"`
		Duration        string   `yaml:"duration"`
		Client          string   `yaml:"client"`
		Featured        bool     `yaml:"featured"`
	} `yaml:"projects"`
}

type experienceFile struct {
	Experience []struct {
		Position     string   `yaml:"position"`
		Company      string   `yaml:"company"`
		Location     string   `yaml:"location"`
		StartDate    string   `yaml:"start_date"`
		EndDate      string   `yaml:"end_date"`
		Current      bool     `yaml:"current"`
		Type         string   `yaml:"type"`
		Description  string   `yaml:"description"`
		Achievements []string `yaml:"achievements"`
		Skills       []string `yaml:"skills"`
	} `yaml:"experience"`
}

type skillsFile struct {
	Skills []struct {
		Name        string `yaml:"name"`
		Category    string `yaml:"category"`
		Proficiency string `yaml:"proficiency"`
	} `yaml:"skills"`
}

// LoadEmbedded decodes the content compiled into the binary.
func LoadEmbedded() (*Content, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("content: embedded data: %w", err)
	}
	return Load(sub)
}

// LoadDir decodes content from a directory on disk with the same layout as the embedded data.
func LoadDir(dir string) (*Content, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return LoadEmbedded()
	}
	return Load(os.DirFS(dir))
}

// Load decodes site.yaml, projects.yaml, experience.yaml and skills.yaml from fsys.
func Load(fsys fs.FS) (*Content, error) {
	var site siteFile
	if err := decodeFile(fsys, "site.yaml", &site); err != nil {
		return nil, err
	}
	var projects projectsFile
	if err := decodeFile(fsys, "projects.yaml", &projects); err != nil {
		return nil, err
	}
	var experience experienceFile
	if err := decodeFile(fsys, "experience.yaml", &experience); err != nil {
		return nil, err
	}
	var skills skillsFile
	if err := decodeFile(fsys, "skills.yaml", &skills); err != nil {
		return nil, err
	}

	c := &Content{Site: buildSite(site)}

	records := make([]Project, 0, len(projects.Projects))
	for _, p := range projects.Projects {
		body, err := RenderMarkdown(p.LongDescription)
		if err != nil {
			return nil, fmt.Errorf("content: project %d long description: %w", p.ID, err)
		}
		records = append(records, Project{
			ID:              p.ID,
			Title:           strings.TrimSpace(p.Title),
			Description:     strings.TrimSpace(p.Description),
			LongDescription: strings.TrimSpace(p.LongDescription),
			Body:            body,
			ImageURL:        strings.TrimSpace(p.ImageURL),
			Technologies:    trimAll(p.Technologies),
			GitHubURL:       strings.TrimSpace(p.GitHubURL),
			LiveURL:         strings.TrimSpace(p.LiveURL),
			Year:            p.Year,
			Duration:        strings.TrimSpace(p.Duration),
			Client:          strings.TrimSpace(p.Client),
			Featured:        p.Featured,
		})
	}
	catalog, err := NewCatalog(records)
	if err != nil {
		return nil, err
	}
	c.Catalog = catalog

	for _, e := range experience.Experience {
		start, err := parseDate(e.StartDate)
		if err != nil {
			return nil, fmt.Errorf("content: experience %q start date: %w", e.Position, err)
		}
		end, err := parseDate(e.EndDate)
		if err != nil {
			return nil, fmt.Errorf("content: experience %q end date: %w", e.Position, err)
		}
		c.Experience = append(c.Experience, Experience{
			Position:     strings.TrimSpace(e.Position),
			Company:      strings.TrimSpace(e.Company),
			Location:     strings.TrimSpace(e.Location),
			StartDate:    start,
			EndDate:      end,
			Current:      e.Current || (end.IsZero() && !start.IsZero()),
			Type:         strings.TrimSpace(e.Type),
			Description:  strings.TrimSpace(e.Description),
			Achievements: trimAll(e.Achievements),
			Skills:       trimAll(e.Skills),
		})
	}

	for _, s := range skills.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		c.Skills = append(c.Skills, Skill{
			Name:        name,
			Category:    firstNonEmpty(strings.TrimSpace(strings.ToLower(s.Category)), "other"),
			Proficiency: strings.TrimSpace(s.Proficiency),
		})
	}
	return c, nil
}

func buildSite(f siteFile) Site {
	s := Site{
		FullName:     strings.TrimSpace(f.FullName),
		Title:        strings.TrimSpace(f.Title),
		Bio:          strings.TrimSpace(f.Bio),
		About:        strings.TrimSpace(f.About),
		ProfileImage: strings.TrimSpace(f.ProfileImage),
		Tagline:      strings.TrimSpace(f.Tagline),
		Contact: ContactInfo{
			Email:        strings.TrimSpace(f.Contact.Email),
			Phone:        strings.TrimSpace(f.Contact.Phone),
			Location:     strings.TrimSpace(f.Contact.Location),
			Availability: strings.TrimSpace(f.Contact.Availability),
		},
		Social: SocialLinks{
			GitHub:   strings.TrimSpace(f.Social.GitHub),
			LinkedIn: strings.TrimSpace(f.Social.LinkedIn),
			Twitter:  strings.TrimSpace(f.Social.Twitter),
		},
	}
	for _, comp := range f.Competencies {
		if strings.TrimSpace(comp.Title) == "" {
			continue
		}
		s.Competencies = append(s.Competencies, Competency{
			Title:       strings.TrimSpace(comp.Title),
			Description: strings.TrimSpace(comp.Description),
		})
	}
	return s
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("content: parse %s: %w", name, err)
	}
	return nil
}

// SkillGroup is a category of skills in first-seen order.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// GroupSkills groups skills by category, keeping categories in the order they first appear.
func GroupSkills(skills []Skill) []SkillGroup {
	var groups []SkillGroup
	index := map[string]int{}
	for _, s := range skills {
		cat := firstNonEmpty(s.Category, "other")
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, SkillGroup{Category: cat})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", v)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// htmlOrEmpty keeps the zero value for projects without a long description.
func htmlOrEmpty(s string) template.HTML {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return template.HTML(s)
}
