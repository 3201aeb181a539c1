package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"plain", "Hello world", 0, "Hello world"},
		{"markup", "<p>Hello <strong>there</strong></p>\n<ul><li>one</li></ul>", 0, "Hello there one"},
		{"entities", "Fish &amp; chips", 0, "Fish & chips"},
		{"script dropped", "a<script>alert(1)</script>b", 0, "a b"},
		{"truncated", "one two three four", 12, "one two…"},
		{"empty", "", 10, ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, PlainText(tc.in, tc.max))
		})
	}
}

func TestPlainTextRespectsLimit(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 100)
	out := PlainText(long, maxDescription)
	require.LessOrEqual(t, utf8.RuneCountInString(out), maxDescription)
	require.True(t, strings.HasSuffix(out, "…"))
}

func TestSitePage(t *testing.T) {
	t.Parallel()

	site := Site{Name: "Pratham Solanki", BaseURL: "https://example.dev", Image: "/assets/img/me.jpg"}
	m := site.Page("About", "<p>About me</p>", "/about", "")

	require.Equal(t, "About | Pratham Solanki", m.Title)
	require.Equal(t, "About me", m.Description)
	require.Equal(t, "https://example.dev/about", m.Canonical)
	require.Equal(t, "website", m.OG.Type)
	require.Equal(t, "https://example.dev/assets/img/me.jpg", m.OG.Image)
	require.Equal(t, "summary_large_image", m.Twitter.Card)

	bare := Site{Name: "Pratham Solanki"}.Page("", "x", "/", "profile")
	require.Equal(t, "Pratham Solanki", bare.Title)
	require.Empty(t, bare.Canonical)
	require.Empty(t, bare.OG.Image)
	require.Equal(t, "summary", bare.Twitter.Card)
}

func TestSiteAbsolute(t *testing.T) {
	t.Parallel()

	site := Site{BaseURL: "https://example.dev"}
	require.Equal(t, "https://example.dev/", site.Absolute("/"))
	require.Equal(t, "https://example.dev/projects", site.Absolute("projects"))
	require.Equal(t, "https://cdn.example/x.png", site.Absolute("https://cdn.example/x.png"))
	require.Empty(t, Site{}.Absolute("/about"))
	require.Equal(t, "https://cdn.example/x.png", Site{}.Absolute("https://cdn.example/x.png"))
}

func TestJSONLDDocuments(t *testing.T) {
	t.Parallel()

	m := Meta{}.WithJSONLD(
		Person("Pratham Solanki", "Data Scientist", "https://example.dev/", "", "https://github.com/x", ""),
		BreadcrumbList([]BreadcrumbItem{{Name: "Projects", Item: "https://example.dev/projects"}, {Name: "NLP"}}),
		CreativeWork("NLP", "desc", "", "", "Pratham Solanki", 2023, []string{"Python"}),
	)
	require.Len(t, m.JSONLD, 3)

	var person map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[0]), &person))
	require.Equal(t, "Person", person["@type"])
	require.Equal(t, []any{"https://github.com/x"}, person["sameAs"])
	require.NotContains(t, person, "image")

	var crumbs map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[1]), &crumbs))
	items := crumbs["itemListElement"].([]any)
	require.Len(t, items, 2)
	require.Equal(t, float64(2), items[1].(map[string]any)["position"])
	require.NotContains(t, items[1].(map[string]any), "item")

	var work map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[2]), &work))
	require.Equal(t, float64(2023), work["dateCreated"])
}

func TestJSONFailure(t *testing.T) {
	t.Parallel()

	require.Empty(t, JSON(map[string]any{"bad": make(chan int)}))
	require.Len(t, Meta{}.WithJSONLD(map[string]any{"bad": func() {}}).JSONLD, 0)
}
