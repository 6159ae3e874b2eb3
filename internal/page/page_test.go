package page

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/nathanjohnson320/portfolio/internal/model"
)

func renderBody(t *testing.T, p Page, opts RenderOptions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, p.Body(opts)))
	return buf.String()
}

func query(t *testing.T, p Page, opts RenderOptions) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(renderBody(t, p, opts)))
	require.NoError(t, err)
	return doc
}

func TestAllPagesAreValid(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Route, func(t *testing.T) {
			assert.NoError(t, p.Validate())
		})
	}
}

func TestAllRoutesAreClean(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range All() {
		assert.Equal(t, CleanRoute(p.Route), p.Route)
		assert.False(t, seen[p.Route], "duplicate route %s", p.Route)
		seen[p.Route] = true
	}
}

func TestValidateReportsAuthoringMistakes(t *testing.T) {
	p := Uses()
	c := p.Content.(UsesContent)
	c.Sections[0].Items[1].Href = "keyboard.io"
	p.Content = c

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UsesContent.sections[0].items[1].href")
}

func TestAssemblersDoNotShareRecords(t *testing.T) {
	a := Uses().Content.(UsesContent)
	b := Uses().Content.(UsesContent)
	a.Sections[0].Items[0].Title = "changed"
	assert.Equal(t, `14" Starlabs Starbook`, b.Sections[0].Items[0].Title)
}

func TestCleanRoute(t *testing.T) {
	for in, want := range map[string]string{
		"":          "/",
		"/":         "/",
		"uses":      "/uses/",
		"/uses":     "/uses/",
		"/uses/":    "/uses/",
		" about/ ":  "/about/",
		"/a/../b//": "/b/",
	} {
		assert.Equal(t, want, CleanRoute(in), in)
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("uses")
	require.True(t, ok)
	assert.Equal(t, "Uses", p.Meta.Title)

	missing, ok := Lookup("/articles/")
	assert.False(t, ok)
	assert.Nil(t, missing.Body(RenderOptions{}))
	assert.Empty(t, missing.Records())
}

func TestRecordsFollowDisplayOrder(t *testing.T) {
	about := About().Records()
	require.Len(t, about, 5)
	assert.Equal(t, "Follow on Instagram", about[0].Heading())
	assert.Equal(t, "mailto:nate@paintbynate.art", about[4].Link())

	uses := Uses().Records()
	require.Len(t, uses, 7)
	assert.Equal(t, `14" Starlabs Starbook`, uses[0].Heading())
	assert.Equal(t, "Emacs", uses[3].Heading())
	assert.Equal(t, "Lucid", uses[6].Heading())
}

func TestAboutPage(t *testing.T) {
	p := About()
	assert.Equal(t, "About", p.Meta.Title)

	doc := query(t, p, RenderOptions{})
	assert.Contains(t, doc.Find("h1").Text(), "I'm Nathan Johnson.")
	assert.Equal(t, 4, doc.Find("h1 + div > p").Length())

	img := doc.Find("img")
	src, _ := img.Attr("src")
	assert.Equal(t, "/images/portrait.jpg", src)

	items := doc.Find("ul[role=list] > li")
	require.Equal(t, 5, items.Length())
	last := items.Last()
	href, _ := last.Find("a").Attr("href")
	assert.Equal(t, "mailto:nate@paintbynate.art", href)
	assert.True(t, last.HasClass("border-t"))
	assert.Equal(t, 1, doc.Find("li[data-emphasis]").Length())

	use, _ := items.First().Find("svg use").Attr("href")
	assert.Equal(t, "/icons.svg#instagram", use)
}

func TestUsesPage(t *testing.T) {
	doc := query(t, Uses(), RenderOptions{})

	assert.Equal(t, "Tools that I use to build software, stay productive, or just enjoy in general.", doc.Find("header h1").Text())

	var headings []string
	var counts []int
	doc.Find("section").Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, s.Find("h2").Text())
		counts = append(counts, s.Find("ul > li").Length())
	})
	assert.Equal(t, []string{"Workstation", "Development tools", "Design"}, headings)
	assert.Equal(t, []int{3, 3, 1}, counts)
	assert.Equal(t, 0, doc.Find("section h3 a").Length())
	assert.Equal(t, "Lucid", doc.Find("section[aria-labelledby=design] h3").Text())
}

func TestThemeIsThreadedThrough(t *testing.T) {
	for _, p := range All() {
		light := query(t, p, RenderOptions{})
		dark := query(t, p, RenderOptions{Theme: model.ThemeDark})

		theme, _ := light.Find("body > div").Attr("data-theme")
		assert.Equal(t, "light", theme, p.Route)
		theme, _ = dark.Find("body > div").Attr("data-theme")
		assert.Equal(t, "dark", theme, p.Route)
	}
}

func TestBodyIsIdempotent(t *testing.T) {
	for _, p := range All() {
		opts := RenderOptions{Theme: model.ThemeDark}
		fresh, ok := Lookup(p.Route)
		require.True(t, ok)
		assert.Equal(t, renderBody(t, p, opts), renderBody(t, p, opts), p.Route)
		assert.Equal(t, renderBody(t, p, opts), renderBody(t, fresh, opts), p.Route)
	}
}
