// Package shell wraps rendered page bodies in the site document: head tags
// from the registered page metadata, navigation, and the base layout.
package shell

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"path"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathanjohnson320/portfolio/internal/model"
)

const baseLayout = "base.html"

//go:embed layouts
var layoutFS embed.FS

var ErrUnregistered = errors.New("page metadata not registered")

// Site is the site-wide data every document sees.
type Site struct {
	Title   string
	BaseURL string
}

// Head is what ends up in <head>.
type Head struct {
	Title       string
	Description string
	Canonical   string
}

// NavItem is one entry in the top navigation.
type NavItem struct {
	Label   string
	Href    string
	Current bool
}

type document struct {
	Site  Site
	Head  Head
	Nav   []NavItem
	Theme model.ThemeMode
	Dark  bool
	Body  template.HTML
}

// Shell renders full documents. Register must be called for a route before
// Render; registering again replaces the metadata.
type Shell struct {
	site      Site
	templates *template.Template

	mu     sync.RWMutex
	meta   map[string]model.PageMetadata
	routes []string
}

// New parses the embedded layouts: base.html first, then the partials.
func New(site Site) (*Shell, error) {
	templates, err := template.ParseFS(layoutFS, "layouts/"+baseLayout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", baseLayout, err)
	}
	templates, err = templates.ParseFS(layoutFS, "layouts/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout partials: %w", err)
	}
	return &Shell{
		site:      site,
		templates: templates,
		meta:      make(map[string]model.PageMetadata),
	}, nil
}

// Register records the metadata for route. Routes appear in the navigation
// in first-registration order.
func (s *Shell) Register(route string, meta model.PageMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meta[route]; !ok {
		s.routes = append(s.routes, route)
	}
	s.meta[route] = meta
}

// Metadata returns the registered metadata for route.
func (s *Shell) Metadata(route string) (model.PageMetadata, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.meta[route]
	return m, ok
}

// Nav builds the navigation with current marked.
func (s *Shell) Nav(current string) []NavItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]NavItem, 0, len(s.routes))
	for _, r := range s.routes {
		items = append(items, NavItem{
			Label:   NavLabel(r),
			Href:    r,
			Current: r == current,
		})
	}
	return items
}

// NavLabel derives a label from the last segment of a route, e.g.
// "/side-projects/" becomes "Side Projects".
func NavLabel(route string) string {
	slug := path.Base(strings.Trim(route, "/"))
	if slug == "." || slug == "" {
		return "Home"
	}
	slug = strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(slug)
}

// Head returns the head tags for a registered route.
func (s *Shell) Head(route string) (Head, error) {
	meta, ok := s.Metadata(route)
	if !ok {
		return Head{}, fmt.Errorf("%w: %s", ErrUnregistered, route)
	}
	title := meta.Title
	if s.site.Title != "" {
		title = meta.Title + " - " + s.site.Title
	}
	h := Head{Title: title, Description: meta.Description}
	if s.site.BaseURL != "" {
		h.Canonical = strings.TrimSuffix(s.site.BaseURL, "/") + route
	}
	return h, nil
}

// Render writes the full document for route around body.
func (s *Shell) Render(w io.Writer, route string, body *html.Node, theme model.ThemeMode) error {
	head, err := s.Head(route)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, body); err != nil {
		return fmt.Errorf("failed to render body for %s: %w", route, err)
	}

	doc := document{
		Site:  s.site,
		Head:  head,
		Nav:   s.Nav(route),
		Theme: theme,
		Dark:  theme.IsDark(),
		// The body was built as a node tree and serialized with escaping.
		Body: template.HTML(buf.String()),
	}
	if err := s.templates.ExecuteTemplate(w, baseLayout, doc); err != nil {
		return fmt.Errorf("failed to execute layout for %s: %w", route, err)
	}
	return nil
}
