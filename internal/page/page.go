// Package page assembles the site's pages from fixed content.
package page

import (
	"path"
	"strings"

	"golang.org/x/net/html"

	"github.com/nathanjohnson320/portfolio/internal/component"
	"github.com/nathanjohnson320/portfolio/internal/icon"
	"github.com/nathanjohnson320/portfolio/internal/markup"
	"github.com/nathanjohnson320/portfolio/internal/model"
)

// RenderOptions is everything a render depends on besides the page content.
// Zero fields fall back to the site defaults.
type RenderOptions struct {
	Theme  model.ThemeMode
	Icons  component.IconResolver
	Markup markup.Renderer
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Theme == "" {
		o.Theme = model.ThemeLight
	}
	if o.Icons == nil {
		o.Icons = icon.Default()
	}
	if o.Markup == nil {
		o.Markup = markup.New()
	}
	return o
}

// Page is one fully composed page.
type Page struct {
	Route string
	Meta  model.PageMetadata
	// Content is the page's record data, kept for validation and inspection.
	Content any

	body func(RenderOptions) *html.Node
}

// Body renders the page tree. Each call returns a new tree. The zero Page,
// as returned by a failed Lookup, renders nothing.
func (p Page) Body(opts RenderOptions) *html.Node {
	if p.body == nil {
		return nil
	}
	return p.body(opts.withDefaults())
}

// Records lists the content records the page renders, in display order.
func (p Page) Records() []model.ContentRecord {
	c, ok := p.Content.(interface{ Records() []model.ContentRecord })
	if !ok {
		return nil
	}
	return c.Records()
}

// Validate checks the page metadata and every record on the page.
func (p Page) Validate() error {
	return model.ValidateAll(p.Meta, p.Content)
}

// All returns every page in navigation order.
func All() []Page {
	return []Page{About(), Uses()}
}

// Lookup finds a page by route. Routes are compared after CleanRoute.
func Lookup(route string) (Page, bool) {
	route = CleanRoute(route)
	for _, p := range All() {
		if p.Route == route {
			return p, true
		}
	}
	return Page{}, false
}

// CleanRoute normalizes a route to a cleaned path with leading and trailing
// slashes, e.g. "uses" and "/uses" both become "/uses/".
func CleanRoute(route string) string {
	route = path.Clean("/" + strings.TrimSpace(route))
	if route == "/" {
		return route
	}
	return route + "/"
}
