// Package icon resolves icon references to glyphs. Components only emit a
// <use> pointing into the sprite this package writes.
package icon

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nathanjohnson320/portfolio/internal/model"
)

// SpritePath is the site path the build writes the sprite to.
const SpritePath = "/icons.svg"

// Glyph is the vector data for one icon on a 24x24 grid.
type Glyph struct {
	Paths    []string
	FillRule string
}

// Set maps references to glyphs.
type Set struct {
	spritePath string
	glyphs     map[model.IconRef]Glyph
}

// NewSet returns a set whose sprite lives at spritePath.
func NewSet(spritePath string, glyphs map[model.IconRef]Glyph) *Set {
	return &Set{spritePath: spritePath, glyphs: glyphs}
}

// Default returns the social icons used across the site.
func Default() *Set {
	return NewSet(SpritePath, map[model.IconRef]Glyph{
		model.IconGitHub:    github,
		model.IconInstagram: instagram,
		model.IconLinkedIn:  linkedin,
		model.IconX:         x,
		model.IconMail:      mail,
	})
}

// Href returns the fragment URL of ref inside the sprite. Unknown references
// still get a URL; they just draw nothing.
func (s *Set) Href(ref model.IconRef) string {
	return s.spritePath + "#" + string(ref)
}

// Has reports whether ref has a glyph.
func (s *Set) Has(ref model.IconRef) bool {
	_, ok := s.glyphs[ref]
	return ok
}

// WriteSprite writes an SVG document with one <symbol> per glyph, ordered by
// reference name.
func (s *Set) WriteSprite(w io.Writer) error {
	refs := make([]string, 0, len(s.glyphs))
	for ref := range s.glyphs {
		refs = append(refs, string(ref))
	}
	sort.Strings(refs)

	root := svgNode(atom.Svg, "svg",
		html.Attribute{Key: "xmlns", Val: "http://www.w3.org/2000/svg"},
	)
	for _, ref := range refs {
		g := s.glyphs[model.IconRef(ref)]
		sym := svgNode(0, "symbol",
			html.Attribute{Key: "id", Val: ref},
			html.Attribute{Key: "viewBox", Val: "0 0 24 24"},
		)
		for _, d := range g.Paths {
			attrs := []html.Attribute{{Key: "d", Val: d}}
			if g.FillRule != "" {
				attrs = append(attrs, html.Attribute{Key: "fill-rule", Val: g.FillRule})
			}
			sym.AppendChild(svgNode(0, "path", attrs...))
		}
		root.AppendChild(sym)
	}

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("render icon sprite: %w", err)
	}
	return nil
}

func svgNode(a atom.Atom, name string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		Data:      name,
		DataAtom:  a,
		Namespace: "svg",
		Attr:      attrs,
	}
}
