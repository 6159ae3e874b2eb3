// Package component holds the presentational building blocks of every page.
//
// Components are plain functions from typed props to a fresh *html.Node
// subtree. They never fail and never validate content; records are checked
// once with model.Validate before a site is built.
package component

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// appendChildren attaches children in order, skipping nils.
func appendChildren(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		parent.AppendChild(c)
	}
	return parent
}

// Classes merges a component's default class tokens with caller extensions.
// Tokens keep their first position; duplicates and blanks are dropped.
func Classes(defaults []string, extra ...string) string {
	seen := make(map[string]bool, len(defaults)+len(extra))
	out := make([]string, 0, len(defaults)+len(extra))
	for _, group := range [][]string{defaults, extra} {
		for _, tok := range group {
			for _, f := range strings.Fields(tok) {
				if seen[f] {
					continue
				}
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return strings.Join(out, " ")
}

// Slug turns a heading into an id: lower case letters and digits joined by
// single dashes.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// Box is a bare <div> used by page assemblers for grid and column wrappers.
func Box(class []string, children ...*html.Node) *html.Node {
	div := element(atom.Div)
	if c := Classes(class); c != "" {
		div.Attr = append(div.Attr, attr("class", c))
	}
	return appendChildren(div, children...)
}

// Headline is the page-level <h1>.
func Headline(title string, class ...string) *html.Node {
	h1 := element(atom.H1, attr("class", Classes(headlineClasses, class...)))
	h1.AppendChild(text(title))
	return h1
}
