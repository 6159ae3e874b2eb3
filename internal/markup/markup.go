// Package markup turns the Markdown bodies of content records into HTML
// nodes that components can attach to their trees.
package markup

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Renderer converts a rich-text body into detached HTML nodes.
type Renderer interface {
	Render(src string) []*html.Node
}

// Markdown renders GitHub-flavoured Markdown and sanitizes the result.
// It is safe for concurrent use.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New returns the Markdown renderer used for every page body.
func New() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render never fails: when conversion or parsing breaks, the source is
// returned as a single text node.
func (m *Markdown) Render(src string) []*html.Node {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return []*html.Node{textNode(src)}
	}
	clean := m.policy.SanitizeReader(&buf)

	nodes, err := html.ParseFragment(clean, &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Div.String(),
		DataAtom: atom.Div,
	})
	if err != nil {
		return []*html.Node{textNode(src)}
	}
	return trimWhitespace(nodes)
}

// Plain renders bodies as escaped text without any Markdown processing.
type Plain struct{}

func (Plain) Render(src string) []*html.Node {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}
	p := &html.Node{Type: html.ElementNode, Data: atom.P.String(), DataAtom: atom.P}
	p.AppendChild(textNode(src))
	return []*html.Node{p}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// trimWhitespace drops the top-level newlines goldmark writes between blocks.
func trimWhitespace(nodes []*html.Node) []*html.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}
