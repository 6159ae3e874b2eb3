package component

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nathanjohnson320/portfolio/internal/model"
)

// IconResolver maps an icon reference to the URL of its glyph.
type IconResolver interface {
	Href(ref model.IconRef) string
}

// SocialLink renders one entry as a list item holding a single link with one
// icon and one label. Href is written verbatim. Emphasised entries get the
// divider treatment and a data-emphasis marker.
func SocialLink(e model.SocialEntry, icons IconResolver, class ...string) *html.Node {
	classes := append([]string{}, socialItemClasses...)
	if e.Emphasis {
		classes = append(classes, socialEmphasisClasses...)
	}
	li := element(atom.Li, attr("class", Classes(classes, class...)))
	if e.Emphasis {
		li.Attr = append(li.Attr, attr("data-emphasis", "true"))
	}

	link := element(atom.A,
		attr("href", e.Href),
		attr("class", Classes(socialLinkClasses)),
	)

	svg := &html.Node{
		Type:      html.ElementNode,
		Data:      atom.Svg.String(),
		DataAtom:  atom.Svg,
		Namespace: "svg",
		Attr: []html.Attribute{
			attr("class", Classes(socialIconClasses)),
			attr("aria-hidden", "true"),
		},
	}
	svg.AppendChild(&html.Node{
		Type:      html.ElementNode,
		Data:      "use",
		Namespace: "svg",
		Attr:      []html.Attribute{attr("href", icons.Href(e.Icon))},
	})

	label := element(atom.Span, attr("class", Classes(socialLabelClasses)))
	label.AppendChild(text(e.Label))

	link.AppendChild(svg)
	link.AppendChild(label)
	li.AppendChild(link)
	return li
}

// SocialList renders entries as a list in the given order. Every entry after
// the first gets standard spacing unless it is emphasised, which carries its
// own.
func SocialList(entries []model.SocialEntry, icons IconResolver, class ...string) *html.Node {
	ul := element(atom.Ul, attr("role", "list"))
	if c := Classes(nil, class...); c != "" {
		ul.Attr = append(ul.Attr, attr("class", c))
	}
	for i, e := range entries {
		var spacing []string
		if i > 0 && !e.Emphasis {
			spacing = socialSpacingClasses
		}
		ul.AppendChild(SocialLink(e, icons, spacing...))
	}
	return ul
}
