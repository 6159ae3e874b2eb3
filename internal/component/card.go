package component

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nathanjohnson320/portfolio/internal/markup"
	"github.com/nathanjohnson320/portfolio/internal/model"
)

// CardProps configures Card. As picks the outer element and defaults to
// <div>.
type CardProps struct {
	As          atom.Atom
	Title       string
	Href        string
	Description []*html.Node
	Class       []string
}

// Card renders a title over a description. A non-empty Href turns the title
// into a link covering the whole card; otherwise the title is plain text.
func Card(p CardProps) *html.Node {
	as := p.As
	if as == 0 {
		as = atom.Div
	}
	card := element(as, attr("class", Classes(cardClasses, p.Class...)))

	title := element(atom.H3, attr("class", Classes(cardTitleClasses)))
	if p.Href != "" {
		link := element(atom.A, attr("href", p.Href))
		link.AppendChild(element(atom.Span, attr("class", Classes(cardLinkOverlayClasses))))
		label := element(atom.Span, attr("class", Classes(cardLinkLabelClasses)))
		label.AppendChild(text(p.Title))
		link.AppendChild(label)
		title.AppendChild(link)
	} else {
		title.AppendChild(text(p.Title))
	}
	card.AppendChild(title)

	desc := element(atom.Div, attr("class", Classes(cardDescriptionClasses)))
	appendChildren(desc, p.Description...)
	card.AppendChild(desc)
	return card
}

// Tool renders one ToolEntry as a list-item card.
func Tool(entry model.ToolEntry, r markup.Renderer) *html.Node {
	return Card(CardProps{
		As:          atom.Li,
		Title:       entry.Title,
		Href:        entry.Href,
		Description: r.Render(entry.Body),
	})
}

// ToolsSection renders a Section holding one Tool per item, in order.
func ToolsSection(s model.Section, r markup.Renderer, class ...string) *html.Node {
	list := element(atom.Ul, attr("role", "list"), attr("class", Classes(listClasses)))
	for _, item := range s.Items {
		list.AppendChild(Tool(item, r))
	}
	return Section(SectionProps{Title: s.Heading, Class: class}, list)
}
