package component

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nathanjohnson320/portfolio/internal/markup"
	"github.com/nathanjohnson320/portfolio/internal/model"
)

// ContainerProps configures Container.
type ContainerProps struct {
	Theme model.ThemeMode
	Class []string
}

// Container constrains page content to the site's width and gutters.
// Extension classes apply to the outermost element.
func Container(p ContainerProps, content ...*html.Node) *html.Node {
	outer := element(atom.Div, attr("class", Classes(containerOuterClasses, p.Class...)))
	if p.Theme != "" {
		outer.Attr = append(outer.Attr, attr("data-theme", string(p.Theme)))
	}
	frame := element(atom.Div, attr("class", Classes(containerFrameClasses)))
	inner := element(atom.Div, attr("class", Classes(containerInnerClasses)))
	body := appendChildren(element(atom.Div, attr("class", Classes(containerBodyClasses))), content...)

	inner.AppendChild(body)
	frame.AppendChild(inner)
	outer.AppendChild(frame)
	return outer
}

// SectionProps configures Section. ID defaults to the slug of Title.
type SectionProps struct {
	Title string
	ID    string
	Class []string
}

// Section is a titled region. Children keep their order; no children yields
// an empty body.
func Section(p SectionProps, children ...*html.Node) *html.Node {
	id := p.ID
	if id == "" {
		id = Slug(p.Title)
	}

	section := element(atom.Section,
		attr("aria-labelledby", id),
		attr("class", Classes(sectionClasses, p.Class...)),
	)
	grid := element(atom.Div, attr("class", Classes(sectionGridClasses)))
	heading := element(atom.H2, attr("id", id), attr("class", Classes(sectionHeadingClasses)))
	heading.AppendChild(text(p.Title))
	body := appendChildren(element(atom.Div, attr("class", Classes(sectionBodyClasses))), children...)

	grid.AppendChild(heading)
	grid.AppendChild(body)
	section.AppendChild(grid)
	return section
}

// SimpleLayoutProps configures SimpleLayout.
type SimpleLayoutProps struct {
	Title string
	Intro string
	Theme model.ThemeMode
	Class []string
}

// SimpleLayout is a Container with a headline and intro above the body.
func SimpleLayout(p SimpleLayoutProps, children ...*html.Node) *html.Node {
	header := element(atom.Header, attr("class", "max-w-2xl"))
	header.AppendChild(Headline(p.Title))
	if p.Intro != "" {
		intro := element(atom.P, attr("class", Classes(introClasses)))
		intro.AppendChild(text(p.Intro))
		header.AppendChild(intro)
	}

	var body *html.Node
	if len(children) > 0 {
		body = appendChildren(element(atom.Div, attr("class", "mt-16 sm:mt-20")), children...)
	}

	return Container(ContainerProps{
		Theme: p.Theme,
		Class: append([]string{"mt-16", "sm:mt-32"}, p.Class...),
	}, header, body)
}

// Portrait renders an image reference. Sizing and encoding are left to the
// browser and whatever produced the asset.
func Portrait(img model.ImageRef, class ...string) *html.Node {
	aspect := img.Aspect
	if aspect == "" {
		aspect = "aspect-square"
	}
	tag := element(atom.Img,
		attr("src", img.Src),
		attr("alt", img.Alt),
	)
	if img.Sizes != "" {
		tag.Attr = append(tag.Attr, attr("sizes", img.Sizes))
	}
	tag.Attr = append(tag.Attr, attr("class", Classes(append([]string{aspect}, portraitImageClasses...), class...)))

	frame := element(atom.Div, attr("class", Classes(portraitFrameClasses)))
	frame.AppendChild(tag)
	return frame
}

// Prose renders a stack of rich-text paragraphs.
func Prose(paragraphs []string, r markup.Renderer, class ...string) *html.Node {
	div := element(atom.Div, attr("class", Classes(proseClasses, class...)))
	for _, p := range paragraphs {
		appendChildren(div, r.Render(p)...)
	}
	return div
}
