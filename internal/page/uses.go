package page

import (
	"golang.org/x/net/html"

	"github.com/nathanjohnson320/portfolio/internal/component"
	"github.com/nathanjohnson320/portfolio/internal/model"
)

// UsesContent is the record data behind the uses page.
type UsesContent struct {
	Title    string          `yaml:"title" validate:"required"`
	Intro    string          `yaml:"intro"`
	Sections []model.Section `yaml:"sections" validate:"dive"`
}

// Records returns every tool, section by section.
func (c UsesContent) Records() []model.ContentRecord {
	var out []model.ContentRecord
	for _, s := range c.Sections {
		for _, e := range s.Items {
			out = append(out, e)
		}
	}
	return out
}

// Uses lists the hardware and software in daily use.
func Uses() Page {
	c := UsesContent{
		Title: "Tools that I use to build software, stay productive, or just enjoy in general.",
		Intro: "I get asked a lot about the things I use to build software, stay productive, or buy to fool myself into thinking I'm being productive when I'm really just procrastinating. Here's a big list of all of my favorite stuff.",
		Sections: []model.Section{
			{
				Heading: "Workstation",
				Items: []model.ToolEntry{
					{
						Title: `14" Starlabs Starbook`,
						Body:  "I've been using this as my main machine for a while now and it's been great. It's not the most powerful machine in the world but it's more than enough for my needs. The keyboard is great and the battery life is amazing. Also runs elementary OS which is a great Linux distro.",
					},
					{
						Title: "Keyboard.io Model 100 Keyboard",
						Body:  "This is the best keyboard I've ever used. It's a split keyboard with mechanical switches and a ton of programmable keys. It's also shaped like a butterfly which is cool.",
					},
					{
						Title: "Kensington Expert Mouse Trackball",
						Body:  "I've been using a trackball for years and I'm never going back. I love the Expert Mouse because it has a scroll ring which is super useful.",
					},
				},
			},
			{
				Heading: "Development tools",
				Items: []model.ToolEntry{
					{
						Title: "Emacs",
						Body:  "Yeah I know, I'm one of those people. I've been using Emacs for years and I don't see myself switching anytime soon. I've got it configured just how I like it and I'm super productive with it. And yes I switch to VS Code when I need to pair program with someone.",
					},
					{
						Title: "SQLTools",
						Body:  "Great VS Code extension for working with databases. I use it a lot and it's saved me a ton of time.",
					},
					{
						Title: "Copilot",
						Body:  "Honestly one of the best tools I've ever used. It's like having a pair programmer that never gets tired and 90% has the perfect code snippet. 60% of the time it works every time.",
					},
				},
			},
			{
				Heading: "Design",
				Items: []model.ToolEntry{
					{
						Title: "Lucid",
						Body:  "Lucid is a great tool for creating diagrams and flowcharts. I use it pretty often for database ERDs and system diagrams. It's simple and fast and easy to embed in corporate tools like Confluence.",
					},
				},
			},
		},
	}

	return Page{
		Route: "/uses/",
		Meta: model.PageMetadata{
			Title:       "Uses",
			Description: "Tools that I use to build software, stay productive, or just enjoy in general.",
		},
		Content: c,
		body:    c.render,
	}
}

func (c UsesContent) render(o RenderOptions) *html.Node {
	sections := make([]*html.Node, 0, len(c.Sections))
	for _, s := range c.Sections {
		sections = append(sections, component.ToolsSection(s, o.Markup))
	}
	return component.SimpleLayout(component.SimpleLayoutProps{
		Title: c.Title,
		Intro: c.Intro,
		Theme: o.Theme,
	}, component.Box([]string{"space-y-20"}, sections...))
}
