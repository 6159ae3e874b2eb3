package page

import (
	"golang.org/x/net/html"

	"github.com/nathanjohnson320/portfolio/internal/component"
	"github.com/nathanjohnson320/portfolio/internal/model"
)

// AboutContent is the record data behind the about page.
type AboutContent struct {
	Headline string              `yaml:"headline" validate:"required"`
	Bio      []string            `yaml:"bio" validate:"min=1,dive,required"`
	Portrait model.ImageRef      `yaml:"portrait"`
	Social   []model.SocialEntry `yaml:"social" validate:"dive"`
}

// Records returns the social entries.
func (c AboutContent) Records() []model.ContentRecord {
	out := make([]model.ContentRecord, 0, len(c.Social))
	for _, e := range c.Social {
		out = append(out, e)
	}
	return out
}

// About is the biography page.
func About() Page {
	c := AboutContent{
		Headline: "I'm Nathan Johnson. Currently working with STORD building out the cloud supply chain and oil painting on my YouTube channel in my free time.",
		Bio: []string{
			"I've been writing software for the last 12 years, and painting for the last 4. I live in Pineville with my cat KitKat right near downtown.",
			"My career in software has been focused on building web applications and APIs, working with a variety of technologies including everything from backend frameworks like Laravel, frontend libraries like React, data science transformers in Python for Stitch, and cloud services like AWS. I've even managed teams of up to 8 developers, and have started a couple of companies along the way (Tomahawk + Venu now RIP).",
			"In 2020 I decided to learn oil painting inspired by the legendary Bob Ross, and have been sharing my journey on YouTube ever since. I focus on oil painting, and have a passion for landscapes and seascapes. I'm currently working on a series of paintings inspired by the Blue Ridge Mountains and hope to have them up in a gallery soon.",
			"Today I'm working with STORD building out the cloud supply chain and oil painting on my YouTube channel in my free time. I'm always looking for new opportunities to learn and grow, so if you have any ideas or projects you'd like to collaborate on, please reach out!",
		},
		Portrait: model.ImageRef{
			Src:    "/images/portrait.jpg",
			Alt:    "",
			Sizes:  "(min-width: 1024px) 32rem, 20rem",
			Aspect: "aspect-square",
		},
		Social: []model.SocialEntry{
			{Href: "https://www.instagram.com/paint.by.nate/", Label: "Follow on Instagram", Icon: model.IconInstagram},
			{Href: "https://github.com/nathanjohnson320", Label: "Follow on GitHub", Icon: model.IconGitHub},
			{Href: "https://www.linkedin.com/in/%F0%9F%8D%BB-nathaniel-j-b8659562/", Label: "Follow on LinkedIn", Icon: model.IconLinkedIn},
			{Href: "https://x.com/PaintByNate", Label: "Follow on X", Icon: model.IconX},
			{Href: "mailto:nate@paintbynate.art", Label: "nate@paintbynate.art", Icon: model.IconMail, Emphasis: true},
		},
	}

	return Page{
		Route: "/about/",
		Meta: model.PageMetadata{
			Title:       "About",
			Description: "I'm Nathan Johnson. I live in Tallinn Estonia, where I've been writing software and painting for the last 12 years.",
		},
		Content: c,
		body:    c.render,
	}
}

func (c AboutContent) render(o RenderOptions) *html.Node {
	grid := component.Box(
		[]string{"grid", "grid-cols-1", "gap-y-16", "lg:grid-cols-2", "lg:grid-rows-[auto_1fr]", "lg:gap-y-12"},
		component.Box([]string{"lg:pl-20"}, component.Portrait(c.Portrait)),
		component.Box([]string{"lg:order-first", "lg:row-span-2"},
			component.Headline(c.Headline),
			component.Prose(c.Bio, o.Markup),
		),
		component.Box([]string{"lg:pl-20"}, component.SocialList(c.Social, o.Icons)),
	)
	return component.Container(component.ContainerProps{
		Theme: o.Theme,
		Class: []string{"mt-16", "sm:mt-32"},
	}, grid)
}
