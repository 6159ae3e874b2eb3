package model

// IconRef names a glyph. The icon package turns it into something drawable;
// this package only carries the name around.
type IconRef string

const (
	IconGitHub    IconRef = "github"
	IconInstagram IconRef = "instagram"
	IconLinkedIn  IconRef = "linkedin"
	IconX         IconRef = "x"
	IconMail      IconRef = "mail"
)

// Icons lists every IconRef a record may use.
func Icons() []IconRef {
	return []IconRef{IconGitHub, IconInstagram, IconLinkedIn, IconX, IconMail}
}

// ContentRecord is one unit rendered by a list component: a SocialEntry or a
// ToolEntry. The set of implementations is closed.
type ContentRecord interface {
	// Heading is the label or title shown for the record.
	Heading() string
	// Link is the navigation target, or "" when the record is not linked.
	Link() string
	contentRecord()
}

// SocialEntry is one identity/contact link shown as icon + label.
type SocialEntry struct {
	Href  string  `yaml:"href" validate:"required,href"`
	Label string  `yaml:"label" validate:"required"`
	Icon  IconRef `yaml:"icon" validate:"required,iconref"`
	// Emphasis marks an entry that is visually set apart from the others,
	// such as a trailing email link under a divider.
	Emphasis bool `yaml:"emphasis,omitempty"`
}

func (e SocialEntry) Heading() string { return e.Label }
func (e SocialEntry) Link() string    { return e.Href }
func (SocialEntry) contentRecord()    {}

// ToolEntry is one item on the uses page. Body is Markdown.
type ToolEntry struct {
	Title string `yaml:"title" validate:"required"`
	Href  string `yaml:"href,omitempty" validate:"omitempty,href"`
	Body  string `yaml:"body"`
}

func (e ToolEntry) Heading() string { return e.Title }
func (e ToolEntry) Link() string    { return e.Href }
func (ToolEntry) contentRecord()    {}

// Section is a titled, ordered group of tools. Items render in slice order.
type Section struct {
	Heading string      `yaml:"heading" validate:"required"`
	Items   []ToolEntry `yaml:"items" validate:"dive"`
}

// ImageRef points at an image asset plus the layout hints the browser needs
// to pick and size it.
type ImageRef struct {
	Src   string `yaml:"src" validate:"required,href"`
	Alt   string `yaml:"alt"`
	Sizes string `yaml:"sizes,omitempty"`
	// Aspect is a styling token such as "aspect-square"; it is forwarded as is.
	Aspect string `yaml:"aspect,omitempty"`
}
