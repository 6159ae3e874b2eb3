package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHref(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"https://github.com/nathanjohnson320", true},
		{"http://example.com/a?b=c", true},
		{"mailto:nate@paintbynate.art", true},
		{"/uses/", true},
		{"/", true},
		{"", false},
		{"github.com/nathanjohnson320", false},
		{"https://", false},
		{"mailto:", false},
		{"javascript:alert(1)", false},
		{"//evil.example.com", false},
		{" https://example.com", false},
		{`/\evil.example.com`, false},
		{`/uses\`, false},
		{"/a b", false},
		{"/uses/\t", false},
		{"https://example.com/a b", false},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHref(tt.href))
		})
	}
}

func TestValidateToolEntry(t *testing.T) {
	require.NoError(t, Validate(ToolEntry{Title: "Emacs", Body: "Yes."}))
	require.NoError(t, Validate(ToolEntry{Title: "Lucid", Href: "https://lucid.co", Body: "Diagrams."}))

	err := Validate(ToolEntry{Href: "not a url"})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "ToolEntry.title", verr.Fields[0].Field)
	assert.Equal(t, "required", verr.Fields[0].Rule)
	assert.Equal(t, "ToolEntry.href", verr.Fields[1].Field)
	assert.Equal(t, "href", verr.Fields[1].Rule)
}

func TestValidateSocialEntry(t *testing.T) {
	ok := SocialEntry{Href: "mailto:nate@paintbynate.art", Label: "nate@paintbynate.art", Icon: IconMail, Emphasis: true}
	require.NoError(t, Validate(ok))

	bad := SocialEntry{Href: "https://x.com/PaintByNate", Label: "Follow on X", Icon: "myspace"}
	err := Validate(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SocialEntry.icon")
	assert.Contains(t, err.Error(), "iconref")
}

func TestValidateSectionDivesIntoItems(t *testing.T) {
	s := Section{
		Heading: "Workstation",
		Items: []ToolEntry{
			{Title: "Keyboard", Body: "Split."},
			{Title: "", Body: "Nameless."},
		},
	}
	err := Validate(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Section.items[1].title")
}

func TestValidateSliceAndPointer(t *testing.T) {
	entries := []SocialEntry{
		{Href: "https://github.com/x", Label: "GitHub", Icon: IconGitHub},
		{Href: "ftp://nope", Label: "FTP", Icon: IconGitHub},
	}
	err := Validate(entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[1]")
	assert.NotContains(t, err.Error(), "[0]")

	var nilMeta *PageMetadata
	assert.NoError(t, Validate(nilMeta))
	assert.NoError(t, Validate(&PageMetadata{Title: "Uses", Description: "Tools."}))
}

func TestValidateAll(t *testing.T) {
	require.NoError(t, ValidateAll(PageMetadata{Title: "About", Description: "Me."}, Section{Heading: "Design"}))

	err := ValidateAll(PageMetadata{}, ToolEntry{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PageMetadata.title")
	assert.Contains(t, err.Error(), "PageMetadata.description")
	assert.Contains(t, err.Error(), "ToolEntry.title")
}

func TestContentRecordVariants(t *testing.T) {
	records := []ContentRecord{
		SocialEntry{Href: "https://github.com/x", Label: "Follow on GitHub", Icon: IconGitHub},
		ToolEntry{Title: "Copilot", Body: "Pairs."},
	}
	assert.Equal(t, "Follow on GitHub", records[0].Heading())
	assert.Equal(t, "https://github.com/x", records[0].Link())
	assert.Equal(t, "Copilot", records[1].Heading())
	assert.Empty(t, records[1].Link())
}
