package model

import (
	"errors"
	"fmt"
	"strings"
)

// PageMetadata is handed to the site shell once per page and ends up in the
// document head.
type PageMetadata struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// ThemeMode selects the light or dark palette for a render.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

var ErrUnknownTheme = errors.New("unknown theme mode")

// ParseThemeMode accepts "light" or "dark" in any case. An empty string means
// light.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ThemeLight):
		return ThemeLight, nil
	case string(ThemeDark):
		return ThemeDark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// IsDark reports whether m is the dark theme.
func (m ThemeMode) IsDark() bool { return m == ThemeDark }
