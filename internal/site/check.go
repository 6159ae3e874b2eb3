package site

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/nathanjohnson320/portfolio/internal/icon"
	"github.com/nathanjohnson320/portfolio/internal/model"
	"github.com/nathanjohnson320/portfolio/internal/page"
)

// Check validates every page and logs each failure. Beyond the record rules
// it makes sure social icons have a glyph in icons and that root-relative
// record links point at one of pages. The returned error joins all failures.
func Check(pages []page.Page, icons *icon.Set, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if icons == nil {
		icons = icon.Default()
	}

	routes := make(map[string]bool, len(pages))
	for _, p := range pages {
		routes[p.Route] = true
	}

	seen := make(map[string]bool, len(pages))
	var errs []error
	for _, p := range pages {
		if seen[p.Route] {
			errs = append(errs, fmt.Errorf("page %s: duplicate route", p.Route))
			log.Error("duplicate route", zap.String("route", p.Route))
			continue
		}
		seen[p.Route] = true

		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("page %s: %w", p.Route, err))
			log.Error("invalid page content", zap.String("route", p.Route), zap.Error(err))
			continue
		}
		if err := checkRecords(p.Records(), icons, routes); err != nil {
			errs = append(errs, fmt.Errorf("page %s: %w", p.Route, err))
			log.Error("broken page record", zap.String("route", p.Route), zap.Error(err))
			continue
		}
		log.Debug("page ok", zap.String("route", p.Route))
	}
	return errors.Join(errs...)
}

func checkRecords(records []model.ContentRecord, icons *icon.Set, routes map[string]bool) error {
	var errs []error
	for _, r := range records {
		if e, ok := r.(model.SocialEntry); ok && !icons.Has(e.Icon) {
			errs = append(errs, fmt.Errorf("record %q: icon %q has no glyph", r.Heading(), e.Icon))
		}
		if link := r.Link(); isPageLink(link) && !routes[page.CleanRoute(link)] {
			errs = append(errs, fmt.Errorf("record %q: link %s matches no page", r.Heading(), link))
		}
	}
	return errors.Join(errs...)
}

// isPageLink reports whether link is a root-relative route rather than an
// external URL or a file such as /resume.pdf.
func isPageLink(link string) bool {
	if !strings.HasPrefix(link, "/") || strings.HasPrefix(link, "//") {
		return false
	}
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	return path.Ext(link) == ""
}
