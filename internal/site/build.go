// Package site writes the composed pages and their assets to the output
// directory.
package site

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/nathanjohnson320/portfolio/internal/config"
	"github.com/nathanjohnson320/portfolio/internal/icon"
	"github.com/nathanjohnson320/portfolio/internal/markup"
	"github.com/nathanjohnson320/portfolio/internal/page"
	"github.com/nathanjohnson320/portfolio/internal/shell"
)

// Default assets ship inside the binary; files in the configured static
// directory are copied over them.
//
//go:embed assets
var assetsFS embed.FS

// Builder renders a fixed set of pages into cfg.OutputDir.
type Builder struct {
	cfg    config.Config
	log    *zap.Logger
	pages  []page.Page
	icons  *icon.Set
	shell  *shell.Shell
	render page.RenderOptions
}

// NewBuilder prepares a build of pages. A nil logger discards output.
func NewBuilder(cfg config.Config, log *zap.Logger, pages []page.Page) (*Builder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme, err := cfg.ThemeMode()
	if err != nil {
		return nil, err
	}

	sh, err := shell.New(shell.Site{Title: cfg.SiteTitle, BaseURL: cfg.BaseURL})
	if err != nil {
		return nil, err
	}

	icons := icon.Default()
	return &Builder{
		cfg:   cfg,
		log:   log,
		pages: pages,
		icons: icons,
		shell: sh,
		render: page.RenderOptions{
			Theme:  theme,
			Icons:  icons,
			Markup: markup.New(),
		},
	}, nil
}

// Shell exposes the document shell with every page registered after Build.
func (b *Builder) Shell() *shell.Shell { return b.shell }

// Build cleans the output directory and regenerates the whole site.
func (b *Builder) Build() error {
	outputDir := b.cfg.OutputDir
	b.log.Info("starting build",
		zap.String("outputDir", outputDir),
		zap.String("baseURL", b.cfg.BaseURL),
		zap.String("siteTitle", b.cfg.SiteTitle),
		zap.String("theme", string(b.render.Theme)),
	)

	if err := Check(b.pages, b.icons, b.log); err != nil {
		return err
	}

	b.log.Debug("cleaning output directory", zap.String("dir", outputDir))
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	if err := b.copyAssets(); err != nil {
		return err
	}
	if err := b.writeSprite(); err != nil {
		return err
	}

	for _, p := range b.pages {
		b.shell.Register(p.Route, p.Meta)
	}

	home := page.CleanRoute(b.cfg.HomeRoute)
	homeWritten := false
	for _, p := range b.pages {
		if err := b.writePage(p, filepath.Join(outputDir, filepath.FromSlash(p.Route), "index.html")); err != nil {
			return err
		}
		if p.Route == home {
			if err := b.writePage(p, filepath.Join(outputDir, "index.html")); err != nil {
				return err
			}
			homeWritten = true
		}
	}
	if !homeWritten {
		b.log.Warn("home route matches no page, skipping index.html", zap.String("homeRoute", b.cfg.HomeRoute))
	}

	b.log.Info("build completed", zap.Int("pages", len(b.pages)))
	return nil
}

func (b *Builder) writePage(p page.Page, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for page '%s': %w", p.Route, err)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s' for page '%s': %w", outputPath, p.Route, err)
	}
	defer f.Close()

	if err := b.shell.Render(f, p.Route, p.Body(b.render), b.render.Theme); err != nil {
		return fmt.Errorf("failed to render page '%s' to '%s': %w", p.Route, outputPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write '%s': %w", outputPath, err)
	}
	b.log.Info("generated page", zap.String("route", p.Route), zap.String("path", outputPath))
	return nil
}

func (b *Builder) writeSprite() error {
	path := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(strings.TrimPrefix(icon.SpritePath, "/")))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create icon sprite '%s': %w", path, err)
	}
	defer f.Close()
	if err := b.icons.WriteSprite(f); err != nil {
		return err
	}
	return f.Close()
}

func (b *Builder) copyAssets() error {
	embedded, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return fmt.Errorf("failed to open embedded assets: %w", err)
	}
	if err := copyDirContents(embedded, b.cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to copy embedded assets: %w", err)
	}

	staticDir := b.cfg.StaticDir
	if staticDir == "" {
		return nil
	}
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		b.log.Debug("static directory not found, skipping copy", zap.String("dir", staticDir))
		return nil
	}
	b.log.Info("copying static assets", zap.String("from", staticDir), zap.String("to", b.cfg.OutputDir))
	if err := copyDirContents(os.DirFS(staticDir), b.cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	return nil
}

// copyDirContents recursively copies every file in src into dst.
func copyDirContents(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(src, path, dstPath); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
		}
		return nil
	})
}

// copyFile copies one file out of src, keeping its permission bits when the
// source reports them.
func copyFile(src fs.FS, name, dstFile string) error {
	srcF, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", name, err)
	}
	defer srcF.Close()

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", name, dstFile, err)
	}

	if info, err := srcF.Stat(); err == nil && info.Mode().Perm() != 0 {
		// Embedded files report 0444; keep generated output writable.
		_ = os.Chmod(dstFile, info.Mode().Perm()|0o200)
	}
	return dstF.Close()
}
