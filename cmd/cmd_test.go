package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/nathanjohnson320/portfolio/internal/config"
	"github.com/nathanjohnson320/portfolio/internal/page"
)

func TestRunCheck(t *testing.T) {
	require.NoError(t, runCheck(page.All(), zap.NewNop()))

	bad := page.About()
	bad.Meta.Title = ""
	err := runCheck([]page.Page{bad}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PageMetadata.title")
}

func TestWriteInspect(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeInspect(&buf, page.All()))

	docs := strings.Split(buf.String(), "---\n")
	require.Len(t, docs, len(page.All()))

	var uses struct {
		Route string `yaml:"route"`
		Meta  struct {
			Title string `yaml:"title"`
		} `yaml:"meta"`
		Content page.UsesContent `yaml:"content"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(docs[1]), &uses))
	assert.Equal(t, "/uses/", uses.Route)
	assert.Equal(t, "Uses", uses.Meta.Title)
	require.Len(t, uses.Content.Sections, 3)
	assert.Equal(t, "Workstation", uses.Content.Sections[0].Heading)
	assert.Equal(t, `14" Starlabs Starbook`, uses.Content.Sections[0].Items[0].Title)
}

func TestRunBuild(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	cfg := config.Config{OutputDir: out, Theme: "light", HomeRoute: "/about/", LogLevel: "info"}
	require.NoError(t, runBuild(cfg, zap.NewNop()))
	assert.FileExists(t, filepath.Join(out, "about", "index.html"))
	assert.FileExists(t, filepath.Join(out, "index.html"))
}

func TestServerServesOutputWithoutCaching(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "uses"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uses", "index.html"), []byte("<h1>Uses</h1>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))

	e := newServer(dir)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uses/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Uses</h1>")
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRebuilderReloadsConfig(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "public")
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("outputDir: elsewhere\ntheme: dark\n"), 0o644))

	r := &rebuilder{
		cfg:     config.Config{OutputDir: out, Theme: "light", HomeRoute: "/about/", LogLevel: "info"},
		cfgFile: cfgFile,
		log:     zap.NewNop(),
	}
	r.rebuild(true)

	assert.Equal(t, "dark", r.cfg.Theme)
	assert.Equal(t, out, r.cfg.OutputDir)
	body, err := os.ReadFile(filepath.Join(out, "uses", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(body), `data-theme="dark"`)
}

const testDelay = 200 * time.Millisecond

// countingRebuilder records the config of every build instead of writing the
// site.
func countingRebuilder(cfgFile string) (*rebuilder, <-chan config.Config) {
	builds := make(chan config.Config, 16)
	r := &rebuilder{
		cfg:     config.Config{OutputDir: "public", Theme: "light", HomeRoute: "/about/", LogLevel: "info"},
		cfgFile: cfgFile,
		log:     zap.NewNop(),
		delay:   testDelay,
		build: func(cfg config.Config, _ *zap.Logger) error {
			builds <- cfg
			return nil
		},
	}
	return r, builds
}

func waitBuild(t *testing.T, builds <-chan config.Config) config.Config {
	t.Helper()
	select {
	case cfg := <-builds:
		return cfg
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild")
		return config.Config{}
	}
}

func assertNoBuild(t *testing.T, builds <-chan config.Config) {
	t.Helper()
	select {
	case <-builds:
		t.Fatal("unexpected extra rebuild")
	case <-time.After(3 * testDelay):
	}
}

func startWatch(t *testing.T, r *rebuilder, staticDir, cfgFile string) {
	t.Helper()
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { watcher.Close() })

	addWatches(watcher, staticDir, cfgFile, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go r.watch(ctx, watcher)
}

func TestWatchDebouncesStaticChanges(t *testing.T) {
	static := t.TempDir()
	r, builds := countingRebuilder("")
	startWatch(t, r, static, "")

	for i := 0; i < 5; i++ {
		body := fmt.Sprintf("body { order: %d; }", i)
		require.NoError(t, os.WriteFile(filepath.Join(static, "site.css"), []byte(body), 0o644))
	}
	cfg := waitBuild(t, builds)
	assert.Equal(t, "light", cfg.Theme)
	assertNoBuild(t, builds)
}

func TestWatchPicksUpNewDirectories(t *testing.T) {
	static := t.TempDir()
	r, builds := countingRebuilder("")
	startWatch(t, r, static, "")

	images := filepath.Join(static, "images")
	require.NoError(t, os.Mkdir(images, 0o755))
	waitBuild(t, builds)

	require.NoError(t, os.WriteFile(filepath.Join(images, "portrait.jpg"), []byte("jpeg"), 0o644))
	waitBuild(t, builds)
	assertNoBuild(t, builds)
}

func TestWatchReloadsChangedConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("theme: light\n"), 0o644))

	r, builds := countingRebuilder(cfgFile)
	startWatch(t, r, filepath.Join(dir, "static"), cfgFile)

	require.NoError(t, os.WriteFile(cfgFile, []byte("theme: dark\n"), 0o644))
	cfg := waitBuild(t, builds)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "public", cfg.OutputDir)
}

func TestScheduleReloadsOnlyForConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("theme: dark\nsiteTitle: Reloaded\n"), 0o644))

	r, builds := countingRebuilder(cfgFile)
	r.schedule(filepath.Join(dir, "static", "site.css"))
	cfg := waitBuild(t, builds)
	assert.Equal(t, "light", cfg.Theme)

	r.schedule(cfgFile)
	cfg = waitBuild(t, builds)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "Reloaded", cfg.SiteTitle)
	assert.Equal(t, "public", cfg.OutputDir)
}

func TestScheduleKeepsPendingConfigReload(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("theme: dark\n"), 0o644))

	r, builds := countingRebuilder(cfgFile)
	r.schedule(cfgFile)
	r.schedule(filepath.Join(dir, "static", "site.css"))

	cfg := waitBuild(t, builds)
	assert.Equal(t, "dark", cfg.Theme)
	assertNoBuild(t, builds)
}
