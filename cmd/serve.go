package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nathanjohnson320/portfolio/internal/config"
)

const debounceDuration = 500 * time.Millisecond

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds on changes",
	Long: `The serve command performs an initial build, then serves the output
directory on a local web server. It watches the static directory and the
config file and rebuilds the site when either changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			appConfig.Server.Port = serverPort
		}

		logger.Info("performing initial build")
		if err := runBuild(appConfig, logger); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		r := &rebuilder{cfg: appConfig, cfgFile: configFileUsed, log: logger}
		go r.watch(ctx, watcher)
		addWatches(watcher, appConfig.StaticDir, configFileUsed, logger)

		return serve(ctx, appConfig, logger)
	},
}

// rebuilder reruns the build after a quiet period following file events.
// A zero delay means debounceDuration and a nil build means runBuild.
type rebuilder struct {
	mu      sync.Mutex
	cfg     config.Config
	cfgFile string
	log     *zap.Logger
	timer   *time.Timer
	delay   time.Duration
	build   func(config.Config, *zap.Logger) error
	// reload is set while a config-file change is waiting for its rebuild.
	reload bool
}

func (r *rebuilder) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			r.log.Info("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					r.log.Warn("failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
				}
			}
			r.schedule(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			r.log.Warn("watcher error", zap.Error(err))
		}
	}
}

func (r *rebuilder) schedule(changed string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
	}
	// A config change stays pending even when a static change lands after it.
	if r.cfgFile != "" && filepath.Clean(changed) == filepath.Clean(r.cfgFile) {
		r.reload = true
	}
	delay := r.delay
	if delay == 0 {
		delay = debounceDuration
	}
	r.timer = time.AfterFunc(delay, r.fire)
}

func (r *rebuilder) fire() {
	r.mu.Lock()
	reload := r.reload
	r.reload = false
	r.mu.Unlock()
	r.rebuild(reload)
}

func (r *rebuilder) rebuild(reload bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reload {
		cfg, _, err := config.Load(viper.New(), r.cfgFile)
		if err != nil {
			r.log.Error("config reload failed, keeping previous config", zap.Error(err))
		} else {
			// The server keeps its original output directory and port.
			cfg.OutputDir = r.cfg.OutputDir
			cfg.Server = r.cfg.Server
			r.cfg = cfg
		}
	}

	build := r.build
	if build == nil {
		build = runBuild
	}
	r.log.Info("rebuilding site")
	if err := build(r.cfg, r.log); err != nil {
		r.log.Error("rebuild failed", zap.Error(err))
		return
	}
	r.log.Info("site rebuilt")
}

// addWatches watches every directory under staticDir plus the config file.
// fsnotify is not recursive, so each directory is added on its own.
func addWatches(watcher *fsnotify.Watcher, staticDir, cfgFile string, log *zap.Logger) {
	if staticDir != "" {
		if _, err := os.Stat(staticDir); os.IsNotExist(err) {
			log.Info("static directory not found, not watching", zap.String("dir", staticDir))
		} else {
			err := filepath.WalkDir(staticDir, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					log.Warn("error walking static directory", zap.String("path", path), zap.Error(err))
					return nil
				}
				if d.IsDir() {
					if err := watcher.Add(path); err != nil {
						log.Warn("failed to watch directory", zap.String("dir", path), zap.Error(err))
					}
				}
				return nil
			})
			if err != nil {
				log.Warn("failed to set up static watches", zap.Error(err))
			}
		}
	}
	if cfgFile != "" {
		if err := watcher.Add(cfgFile); err != nil {
			log.Warn("failed to watch config file", zap.String("path", cfgFile), zap.Error(err))
		}
	}
}

func newServer(outputDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(noCache)
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:   outputDir,
		Browse: false,
	}))
	return e
}

// noCache stops the browser from holding on to pages between rebuilds.
func noCache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		return next(c)
	}
}

func serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	e := newServer(cfg.OutputDir)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving site", zap.String("dir", cfg.OutputDir), zap.String("url", "http://localhost"+addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
