package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/nathanjohnson320/portfolio/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_OUTPUTDIR or
// PORTFOLIO_SERVER_PORT.
const EnvPrefix = "PORTFOLIO"

type Config struct {
	SiteTitle string       `mapstructure:"siteTitle"`
	BaseURL   string       `mapstructure:"baseURL"`
	OutputDir string       `mapstructure:"outputDir"`
	StaticDir string       `mapstructure:"staticDir"`
	Theme     string       `mapstructure:"theme"`
	HomeRoute string       `mapstructure:"homeRoute"`
	LogLevel  string       `mapstructure:"logLevel"`
	Server    ServerConfig `mapstructure:"server"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// SetDefaults registers every key so environment overrides apply even
// without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("siteTitle", "Nathan Johnson")
	v.SetDefault("baseURL", "")
	v.SetDefault("outputDir", "public")
	v.SetDefault("staticDir", "static")
	v.SetDefault("theme", string(model.ThemeLight))
	v.SetDefault("homeRoute", "/about/")
	v.SetDefault("logLevel", "info")
	v.SetDefault("server.port", 1313)
}

// Load reads cfgFile, or config.yaml from the working directory when cfgFile
// is empty, on top of the defaults and PORTFOLIO_* environment variables. A
// missing default config file is not an error. The returned string is the
// file that was used, if any.
func Load(v *viper.Viper, cfgFile string) (Config, string, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, used, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, used, err
	}
	return cfg, used, nil
}

// Validate rejects values that would make a build destructive or undefined.
func (c Config) Validate() error {
	if err := checkOutputDir(c.OutputDir); err != nil {
		return err
	}
	if _, err := c.ThemeMode(); err != nil {
		return err
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	return nil
}

// checkOutputDir refuses directories whose removal would take anything but
// the generated site with it: the filesystem root, the working directory and
// every ancestor of it.
func checkOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("outputDir must not be empty")
	}
	abs, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		return fmt.Errorf("outputDir %q: %w", dir, err)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return fmt.Errorf("outputDir %q resolves to the filesystem root", dir)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("outputDir %q: %w", dir, err)
	}
	rel, err := filepath.Rel(abs, cwd)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("outputDir %q would remove the working directory %s", dir, cwd)
	}
	return nil
}

// ThemeMode parses the configured theme.
func (c Config) ThemeMode() (model.ThemeMode, error) {
	m, err := model.ParseThemeMode(c.Theme)
	if err != nil {
		return "", fmt.Errorf("config theme: %w", err)
	}
	return m, nil
}
