// Package config loads the stepform CLI configuration from defaults, an
// optional YAML file, optional .env files and STEPFORM_* environment
// variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-stepform/pkg/storage"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "STEPFORM_"

// Config is the full CLI configuration.
type Config struct {
	Storage storage.Config `yaml:"storage" envPrefix:"STORAGE_"`
	Log     LogConfig      `yaml:"log" envPrefix:"LOG_"`
	UI      UIConfig       `yaml:"ui" envPrefix:"UI_"`
	Theme   ThemeConfig    `yaml:"theme" envPrefix:"THEME_"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// UIConfig configures the hosts.
type UIConfig struct {
	// Output is the terminal summary format: pretty, json or none.
	Output string `yaml:"output" env:"OUTPUT"`
	// Action is the form action URL used by the HTML renderer.
	Action string `yaml:"action" env:"ACTION"`
}

// ThemeConfig describes an optional single theme for HTML output.
type ThemeConfig struct {
	Name       string            `yaml:"name" env:"NAME"`
	Variant    string            `yaml:"variant" env:"VARIANT"`
	AssetsPath string            `yaml:"assets_path" env:"ASSETS_PATH"`
	Stylesheet string            `yaml:"stylesheet" env:"STYLESHEET"`
	Tokens     map[string]string `yaml:"tokens" env:"TOKENS"`
}

// Enabled reports whether a theme was configured.
func (t ThemeConfig) Enabled() bool {
	return strings.TrimSpace(t.Name) != ""
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: storage.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		UI: UIConfig{
			Output: "pretty",
		},
	}
}

// Load builds the configuration. path names an optional YAML file; an empty
// path skips it. envFiles are loaded into the process environment when they
// exist.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrParseConfig, path, err)
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParseEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	var existing []string
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
		existing = append(existing, file)
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return errors.Join(ErrParseEnv, err)
	}
	return nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	var errs []error
	driver := strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if !slices.Contains(storage.Drivers(), driver) {
		errs = append(errs, fmt.Errorf("storage.driver %q not one of %v", c.Storage.Driver, storage.Drivers()))
	}
	if _, err := c.Log.level(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q not one of [text json]", c.Log.Format))
	}
	switch strings.ToLower(c.UI.Output) {
	case "pretty", "json", "none":
	default:
		errs = append(errs, fmt.Errorf("ui.output %q not one of [pretty json none]", c.UI.Output))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// Logger builds a slog.Logger writing to w.
func (l LogConfig) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", l.Level, err)
	}
	return level, nil
}
