// Package config loads tripsplice settings from flags, environment and an
// optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. TRIPSPLICE_LOG_LEVEL.
	EnvPrefix = "TRIPSPLICE"
	// FileName is the config file searched for in the working and home directories.
	FileName = ".tripsplice"

	DefaultLogLevel = "info"
	DefaultReports  = ".tripsplice-reports"
	DefaultParallel = 1
)

// Viper keys. Flags with the same name are bound automatically.
const (
	KeyLogLevel   = "log-level"
	KeyReports    = "reports"
	KeyParallel   = "parallel"
	KeyExtensions = "ext"
	KeyStrict     = "strict"
)

// DefaultExtensions lists the generated-module extensions scanned by list.
var DefaultExtensions = []string{".jsx", ".tsx", ".js", ".ts"}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config holds the resolved settings for one invocation.
type Config struct {
	LogLevel   string
	Reports    string
	Parallel   int
	Extensions []string
	Strict     bool

	// File is the config file that was read, empty when none was found.
	File string
}

// DefaultConfig returns a configuration with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   DefaultLogLevel,
		Reports:    DefaultReports,
		Parallel:   DefaultParallel,
		Extensions: append([]string(nil), DefaultExtensions...),
	}
}

// Load resolves the configuration. Precedence is flag, then environment, then
// config file, then default. configFile may be empty, in which case
// .tripsplice.yaml is looked up in the working directory and then $HOME; a
// missing file is not an error unless it was named explicitly.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if flags != nil {
		bindFlags(v, flags)
	}

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	populateConfig(v, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func newViper(cfg *Config) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, cfg.LogLevel)
	v.SetDefault(KeyReports, cfg.Reports)
	v.SetDefault(KeyParallel, cfg.Parallel)
	v.SetDefault(KeyExtensions, cfg.Extensions)
	v.SetDefault(KeyStrict, cfg.Strict)

	return v
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for _, key := range []string{KeyLogLevel, KeyReports, KeyParallel, KeyExtensions, KeyStrict} {
		if f := flags.Lookup(key); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config file: %w", err)
	}

	return nil
}

func populateConfig(v *viper.Viper, cfg *Config) {
	cfg.LogLevel = strings.ToLower(v.GetString(KeyLogLevel))
	cfg.Reports = v.GetString(KeyReports)
	cfg.Parallel = v.GetInt(KeyParallel)
	cfg.Extensions = normalizeExtensions(v.GetStringSlice(KeyExtensions))
	cfg.Strict = v.GetBool(KeyStrict)
	cfg.File = v.ConfigFileUsed()
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))

	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		out = append(out, strings.ToLower(ext))
	}

	return out
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: trace, debug, info, warn, error)", c.LogLevel)
	}

	if c.Parallel < 1 {
		return errors.New("parallel must be at least 1")
	}

	if c.Reports == "" {
		return errors.New("reports directory cannot be empty")
	}

	if len(c.Extensions) == 0 {
		return errors.New("at least one source extension is required")
	}

	return nil
}

// IsDebug returns true if debug logging or finer is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug" || c.LogLevel == "trace"
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{LogLevel: %s, Reports: %s, Parallel: %d, Extensions: %v, Strict: %t}",
		c.LogLevel, c.Reports, c.Parallel, c.Extensions, c.Strict)
}
