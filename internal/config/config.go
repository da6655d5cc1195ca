package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/thoreinstein/ddx/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "ddx"

// Log format names accepted in config files and on the command line.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is ddx's own configuration, as opposed to the per-project
// ddx_project.yml handled by the project package.
type Config struct {
	Version    int    `mapstructure:"version" yaml:"version"`
	ProjectDir string `mapstructure:"project_dir" yaml:"project_dir"`
	WarnError  bool   `mapstructure:"warn_error" yaml:"warn_error"`
	LogFormat  string `mapstructure:"log_format" yaml:"log_format"`
	NoProgress bool   `mapstructure:"no_progress" yaml:"no_progress"`
}

// Init points Viper at ddx's config locations, environment prefix, and
// defaults. Call it once at startup, before Load.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// DDX_CONFIG_DIR replaces the search path entirely when set;
	// otherwise the current directory shadows the XDG config dir.
	if dir := os.Getenv("DDX_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(paths.ConfigDir())
	}

	viper.SetEnvPrefix("DDX")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("project_dir", "")
	viper.SetDefault("warn_error", false)
	viper.SetDefault("log_format", LogFormatText)
	viper.SetDefault("no_progress", false)
}

// Load reads the configuration into a Config. An explicit path must
// exist and parse; with an empty path the Init search locations are
// tried and a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		switch {
		case notFound && path == "":
			// Nothing in the search path, defaults apply.
		case notFound:
			return nil, fmt.Errorf("config file not found at %s: %w", path, err)
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
