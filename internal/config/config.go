package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Display     DisplayConfig     `mapstructure:"display"`
	Development DevelopmentConfig `mapstructure:"development"`
}

type DisplayConfig struct {
	// BlackAtBottom prints row 7 first so Black's home row ends up at the
	// bottom of the terminal.
	BlackAtBottom   bool `mapstructure:"black_at_bottom"`
	ShowAnnotations bool `mapstructure:"show_annotations"`
	// WideAmbiguous is for terminals that draw ambiguous-width glyphs
	// two columns wide.
	WideAmbiguous   bool `mapstructure:"wide_ambiguous"`
}

type DevelopmentConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads config.yaml from the working directory or ./config, or the
// file at path when it is non-empty. Environment variables prefixed with
// CHECKERS_ override file values, e.g. CHECKERS_DISPLAY_BLACK_AT_BOTTOM.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Enable environment variables
	v.SetEnvPrefix("CHECKERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file, fall through to defaults and environment
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("display.black_at_bottom", d.Display.BlackAtBottom)
	v.SetDefault("display.show_annotations", d.Display.ShowAnnotations)
	v.SetDefault("display.wide_ambiguous", d.Display.WideAmbiguous)
	v.SetDefault("development.debug", d.Development.Debug)
	v.SetDefault("development.log_level", d.Development.LogLevel)
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Config {
	return &Config{
		Display: DisplayConfig{
			BlackAtBottom:   true,
			ShowAnnotations: true,
		},
		Development: DevelopmentConfig{
			Debug:    false,
			LogLevel: "info",
		},
	}
}
