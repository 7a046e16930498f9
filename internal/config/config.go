// Package config provides configuration loading for Critic.
// It supports a layered configuration approach with priority:
// CLI flags > environment variables (CRITIC_*) > config file (~/.critic.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ReviewProfile defines a named set of scanners to run together.
type ReviewProfile struct {
	Name     string   `mapstructure:"name" yaml:"name"`
	Scanners []string `mapstructure:"scanners" yaml:"scanners"`
}

// MetricParams holds the coefficients of the maintainability-index and
// cognitive-complexity formulas. These are file and environment level
// knobs; unlike the scanner thresholds they have no CLI flags.
type MetricParams struct {
	MIBase             float64 `mapstructure:"mi_base" yaml:"mi_base"`
	MIVolumeWeight     float64 `mapstructure:"mi_volume_weight" yaml:"mi_volume_weight"`
	MIComplexityWeight float64 `mapstructure:"mi_complexity_weight" yaml:"mi_complexity_weight"`
	MILocWeight        float64 `mapstructure:"mi_loc_weight" yaml:"mi_loc_weight"`
	MICommentWeight    float64 `mapstructure:"mi_comment_weight" yaml:"mi_comment_weight"`
	MICommentFactor    float64 `mapstructure:"mi_comment_factor" yaml:"mi_comment_factor"`
	EarlyExitPenalty   int     `mapstructure:"early_exit_penalty" yaml:"early_exit_penalty"`
}

// Config holds all Critic configuration options.
type Config struct {
	OutputFormat    string          `mapstructure:"output_format" yaml:"output_format"`
	MaxLineLength   int             `mapstructure:"max_line_length" yaml:"max_line_length"`
	MaxComplexity   int             `mapstructure:"max_complexity" yaml:"max_complexity"`
	MaxNestingDepth int             `mapstructure:"max_nesting_depth" yaml:"max_nesting_depth"`
	Metrics         MetricParams    `mapstructure:"metrics" yaml:"metrics"`
	AIModel         string          `mapstructure:"ai_model" yaml:"ai_model"`
	AITimeout       time.Duration   `mapstructure:"ai_timeout" yaml:"ai_timeout"`
	ListenAddr      string          `mapstructure:"listen_addr" yaml:"listen_addr"`
	ReviewProfiles  []ReviewProfile `mapstructure:"review_profiles" yaml:"review_profiles"`
}

// Defaults returns a Config populated with default values.
func Defaults() Config {
	return Config{
		OutputFormat:    "table",
		MaxLineLength:   88,
		MaxComplexity:   10,
		MaxNestingDepth: 4,
		Metrics:         DefaultMetricParams(),
		AIModel:         "gemini-2.0-flash",
		AITimeout:       30 * time.Second,
		ListenAddr:      ":3000",
	}
}

// DefaultMetricParams returns the standard formula coefficients.
func DefaultMetricParams() MetricParams {
	return MetricParams{
		MIBase:             171,
		MIVolumeWeight:     5.2,
		MIComplexityWeight: 0.23,
		MILocWeight:        16.2,
		MICommentWeight:    50,
		MICommentFactor:    2.4,
		EarlyExitPenalty:   1,
	}
}

// Load reads configuration from ~/.critic.yaml and environment variables.
// It does NOT apply CLI flag overrides — call ApplyFlags for that.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".critic")
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("CRITIC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)

	v.SetEnvPrefix("CRITIC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ApplyFlags overrides config values with any CLI flags that were explicitly set.
func ApplyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("output") {
		val, _ := flags.GetString("output")
		cfg.OutputFormat = val
	}
	if flags.Changed("max-line-length") {
		val, _ := flags.GetInt("max-line-length")
		cfg.MaxLineLength = val
	}
	if flags.Changed("max-complexity") {
		val, _ := flags.GetInt("max-complexity")
		cfg.MaxComplexity = val
	}
	if flags.Changed("max-nesting") {
		val, _ := flags.GetInt("max-nesting")
		cfg.MaxNestingDepth = val
	}
	if flags.Changed("addr") {
		val, _ := flags.GetString("addr")
		cfg.ListenAddr = val
	}
}

// GetProfile returns the review profile with the given name, or nil if not found.
func (c *Config) GetProfile(name string) *ReviewProfile {
	for i := range c.ReviewProfiles {
		if c.ReviewProfiles[i].Name == name {
			return &c.ReviewProfiles[i]
		}
	}
	return nil
}

// ConfigFilePath returns the default config file path (~/.critic.yaml).
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".critic.yaml"
	}
	return filepath.Join(home, ".critic.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_format", "table")
	v.SetDefault("max_line_length", 88)
	v.SetDefault("max_complexity", 10)
	v.SetDefault("max_nesting_depth", 4)
	v.SetDefault("metrics.mi_base", 171.0)
	v.SetDefault("metrics.mi_volume_weight", 5.2)
	v.SetDefault("metrics.mi_complexity_weight", 0.23)
	v.SetDefault("metrics.mi_loc_weight", 16.2)
	v.SetDefault("metrics.mi_comment_weight", 50.0)
	v.SetDefault("metrics.mi_comment_factor", 2.4)
	v.SetDefault("metrics.early_exit_penalty", 1)
	v.SetDefault("ai_model", "gemini-2.0-flash")
	v.SetDefault("ai_timeout", 30*time.Second)
	v.SetDefault("listen_addr", ":3000")
}
