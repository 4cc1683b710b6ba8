package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FIACOMPARE_OUTPUT_PATH.
const EnvPrefix = "FIACOMPARE"

// DefaultOutputPath is where the comparison table is written unless overridden.
const DefaultOutputPath = "fia_vs_401k_output.csv"

// Settings controls how a run gathers input and where it writes output.
// Scenario numbers live in domain.Parameters, not here. With neither
// ParametersFile nor UseExample set, parameters are prompted for.
type Settings struct {
	ParametersFile string          `mapstructure:"parameters_file"`
	UseExample     bool            `mapstructure:"example"`
	OutputPath     string          `mapstructure:"output_path"`
	OutputFormat   string          `mapstructure:"output_format"`
	Strict         bool            `mapstructure:"strict"`
	Logging        LoggingSettings `mapstructure:"logging"`
}

// LoggingSettings holds logging configuration
type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadSettings resolves settings from defaults, an optional settings file,
// FIACOMPARE_* environment variables and any flags already bound to v.
// A nil v uses a fresh viper instance.
func LoadSettings(v *viper.Viper, settingsFile string) (*Settings, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("parameters_file", "")
	v.SetDefault("example", false)
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("output_format", "csv")
	v.SetDefault("strict", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all settings values are usable
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.OutputFormat) == "" {
		return fmt.Errorf("output_format is required")
	}
	switch s.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", s.Logging.Format)
	}
	if s.UseExample && s.ParametersFile != "" {
		return fmt.Errorf("example and parameters_file are mutually exclusive")
	}
	return nil
}
