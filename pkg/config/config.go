package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds the runtime settings shared by the CLI and the server.
type Config struct {
	OutputPath string `mapstructure:"output_path"`
	Port       string `mapstructure:"port"`
}

// Build loads configuration in increasing precedence: defaults, .env,
// config file, then command-line flags.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("output_path", "")
	v.SetDefault("port", "3000")
	v.SetEnvPrefix("planu")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; a broken one is not.
		if _, statErr := os.Stat(v.ConfigFileUsed()); cfgFile != "" && statErr == nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// New creates a configuration with just an output path, for callers that
// do not go through flags.
func New(outputPath string) *Config {
	return &Config{OutputPath: outputPath}
}

// GetOutputPath returns the directory converted files are written to; an
// empty value means next to the input file.
func (c *Config) GetOutputPath() string {
	return c.OutputPath
}
