package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/npillmayer/svgicon"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SVGICON_"

// Config is the configuration of the svgicon command. Values are taken from
// a YAML file, then from SVGICON_* environment variables, then from flags;
// later sources override earlier ones.
type Config struct {
	Path         string   `yaml:"path" json:"path" env:"PATH" jsonschema:"title=Icon Directory,description=Directory containing the SVG icon files,default=./svgs"`
	Prefix       string   `yaml:"prefix" json:"prefix,omitempty" env:"PREFIX" jsonschema:"title=File Prefix,description=File name prefix of icon files"`
	FunctionName string   `yaml:"functionName" json:"functionName" env:"FUNCTION_NAME" jsonschema:"title=Function Name,description=Name of the marker function in CSS declarations,default=svgicon"`
	StripStyles  bool     `yaml:"stripStyles" json:"stripStyles" env:"STRIP_STYLES" jsonschema:"title=Strip Styles,description=Remove embedded style blocks from icons"`
	ColorTags    []string `yaml:"colorTags" json:"colorTags,omitempty" env:"COLOR_TAGS" envSeparator:"," jsonschema:"title=Color Tags,description=Tags of elements whose fill is set to the icon color"`
	Workers      int      `yaml:"workers" json:"workers,omitempty" env:"WORKERS" jsonschema:"title=Workers,description=Number of icons rendered concurrently (0 = number of CPUs),minimum=0"`
	LogLevel     string   `yaml:"logLevel" json:"logLevel,omitempty" env:"LOG_LEVEL" jsonschema:"title=Log Level,enum=debug,enum=info,enum=warn,enum=error"`
}

func defaultConfig() Config {
	opts := svgicon.DefaultOptions()
	return Config{
		Path:         opts.Path,
		Prefix:       opts.Prefix,
		FunctionName: opts.FunctionName,
		StripStyles:  opts.StripStyles,
		ColorTags:    opts.ColorTags,
		Workers:      opts.Workers,
		LogLevel:     "info",
	}
}

// loadConfig reads the configuration file (if file is not empty) and
// applies environment overrides. environ replaces the process environment
// if it is not nil.
func loadConfig(file string, environ map[string]string) (Config, error) {
	cfg := defaultConfig()
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", file, err)
		}
	}
	opts := env.Options{Prefix: envPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides configuration values with flags set on the command line.
func (cfg *Config) applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("path") {
		cfg.Path, _ = flags.GetString("path")
	}
	if flags.Changed("prefix") {
		cfg.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("function-name") {
		cfg.FunctionName, _ = flags.GetString("function-name")
	}
	if flags.Changed("strip-styles") {
		cfg.StripStyles, _ = flags.GetBool("strip-styles")
	}
	if flags.Changed("color-tags") {
		cfg.ColorTags, _ = flags.GetStringSlice("color-tags")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
}

func (cfg Config) options() svgicon.Options {
	return svgicon.Options{
		Path:         cfg.Path,
		Prefix:       cfg.Prefix,
		FunctionName: cfg.FunctionName,
		StripStyles:  cfg.StripStyles,
		ColorTags:    cfg.ColorTags,
		Workers:      cfg.Workers,
	}
}
