package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config is the optional locate.yaml. Flags explicitly set on the command
// line take precedence over every field.
type Config struct {
	Prefix     string   `yaml:"prefix"`
	ExtraRoots []string `yaml:"extra_roots"`
	// SourceDir is watched for changes in place of internal/toolkit.
	SourceDir string `yaml:"source_dir"`
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// userConfigDir is a seam for tests.
var userConfigDir = os.UserConfigDir

func defaultConfigPath() string {
	dir, err := userConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cupti", "locate.yaml")
}

// loadConfig reads path, or the default location when path is empty. A
// missing default file yields a zero Config; a missing explicit file is an
// error. The returned path is empty when nothing was read.
func loadConfig(path string) (Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return Config{}, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, "", nil
		}
		return Config{}, "", fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, "", fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, path, nil
}

// applyConfig fills options that were not set on the command line.
func applyConfig(cmd *cli.Command, cfg Config, o *locateOptions) {
	if cfg.Prefix != "" && !cmd.IsSet("prefix") {
		o.prefix = cfg.Prefix
	}
	if cfg.Format != "" && !cmd.IsSet("format") {
		o.format = cfg.Format
	}
	if cfg.LogLevel != "" && !cmd.IsSet("log-level") {
		o.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !cmd.IsSet("log-format") {
		o.logFormat = cfg.LogFormat
	}
}
