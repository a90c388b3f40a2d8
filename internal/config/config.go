// Package config loads merge settings from a JSON file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vearutop/sampleavg"
)

const maxFileSize = 1 << 20

// Config lists the sample files to merge and the header of the result.
type Config struct {
	InputFiles []string `json:"input_files"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	MaxValue   int      `json:"max_value"`
}

// Default returns a config with the library's default header and no inputs.
func Default() *Config {
	return &Config{
		Width:    sampleavg.DefaultWidth,
		Height:   sampleavg.DefaultHeight,
		MaxValue: sampleavg.DefaultMaxValue,
	}
}

// Load reads a JSON config. Fields omitted in the file keep their defaults.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fi, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}
	if fi.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fi.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if dec.More() {
		return nil, errors.New("parse config: unexpected data after JSON object")
	}

	return cfg, nil
}

// Validate checks that the config describes a mergeable set.
func (c *Config) Validate() error {
	if len(c.InputFiles) == 0 {
		return errors.New("no input files")
	}
	for i, p := range c.InputFiles {
		if p == "" {
			return fmt.Errorf("input file %d is empty", i)
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", c.Width, c.Height)
	}
	if c.MaxValue < 1 || c.MaxValue > 65535 {
		return fmt.Errorf("max_value must be between 1 and 65535, got %d", c.MaxValue)
	}
	return nil
}

// Options converts the header settings to merge options.
func (c *Config) Options() []func(o *sampleavg.Options) {
	return []func(o *sampleavg.Options){
		sampleavg.WithDimensions(c.Width, c.Height),
		sampleavg.WithMaxValue(c.MaxValue),
	}
}
