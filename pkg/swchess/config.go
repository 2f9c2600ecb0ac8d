package swchess

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Config struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Extension string `json:"extension"`
	Workers   int    `json:"workers"`
}

const (
	defaultExtension = ".txt"
	defaultOutput    = "boards.parquet"
)

const configName = "config.json"

// ErrConfigNotFound is returned when no directory up to the file system root
// holds a config.json.
var ErrConfigNotFound = errors.New("config.json not found")

// FindConfigPath returns the nearest config.json at or above the working
// directory, and the directory holding it.
func FindConfigPath() (string, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	return findConfigFrom(cwd)
}

func findConfigFrom(start string) (string, string, error) {
	for dir := start; ; {
		path := filepath.Join(dir, configName)
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return path, dir, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("%w from %s", ErrConfigNotFound, start)
		}
		dir = parent
	}
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.Extension == "" {
		c.Extension = defaultExtension
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return c
}

// Resolve makes relative input and output paths relative to root.
func (c Config) Resolve(root string) Config {
	if c.Input != "" && !filepath.IsAbs(c.Input) {
		c.Input = filepath.Join(root, c.Input)
	}
	if c.Output != "" && !filepath.IsAbs(c.Output) {
		c.Output = filepath.Join(root, c.Output)
	}
	return c
}
