package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Tomas-vilte/MateChangelog/internal/changelog"
	"github.com/Tomas-vilte/MateChangelog/internal/git"
	"github.com/Tomas-vilte/MateChangelog/internal/models"
)

type Config struct {
	Title     string `toml:"title"`
	Format    string `toml:"format"`
	Branch    string `toml:"branch"`
	Backend   string `toml:"backend"`
	LinkBase  string `toml:"link_base"`
	GitBinary string `toml:"git_binary"`

	PathFile string `toml:"-"`
}

const (
	configDirName  = ".mate-changelog"
	configFileName = "config.toml"
)

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		Title:     changelog.DefaultTitle,
		Format:    string(models.FormatMarkdown),
		Branch:    models.DefaultBranch,
		Backend:   string(models.BackendCLI),
		LinkBase:  changelog.DefaultLinkBase,
		GitBinary: git.DefaultBinary,
	}
}

// DefaultPath returns ~/.mate-changelog/config.toml.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, configDirName, configFileName)
}

// LoadConfig reads the TOML file at path. A missing file yields the defaults
// without creating anything on disk; keys absent from the file keep their
// default values.
func LoadConfig(path string) (*Config, error) {
	config := Default()
	config.PathFile = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), config); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("loaded config is not valid: %w", err)
	}

	return config, nil
}

// SaveConfig writes the config to its PathFile, creating the directory.
func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	if err := os.MkdirAll(filepath.Dir(config.PathFile), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := Encode(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// Encode renders the config as TOML.
func Encode(config *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

func validateConfig(config *Config) error {
	if config.Title == "" {
		return errors.New("title cannot be empty")
	}
	if config.Branch == "" {
		return errors.New("branch cannot be empty")
	}
	if _, err := models.ParseFormat(config.Format); err != nil {
		return err
	}
	if _, err := models.ParseBackend(config.Backend); err != nil {
		return err
	}
	return nil
}
