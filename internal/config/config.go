package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Wordlist controls where input words come from.
type Wordlist struct {
	Path        string   `toml:"path"`
	SystemPaths []string `toml:"system_paths"`
}

// Rules controls which words are grouped and how signatures compare.
type Rules struct {
	MinLetters      int  `toml:"min_letters"`
	IgnoreCapitals  bool `toml:"ignore_capitals"`
	ExcludeCapitals bool `toml:"exclude_capitals"`
	MinGroupSize    int  `toml:"min_group_size"`
}

// Output controls where group lines are written.
type Output struct {
	Path  string `toml:"path"`
	Print bool   `toml:"print"`
}

// Logging controls diagnostic output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for the anagrams tool.
type Config struct {
	Wordlist Wordlist `toml:"wordlist"`
	Rules    Rules    `toml:"rules"`
	Output   Output   `toml:"output"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/anagrams/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has path fields expanded and normalized. A config file that does not
// exist is not an error; defaults are used and exists reports false.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	loaded := Default()

	resolved, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&loaded); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := loaded.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, "", false, err
	}

	return &loaded, resolved, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("anagrams.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// normalize trims and expands user-supplied values so the rest of the program
// sees clean absolute paths and canonical lowercase enums.
func (c *Config) normalize() error {
	c.Wordlist.Path = strings.TrimSpace(c.Wordlist.Path)
	if c.Wordlist.Path != "" {
		expanded, err := expandPath(c.Wordlist.Path)
		if err != nil {
			return err
		}
		c.Wordlist.Path = expanded
	}

	c.Output.Path = strings.TrimSpace(c.Output.Path)
	if c.Output.Path != "" {
		expanded, err := expandPath(c.Output.Path)
		if err != nil {
			return err
		}
		c.Output.Path = expanded
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
