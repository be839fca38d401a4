package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the user editable settings stored in sp/config.toml
// under the user configuration directory.
type Config struct {
	ProjectRoot string     `toml:"project_root"`
	VenvPython  string     `toml:"venv_python"`
	Python      string     `toml:"python"`
	Script      string     `toml:"script"`
	StorageDir  string     `toml:"storage_dir"`
	Batch       BatchBlock `toml:"batch"`
}

// BatchBlock governs sp batch behavior.
type BatchBlock struct {
	Prompt string `toml:"prompt"`
}

var (
	// ErrMissingPython indicates the fallback interpreter name was blanked out.
	ErrMissingPython = errors.New("config.python must be set")
	// ErrMissingScript indicates the target script name was blanked out.
	ErrMissingScript = errors.New("config.script must be set")
	// ErrAbsoluteVenvPython indicates venv_python escaped the project root.
	ErrAbsoluteVenvPython = errors.New("config.venv_python must be relative to the project root")
)

// Default returns a baseline configuration for a SmartPaper checkout.
func Default(projectRoot string) Config {
	cfg := Config{ProjectRoot: projectRoot}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.VenvPython == "" {
		c.VenvPython = filepath.Join("venv", "bin", "python")
	}
	if c.Python == "" {
		c.Python = "python3"
	}
	if c.Script == "" {
		c.Script = "cli_get_prompt_mode_paper.py"
	}
	if c.StorageDir == "" {
		c.StorageDir = "saved_analyses"
	}
	if c.Batch.Prompt == "" {
		c.Batch.Prompt = "phd_analysis"
	}
}

// Validate ensures the configuration can guide sp's behavior.
func (c Config) Validate() error {
	if c.Python == "" {
		return ErrMissingPython
	}
	if c.Script == "" {
		return ErrMissingScript
	}
	if filepath.IsAbs(c.VenvPython) {
		return ErrAbsoluteVenvPython
	}
	return nil
}

// DefaultPath reports where sp looks for its configuration file.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "sp", "config.toml"), nil
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(""), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
