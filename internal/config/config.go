package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the on-disk app configuration. Flags override every field.
type Config struct {
	DataDir string `json:"dataDir"` // where the todo blob lives
	Store   string `json:"store"`   // "file" | "sqlite"
	Theme   string `json:"theme"`   // classic | neon | mono
	Debug   bool   `json:"debug"`
}

func Default() Config {
	return Config{
		DataDir: filepath.Join(UserHome(), ".tickdo"),
		Store:   "file",
		Theme:   "classic",
		Debug:   false,
	}
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(UserHome(), ".config", "tickdo", "config.json")
}

// Load reads path into out, keeping out's values for fields the file
// leaves empty. A missing file leaves out untouched.
func Load(path string, out *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var c Config
	if err := json.Unmarshal(b, &c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.DataDir == "" {
		c.DataDir = out.DataDir
	}
	if c.Store == "" {
		c.Store = out.Store
	}
	if c.Theme == "" {
		c.Theme = out.Theme
	}
	*out = c
	return nil
}

func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func UserHome() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}
