package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/userstore/internal/user"
)

// FileNames are the config file names Load looks for, in order.
var FileNames = []string{"userstore.yml", "userstore.yaml"}

// SeedUser is an extra user the demo creates at startup.
type SeedUser struct {
	Name  string    `yaml:"name"`
	Email string    `yaml:"email"`
	Role  user.Role `yaml:"role"`
}

// Config holds settings loaded from userstore.yml.
type Config struct {
	// MaxUsers caps the store size. Zero means store.MaxUsers.
	MaxUsers int        `yaml:"maxUsers,omitempty"`
	Verbose  bool       `yaml:"verbose,omitempty"`
	Users    []SeedUser `yaml:"users,omitempty"`
}

// Load attempts to read userstore.yml or userstore.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists; any other read failure is returned.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

// Validate checks values yaml decoding cannot. Emails are not checked here;
// the store rejects bad ones at create time.
func (c *Config) Validate() error {
	if c.MaxUsers < 0 {
		return fmt.Errorf("maxUsers must not be negative, got %d", c.MaxUsers)
	}
	for i, u := range c.Users {
		if u.Role == "" {
			return fmt.Errorf("users[%d]: role is required", i)
		}
	}
	return nil
}
