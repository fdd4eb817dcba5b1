package sshconf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// UserConfigPath returns the path of the current user's ssh client
// configuration, ~/.ssh/config.
func UserConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".ssh", "config"), nil
}

// LoadFile parses the configuration file at path. A leading ~ in the path is
// expanded to the current user's home directory.
func LoadFile(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand path %q: %w", path, err)
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	config, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", expanded, err)
	}
	return config, nil
}

// LoadUserConfig parses ~/.ssh/config.
func LoadUserConfig() (*Config, error) {
	path, err := UserConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// WriteFile renders the configuration into the file at path, expanding a
// leading ~ like LoadFile. The file is created readable by the owner only,
// as the OpenSSH client expects of its configuration.
func WriteFile(path string, config *Config, opts ...DumpOption) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expand path %q: %w", path, err)
	}
	if err := os.WriteFile(expanded, []byte(DumpString(config, opts...)), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
