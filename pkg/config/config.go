// Package config loads the browser's connection settings from a simple
// key=value file.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Config is the connection record consumed at startup.
type Config struct {
	// Endpoint is the connection target (scheme selects the protocol
	// adapter). Required.
	Endpoint string
	// SecurityPolicy names the transport security profile. Defaults to
	// "None".
	SecurityPolicy string
	// Username and Password are optional credentials.
	Username string
	Password string
	// Fixture optionally names a YAML address-space file for the sim
	// adapter.
	Fixture string
}

// InvalidError reports a configuration that cannot be used. It is the only
// failure that aborts the program before connecting.
type InvalidError struct {
	Field  string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Load reads a key=value file. Blank lines and # comments are skipped,
// keys are lower-cased, values are trimmed and stripped of surrounding
// quotes. Unknown keys are ignored so one file can serve several tools.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := &Config{SecurityPolicy: "None"}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.Trim(strings.TrimSpace(val), `"'`)

		switch key {
		case "endpoint":
			cfg.Endpoint = val
		case "security_policy":
			if val != "" {
				cfg.SecurityPolicy = val
			}
		case "username":
			cfg.Username = val
		case "password":
			cfg.Password = val
		case "fixture":
			cfg.Fixture = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the required fields. Called before any connection
// attempt.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return &InvalidError{Field: "endpoint", Reason: "is required"}
	}
	return nil
}
