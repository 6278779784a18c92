package config

import "time"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".webnotes.yml"

// DefaultExcludes are glob patterns never treated as notes.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"README.md",
	"CHANGELOG.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentDir:          ".",
		HomeFile:            "home.md",
		SiteTitle:           "Web APIs Learning Notes",
		Port:                8080,
		MaxConcurrency:      8,
		FetchTimeoutSeconds: 10,
		Include:             []string{"**/*.md"},
		Exclude:             append([]string(nil), DefaultExcludes...),
	}
}

// FetchTimeout returns the per-document fetch timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
