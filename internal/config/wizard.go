package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectContentDir looks for a directory that already holds notes.
func detectContentDir() string {
	for _, candidate := range []string{".", "docs", "site", "content"} {
		if _, err := os.Stat(filepath.Join(candidate, "notes")); err == nil {
			return candidate
		}
	}
	return "."
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to webnotes! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Where documents come from.
	sourcePrompt := promptui.Select{
		Label: "Where are the markdown notes?",
		Items: []string{
			"local directory",
			"remote site (http/https)",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	if sourceIdx == 0 {
		dirPrompt := promptui.Prompt{
			Label:   "Content directory",
			Default: detectContentDir(),
		}
		cfg.ContentDir, err = dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
	} else {
		urlPrompt := promptui.Prompt{
			Label: "Base URL of the published notes",
			Validate: func(s string) error {
				c := DefaultConfig()
				c.BaseURL = s
				return c.Validate()
			},
		}
		cfg.BaseURL, err = urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("base url: %w", err)
		}
	}

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to serve on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Optional catalog file.
	catalogPrompt := promptui.Prompt{
		Label:   "Catalog file (leave blank for the built-in topic list)",
		Default: "",
	}
	cfg.Catalog, err = catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	// 4. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(append([]string(nil), DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
