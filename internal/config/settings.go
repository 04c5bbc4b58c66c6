package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Existing-destination policies for applying renames.
const (
	// OnExistingFail aborts the whole apply when a destination exists.
	OnExistingFail = "fail"

	// OnExistingSkip leaves the conflicting file in place and moves on.
	OnExistingSkip = "skip"
)

// Settings holds all configuration options.
type Settings struct {
	// Template is the filename template used when the command line
	// does not supply one.
	Template string `json:"template"`

	// MaxConcurrentReads bounds how many files have their metadata
	// read in parallel while planning.
	MaxConcurrentReads int `json:"max_concurrent_reads"`

	// SanitizeFileNames replaces characters that are invalid in file
	// names with underscores after the template is rendered.
	SanitizeFileNames bool `json:"sanitize_file_names"`

	// OnExisting is the policy when a rename destination already
	// exists: "fail" or "skip".
	OnExisting string `json:"on_existing"`

	// Verbose enables per-file progress detail.
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Template:           "%artist - %title",
		MaxConcurrentReads: 4,
		SanitizeFileNames:  true,
		OnExisting:         OnExistingFail,
	}
}

// Load reads settings from a JSON file. A missing file is not an
// error: defaults are returned, matching first-run behavior.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
