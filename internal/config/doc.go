// Package config provides configuration management for tagrename.
//
// Settings are stored as JSON. Use DefaultSettings() for sensible
// defaults, or Load() to read a config file:
//
//	settings, err := config.Load("/path/to/config.json")
//	// A missing file is not an error; defaults are returned.
//
// # Configuration Options
//
// Settings includes:
//   - Template: the default filename template ("%artist - %title")
//   - MaxConcurrentReads: bound on parallel metadata reads
//   - SanitizeFileNames: replace filesystem-hostile characters
//   - OnExisting: what Apply does when the destination already exists
//   - Verbose: show per-file progress detail
package config
