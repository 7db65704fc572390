package compile

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings control optional front-end behavior for one build.
type Settings struct {
	// Optimize enables constant folding and other cheap simplifications
	// in later pipeline stages.
	Optimize bool `toml:"optimize"`
	// MangleNames keeps emitted snippets collision-free when the same
	// recipe runs more than once. Disable only for readable test output.
	MangleNames bool `toml:"mangle_names"`
	// MaxDiagnostics caps the number of stored diagnostics per build.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// CacheDir overrides the on-disk program cache location. Empty means
	// the standard user cache directory.
	CacheDir string `toml:"cache_dir"`
}

// DefaultSettings returns the settings used when no overrides are given.
func DefaultSettings() Settings {
	return Settings{
		Optimize:       true,
		MangleNames:    true,
		MaxDiagnostics: 100,
	}
}

// LoadSettings reads overrides from a TOML file on top of the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if s.MaxDiagnostics <= 0 {
		s.MaxDiagnostics = DefaultSettings().MaxDiagnostics
	}
	return s, nil
}
