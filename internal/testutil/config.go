// Package testutil provides fixtures shared by this module's tests.
package testutil

import "github.com/crucible-lang/compiletest/internal/config"

// NewConfig returns a minimal run configuration for tests.
// It points at nothing on the real filesystem, so tests never depend on a
// tool installation. Options mutate the fixture before it is returned;
// after that it is as immutable as any other Config.
func NewConfig(opts ...func(*config.Config)) *config.Config {
	cfg := &config.Config{
		Mode:      config.Ui,
		Target:    "x86_64-unknown-linux-gnu",
		Host:      "x86_64-unknown-linux-gnu",
		SrcBase:   "tests/ui",
		BuildBase: "build/test/ui",
		StageID:   "stage1",
		Color:     config.ColorAuto,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMode sets the fixture's mode.
func WithMode(m config.Mode) func(*config.Config) {
	return func(cfg *config.Config) { cfg.Mode = m }
}

// WithCompareMode sets the fixture's compare-mode.
func WithCompareMode(m config.CompareMode) func(*config.Config) {
	return func(cfg *config.Config) { cfg.CompareMode = m }
}
