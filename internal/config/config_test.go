package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorConfig(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorConfig
		wantErr bool
	}{
		{in: "auto", want: ColorAuto},
		{in: "always", want: ColorAlways},
		{in: "never", want: ColorNever},
		{in: "rainbow", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorConfig(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigOptionalFieldsAbsentByDefault(t *testing.T) {
	cfg := Config{Mode: Ui, Target: "x86_64-unknown-linux-gnu"}

	// An absent tool or probe is the zero value, never an error.
	assert.Empty(t, cfg.DocPath)
	assert.Empty(t, cfg.ValgrindPath)
	assert.Empty(t, cfg.Gdb)
	assert.Zero(t, cfg.GdbVersion)
	assert.Empty(t, cfg.LldbVersion)
	assert.Empty(t, cfg.CompareMode)
	assert.Empty(t, cfg.Logfile)
}

// Config is shared read-only by every worker. Hammer one value from many
// goroutines to document that reads need no coordination (the race
// detector would flag any accidental mutation sneaking into this module).
func TestConfigConcurrentReads(t *testing.T) {
	cfg := &Config{
		Mode:        Ui,
		CompareMode: CompareNll,
		Target:      "x86_64-unknown-linux-gnu",
		Host:        "x86_64-unknown-linux-gnu",
		StageID:     "stage1",
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = cfg.Mode.Disambiguator()
				_ = cfg.CompareMode.String()
				_ = ExpectedOutputPath(TestPaths{File: "tests/ui/a.rs", Base: "tests/ui"},
					"", cfg.CompareMode, UIStderr)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, Ui, cfg.Mode)
	assert.Equal(t, CompareNll, cfg.CompareMode)
}
