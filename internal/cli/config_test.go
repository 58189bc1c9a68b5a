package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crucible-lang/compiletest/internal/config"
	"github.com/crucible-lang/compiletest/internal/testutil"
)

func TestConfigFromFlags(t *testing.T) {
	out, err := executeCommand(t, "config",
		"--mode", "compile-fail",
		"--target", "x86_64-unknown-linux-gnu",
		"--host", "x86_64-unknown-linux-gnu",
		"--filter", "borrowck")
	require.NoError(t, err)

	assert.Contains(t, out, "mode: compile-fail")
	assert.Contains(t, out, "target: x86_64-unknown-linux-gnu")
	assert.Contains(t, out, "filter: borrowck")
	assert.NotContains(t, out, "compare_mode:")
}

func TestConfigFromSuite(t *testing.T) {
	out, err := executeCommand(t, "config", "--suite", "testdata/manifest")
	require.NoError(t, err)

	assert.Contains(t, out, "mode: run-pass")
	assert.Contains(t, out, "src_base: tests/run-pass")
	assert.Contains(t, out, "compiler: /usr/local/bin/rustc")
	assert.Contains(t, out, "valgrind: /usr/bin/valgrind")
}

func TestConfigFlagsOverrideSuite(t *testing.T) {
	out, err := executeCommand(t, "config",
		"--suite", "testdata/manifest",
		"--mode", "run-pass-valgrind",
		"--compare-mode", "nll")
	require.NoError(t, err)

	assert.Contains(t, out, "mode: run-pass-valgrind")
	assert.Contains(t, out, "compare_mode: nll")
}

func TestConfigJSON(t *testing.T) {
	out, err := executeCommand(t, "config",
		"--format", "json",
		"--suite", "testdata/manifest")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "run-pass", data["mode"])
	assert.Equal(t, "tests/run-pass", data["src_base"])
	_, present := data["compare_mode"]
	assert.False(t, present, "absent compare-mode should be omitted")
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "mode required",
			args:     []string{"config", "--target", "t", "--host", "h"},
			wantCode: ExitCommandError,
			wantMsg:  "--mode is required",
		},
		{
			name:     "unknown mode",
			args:     []string{"config", "--mode", "not-a-mode", "--target", "t", "--host", "h"},
			wantCode: ExitCommandError,
			wantMsg:  `unrecognized test mode "not-a-mode"`,
		},
		{
			name:     "missing triples",
			args:     []string{"config", "--mode", "ui"},
			wantCode: ExitCommandError,
			wantMsg:  "--target and --host are required",
		},
		{
			name:     "missing manifest",
			args:     []string{"config", "--suite", "testdata/no-such-dir"},
			wantCode: ExitCommandError,
			wantMsg:  "failed to load suite manifest",
		},
		{
			name:     "bad color",
			args:     []string{"config", "--mode", "ui", "--target", "t", "--host", "h", "--color", "rainbow"},
			wantCode: ExitCommandError,
			wantMsg:  "invalid --color",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, GetExitCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// An unknown compare-mode is a broken invocation: it aborts instead of
// returning an error the driver might swallow.
func TestConfigUnknownCompareModePanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = executeCommand(t, "config",
			"--mode", "ui",
			"--target", "t",
			"--host", "h",
			"--compare-mode", "bogus")
	})
}

func TestRenderConfigGolden(t *testing.T) {
	cfg := testutil.NewConfig(testutil.WithCompareMode(config.CompareNll))
	cfg.CompilerPath = "/usr/local/bin/rustc"
	cfg.Gdb = "/usr/bin/gdb"
	cfg.GdbVersion = 7012001
	cfg.GdbNativeLang = true
	cfg.LLVMVersion = "6.0"
	cfg.CC = "cc"
	cfg.Filter = "borrowck"
	cfg.Logfile = "run.log"

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "config", []byte(renderConfig(cfg)))
}
