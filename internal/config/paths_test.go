package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uiTestPaths(file string) TestPaths {
	return TestPaths{
		File:        file,
		Base:        "tests/ui",
		RelativeDir: "foo",
	}
}

func TestExpectedOutputPath(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		revision    string
		compareMode CompareMode
		kind        string
		want        string
	}{
		{
			name: "no modifiers",
			file: "tests/ui/foo/bar.rs",
			kind: UIStderr,
			want: "tests/ui/foo/bar.stderr",
		},
		{
			name: "stdout kind",
			file: "tests/ui/foo/bar.rs",
			kind: UIStdout,
			want: "tests/ui/foo/bar.stdout",
		},
		{
			name:     "revision only",
			file:     "tests/ui/foo/bar.rs",
			revision: "case1",
			kind:     UIStdout,
			want:     "tests/ui/foo/bar.case1.stdout",
		},
		{
			name:        "compare mode only",
			file:        "tests/ui/foo/bar.rs",
			compareMode: CompareNll,
			kind:        UIStderr,
			want:        "tests/ui/foo/bar.nll.stderr",
		},
		{
			name:        "revision precedes compare mode",
			file:        "tests/ui/foo/bar.rs",
			revision:    "case1",
			compareMode: CompareNll,
			kind:        UIStderr,
			want:        "tests/ui/foo/bar.case1.nll.stderr",
		},
		{
			name: "file without extension",
			file: "tests/ui/foo/bar",
			kind: UIStderr,
			want: "tests/ui/foo/bar.stderr",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpectedOutputPath(uiTestPaths(tt.file), tt.revision, tt.compareMode, tt.kind)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpectedOutputPathRejectsUnknownKind(t *testing.T) {
	tests := []string{"log", "", "STDERR", "stderr.golden"}
	for _, kind := range tests {
		t.Run(kind, func(t *testing.T) {
			assert.Panics(t, func() {
				ExpectedOutputPath(uiTestPaths("tests/ui/foo/bar.rs"), "case1", CompareNll, kind)
			})
		})
	}
}
