package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModesGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "modes", []byte(renderModes()))
}

func TestModesText(t *testing.T) {
	out, err := executeCommand(t, "modes")
	require.NoError(t, err)
	assert.Equal(t, renderModes(), out)
}

func TestModesJSON(t *testing.T) {
	out, err := executeCommand(t, "modes", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   []ModeInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 15)

	assert.Equal(t, "compile-fail", resp.Data[0].Mode)
	assert.Empty(t, resp.Data[0].Disambiguator)

	byMode := make(map[string]string, len(resp.Data))
	for _, info := range resp.Data {
		byMode[info.Mode] = info.Disambiguator
	}
	assert.Equal(t, ".pretty", byMode["pretty"])
	assert.Equal(t, ".gdb", byMode["debuginfo-gdb"])
	assert.Equal(t, ".lldb", byMode["debuginfo-lldb"])
	assert.Empty(t, byMode["ui"])
}
