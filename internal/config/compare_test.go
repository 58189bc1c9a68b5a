package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCompareMode(t *testing.T) {
	assert.Equal(t, CompareNll, ParseCompareMode("nll"))
	assert.Equal(t, "nll", CompareNll.String())
}

func TestParseCompareModeUnknownPanics(t *testing.T) {
	tests := []string{"bogus", "", "NLL", "ui"}
	for _, tag := range tests {
		t.Run(tag, func(t *testing.T) {
			assert.PanicsWithValue(t,
				`unknown --compare-mode option: "`+tag+`"`,
				func() { ParseCompareMode(tag) })
		})
	}
}
