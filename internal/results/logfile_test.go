package results

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/crucible-lang/compiletest/internal/testutil"
)

func TestLogWriterStream(t *testing.T) {
	var buf bytes.Buffer
	run := NewRun(testutil.NewConfig())

	lw, err := NewLogWriter(&buf, run)
	require.NoError(t, err)

	outcomes := []Outcome{
		{Test: "ui/a.rs", Status: StatusOk, Duration: 40 * time.Millisecond},
		{Test: "ui/b.rs", Revision: "case1", Status: StatusFailed},
	}
	for _, o := range outcomes {
		require.NoError(t, lw.WriteOutcome(o))
	}
	require.NoError(t, lw.Close())

	// First document is the run header.
	dec := yaml.NewDecoder(&buf)
	var gotRun Run
	require.NoError(t, dec.Decode(&gotRun))
	assert.Equal(t, run.ID, gotRun.ID)
	assert.Equal(t, "ui", gotRun.Mode)

	// Remaining documents are the outcomes, without run IDs.
	var gotOutcomes []Outcome
	for {
		var o Outcome
		err := dec.Decode(&o)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		gotOutcomes = append(gotOutcomes, o)
	}
	require.Len(t, gotOutcomes, 2)
	assert.Empty(t, gotOutcomes[0].RunID)
	assert.Equal(t, "ui/a.rs", gotOutcomes[0].Test)
	assert.Equal(t, StatusOk, gotOutcomes[0].Status)
	assert.Equal(t, 40*time.Millisecond, gotOutcomes[0].Duration)
	assert.Equal(t, "case1", gotOutcomes[1].Revision)
	assert.Equal(t, StatusFailed, gotOutcomes[1].Status)
}

func TestLogWriterRejectsInvalidStatus(t *testing.T) {
	var buf bytes.Buffer
	lw, err := NewLogWriter(&buf, NewRun(testutil.NewConfig()))
	require.NoError(t, err)

	err = lw.WriteOutcome(Outcome{Test: "ui/x.rs", Status: "exploded"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestLogWriterNormalizesNames(t *testing.T) {
	var buf bytes.Buffer
	lw, err := NewLogWriter(&buf, NewRun(testutil.NewConfig()))
	require.NoError(t, err)

	require.NoError(t, lw.WriteOutcome(Outcome{Test: "ui/café.rs", Status: StatusOk}))
	require.NoError(t, lw.Close())

	assert.Contains(t, buf.String(), "café.rs")
}
