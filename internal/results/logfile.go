package results

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LogWriter streams run events to a logfile as a sequence of YAML
// documents: first the run header, then one document per outcome. The
// stream stays parseable if the process dies mid-run - every document
// already written is complete.
type LogWriter struct {
	enc *yaml.Encoder
}

// NewLogWriter starts a log for the given run on w.
func NewLogWriter(w io.Writer, run Run) (*LogWriter, error) {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(run); err != nil {
		return nil, fmt.Errorf("write run header: %w", err)
	}
	return &LogWriter{enc: enc}, nil
}

// WriteOutcome appends one outcome document.
// The run ID is dropped from the document: the stream belongs to a single
// run and the header already names it. Test names are NFC-normalized like
// the store's.
func (l *LogWriter) WriteOutcome(o Outcome) error {
	o.RunID = ""
	o.Test = canonicalName(o.Test)
	if !ValidStatus(o.Status) {
		return fmt.Errorf("write outcome: invalid status %q", o.Status)
	}
	if err := l.enc.Encode(o); err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}
	return nil
}

// Close flushes the YAML stream. The underlying writer is the caller's to
// close.
func (l *LogWriter) Close() error {
	return l.enc.Close()
}
