package surface

import (
	"fmt"
	"io"
)

// Trace is a Recorder whose saved form ends with the fingerprint line, so two
// trace files can be compared by their last line alone.
type Trace struct {
	*Recorder
}

// NewTrace creates a trace surface for a page of the given size
func NewTrace(width, height float64) *Trace {
	return &Trace{Recorder: NewRecorder(width, height)}
}

// Save writes the command lines followed by "fingerprint <hex>"
func (tr *Trace) Save(w io.Writer) error {
	if err := tr.Recorder.Save(w); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	if _, err := fmt.Fprintf(w, "fingerprint %s\n", tr.Fingerprint()); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	return nil
}
