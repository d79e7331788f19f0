// Package report serializes health records for output.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"healthsnap/internal/health"
)

// Reporter writes a record as indented JSON, one blob per record.
type Reporter struct {
	w io.Writer
}

func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report serializes rec and writes it with a single Write call, followed by a
// trailing newline inside the same blob.
func (r *Reporter) Report(rec health.Record) error {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')
	if _, err := r.w.Write(data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
