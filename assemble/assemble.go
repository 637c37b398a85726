// Package assemble merges harmonized records across studies into the final
// delimited outputs.
package assemble

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/carbocation/geoharmonize/harmonize"
	"github.com/carbocation/geoharmonize/qc"
)

// WriteError indicates an output path that could not be written. Unlike
// per-study parse failures, it is fatal for the whole run.
type WriteError struct {
	Path string
	Err  error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("writing %s: %s", e.Path, e.Err)
}

func (e WriteError) Unwrap() error {
	return e.Err
}

// WriteTable serializes the combined record set to path as CSV with the
// header study_id,sample_id,condition,source_text. Row order is the order
// records are supplied: studies in input order, samples in extraction order,
// so repeated runs over the same inputs are byte-identical.
func WriteTable(records []harmonize.Record, path string) error {
	return atomicWrite(path, func(w io.Writer) error {
		return gocsv.Marshal(&records, w)
	})
}

// diagnosticsRow flattens a qc.Report into one CSV line per study.
type diagnosticsRow struct {
	StudyID        string `csv:"study_id"`
	TotalSamples   int    `csv:"total_samples"`
	UnknownCount   int    `csv:"unknown_count"`
	DuplicateCount int    `csv:"duplicate_count"`
	Warnings       string `csv:"warnings"`
}

// WriteDiagnostics serializes one row per study, in study supply order.
// Warnings are joined with "; " so the file stays one-line-per-study.
func WriteDiagnostics(reports []qc.Report, path string) error {
	rows := make([]diagnosticsRow, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, diagnosticsRow{
			StudyID:        r.StudyID,
			TotalSamples:   r.TotalSamples,
			UnknownCount:   r.UnknownCount,
			DuplicateCount: len(r.DuplicateIDs),
			Warnings:       strings.Join(r.Warnings, "; "),
		})
	}

	return atomicWrite(path, func(w io.Writer) error {
		return gocsv.Marshal(&rows, w)
	})
}

// atomicWrite streams into a temporary file beside path and renames it into
// place, so a failed run never leaves a truncated output behind.
func atomicWrite(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp")
	if err != nil {
		return WriteError{Path: path, Err: err}
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return WriteError{Path: path, Err: err}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return WriteError{Path: path, Err: err}
	}

	return nil
}
