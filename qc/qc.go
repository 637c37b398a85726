// Package qc validates one study's harmonized records before assembly.
// Problems are reported, not repaired: only records that cannot appear in a
// coherent output (missing or duplicate sample IDs) are dropped.
package qc

import (
	"fmt"

	"github.com/carbocation/geoharmonize/condition"
	"github.com/carbocation/geoharmonize/harmonize"
)

// Config holds the validation knobs. It is passed explicitly so repeated or
// parallel runs can use different thresholds without touching shared state.
type Config struct {
	// MinSamples is the smallest per-study sample count that does not draw a
	// warning. Studies below it are kept.
	MinSamples int
}

// DefaultConfig flags studies with fewer than 2 samples, the minimum for any
// within-study contrast.
var DefaultConfig = Config{MinSamples: 2}

// Report summarizes validation of one study. It feeds the diagnostics
// output; it never blocks the harmonized table.
type Report struct {
	StudyID      string
	TotalSamples int
	UnknownCount int
	DuplicateIDs []string
	Warnings     []string
}

// Check validates one study's records in order and returns the retained
// subset plus a Report. Records with an empty sample ID are dropped. For a
// duplicated sample ID the first occurrence is kept and later ones are
// dropped. Records with an Unknown condition are retained and counted. The
// input slice is not modified.
func Check(studyID string, records []harmonize.Record, cfg Config) ([]harmonize.Record, Report) {
	report := Report{StudyID: studyID}

	kept := make([]harmonize.Record, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	flaggedDup := make(map[string]struct{})

	for _, rec := range records {
		if rec.SampleID == "" {
			report.Warnings = append(report.Warnings,
				"dropped a record with an empty sample ID")
			continue
		}

		if _, dup := seen[rec.SampleID]; dup {
			if _, flagged := flaggedDup[rec.SampleID]; !flagged {
				report.DuplicateIDs = append(report.DuplicateIDs, rec.SampleID)
				flaggedDup[rec.SampleID] = struct{}{}
			}
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("dropped duplicate sample ID %s", rec.SampleID))
			continue
		}
		seen[rec.SampleID] = struct{}{}

		if rec.Condition == condition.Unknown {
			report.UnknownCount++
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("sample %s has no recognized condition keyword", rec.SampleID))
		}

		kept = append(kept, rec)
	}

	report.TotalSamples = len(kept)
	if report.TotalSamples < cfg.MinSamples {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("study has %d samples, fewer than the minimum %d", report.TotalSamples, cfg.MinSamples))
	}

	return kept, report
}
