// Package harmonize turns extracted per-sample records into labeled rows
// with a canonical condition vocabulary.
package harmonize

import (
	"github.com/carbocation/geoharmonize/condition"
	"github.com/carbocation/geoharmonize/seriesmatrix"
)

// Study classifies one study's raw records in extraction order. It is a pure
// function of its inputs: the same records and classifier always yield the
// same rows.
func Study(records []seriesmatrix.RawRecord, classifier *condition.Classifier) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		label, source := classifier.Classify(rec)
		out = append(out, Record{
			StudyID:    rec.StudyID,
			SampleID:   rec.SampleID,
			Condition:  label,
			SourceText: source,
		})
	}

	return out
}
