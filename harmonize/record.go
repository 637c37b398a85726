package harmonize

import "github.com/carbocation/geoharmonize/condition"

// Record is one harmonized sample: the flat row that downstream cross-study
// analysis consumes. SourceText preserves the raw field that decided the
// condition, so a surprising label can be traced without reopening the
// series-matrix file.
type Record struct {
	StudyID    string          `csv:"study_id"`
	SampleID   string          `csv:"sample_id"`
	Condition  condition.Label `csv:"condition"`
	SourceText string          `csv:"source_text"`
}
