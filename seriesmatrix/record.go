package seriesmatrix

// Characteristic is one "key: value" annotation attached to a sample, e.g.
// "tissue: ovary". GEO does not constrain the vocabulary, so both halves are
// free text. Values without a colon yield an empty Key.
type Characteristic struct {
	Key   string
	Value string
}

// RawRecord is the per-sample slice of a series-matrix file: one sample
// column's accession, title, and characteristics, in file order. Records are
// not modified after Parse returns them.
type RawRecord struct {
	StudyID         string
	SampleID        string
	Title           string
	Characteristics []Characteristic
}
