package seriesmatrix

import (
	"path/filepath"
	"regexp"
)

// UnknownStudy is assigned when no GSE accession can be recovered from an
// input path.
const UnknownStudy = "UNKNOWN_STUDY"

var gseAccession = regexp.MustCompile(`(GSE\d+)`)

// StudyIDFromPath extracts a GSE accession like "GSE66957" from the base
// name of a series-matrix file path or URL.
func StudyIDFromPath(path string) string {
	if m := gseAccession.FindString(filepath.Base(path)); m != "" {
		return m
	}

	return UnknownStudy
}
