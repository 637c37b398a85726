package seriesmatrix

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/geoharmonize"
	"github.com/carbocation/pfx"
)

// Series-matrix metadata lines of interest. Each holds one tab-separated,
// double-quoted value per sample column.
const (
	linePrefixAccession       = "!Sample_geo_accession"
	linePrefixTitle           = "!Sample_title"
	linePrefixCharacteristics = "!Sample_characteristics_ch1"
	lineTableBegin            = "!series_matrix_table_begin"
)

// ParseError indicates a series-matrix file whose metadata lines cannot be
// aligned into per-sample records. It is fatal for that study only.
type ParseError struct {
	StudyID string
	Reason  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.StudyID, e.Reason)
}

// Parse reads a decompressed series-matrix stream and emits one RawRecord
// per sample column, in column order. Sample IDs come from the
// !Sample_geo_accession line; when that line is absent, the header of the
// expression table section is used instead (its columns after ID_REF are
// conventionally the GSM accessions). Characteristic lines whose column
// count disagrees with the sample-ID line width are a ParseError. Title
// lines that cannot be aligned are discarded rather than guessed at.
func Parse(r io.Reader, studyID string) ([]RawRecord, error) {
	var accessions, titles []string
	var charLines [][]string
	var tableHeader string

	rdr := bufio.NewReader(r)
	for {
		line, err := rdr.ReadString('\n')
		if err == io.EOF && line == "" {
			break
		} else if err != nil && err != io.EOF {
			return nil, pfx.Err(err)
		}

		switch {
		case strings.HasPrefix(line, linePrefixAccession):
			accessions = splitValues(line)
		case strings.HasPrefix(line, linePrefixTitle):
			titles = splitValues(line)
		case strings.HasPrefix(line, linePrefixCharacteristics):
			charLines = append(charLines, splitValues(line))
		case strings.HasPrefix(line, lineTableBegin):
			// The next line is the expression table header; nothing after
			// it is metadata, so capture it and stop.
			header, err := rdr.ReadString('\n')
			if err != nil && err != io.EOF {
				return nil, pfx.Err(err)
			}
			tableHeader = strings.TrimSuffix(header, "\n")
		}

		if tableHeader != "" || err == io.EOF {
			break
		}
	}

	if len(accessions) == 0 {
		var err error
		accessions, err = headerSampleIDs(tableHeader)
		if err != nil {
			return nil, ParseError{StudyID: studyID, Reason: err.Error()}
		}
	}

	for i, charLine := range charLines {
		if len(charLine) != len(accessions) {
			return nil, ParseError{
				StudyID: studyID,
				Reason: fmt.Sprintf("characteristics line %d has %d columns, expected %d",
					i+1, len(charLine), len(accessions)),
			}
		}
	}

	// A title row that does not line up with the samples cannot be assigned
	// confidently, so it is dropped wholesale.
	if len(titles) != len(accessions) {
		titles = nil
	}

	out := make([]RawRecord, 0, len(accessions))
	for i, acc := range accessions {
		rec := RawRecord{
			StudyID:  studyID,
			SampleID: acc,
		}
		if titles != nil {
			rec.Title = titles[i]
		}
		for _, charLine := range charLines {
			rec.Characteristics = append(rec.Characteristics, splitCharacteristic(charLine[i]))
		}
		out = append(out, rec)
	}

	return out, nil
}

// splitValues breaks a metadata line like
//
//	!Sample_title	"Normal-ovarian sample1"	"Ovarian sample1"
//
// into its per-sample values, dropping the line label and stripping quotes
// and whitespace.
func splitValues(line string) []string {
	parts := strings.Split(strings.TrimRight(line, "\r\n"), "\t")[1:]
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.Trim(strings.TrimSpace(p), `"`))
	}

	return out
}

// splitCharacteristic divides "tissue: ovary" at the first colon. Values
// with no colon become a keyless Characteristic.
func splitCharacteristic(v string) Characteristic {
	if k, val, found := strings.Cut(v, ":"); found {
		return Characteristic{Key: strings.TrimSpace(k), Value: strings.TrimSpace(val)}
	}

	return Characteristic{Value: strings.TrimSpace(v)}
}

// headerSampleIDs recovers sample IDs from the expression table header when
// the accession metadata line is missing. The delimiter is sniffed because
// re-exported matrix files do not always keep the tab convention.
func headerSampleIDs(tableHeader string) ([]string, error) {
	if tableHeader == "" {
		return nil, fmt.Errorf("no %s line and no expression table to fall back on", linePrefixAccession)
	}

	cr := csv.NewReader(strings.NewReader(tableHeader))
	cr.Comma = geoharmonize.DetermineDelimiter(strings.NewReader(tableHeader))
	cr.LazyQuotes = true

	cols, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("unreadable expression table header: %s", err)
	}

	// First column is conventionally ID_REF; the rest are GSM accessions.
	if len(cols) < 2 {
		return nil, fmt.Errorf("expression table header has no sample columns")
	}

	out := make([]string, 0, len(cols)-1)
	for _, c := range cols[1:] {
		out = append(out, strings.Trim(strings.TrimSpace(c), `"`))
	}

	return out, nil
}
