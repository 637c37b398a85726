package seriesmatrix

import (
	"errors"
	"strings"
	"testing"
)

const basicMatrix = "!Series_title\t\"Ovarian study\"\n" +
	"!Sample_title\t\"Normal-ovarian sample1\"\t\"Ovarian tumor sample2\"\n" +
	"!Sample_geo_accession\t\"GSM1001\"\t\"GSM1002\"\n" +
	"!Sample_characteristics_ch1\t\"tissue: ovary\"\t\"tissue: ovary\"\n" +
	"!Sample_characteristics_ch1\t\"treatment: none\"\t\"treatment: cisplatin\"\n" +
	"!series_matrix_table_begin\n" +
	"\"ID_REF\"\t\"GSM1001\"\t\"GSM1002\"\n" +
	"A_23_P100001\t6.48\t6.51\n"

func TestParseBasic(t *testing.T) {
	records, err := Parse(strings.NewReader(basicMatrix), "GSE1")
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.StudyID != "GSE1" ||
		first.SampleID != "GSM1001" ||
		first.Title != "Normal-ovarian sample1" {
		t.Errorf("Mismatch: %+v", first)
	}

	if len(first.Characteristics) != 2 {
		t.Fatalf("Expected 2 characteristics, got %d", len(first.Characteristics))
	}
	if first.Characteristics[0].Key != "tissue" || first.Characteristics[0].Value != "ovary" {
		t.Errorf("Mismatch: %+v", first.Characteristics[0])
	}
	if first.Characteristics[1].Key != "treatment" || first.Characteristics[1].Value != "none" {
		t.Errorf("Mismatch: %+v", first.Characteristics[1])
	}

	if records[1].SampleID != "GSM1002" ||
		records[1].Characteristics[1].Value != "cisplatin" {
		t.Errorf("Mismatch: %+v", records[1])
	}
}

func TestParseFallsBackToTableHeader(t *testing.T) {
	matrix := "!Series_title\t\"No accession line\"\n" +
		"!series_matrix_table_begin\n" +
		"\"ID_REF\"\t\"GSM2001\"\t\"GSM2002\"\t\"GSM2003\"\n" +
		"A_23_P100001\t6.48\t6.51\t7.02\n"

	records, err := Parse(strings.NewReader(matrix), "GSE2")
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if records[0].SampleID != "GSM2001" || records[2].SampleID != "GSM2003" {
		t.Errorf("Mismatch: %+v", records)
	}
}

func TestParseNoSampleIDsAnywhere(t *testing.T) {
	matrix := "!Series_title\t\"Metadata only\"\n" +
		"!Sample_title\t\"sample1\"\t\"sample2\"\n"

	_, err := Parse(strings.NewReader(matrix), "GSE3")
	if err == nil {
		t.Fatal("Expected an error for a file with no sample IDs")
	}

	var parseErr ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected a ParseError, got %T: %v", err, err)
	}
	if parseErr.StudyID != "GSE3" {
		t.Errorf("Expected study GSE3 in the error, got %s", parseErr.StudyID)
	}
}

func TestParseMisalignedCharacteristics(t *testing.T) {
	matrix := "!Sample_geo_accession\t\"GSM1\"\t\"GSM2\"\n" +
		"!Sample_characteristics_ch1\t\"tissue: ovary\"\n"

	_, err := Parse(strings.NewReader(matrix), "GSE4")

	var parseErr ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected a ParseError, got %T: %v", err, err)
	}
}

func TestParseMisalignedTitlesDropped(t *testing.T) {
	matrix := "!Sample_title\t\"only one title\"\n" +
		"!Sample_geo_accession\t\"GSM1\"\t\"GSM2\"\n"

	records, err := Parse(strings.NewReader(matrix), "GSE5")
	if err != nil {
		t.Fatal(err)
	}

	for _, rec := range records {
		if rec.Title != "" {
			t.Errorf("Expected misaligned titles to be dropped, got %q", rec.Title)
		}
	}
}

func TestParseRowCountBound(t *testing.T) {
	records, err := Parse(strings.NewReader(basicMatrix), "GSE1")
	if err != nil {
		t.Fatal(err)
	}

	// Two sample columns in the fixture
	if len(records) > 2 {
		t.Errorf("Parse emitted %d records for 2 sample columns", len(records))
	}
}

func TestStudyIDFromPath(t *testing.T) {
	cases := map[string]string{
		"metadata/GSE27651_series_matrix.txt.gz":        "GSE27651",
		"GSE66957_series_matrix.txt":                    "GSE66957",
		"https://example.com/GSE54388_series_matrix.gz": "GSE54388",
		"metadata/some_other_file.txt":                  UnknownStudy,
	}

	for path, want := range cases {
		if got := StudyIDFromPath(path); got != want {
			t.Errorf("StudyIDFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
