package qc

import (
	"strings"
	"testing"

	"github.com/carbocation/geoharmonize/condition"
	"github.com/carbocation/geoharmonize/harmonize"
)

func TestDuplicateSampleIDs(t *testing.T) {
	records := []harmonize.Record{
		{StudyID: "GSE1", SampleID: "GSM1", Condition: condition.Control},
		{StudyID: "GSE1", SampleID: "GSM1", Condition: condition.Treated},
		{StudyID: "GSE1", SampleID: "GSM2", Condition: condition.Treated},
	}

	kept, report := Check("GSE1", records, DefaultConfig)

	if len(kept) != 2 {
		t.Fatalf("Expected 2 kept records, got %d", len(kept))
	}
	// First occurrence wins
	if kept[0].SampleID != "GSM1" || kept[0].Condition != condition.Control {
		t.Errorf("Mismatch: %+v", kept[0])
	}
	if len(report.DuplicateIDs) != 1 || report.DuplicateIDs[0] != "GSM1" {
		t.Errorf("Expected DuplicateIDs [GSM1], got %v", report.DuplicateIDs)
	}
	if report.TotalSamples != 2 {
		t.Errorf("Expected TotalSamples 2, got %d", report.TotalSamples)
	}
}

func TestEmptySampleIDDropped(t *testing.T) {
	records := []harmonize.Record{
		{StudyID: "GSE1", SampleID: "", Condition: condition.Control},
		{StudyID: "GSE1", SampleID: "GSM1", Condition: condition.Control},
		{StudyID: "GSE1", SampleID: "GSM2", Condition: condition.Treated},
	}

	kept, report := Check("GSE1", records, DefaultConfig)

	if len(kept) != 2 {
		t.Fatalf("Expected 2 kept records, got %d", len(kept))
	}
	for _, rec := range kept {
		if rec.SampleID == "" {
			t.Error("A record with an empty sample ID was retained")
		}
	}

	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "empty sample ID") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected an empty-sample-ID warning, got %v", report.Warnings)
	}
}

func TestUnknownRetainedAndCounted(t *testing.T) {
	records := []harmonize.Record{
		{StudyID: "GSE1", SampleID: "GSM1", Condition: condition.Control},
		{StudyID: "GSE1", SampleID: "GSM2", Condition: condition.Unknown},
	}

	kept, report := Check("GSE1", records, DefaultConfig)

	if len(kept) != 2 {
		t.Fatalf("Expected Unknown records to be retained, kept %d", len(kept))
	}
	if report.UnknownCount != 1 {
		t.Errorf("Expected UnknownCount 1, got %d", report.UnknownCount)
	}
}

func TestMinSamplesWarning(t *testing.T) {
	records := []harmonize.Record{
		{StudyID: "GSE1", SampleID: "GSM1", Condition: condition.Control},
	}

	kept, report := Check("GSE1", records, Config{MinSamples: 2})

	// Warning only; the study is retained
	if len(kept) != 1 {
		t.Fatalf("Expected the undersized study to be retained, kept %d", len(kept))
	}

	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "fewer than the minimum") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a minimum-sample-count warning, got %v", report.Warnings)
	}
}

func TestInputNotMutated(t *testing.T) {
	records := []harmonize.Record{
		{StudyID: "GSE1", SampleID: "GSM1", Condition: condition.Control},
		{StudyID: "GSE1", SampleID: "GSM1", Condition: condition.Treated},
	}

	Check("GSE1", records, DefaultConfig)

	if records[1].SampleID != "GSM1" || records[1].Condition != condition.Treated {
		t.Errorf("Check mutated its input: %+v", records[1])
	}
}
