// geoharmonize ingests GEO series-matrix metadata files and emits one
// combined sample-level CSV (study, sample, canonical condition) plus a
// per-study diagnostics CSV, for downstream cross-study analysis.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/carbocation/pfx"

	"github.com/carbocation/geoharmonize"
	"github.com/carbocation/geoharmonize/assemble"
	"github.com/carbocation/geoharmonize/condition"
	"github.com/carbocation/geoharmonize/harmonize"
	"github.com/carbocation/geoharmonize/plot"
	"github.com/carbocation/geoharmonize/qc"
	"github.com/carbocation/geoharmonize/seriesmatrix"
)

func main() {
	var files, out, diagnostics, plotDir, rules string
	var minSamples int

	flag.StringVar(&files, "files", "", "Comma-delimited series-matrix files (.txt or .txt.gz) or http(s) URLs, one per study.")
	flag.StringVar(&out, "out", "harmonized_metadata.csv", "Path for the combined harmonized CSV.")
	flag.StringVar(&diagnostics, "diagnostics", "harmonization_diagnostics.csv", "Path for the per-study diagnostics CSV.")
	flag.StringVar(&plotDir, "plot", "", "Optional directory for sample-count PNG plots. No plots are rendered when empty.")
	flag.StringVar(&rules, "rules", "default", "Named condition rule table. Options include: "+condition.TableNames())
	flag.IntVar(&minSamples, "min-samples", qc.DefaultConfig.MinSamples, "Smallest per-study sample count that does not draw a warning.")
	flag.Parse()

	geoharmonize.PrintBuildStamp()

	if files == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	classifier, err := condition.New(rules)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Started running at", time.Now())

	if err := run(strings.Split(files, ","), out, diagnostics, plotDir, classifier, qc.Config{MinSamples: minSamples}); err != nil {
		log.Fatalln(err)
	}

	log.Println("Completed at", time.Now())
}

func run(paths []string, out, diagnostics, plotDir string, classifier *condition.Classifier, cfg qc.Config) error {
	var records []harmonize.Record
	var reports []qc.Report

	// A study that fails to parse is logged and skipped; the run fails only
	// when nothing parses or the output stage fails.
	processed := 0
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		studyRecords, report, err := processStudy(path, classifier, cfg)
		if err != nil {
			log.Println("skipping study:", pfx.Err(err))
			continue
		}

		processed++
		records = append(records, studyRecords...)
		reports = append(reports, report)
	}

	if processed == 0 {
		return fmt.Errorf("none of the %d input(s) could be processed", len(paths))
	}

	if err := assemble.WriteTable(records, out); err != nil {
		return err
	}
	if err := assemble.WriteDiagnostics(reports, diagnostics); err != nil {
		return err
	}
	log.Printf("Wrote %d harmonized samples from %d studies to %s (diagnostics: %s)\n", len(records), processed, out, diagnostics)

	if plotDir != "" {
		if err := plot.SampleCountsByStudy(records, plotDir); err != nil {
			log.Println("per-study plot:", pfx.Err(err))
		}
		if err := plot.SampleCountsByCondition(records, plotDir); err != nil {
			log.Println("per-condition plot:", pfx.Err(err))
		}
	}

	return nil
}

func processStudy(path string, classifier *condition.Classifier, cfg qc.Config) ([]harmonize.Record, qc.Report, error) {
	studyID := seriesmatrix.StudyIDFromPath(path)
	log.Printf("Processing %s (%s)\n", studyID, path)

	rc, err := geoharmonize.Open(path)
	if err != nil {
		return nil, qc.Report{}, err
	}
	defer rc.Close()

	raw, err := seriesmatrix.Parse(rc, studyID)
	if err != nil {
		return nil, qc.Report{}, err
	}

	kept, report := qc.Check(studyID, harmonize.Study(raw, classifier), cfg)
	for _, warning := range report.Warnings {
		log.Printf("%s: %s\n", studyID, warning)
	}

	return kept, report, nil
}
