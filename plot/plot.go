// Package plot renders sample-count summaries of the harmonized table.
package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/carbocation/geoharmonize/harmonize"
)

// SampleCountsByStudy renders a bar chart of sample counts per study into
// dir as sample_count_per_study.png.
func SampleCountsByStudy(records []harmonize.Record, dir string) error {
	counts := map[string]int{}
	for _, rec := range records {
		counts[rec.StudyID]++
	}

	return renderBars(counts, "Sample count per study", filepath.Join(dir, "sample_count_per_study.png"))
}

// SampleCountsByCondition renders a bar chart of sample counts per condition
// label into dir as sample_count_per_condition.png.
func SampleCountsByCondition(records []harmonize.Record, dir string) error {
	counts := map[string]int{}
	for _, rec := range records {
		counts[string(rec.Condition)]++
	}

	return renderBars(counts, "Sample count per condition", filepath.Join(dir, "sample_count_per_condition.png"))
}

func renderBars(counts map[string]int, title, filename string) error {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bars := make([]chart.Value, 0, len(keys))
	for _, k := range keys {
		bars = append(bars, chart.Value{Label: k, Value: float64(counts[k])})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    700,
		Height:   400,
		BarWidth: 60,
		Bars:     bars,
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	return nil
}
