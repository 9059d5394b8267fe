package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCalculatePercentile_EmptyInput_ReturnsZero(t *testing.T) {
	// GIVEN an empty slice
	// WHEN CalculatePercentile is called
	// THEN it returns 0 rather than panicking
	if got := CalculatePercentile([]float64{}, 99); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestCalculatePercentile_SingleElement_ReturnsThatElement(t *testing.T) {
	if got := CalculatePercentile([]float64{42.0}, 50); got != 42.0 {
		t.Errorf("got %v, want 42.0", got)
	}
}

func TestCalculatePercentile_Interpolates(t *testing.T) {
	// GIVEN a known sorted set
	data := []float64{10, 20, 30, 40}

	// WHEN the 50th percentile is requested
	got := CalculatePercentile(data, 50)

	// THEN it interpolates between the two middle ranks
	want := 20 + (30-20)*0.5
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWriteCSVReport_EmptyPathIsNoop(t *testing.T) {
	e := &Engine{Trucks: map[string]*Truck{}, Metrics: NewRunMetrics()}
	path, err := WriteCSVReport("", e)
	if err != nil || path != "" {
		t.Fatalf("WriteCSVReport(\"\") = (%q, %v), want (\"\", nil)", path, err)
	}
}

func TestWriteCSVReport_WritesSummaryLine(t *testing.T) {
	// GIVEN an engine with one truck and some recorded metrics
	m := NewRunMetrics()
	m.RecordOrderCreated()
	m.RecordCompletion(&Order{CreatedAt: 0}, 30)
	e := &Engine{
		Trucks:  map[string]*Truck{"T1": NewTruck("T1", "N1")},
		Metrics: m,
	}

	// WHEN a report is written into a temp directory
	dir := t.TempDir()
	outPath, err := WriteCSVReport(filepath.Join(dir, "report.csv"), e)
	if err != nil {
		t.Fatalf("WriteCSVReport error: %v", err)
	}

	// THEN the file exists and contains a summary row and the truck row
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "truck,T1,") {
		t.Errorf("report missing truck row: %s", content)
	}
	if !strings.Contains(content, "summary,,,") {
		t.Errorf("report missing summary row: %s", content)
	}
}
