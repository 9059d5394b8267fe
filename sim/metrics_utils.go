package sim

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// CalculatePercentile returns the p-th percentile of data using linear
// interpolation between closest ranks. Returns 0 for empty input.
func CalculatePercentile(data []float64, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))

	if lowerIdx == upperIdx {
		return sorted[lowerIdx]
	}
	if upperIdx >= n {
		return sorted[n-1]
	}
	return sorted[lowerIdx] + (sorted[upperIdx]-sorted[lowerIdx])*(rank-float64(lowerIdx))
}

// WriteCSVReport writes a per-truck distance/status report and an order
// summary line to reportPath, suffixing a timestamp so repeated runs
// don't clobber each other. If reportPath is a directory, a timestamped
// file is created inside it.
func WriteCSVReport(reportPath string, e *Engine) (string, error) {
	if reportPath == "" {
		return "", nil
	}
	ts := time.Now().Format("20060102-150405")
	outPath := reportPath
	if fi, err := os.Stat(outPath); err == nil && fi.IsDir() {
		outPath = filepath.Join(outPath, fmt.Sprintf("report-%s.csv", ts))
	} else {
		ext := filepath.Ext(outPath)
		base := outPath[:len(outPath)-len(ext)]
		outPath = fmt.Sprintf("%s-%s%s", base, ts, ext)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "section,truck_id,status,distance_km,orders_created,orders_completed,orders_cancelled,rest_episodes,timestamp")
	for _, id := range e.truckIDsSorted() {
		t := e.Trucks[id]
		fmt.Fprintf(f, "truck,%s,%s,%.2f,,,,,%s\n", t.ID, t.Status, e.Metrics.TruckDistanceKm[t.ID], ts)
	}
	fmt.Fprintf(f, "summary,,,%.2f,%d,%d,%d,%d,%s\n",
		e.Metrics.TotalDistanceKm, e.Metrics.OrdersCreated, e.Metrics.OrdersCompleted,
		e.Metrics.OrdersCancelled, e.Metrics.RestEpisodes, ts)

	return outPath, nil
}
