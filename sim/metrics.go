// Tracks run-wide statistics for final reporting: order throughput, fleet
// distance, rest episodes, per-node congestion, and percentile timings.

package sim

import "fmt"

// RunMetrics aggregates statistics for a single simulation run. The
// engine mutates it as events execute; Print/WriteCSVReport render it
// once the run ends.
type RunMetrics struct {
	OrdersCreated   int
	OrdersCompleted int
	OrdersCancelled int
	RestEpisodes    int
	TotalDistanceKm float64

	// NodeMaxQueueDepth tracks the high-water mark of each node's wait
	// queue, keyed by node id.
	NodeMaxQueueDepth map[string]int
	// TruckDistanceKm tracks cumulative distance driven per truck id.
	TruckDistanceKm map[string]float64

	orderCycleTimes    []float64
	truckIdleDurations []float64
}

// NewRunMetrics returns a zeroed RunMetrics ready for use.
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{
		NodeMaxQueueDepth: make(map[string]int),
		TruckDistanceKm:   make(map[string]float64),
	}
}

// RecordOrderCreated increments the created-order counter.
func (m *RunMetrics) RecordOrderCreated() {
	m.OrdersCreated++
}

// RecordCancellation increments the cancelled-order counter.
func (m *RunMetrics) RecordCancellation() {
	m.OrdersCancelled++
}

// RecordCompletion increments the completed-order counter and records
// the order's total cycle time (creation to delivery).
func (m *RunMetrics) RecordCompletion(order *Order, completedAt float64) {
	m.OrdersCompleted++
	m.orderCycleTimes = append(m.orderCycleTimes, completedAt-order.CreatedAt)
}

// RecordLeg accumulates the distance of one traversed edge against the
// truck that drove it and the run total.
func (m *RunMetrics) RecordLeg(truckID string, e *Edge) {
	m.TotalDistanceKm += e.DistanceKm
	m.TruckDistanceKm[truckID] += e.DistanceKm
}

// RecordQueueDepth updates the high-water mark for a node's wait queue.
func (m *RunMetrics) RecordQueueDepth(nodeID string, depth int) {
	if depth > m.NodeMaxQueueDepth[nodeID] {
		m.NodeMaxQueueDepth[nodeID] = depth
	}
}

// RecordIdleDuration records one completed idle interval for a truck,
// measured from when it last went idle to when it was next dispatched.
func (m *RunMetrics) RecordIdleDuration(minutes float64) {
	m.truckIdleDurations = append(m.truckIdleDurations, minutes)
}

// OrderCycleTimePercentile returns the p-th percentile order cycle time
// in minutes, or 0 if no orders have completed.
func (m *RunMetrics) OrderCycleTimePercentile(p float64) float64 {
	return CalculatePercentile(m.orderCycleTimes, p)
}

// TruckIdleTimePercentile returns the p-th percentile truck idle
// interval in minutes, or 0 if no idle interval has ended.
func (m *RunMetrics) TruckIdleTimePercentile(p float64) float64 {
	return CalculatePercentile(m.truckIdleDurations, p)
}

// Print displays aggregated metrics at the end of the run.
func (m *RunMetrics) Print() {
	fmt.Println("=== Run Metrics ===")
	fmt.Printf("Orders created     : %d\n", m.OrdersCreated)
	fmt.Printf("Orders completed   : %d\n", m.OrdersCompleted)
	fmt.Printf("Orders cancelled   : %d\n", m.OrdersCancelled)
	fmt.Printf("Rest episodes      : %d\n", m.RestEpisodes)
	fmt.Printf("Total distance     : %.2f km\n", m.TotalDistanceKm)
	if len(m.orderCycleTimes) > 0 {
		fmt.Printf("Order cycle p50/p90/p99: %.2f / %.2f / %.2f min\n",
			m.OrderCycleTimePercentile(50), m.OrderCycleTimePercentile(90), m.OrderCycleTimePercentile(99))
	}
	if len(m.truckIdleDurations) > 0 {
		fmt.Printf("Truck idle p50/p90/p99 : %.2f / %.2f / %.2f min\n",
			m.TruckIdleTimePercentile(50), m.TruckIdleTimePercentile(90), m.TruckIdleTimePercentile(99))
	}
	maxDepth := 0
	for _, d := range m.NodeMaxQueueDepth {
		if d > maxDepth {
			maxDepth = d
		}
	}
	fmt.Printf("Peak node queue    : %d trucks\n", maxDepth)
}
