// Seeds a constructed Engine with trucks and orders ahead of a run. Truck
// start nodes and order origin/destination pairs are drawn from the
// engine's own partitioned RNG streams so a run is fully reproducible
// from its seed.

package sim

import "fmt"

// SeedTrucks schedules n truck-spawn events at time 0, placing each
// truck at a node chosen uniformly at random from the graph.
func (e *Engine) SeedTrucks(n int) {
	ids := e.Graph.NodeIDs()
	if len(ids) == 0 {
		return
	}
	rng := e.RNG.ForSubsystem(SubsystemWorkload)
	for i := 1; i <= n; i++ {
		start := ids[rng.Intn(len(ids))]
		e.ScheduleTruckSpawn(0, fmt.Sprintf("TRUCK-%d", i), start)
	}
}

// SeedOrders schedules n order-created events spread uniformly across
// [0, horizon), each with a distinct random origin and destination node.
func (e *Engine) SeedOrders(n int) {
	ids := e.Graph.NodeIDs()
	if len(ids) < 2 {
		return
	}
	rng := e.RNG.ForSubsystem(SubsystemWorkload)
	for i := 1; i <= n; i++ {
		origin := ids[rng.Intn(len(ids))]
		dest := origin
		for dest == origin {
			dest = ids[rng.Intn(len(ids))]
		}
		createdAt := rng.Float64() * e.Horizon
		e.ScheduleOrderCreated(createdAt, fmt.Sprintf("ORDER-%d", i), origin, dest)
	}
}
