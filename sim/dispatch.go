// Matches pending orders to idle trucks and plans composite
// pickup+delivery routes. The truck-selection strategy is a named,
// swappable policy mirroring the teacher lineage's RoutingPolicy /
// NewRoutingPolicy factory pattern: a string name selects an
// implementation, with the default preserving the reference's greedy
// FIFO behaviour.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DispatchPolicy selects which idle truck should serve a given order.
// Implementations MUST NOT mutate trucks or orders — only the returned
// truck id is used by the caller.
type DispatchPolicy interface {
	SelectTruck(order *Order, idleTrucks []*Truck, g *Graph) string
}

// FirstIdlePolicy picks the first idle truck encountered in iteration
// order. This is the reference behaviour: the source's "nearest idle
// truck" comment is aspirational, but the code picks the first iterated
// idle truck. Default policy.
type FirstIdlePolicy struct{}

func (FirstIdlePolicy) SelectTruck(_ *Order, idleTrucks []*Truck, _ *Graph) string {
	if len(idleTrucks) == 0 {
		return ""
	}
	return idleTrucks[0].ID
}

// NearestIdlePolicy picks the idle truck with the shortest shortest-path
// travel time to the order's origin, breaking ties by first-idle order.
// Documented refinement over FirstIdlePolicy (see Design Notes).
type NearestIdlePolicy struct{}

func (NearestIdlePolicy) SelectTruck(order *Order, idleTrucks []*Truck, g *Graph) string {
	if len(idleTrucks) == 0 {
		return ""
	}
	best := idleTrucks[0]
	bestDist, ok := pathLength(g, best.CurrentNodeID, order.Origin)
	if !ok {
		bestDist = -1 // unreachable trucks sort last
	}
	for _, t := range idleTrucks[1:] {
		d, ok := pathLength(g, t.CurrentNodeID, order.Origin)
		if !ok {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best.ID
}

// pathLength returns the total base travel time of the shortest path, or
// (_, false) if no path exists.
func pathLength(g *Graph, from, to string) (float64, bool) {
	path, err := g.ShortestPath(from, to)
	if err != nil || len(path) == 0 {
		return 0, false
	}
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		e, _ := g.Edge(path[i], path[i+1])
		total += e.BaseTravelTime
	}
	return total, true
}

// NewDispatchPolicy creates a DispatchPolicy by name.
// Valid names: "first-idle" (default), "nearest-idle".
// Empty string defaults to FirstIdlePolicy. Panics on unrecognized names.
func NewDispatchPolicy(name string) DispatchPolicy {
	switch name {
	case "", "first-idle":
		return FirstIdlePolicy{}
	case "nearest-idle":
		return NearestIdlePolicy{}
	default:
		panic(fmt.Sprintf("unknown dispatch policy %q", name))
	}
}

// dispatch attempts to bind the head of pending_orders to an idle truck.
// Invoked reactively on truck spawn, order creation, and delivery
// completion. No-op if there are no pending orders or no idle trucks.
func (e *Engine) dispatch() {
	if e.Pending.Len() == 0 {
		return
	}

	var idle []*Truck
	for _, id := range e.truckIDsSorted() {
		t := e.Trucks[id]
		if t.Status == TruckIdle {
			idle = append(idle, t)
		}
	}
	if len(idle) == 0 {
		return
	}

	orderID := e.Pending.Head()
	order := e.Orders[orderID]

	truckID := e.Policy.SelectTruck(order, idle, e.Graph)
	if truckID == "" {
		return
	}
	truck := e.Trucks[truckID]

	route := e.planRoute(truck, order)
	if len(route) < 2 {
		order.Status = OrderCancelled
		e.Pending.PopHead()
		e.Metrics.RecordCancellation()
		logrus.Warnf("order %s cancelled: no viable route from %s via %s to %s", order.ID, truck.CurrentNodeID, order.Origin, order.Destination)
		return
	}

	e.Metrics.RecordIdleDuration(e.CurrentTime - truck.IdleSince)
	truck.Status = TruckEnRouteToPickup
	if truck.CurrentNodeID == order.Origin {
		// Already at the pickup node: the next leg is toward delivery.
		truck.Status = TruckEnRouteToDeliver
	}
	truck.AssignedOrderID = order.ID
	order.Status = OrderAssigned

	e.schedule(&OrderAssignedEvent{
		header:  header{time: e.CurrentTime, seq: e.nextSeq(), kind: KindOrderAssigned, truckID: truck.ID, nodeID: truck.CurrentNodeID},
		OrderID: order.ID,
	})

	truck.Route = route
	truck.CurrentNodeIndex = 0
	e.schedule(&DepartNodeEvent{header{time: e.CurrentTime, seq: e.nextSeq(), kind: KindDepartNode, truckID: truck.ID, nodeID: truck.CurrentNodeID}})

	e.Pending.PopHead()
}

// planRoute concatenates the path to pickup with the path to delivery,
// skipping the duplicate join node when both legs are non-empty and
// share a boundary.
func (e *Engine) planRoute(truck *Truck, order *Order) []string {
	var pickup []string
	if truck.CurrentNodeID != order.Origin {
		p, err := e.Graph.ShortestPath(truck.CurrentNodeID, order.Origin)
		if err != nil || len(p) == 0 {
			return nil
		}
		pickup = p
	}
	delivery, err := e.Graph.ShortestPath(order.Origin, order.Destination)
	if err != nil || len(delivery) == 0 {
		return nil
	}

	if len(pickup) == 0 {
		return delivery
	}
	if pickup[len(pickup)-1] == delivery[0] {
		return append(pickup, delivery[1:]...)
	}
	return append(pickup, delivery...)
}
