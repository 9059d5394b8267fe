package sim

// TruckStatus is the closed set of truck lifecycle states.
type TruckStatus string

const (
	TruckIdle             TruckStatus = "idle"
	TruckEnRouteToPickup  TruckStatus = "en_route_to_pickup"
	TruckEnRouteToDeliver TruckStatus = "en_route_to_delivery"
	TruckResting          TruckStatus = "resting"
)

// IsEnRoute reports whether a status represents active travel toward a
// pickup or delivery.
func (s TruckStatus) IsEnRoute() bool {
	return s == TruckEnRouteToPickup || s == TruckEnRouteToDeliver
}

// Truck models a single vehicle's position, route, and driving-hours
// state.
//
// Invariants: status=idle implies AssignedOrderID=="" and Route empty;
// status in {en_route_to_pickup, en_route_to_delivery} implies
// AssignedOrderID != "" and Route non-empty; DrivingTimeSinceRest >= 0
// and is reset to 0 at the end of a rest episode.
type Truck struct {
	ID string

	CurrentNodeID    string
	Route            []string
	CurrentNodeIndex int

	Status             TruckStatus
	AssignedOrderID    string
	PreviousStatus     TruckStatus
	DrivingTimeSinceRest float64

	CurrentLegStartTime float64
	CurrentLegDuration  float64

	// IdleSince is the time the truck most recently became idle; used to
	// measure idle-interval duration at the next dispatch.
	IdleSince float64
}

// NewTruck constructs an idle truck spawned at the given node.
func NewTruck(id, startNode string) *Truck {
	return &Truck{
		ID:            id,
		CurrentNodeID: startNode,
		Status:        TruckIdle,
	}
}

// HasNextHop reports whether the truck's route has a further node to
// traverse after its current position.
func (t *Truck) HasNextHop() bool {
	return t.CurrentNodeIndex < len(t.Route)-1
}

// NextNodeID returns the node after the truck's current route position.
// Callers must check HasNextHop first.
func (t *Truck) NextNodeID() string {
	return t.Route[t.CurrentNodeIndex+1]
}

// ClearRoute resets route/assignment fields, used when a truck goes idle.
func (t *Truck) ClearRoute() {
	t.Route = nil
	t.CurrentNodeIndex = 0
	t.AssignedOrderID = ""
}

// ClearLeg resets the in-flight leg timing fields, used on arrival.
func (t *Truck) ClearLeg() {
	t.CurrentLegStartTime = 0
	t.CurrentLegDuration = 0
}
