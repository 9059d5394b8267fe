// Tagged event variants that drive the simulation. Each kind keeps a
// common header (time, truck id, node id, insertion sequence) so the
// scheduler can order and log any event uniformly, while carrying a
// typed payload instead of the free-form detail map a dynamically typed
// port would use.

package sim

import "github.com/sirupsen/logrus"

// EventKind names the event variants for logging and the processed-event
// log.
type EventKind string

const (
	KindTruckSpawn   EventKind = "truck_spawn"
	KindOrderCreated EventKind = "order_created"
	KindOrderAssigned EventKind = "order_assigned"
	KindArrivalNode  EventKind = "arrival_node"
	KindStartService EventKind = "start_service"
	KindEndService   EventKind = "end_service"
	KindDepartNode   EventKind = "depart_node"
	KindStartRest    EventKind = "start_rest"
	KindEndRest      EventKind = "end_rest"
)

// SystemTruckID is the sentinel truck id for non-truck events.
const SystemTruckID = "SYSTEM"

// Event is the common interface every tagged event variant implements.
// Events are immutable once scheduled.
type Event interface {
	Time() float64
	Seq() int64
	Kind() EventKind
	TruckID() string
	NodeID() string
	Execute(e *Engine)
}

// header is embedded by every event variant to supply the shared fields
// without repeating field plumbing per kind.
type header struct {
	time    float64
	seq     int64
	kind    EventKind
	truckID string
	nodeID  string
}

func (h header) Time() float64      { return h.time }
func (h header) Seq() int64         { return h.seq }
func (h header) Kind() EventKind    { return h.kind }
func (h header) TruckID() string    { return h.truckID }
func (h header) NodeID() string     { return h.nodeID }

func logEvent(e *Engine, ev Event) {
	logrus.Infof("[t=%08.2f #%d] %s truck=%s node=%s", ev.Time(), ev.Seq(), ev.Kind(), ev.TruckID(), ev.NodeID())
}

// TruckSpawnEvent introduces a new truck at a node, idle.
type TruckSpawnEvent struct {
	header
}

func (ev *TruckSpawnEvent) Execute(e *Engine) {
	logEvent(e, ev)
	e.handleTruckSpawn(ev)
}

// OrderCreatedEvent introduces a new pending order.
type OrderCreatedEvent struct {
	header
	OrderID     string
	Origin      string
	Destination string
}

func (ev *OrderCreatedEvent) Execute(e *Engine) {
	logEvent(e, ev)
	e.handleOrderCreated(ev)
}

// OrderAssignedEvent is a bookkeeping-only record of a dispatch decision.
type OrderAssignedEvent struct {
	header
	OrderID string
}

func (ev *OrderAssignedEvent) Execute(e *Engine) {
	logEvent(e, ev)
	// no state mutation: recorded in the processed-event log only.
}

// ArrivalNodeEvent fires when a truck arrives at a node after a leg.
type ArrivalNodeEvent struct {
	header
}

func (ev *ArrivalNodeEvent) Execute(e *Engine) {
	logEvent(e, ev)
	e.handleArrivalNode(ev)
}

// StartServiceEvent fires when a truck begins occupying a node's service slot.
type StartServiceEvent struct {
	header
}

func (ev *StartServiceEvent) Execute(e *Engine) {
	logEvent(e, ev)
	e.handleStartService(ev)
}

// EndServiceEvent fires when a truck finishes occupying a node's service slot.
type EndServiceEvent struct {
	header
}

func (ev *EndServiceEvent) Execute(e *Engine) {
	logEvent(e, ev)
	e.handleEndService(ev)
}

// DepartNodeEvent fires when a truck is ready to leave its current node.
type DepartNodeEvent struct {
	header
}

func (ev *DepartNodeEvent) Execute(e *Engine) {
	logEvent(e, ev)
	e.handleDepartNode(ev)
}

// StartRestEvent fires when mandatory rest begins.
type StartRestEvent struct {
	header
}

func (ev *StartRestEvent) Execute(e *Engine) {
	logEvent(e, ev)
	e.handleStartRest(ev)
}

// EndRestEvent fires when mandatory rest ends.
type EndRestEvent struct {
	header
}

func (ev *EndRestEvent) Execute(e *Engine) {
	logEvent(e, ev)
	e.handleEndRest(ev)
}
