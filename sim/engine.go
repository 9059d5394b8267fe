// The discrete-event engine: owns the event queue, current time, and all
// mutable truck/order/node state, and implements the per-event-kind
// transitions of the truck/order state machine.

package sim

import (
	"container/heap"
	"sort"

	"github.com/sirupsen/logrus"
)

// ProcessedEvent is an append-only log entry recorded for every event the
// engine executes, for later rendering to tabular form by external
// collaborators.
type ProcessedEvent struct {
	Time    float64
	TruckID string
	NodeID  string
	Kind    EventKind
}

// Engine is the core simulation object: event queue, current time, and
// all mutable domain state. It exclusively owns trucks, orders, node
// busy-counts/queues, and the event queue; the Graph topology is shared
// read-only after construction.
type Engine struct {
	Graph   *Graph
	Trucks  map[string]*Truck
	Orders  map[string]*Order
	Pending PendingOrders

	queue    EventQueue
	seq      int64
	CurrentTime float64
	Horizon     float64

	ProcessedEvents []ProcessedEvent

	RNG    *PartitionedRNG
	Delay  *DelayModel
	Policy DispatchPolicy
	Metrics *RunMetrics
}

// EngineConfig parameterizes engine construction.
type EngineConfig struct {
	Graph          *Graph
	Horizon        float64
	Seed           int64
	DispatchPolicy string // "" defaults to "first-idle"

	// RestThresholdMinutes/RestDurationMinutes override the reference
	// rest-enforcement constants when non-zero.
	RestThresholdMinutes float64
	RestDurationMinutes  float64
}

// NewEngine constructs an Engine ready to accept seed events.
func NewEngine(cfg EngineConfig) *Engine {
	delay := NewDelayModel()
	if cfg.RestThresholdMinutes > 0 {
		delay.RestThresholdMinutes = cfg.RestThresholdMinutes
	}
	if cfg.RestDurationMinutes > 0 {
		delay.RestDurationMinutes = cfg.RestDurationMinutes
	}

	return &Engine{
		Graph:   cfg.Graph,
		Trucks:  make(map[string]*Truck),
		Orders:  make(map[string]*Order),
		Horizon: cfg.Horizon,
		RNG:     NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		Delay:   delay,
		Policy:  NewDispatchPolicy(cfg.DispatchPolicy),
		Metrics: NewRunMetrics(),
	}
}

func (e *Engine) nextSeq() int64 {
	e.seq++
	return e.seq
}

func (e *Engine) truckIDsSorted() []string {
	ids := make([]string, 0, len(e.Trucks))
	for id := range e.Trucks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// schedule pushes an event onto the priority queue. Has nothing to do
// with the dispatcher's order/truck matching.
func (e *Engine) schedule(ev Event) {
	heap.Push(&e.queue, ev)
}

// ScheduleTruckSpawn seeds a truck-spawn event at the given time.
func (e *Engine) ScheduleTruckSpawn(time float64, truckID, startNode string) {
	e.schedule(&TruckSpawnEvent{header{time: time, seq: e.nextSeq(), kind: KindTruckSpawn, truckID: truckID, nodeID: startNode}})
}

// ScheduleOrderCreated seeds an order-created event at the given time.
func (e *Engine) ScheduleOrderCreated(time float64, orderID, origin, destination string) {
	e.schedule(&OrderCreatedEvent{
		header:      header{time: time, seq: e.nextSeq(), kind: KindOrderCreated, truckID: SystemTruckID, nodeID: origin},
		OrderID:     orderID,
		Origin:      origin,
		Destination: destination,
	})
}

// Run drains the event queue until it is empty or current_time reaches
// Horizon.
func (e *Engine) Run() {
	for e.queue.Len() > 0 && e.CurrentTime < e.Horizon {
		if !e.Step() {
			break
		}
	}
}

// Step pops and executes exactly one event, advancing current_time to
// its timestamp. Returns false if the queue was empty. Exposed so an
// external driver can halt between steps (§5 concurrency model).
func (e *Engine) Step() bool {
	if e.queue.Len() == 0 {
		return false
	}
	ev := heap.Pop(&e.queue).(Event)
	e.CurrentTime = ev.Time()
	e.ProcessedEvents = append(e.ProcessedEvents, ProcessedEvent{
		Time: ev.Time(), TruckID: ev.TruckID(), NodeID: ev.NodeID(), Kind: ev.Kind(),
	})
	ev.Execute(e)
	return true
}

// --- Event handlers --------------------------------------------------

func (e *Engine) handleTruckSpawn(ev *TruckSpawnEvent) {
	t := NewTruck(ev.TruckID(), ev.NodeID())
	t.IdleSince = ev.Time()
	e.Trucks[ev.TruckID()] = t
	e.dispatch()
}

func (e *Engine) handleOrderCreated(ev *OrderCreatedEvent) {
	e.Orders[ev.OrderID] = &Order{
		ID:          ev.OrderID,
		Origin:      ev.Origin,
		Destination: ev.Destination,
		CreatedAt:   ev.Time(),
		Status:      OrderPending,
	}
	e.Pending.Push(ev.OrderID)
	e.Metrics.RecordOrderCreated()
	e.dispatch()
}

func (e *Engine) handleArrivalNode(ev *ArrivalNodeEvent) {
	t := e.Trucks[ev.TruckID()]
	t.CurrentNodeID = ev.NodeID()
	t.ClearLeg()

	node := e.Graph.Nodes[ev.NodeID()]
	if node.HasFreeSlot() {
		e.schedule(&StartServiceEvent{header{time: ev.Time(), seq: e.nextSeq(), kind: KindStartService, truckID: t.ID, nodeID: node.ID}})
	} else {
		node.Enqueue(t.ID)
		e.Metrics.RecordQueueDepth(node.ID, len(node.Queue))
	}
}

func (e *Engine) handleStartService(ev *StartServiceEvent) {
	node := e.Graph.Nodes[ev.NodeID()]
	node.BusyCount++

	s := e.Delay.ServiceTime(e.RNG.ForSubsystem(SubsystemService), node.Kind)
	e.schedule(&EndServiceEvent{header{time: ev.Time() + s, seq: e.nextSeq(), kind: KindEndService, truckID: ev.TruckID(), nodeID: node.ID}})
}

func (e *Engine) handleEndService(ev *EndServiceEvent) {
	node := e.Graph.Nodes[ev.NodeID()]
	node.BusyCount--

	t := e.Trucks[ev.TruckID()]
	if t.AssignedOrderID != "" {
		order := e.Orders[t.AssignedOrderID]
		switch {
		case t.Status == TruckEnRouteToDeliver && node.ID == order.Destination:
			order.Status = OrderCompleted
			t.Status = TruckIdle
			t.ClearRoute()
			t.IdleSince = ev.Time()
			e.Metrics.RecordCompletion(order, ev.Time())
			e.dispatch()
		case t.Status == TruckEnRouteToPickup && node.ID == order.Origin:
			t.Status = TruckEnRouteToDeliver
		}
	}

	if t.HasNextHop() {
		e.schedule(&DepartNodeEvent{header{time: ev.Time(), seq: e.nextSeq(), kind: KindDepartNode, truckID: t.ID, nodeID: node.ID}})
	}

	if head := node.DequeueHead(); head != "" {
		e.schedule(&StartServiceEvent{header{time: ev.Time(), seq: e.nextSeq(), kind: KindStartService, truckID: head, nodeID: node.ID}})
	}
}

func (e *Engine) handleDepartNode(ev *DepartNodeEvent) {
	t := e.Trucks[ev.TruckID()]
	if !t.HasNextHop() {
		return
	}
	next := t.NextNodeID()
	edge, ok := e.Graph.Edge(t.CurrentNodeID, next)
	if !ok {
		logrus.Warnf("truck %s stalled: missing edge %s->%s", t.ID, t.CurrentNodeID, next)
		return
	}

	travel := e.Delay.TravelTime(e.RNG.ForSubsystem(SubsystemTravel), edge.BaseTravelTime)

	if t.DrivingTimeSinceRest > 0 && t.DrivingTimeSinceRest+travel > e.Delay.RestThresholdMinutes {
		e.schedule(&StartRestEvent{header{time: ev.Time(), seq: e.nextSeq(), kind: KindStartRest, truckID: t.ID, nodeID: t.CurrentNodeID}})
		return
	}

	t.CurrentNodeIndex++
	t.DrivingTimeSinceRest += travel
	t.CurrentLegStartTime = ev.Time()
	t.CurrentLegDuration = travel
	e.Metrics.RecordLeg(t.ID, edge)

	e.schedule(&ArrivalNodeEvent{header{time: ev.Time() + travel, seq: e.nextSeq(), kind: KindArrivalNode, truckID: t.ID, nodeID: next}})
}

func (e *Engine) handleStartRest(ev *StartRestEvent) {
	t := e.Trucks[ev.TruckID()]
	t.PreviousStatus = t.Status
	t.Status = TruckResting
	e.Metrics.RestEpisodes++
	e.schedule(&EndRestEvent{header{time: ev.Time() + e.Delay.RestDurationMinutes, seq: e.nextSeq(), kind: KindEndRest, truckID: t.ID, nodeID: ev.NodeID()}})
}

func (e *Engine) handleEndRest(ev *EndRestEvent) {
	t := e.Trucks[ev.TruckID()]
	t.DrivingTimeSinceRest = 0
	if t.PreviousStatus.IsEnRoute() {
		t.Status = t.PreviousStatus
	} else {
		t.Status = TruckIdle
	}
	t.PreviousStatus = ""
	e.schedule(&DepartNodeEvent{header{time: ev.Time(), seq: e.nextSeq(), kind: KindDepartNode, truckID: t.ID, nodeID: ev.NodeID()}})
}
