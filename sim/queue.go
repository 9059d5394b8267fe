// A min-priority queue of Events ordered by (time, insertion sequence),
// giving deterministic FIFO tie-breaking for events sharing an instant.
// See the canonical heap.Interface example: https://pkg.go.dev/container/heap#example-package-IntHeap

package sim

import "container/heap"

// EventQueue implements heap.Interface and orders events by (time, seq).
type EventQueue []Event

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	if eq[i].Time() != eq[j].Time() {
		return eq[i].Time() < eq[j].Time()
	}
	return eq[i].Seq() < eq[j].Seq()
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Peek returns up to n events in priority order without removing them.
// Intended for inspection/testing; it copies and sorts rather than
// mutating the live heap.
func (eq EventQueue) Peek(n int) []Event {
	cp := make(EventQueue, len(eq))
	copy(cp, eq)
	heap.Init(&cp)
	out := make([]Event, 0, n)
	for len(out) < n && cp.Len() > 0 {
		out = append(out, heap.Pop(&cp).(Event))
	}
	return out
}

// PendingOrders is an ordered FIFO list of order ids awaiting dispatch.
// All entries must refer to orders with status=pending; the order-created
// handler appends to it and only the dispatcher removes from it.
type PendingOrders struct {
	ids []string
}

// Push appends an order id to the tail.
func (p *PendingOrders) Push(id string) {
	p.ids = append(p.ids, id)
}

// Head returns the first order id, or "" if empty.
func (p *PendingOrders) Head() string {
	if len(p.ids) == 0 {
		return ""
	}
	return p.ids[0]
}

// PopHead removes and returns the first order id, or "" if empty.
func (p *PendingOrders) PopHead() string {
	if len(p.ids) == 0 {
		return ""
	}
	head := p.ids[0]
	p.ids = p.ids[1:]
	return head
}

// Len reports the number of pending orders.
func (p *PendingOrders) Len() int { return len(p.ids) }
