package sim

import "testing"

func twoNodeGraph() *Graph {
	g := newGraph()
	g.addNode(&Node{ID: "A", Capacity: 1})
	g.addNode(&Node{ID: "B", Capacity: 1})
	g.addNode(&Node{ID: "C", Capacity: 1})
	g.AddBidirectionalEdge("A", "B", 10, 10)
	g.AddBidirectionalEdge("B", "C", 5, 5)
	g.AddBidirectionalEdge("A", "C", 100, 100)
	return g
}

func TestFirstIdlePolicy_PicksFirstInSlice(t *testing.T) {
	order := &Order{Origin: "C"}
	trucks := []*Truck{{ID: "T1", CurrentNodeID: "A"}, {ID: "T2", CurrentNodeID: "B"}}

	got := FirstIdlePolicy{}.SelectTruck(order, trucks, twoNodeGraph())
	if got != "T1" {
		t.Errorf("SelectTruck = %q, want T1", got)
	}
}

func TestFirstIdlePolicy_EmptyFleetReturnsEmpty(t *testing.T) {
	got := FirstIdlePolicy{}.SelectTruck(&Order{}, nil, twoNodeGraph())
	if got != "" {
		t.Errorf("SelectTruck on empty fleet = %q, want empty", got)
	}
}

func TestNearestIdlePolicy_PicksClosestByPathLength(t *testing.T) {
	// GIVEN a truck at A (15 to reach C via B) and one at B (5 to reach C)
	order := &Order{Origin: "C"}
	trucks := []*Truck{{ID: "T1", CurrentNodeID: "A"}, {ID: "T2", CurrentNodeID: "B"}}

	got := NearestIdlePolicy{}.SelectTruck(order, trucks, twoNodeGraph())
	if got != "T2" {
		t.Errorf("SelectTruck = %q, want T2 (closer to order origin)", got)
	}
}

func TestNewDispatchPolicy_KnownNames(t *testing.T) {
	if _, ok := NewDispatchPolicy("").(FirstIdlePolicy); !ok {
		t.Error(`NewDispatchPolicy("") should default to FirstIdlePolicy`)
	}
	if _, ok := NewDispatchPolicy("first-idle").(FirstIdlePolicy); !ok {
		t.Error(`NewDispatchPolicy("first-idle") should be FirstIdlePolicy`)
	}
	if _, ok := NewDispatchPolicy("nearest-idle").(NearestIdlePolicy); !ok {
		t.Error(`NewDispatchPolicy("nearest-idle") should be NearestIdlePolicy`)
	}
}

func TestNewDispatchPolicy_UnknownNamePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic for an unknown dispatch policy name")
		}
	}()
	NewDispatchPolicy("fastest-first")
}

func TestPlanRoute_CancelsWhenOriginUnreachable(t *testing.T) {
	g := newGraph()
	g.addNode(&Node{ID: "A"})
	g.addNode(&Node{ID: "B"})
	e := &Engine{Graph: g}

	truck := NewTruck("T1", "A")
	order := &Order{Origin: "B", Destination: "A"}

	route := e.planRoute(truck, order)
	if route != nil {
		t.Errorf("planRoute = %v, want nil for an unreachable origin", route)
	}
}

func TestPlanRoute_DedupesSharedBoundaryNode(t *testing.T) {
	g := twoNodeGraph()
	e := &Engine{Graph: g}
	truck := NewTruck("T1", "A")
	order := &Order{Origin: "B", Destination: "C"}

	route := e.planRoute(truck, order)
	want := []string{"A", "B", "C"}
	if len(route) != len(want) {
		t.Fatalf("route = %v, want %v", route, want)
	}
	for i := range want {
		if route[i] != want[i] {
			t.Fatalf("route = %v, want %v", route, want)
		}
	}
}
