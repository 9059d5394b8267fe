package sim

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

const sampleTSPLIB = `NAME : sample
TYPE : TSP
DIMENSION : 4
NODE_COORD_SECTION
1 10.0 10.0
2 20.0 10.0
3 20.0 20.0
4 10.0 20.0
EOF
`

func writeTSPLIBFixture(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.tsp")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestParseTSPLIB_ParsesNodesAndName(t *testing.T) {
	path := writeTSPLIBFixture(t, sampleTSPLIB)

	inst, err := ParseTSPLIB(path)
	if err != nil {
		t.Fatalf("ParseTSPLIB error: %v", err)
	}
	if inst.Name != "sample" {
		t.Errorf("Name = %q, want sample", inst.Name)
	}
	if len(inst.Nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(inst.Nodes))
	}
	if inst.Nodes[0].X != 10.0 || inst.Nodes[0].Y != 10.0 {
		t.Errorf("first node = %+v, want X=10 Y=10", inst.Nodes[0])
	}
}

func TestParseTSPLIB_EmptyFileIsInvalid(t *testing.T) {
	path := writeTSPLIBFixture(t, "NAME : empty\nTYPE : TSP\n")

	_, err := ParseTSPLIB(path)
	if err == nil {
		t.Fatal("expected an error for a file with zero parsed nodes")
	}
}

func TestParseTSPLIB_MissingFile(t *testing.T) {
	if _, err := ParseTSPLIB("/nonexistent/fixture.tsp"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestNormalizeCoordinates_PreservesAspectRatio(t *testing.T) {
	// GIVEN a 100x50 input rectangle (2:1 width:height)
	path := writeTSPLIBFixture(t, sampleTSPLIB)
	inst, err := ParseTSPLIB(path)
	if err != nil {
		t.Fatalf("ParseTSPLIB error: %v", err)
	}
	corners := []TSPNode{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 100, Y: 0},
		{ID: 3, X: 100, Y: 50},
		{ID: 4, X: 0, Y: 50},
	}
	inputXSpan := 100.0
	inputYSpan := 50.0

	win := LatLonWindow{LatMin: 45, LatMax: 55, LonMin: -5, LonMax: 5} // 10deg square window, mean lat 50
	out := NormalizeCoordinates(corners, win)
	if len(out) != len(inst.Nodes) {
		t.Fatalf("got %d normalized points, want %d", len(out), len(inst.Nodes))
	}

	var lonMin, lonMax, latMin, latMax float64 = out[0].Lon, out[0].Lon, out[0].Lat, out[0].Lat
	for _, p := range out {
		lonMin, lonMax = math.Min(lonMin, p.Lon), math.Max(lonMax, p.Lon)
		latMin, latMax = math.Min(latMin, p.Lat), math.Max(latMax, p.Lat)
		if p.Lat < win.LatMin-1e-6 || p.Lat > win.LatMax+1e-6 {
			t.Errorf("lat %v out of window [%v, %v]", p.Lat, win.LatMin, win.LatMax)
		}
		if p.Lon < win.LonMin-1e-6 || p.Lon > win.LonMax+1e-6 {
			t.Errorf("lon %v out of window [%v, %v]", p.Lon, win.LonMin, win.LonMax)
		}
	}

	// THEN the real-world width:height ratio (lonSpan*cos(meanLat) : latSpan)
	// matches the input's x:y span ratio, not its inverse.
	meanLatRad := (win.LatMin + win.LatMax) / 2 * math.Pi / 180.0
	realWidth := (lonMax - lonMin) * math.Cos(meanLatRad)
	realHeight := latMax - latMin
	gotRatio := realWidth / realHeight
	wantRatio := inputXSpan / inputYSpan

	if math.Abs(gotRatio-wantRatio) > 0.05 {
		t.Errorf("real-world width:height ratio = %.3f, want %.3f (input x:y ratio); aspect correction may be inverted", gotRatio, wantRatio)
	}
}

func TestBuildTSPLIBGraph_HundredNodeFixture(t *testing.T) {
	// GIVEN a 100-node TSPLIB fixture
	path := filepath.Join("..", "testdata", "sample_100.tsp")
	rng := rand.New(rand.NewSource(1))

	g, err := BuildTSPLIBGraph(DefaultTSPLIBGraphConfig(path), rng)
	if err != nil {
		t.Fatalf("BuildTSPLIBGraph error: %v", err)
	}

	ids := g.NodeIDs()
	if len(ids) != 100 {
		t.Fatalf("got %d nodes, want 100", len(ids))
	}

	win := DefaultLatLonWindow()
	counts := map[NodeKind]int{}
	for _, id := range ids {
		n := g.Nodes[id]
		counts[n.Kind]++
		if n.Lat < win.LatMin-1e-6 || n.Lat > win.LatMax+1e-6 {
			t.Errorf("node %s lat %v out of window", id, n.Lat)
		}
		if n.Lon < win.LonMin-1e-6 || n.Lon > win.LonMax+1e-6 {
			t.Errorf("node %s lon %v out of window", id, n.Lon)
		}
	}

	want := map[NodeKind]int{
		NodeWarehouse:  10,
		NodeHub:        10,
		NodePort:       5,
		NodeInspection: 5,
		NodeCustomer:   70,
	}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("count[%s] = %d, want %d", kind, counts[kind], n)
		}
	}

	// every edge has its reverse
	for from, neighbors := range g.adjacency {
		for _, to := range neighbors {
			if _, ok := g.Edge(to, from); !ok {
				t.Errorf("edge %s->%s has no reverse %s->%s", from, to, to, from)
			}
		}
	}

	// shortest path between random node pairs is non-empty (graph is connected)
	src := rand.New(rand.NewSource(2))
	for i := 0; i < 10; i++ {
		a := ids[src.Intn(len(ids))]
		b := ids[src.Intn(len(ids))]
		path, err := g.ShortestPath(a, b)
		if err != nil {
			t.Fatalf("ShortestPath(%s, %s) error: %v", a, b, err)
		}
		if len(path) == 0 {
			t.Errorf("ShortestPath(%s, %s) = empty, want a connected path", a, b)
		}
	}
}
