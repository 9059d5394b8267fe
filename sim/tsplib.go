// Parses the coordinate subset of the TSPLIB text format and normalizes
// the resulting points into a geographic (lat, lon) window.

package sim

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a TSPLIB file yields zero coordinates.
var ErrInvalidFormat = errors.New("tsplib: invalid format, no coordinates parsed")

// TSPNode is a single parsed TSPLIB coordinate record.
type TSPNode struct {
	ID   int
	X, Y float64
}

// TSPInstance is the result of parsing a TSPLIB file: its declared name
// and the ordered coordinate list.
type TSPInstance struct {
	Name  string
	Nodes []TSPNode
}

// ParseTSPLIB reads the coordinate subset of a TSPLIB file: NAME header,
// NODE_COORD_SECTION entries of "id x y", terminated by EOF or a blank
// line. Malformed coordinate lines are skipped silently, matching the
// reference parser's forgiving behavior.
func ParseTSPLIB(path string) (*TSPInstance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open %s: %w", path, err)
	}
	defer f.Close()

	inst := &TSPInstance{}
	inCoords := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !inCoords {
			if strings.HasPrefix(line, "NAME") {
				parts := strings.SplitN(line, ":", 2)
				if len(parts) == 2 {
					inst.Name = strings.TrimSpace(parts[1])
				}
				continue
			}
			if line == "NODE_COORD_SECTION" {
				inCoords = true
			}
			continue
		}

		if line == "" || line == "EOF" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		id, err1 := strconv.Atoi(fields[0])
		x, err2 := strconv.ParseFloat(fields[1], 64)
		y, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		inst.Nodes = append(inst.Nodes, TSPNode{ID: id, X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read %s: %w", path, err)
	}
	if len(inst.Nodes) == 0 {
		return nil, ErrInvalidFormat
	}
	return inst, nil
}

// LatLonWindow bounds the geographic box coordinates are normalized into.
type LatLonWindow struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// DefaultLatLonWindow matches the reference normalizer's default window.
func DefaultLatLonWindow() LatLonWindow {
	return LatLonWindow{LatMin: 45, LatMax: 55, LonMin: 14, LonMax: 24}
}

// NormalizeCoordinates maps TSPLIB (x, y) coordinates into a geographic
// window, preserving aspect ratio via a cos(mean latitude) correction so
// that the normalized shape is not distorted by lat/lon scaling.
// Returns per-node (lat, lon) in input order.
func NormalizeCoordinates(nodes []TSPNode, win LatLonWindow) []struct{ Lat, Lon float64 } {
	out := make([]struct{ Lat, Lon float64 }, len(nodes))
	if len(nodes) == 0 {
		return out
	}

	minX, maxX := nodes[0].X, nodes[0].X
	minY, maxY := nodes[0].Y, nodes[0].Y
	for _, n := range nodes {
		minX = math.Min(minX, n.X)
		maxX = math.Max(maxX, n.X)
		minY = math.Min(minY, n.Y)
		maxY = math.Max(maxY, n.Y)
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	latMid := (win.LatMin + win.LatMax) / 2
	lonMid := (win.LonMin + win.LonMax) / 2
	latSpan := win.LatMax - win.LatMin
	lonSpan := win.LonMax - win.LonMin

	aspectCorrection := math.Cos(latMid * math.Pi / 180.0)
	if aspectCorrection <= 0 {
		aspectCorrection = 1
	}

	scaleX := lonSpan * aspectCorrection / spanX
	scaleY := latSpan / spanY
	scale := math.Min(scaleX, scaleY)

	for i, n := range nodes {
		lon := lonMid + (n.X-(minX+spanX/2))*scale/aspectCorrection
		lat := latMid + (n.Y-(minY+spanY/2))*scale
		out[i] = struct{ Lat, Lon float64 }{Lat: lat, Lon: lon}
	}
	return out
}
