package locator

import (
	"testing"

	"github.com/mapmatch/go-pathplan/geo"
	"github.com/mapmatch/go-pathplan/graph"
	"github.com/mapmatch/go-pathplan/raster"
	. "github.com/mapmatch/go-pathplan/util"
)

// 9000 decimicro-degrees of latitude are roughly 100 m
const lat_step = 9000

func build_locator(t *testing.T, nodes []graph.Node, ways []graph.Way) (*graph.Graph, *Locator) {
	g, err := graph.NewGraph(Array[graph.Node](nodes), Array[graph.Way](ways))
	if err != nil {
		t.Fatalf("NewGraph failed: %v", err)
	}
	oracle := raster.NewIndex(g, 0.005)
	return g, NewLocator(g, oracle, DefaultOptions())
}

func TestLocateNodeRoundTrip(t *testing.T) {
	g, loc := build_locator(t,
		[]graph.Node{
			{Lon: 0, Lat: 0},
			{Lon: 0, Lat: lat_step},
			{Lon: 0, Lat: 2 * lat_step},
		},
		[]graph.Way{{Nodes: []int32{0, 1, 2}}},
	)
	point := g.GetNodeCoord(1)
	pos, ok := loc.Locate(point)
	if !ok {
		t.Fatalf("Locate found nothing at a node coordinate")
	}
	if pos.Way != 0 {
		t.Errorf("pos.Way = %v; want 0", pos.Way)
	}
	resolved := g.ResolvePosition(pos)
	if resolved != point {
		t.Errorf("round trip: resolved %v; want %v", resolved, point)
	}
}

func TestLocateRefinesToClosestSegment(t *testing.T) {
	_, loc := build_locator(t,
		[]graph.Node{
			{Lon: 0, Lat: 0},
			{Lon: 2 * lat_step, Lat: 0},
			{Lon: 4 * lat_step, Lat: 0},
		},
		[]graph.Way{{Nodes: []int32{0, 1, 2}}},
	)
	// slightly off the middle of the second segment
	point := geo.Coord{0.0027, 0.00001}
	pos, ok := loc.Locate(point)
	if !ok {
		t.Fatalf("Locate found nothing near the way")
	}
	if pos.Segment != 1 {
		t.Errorf("pos.Segment = %v; want 1", pos.Segment)
	}
	if pos.Factor < 0 || pos.Factor > 1 {
		t.Errorf("pos.Factor = %v; want within [0,1]", pos.Factor)
	}
}

func TestLocateNoMatch(t *testing.T) {
	_, loc := build_locator(t,
		[]graph.Node{{Lon: 0, Lat: 0}, {Lon: 0, Lat: lat_step}},
		[]graph.Way{{Nodes: []int32{0, 1}}},
	)
	// several degrees away, beyond any zoom-out window
	_, ok := loc.Locate(geo.Coord{3.0, 3.0})
	if ok {
		t.Errorf("Locate must report no match far from the network")
	}
}

func TestLocateZoomsOut(t *testing.T) {
	_, loc := build_locator(t,
		[]graph.Node{{Lon: 0, Lat: 0}, {Lon: 0, Lat: lat_step}},
		[]graph.Way{{Nodes: []int32{0, 1}}},
	)
	// outside the initial-scale window (half extent 0.0025 degrees), inside
	// a zoomed-out one
	pos, ok := loc.Locate(geo.Coord{0.008, 0})
	if !ok {
		t.Fatalf("Locate must find the way after zooming out")
	}
	if pos.Way != 0 {
		t.Errorf("pos.Way = %v; want 0", pos.Way)
	}
}

func TestClosestWayIDScanOrder(t *testing.T) {
	res := 11
	pixels := NewArray[int32](res * res)
	for i := range pixels {
		pixels[i] = -1
	}
	set := func(x int, y int, v int32) {
		pixels[y*res+x] = v
	}

	if id := ClosestWayIDToCenter(pixels, res); id != -1 {
		t.Errorf("empty window: id = %v; want -1", id)
	}

	// a hit on an outer ring
	set(0, 0, 9)
	if id := ClosestWayIDToCenter(pixels, res); id != 9 {
		t.Errorf("outer ring: id = %v; want 9", id)
	}

	// a closer ring wins over the outer hit
	set(4, 5, 7)
	if id := ClosestWayIDToCenter(pixels, res); id != 7 {
		t.Errorf("inner ring: id = %v; want 7", id)
	}

	// the center pixel wins over everything
	set(5, 5, 3)
	if id := ClosestWayIDToCenter(pixels, res); id != 3 {
		t.Errorf("center: id = %v; want 3", id)
	}
}
