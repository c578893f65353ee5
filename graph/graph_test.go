package graph

import (
	"math"
	"testing"

	. "github.com/mapmatch/go-pathplan/util"
)

// 9000 decimicro-degrees of latitude are roughly 100 m
const lat_step = 9000

func build_test_graph(t *testing.T, nodes []Node, ways []Way) *Graph {
	g, err := NewGraph(Array[Node](nodes), Array[Way](ways))
	if err != nil {
		t.Fatalf("NewGraph failed: %v", err)
	}
	return g
}

func TestDistanceSymmetric(t *testing.T) {
	g := build_test_graph(t,
		[]Node{{Lon: 0, Lat: 0}, {Lon: 12345, Lat: 2 * lat_step}},
		[]Way{{Nodes: []int32{0, 1}}},
	)
	if g.Distance(0, 1) != g.Distance(1, 0) {
		t.Errorf("distance not symmetric: %v != %v", g.Distance(0, 1), g.Distance(1, 0))
	}
	if g.Distance(0, 0) != 0 {
		t.Errorf("distance(a, a) = %v; want 0", g.Distance(0, 0))
	}
	if g.Distance(0, 1) <= 0 {
		t.Errorf("distance between distinct nodes must be positive, got %v", g.Distance(0, 1))
	}
}

func TestDistanceLatitudeStep(t *testing.T) {
	g := build_test_graph(t,
		[]Node{{Lon: 0, Lat: 0}, {Lon: 0, Lat: lat_step}},
		[]Way{{Nodes: []int32{0, 1}}},
	)
	dist := float64(g.Distance(0, 1))
	if math.Abs(dist-100.0) > 1.0 {
		t.Errorf("latitude step distance = %v; want ~100 m", dist)
	}
}

func TestNeighborsSharedNode(t *testing.T) {
	// way 0 = [N1, N, N2], way 1 = [N, N3] with N = node 0
	g := build_test_graph(t,
		[]Node{
			{Lon: 0, Lat: 0},
			{Lon: -lat_step, Lat: 0},
			{Lon: lat_step, Lat: 0},
			{Lon: 0, Lat: lat_step},
		},
		[]Way{
			{Nodes: []int32{1, 0, 2}},
			{Nodes: []int32{0, 3}},
		},
	)
	neighbors := g.Neighbors(0)
	if neighbors.Length() != 3 {
		t.Fatalf("neighbors(0) has %v entries; want 3", neighbors.Length())
	}
	want := map[int32]bool{1: true, 2: true, 3: true}
	for _, n := range neighbors {
		if !want[n] {
			t.Errorf("unexpected neighbor %v", n)
		}
	}
}

func TestNeighborsSymmetric(t *testing.T) {
	g := build_test_graph(t,
		[]Node{
			{Lon: 0, Lat: 0},
			{Lon: -lat_step, Lat: 0},
			{Lon: lat_step, Lat: 0},
			{Lon: 0, Lat: lat_step},
		},
		[]Way{
			{Nodes: []int32{1, 0, 2}},
			{Nodes: []int32{0, 3}},
		},
	)
	for node := int32(0); node < int32(g.NodeCount()); node++ {
		for _, other := range g.Neighbors(node) {
			back := false
			for _, b := range g.Neighbors(other) {
				if b == node {
					back = true
				}
			}
			if !back {
				t.Errorf("node %v adjacent to %v but not vice versa", other, node)
			}
		}
	}
}

func TestAdjacencyIndexMatchesWays(t *testing.T) {
	g := build_test_graph(t,
		[]Node{
			{Lon: 0, Lat: 0},
			{Lon: -lat_step, Lat: 0},
			{Lon: lat_step, Lat: 0},
			{Lon: 0, Lat: lat_step},
		},
		[]Way{
			{Nodes: []int32{1, 0, 2}},
			{Nodes: []int32{0, 3}},
		},
	)
	// every index entry points at a real occurrence
	counts := NewDict[int32, int](g.NodeCount())
	for node := int32(0); node < int32(g.NodeCount()); node++ {
		g.ForNodeOccurrences(node, func(occ WayPos) {
			if g.GetWay(occ.Way).Nodes[occ.Pos] != node {
				t.Errorf("index entry %v for node %v does not match the way", occ, node)
			}
			counts.Set(node, counts.Get(node)+1)
		})
	}
	// and every occurrence is indexed
	total := 0
	for way := int32(0); way < int32(g.WayCount()); way++ {
		total += len(g.GetWay(way).Nodes)
	}
	indexed := 0
	for _, c := range counts {
		indexed += c
	}
	if indexed != total {
		t.Errorf("index holds %v occurrences; ways hold %v", indexed, total)
	}
}

func TestNeighborsUnknownNode(t *testing.T) {
	g := build_test_graph(t,
		[]Node{{Lon: 0, Lat: 0}, {Lon: 0, Lat: lat_step}},
		[]Way{{Nodes: []int32{0, 1}}},
	)
	unknown := g.Neighbors(99)
	if unknown.Length() != 0 {
		t.Errorf("neighbors of unknown node must be empty")
	}
	negative := g.Neighbors(-1)
	if negative.Length() != 0 {
		t.Errorf("neighbors of negative node must be empty")
	}
}

func TestNewGraphRejectsDegenerateWay(t *testing.T) {
	_, err := NewGraph(
		Array[Node]{{Lon: 0, Lat: 0}},
		Array[Way]{{Nodes: []int32{0}}},
	)
	if err == nil {
		t.Errorf("single-node way must abort construction")
	}
}

func TestNewGraphRejectsDanglingReference(t *testing.T) {
	_, err := NewGraph(
		Array[Node]{{Lon: 0, Lat: 0}, {Lon: 0, Lat: lat_step}},
		Array[Way]{{Nodes: []int32{0, 5}}},
	)
	if err == nil {
		t.Errorf("dangling node reference must abort construction")
	}
}

func TestResolvePosition(t *testing.T) {
	g := build_test_graph(t,
		[]Node{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 2 * lat_step}},
		[]Way{{Nodes: []int32{0, 1}}},
	)
	mid := g.ResolvePosition(RoadPosition{Way: 0, Segment: 0, Factor: 0.5})
	if mid[0] != 0 {
		t.Errorf("midpoint lon = %v; want 0", mid[0])
	}
	want_lat := float32(float64(lat_step) / 10000000.0)
	if math.Abs(float64(mid[1]-want_lat)) > 1e-9 {
		t.Errorf("midpoint lat = %v; want %v", mid[1], want_lat)
	}

	start := g.ResolvePosition(RoadPosition{Way: 0, Segment: 0, Factor: 0})
	if start != g.GetNodeCoord(0) {
		t.Errorf("factor 0 must resolve to the segment's first node")
	}
}

func TestPositionNode(t *testing.T) {
	g := build_test_graph(t,
		[]Node{{Lon: 0, Lat: 0}, {Lon: 0, Lat: lat_step}, {Lon: 0, Lat: 2 * lat_step}},
		[]Way{{Nodes: []int32{0, 1, 2}}},
	)
	if node := g.PositionNode(RoadPosition{Way: 0, Segment: 1, Factor: 0.9}); node != 1 {
		t.Errorf("PositionNode = %v; want 1", node)
	}
}
