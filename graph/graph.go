package graph

import (
	"github.com/pkg/errors"

	"github.com/mapmatch/go-pathplan/geo"
	. "github.com/mapmatch/go-pathplan/util"
)

//*******************************************
// road graph
//*******************************************

// Graph is the in-memory road network. It is immutable after construction,
// concurrent reads are safe.
type Graph struct {
	nodes     Array[Node]
	ways      Array[Way]
	adjacency Array[List[WayPos]]
}

// NewGraph validates the raw node/way sets and builds the node->(way, pos)
// adjacency index in a single pass. Ways with fewer than two nodes and node
// references outside the node set abort construction.
func NewGraph(nodes Array[Node], ways Array[Way]) (*Graph, error) {
	adjacency := NewArray[List[WayPos]](nodes.Length())
	for way_id, way := range ways {
		if len(way.Nodes) < 2 {
			return nil, errors.Errorf("way %v is degenerate: has %v nodes, need at least 2", way_id, len(way.Nodes))
		}
		for pos, node_id := range way.Nodes {
			if node_id < 0 || int(node_id) >= nodes.Length() {
				return nil, errors.Errorf("way %v references missing node %v", way_id, node_id)
			}
			adjacency[node_id].Add(WayPos{Way: int32(way_id), Pos: int32(pos)})
		}
	}
	return &Graph{
		nodes:     nodes,
		ways:      ways,
		adjacency: adjacency,
	}, nil
}

func (self *Graph) NodeCount() int {
	return self.nodes.Length()
}
func (self *Graph) WayCount() int {
	return self.ways.Length()
}
func (self *Graph) GetWay(way int32) Way {
	return self.ways[way]
}
func (self *Graph) GetNodeCoord(node int32) geo.Coord {
	return self.nodes[node].Coord()
}

// GetWayTags returns the tags of a way for display purposes.
func (self *Graph) GetWayTags(way int32) []string {
	return self.ways[way].Tags
}

// ForNodeOccurrences iterates the adjacency index, calling the callback for
// every (way, position) pair the node occurs in.
func (self *Graph) ForNodeOccurrences(node int32, callback func(WayPos)) {
	if node < 0 || int(node) >= self.adjacency.Length() {
		return
	}
	for _, occ := range self.adjacency[node] {
		callback(occ)
	}
}

// ForNeighbors calls the callback for every node adjacent to the given node,
// deduplicated in first-occurrence order. Adjacent means immediately before
// or after an occurrence of the node in some way. Unknown ids yield nothing.
func (self *Graph) ForNeighbors(node int32, callback func(int32)) {
	if node < 0 || int(node) >= self.adjacency.Length() {
		return
	}
	seen := NewList[int32](4)
	emit := func(other int32) {
		for _, s := range seen {
			if s == other {
				return
			}
		}
		seen.Add(other)
		callback(other)
	}
	for _, occ := range self.adjacency[node] {
		way_nodes := self.ways[occ.Way].Nodes
		if int(occ.Pos)+1 < len(way_nodes) {
			emit(way_nodes[occ.Pos+1])
		}
		if occ.Pos > 0 {
			emit(way_nodes[occ.Pos-1])
		}
	}
}

// Neighbors collects the adjacency of a node into a list.
func (self *Graph) Neighbors(node int32) List[int32] {
	neighbors := NewList[int32](4)
	self.ForNeighbors(node, func(other int32) {
		neighbors.Add(other)
	})
	return neighbors
}

// ResolvePosition converts a RoadPosition back into a coordinate by
// interpolating along its segment.
func (self *Graph) ResolvePosition(pos RoadPosition) geo.Coord {
	way := self.ways[pos.Way]
	c1 := self.nodes[way.Nodes[pos.Segment]].Coord()
	c2 := self.nodes[way.Nodes[pos.Segment+1]].Coord()
	return geo.Coord{
		c1[0] + (c2[0]-c1[0])*pos.Factor,
		c1[1] + (c2[1]-c1[1])*pos.Factor,
	}
}

// PositionNode snaps a RoadPosition to the first endpoint of its segment.
// The interpolation factor is discarded, route endpoints can be off by up to
// one segment length.
func (self *Graph) PositionNode(pos RoadPosition) int32 {
	return self.ways[pos.Way].Nodes[pos.Segment]
}
