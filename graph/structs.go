package graph

import (
	"github.com/mapmatch/go-pathplan/geo"
)

//*******************************************
// graph structs
//*******************************************

// Node is a point of the road network. Coordinates are stored fixed-point
// as decimicro-degrees (1 unit = 1e-7 degree) and converted to floating
// degrees only at geometry boundaries.
type Node struct {
	Lon int32
	Lat int32
}

func (self Node) Coord() geo.Coord {
	return geo.Coord{
		float32(float64(self.Lon) / 10000000.0),
		float32(float64(self.Lat) / 10000000.0),
	}
}

// Way is an ordered node-id polyline with free-text "key/value" tags
// (e.g. "highway/residential", "bicycle/yes").
type Way struct {
	Nodes []int32
	Tags  []string
}

// WayPos marks one occurrence of a node within a way.
type WayPos struct {
	Way int32
	Pos int32
}

// RoadPosition is a point on a way that need not be a node. Factor
// interpolates linearly between Way.Nodes[Segment] and Way.Nodes[Segment+1],
// with Factor in [0,1]. Positions are recomputed per query and never stored.
type RoadPosition struct {
	Way     int32   `json:"way"`
	Segment int32   `json:"segment"`
	Factor  float32 `json:"factor"`
}
