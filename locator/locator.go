package locator

import (
	"fmt"
	"math"

	"golang.org/x/exp/slog"

	"github.com/mapmatch/go-pathplan/geo"
	"github.com/mapmatch/go-pathplan/graph"
	"github.com/mapmatch/go-pathplan/raster"
	. "github.com/mapmatch/go-pathplan/util"
)

// number of equally spaced samples per segment during refinement
const refine_steps = 10

//*******************************************
// nearest-edge locator
//*******************************************

type Options struct {
	// side length of the oracle sample window, must be odd
	WindowSize int
	// pixel pitch of the first oracle query is 1/InitialScale degrees
	InitialScale float32
	// zooming out stops once the scale drops below this floor
	ScaleFloor float32
}

func DefaultOptions() Options {
	return Options{
		WindowSize:   11,
		InitialScale: 2000.0,
		ScaleFloor:   50.0,
	}
}

// Locator maps arbitrary coordinates onto the closest position of the road
// network. Candidate ways come from the rasterization oracle, the exact
// segment and interpolation factor from distance sampling. Stateless between
// calls, concurrent use is safe.
type Locator struct {
	g      *graph.Graph
	oracle raster.IOracle
	opts   Options
}

func NewLocator(g *graph.Graph, oracle raster.IOracle, opts Options) *Locator {
	return &Locator{
		g:      g,
		oracle: oracle,
		opts:   opts,
	}
}

// Locate returns the road-network position closest to point, or false if no
// way is visible in any sample window down to the scale floor. The number of
// oracle queries is bounded by the log of InitialScale/ScaleFloor.
func (self *Locator) Locate(point geo.Coord) (graph.RoadPosition, bool) {
	scale := self.opts.InitialScale
	for scale > self.opts.ScaleFloor {
		pixels := self.oracle.Query(point, scale, self.opts.WindowSize)
		way_id := ClosestWayIDToCenter(pixels, self.opts.WindowSize)
		if way_id != -1 {
			slog.Debug(fmt.Sprintf("locate: way %v found at scale %v", way_id, scale))
			return self.refine_position(way_id, point)
		}
		scale /= 2
	}
	slog.Debug("locate: no way found above scale floor")
	return graph.RoadPosition{Way: -1}, false
}

// refine_position walks every segment of the candidate way and samples 11
// equally spaced interpolation factors (0, 0.1, ... 1.0) per segment, keeping
// the globally closest one. Exact up to the sampling granularity.
func (self *Locator) refine_position(way_id int32, point geo.Coord) (graph.RoadPosition, bool) {
	way := self.g.GetWay(way_id)
	if len(way.Nodes) < 2 {
		return graph.RoadPosition{Way: -1}, false
	}
	min_dist := float32(math.Inf(1))
	min_segment := int32(0)
	min_factor := float32(0)
	for seg := 0; seg+1 < len(way.Nodes); seg++ {
		c1 := self.g.GetNodeCoord(way.Nodes[seg])
		c2 := self.g.GetNodeCoord(way.Nodes[seg+1])
		for i := 0; i <= refine_steps; i++ {
			factor := float32(i) / float32(refine_steps)
			sample := geo.Coord{
				c1[0] + (c2[0]-c1[0])*factor,
				c1[1] + (c2[1]-c1[1])*factor,
			}
			dist := graph.CoordDistance(sample, point)
			if dist < min_dist {
				min_dist = dist
				min_segment = int32(seg)
				min_factor = factor
			}
		}
	}
	return graph.RoadPosition{
		Way:     way_id,
		Segment: min_segment,
		Factor:  min_factor,
	}, true
}

// ClosestWayIDToCenter scans a row-major res x res sample window outward from
// the center in concentric square rings and returns the first way id found.
// Ties within a ring resolve by the fixed scan order below, so results are
// reproducible.
func ClosestWayIDToCenter(pixels Array[int32], res int) int32 {
	center := res / 2
	pixel := func(x int, y int) int32 {
		return pixels[y*res+x]
	}
	for dist := 0; dist <= center; dist++ {
		lower := center - dist
		higher := center + dist
		for i := lower; i <= higher; i++ {
			way_ids := [4]int32{
				pixel(i, lower),
				pixel(i, higher),
				pixel(lower, i),
				pixel(higher, i),
			}
			for _, way_id := range way_ids {
				if way_id != -1 {
					return way_id
				}
			}
		}
	}
	return -1
}
