package raster

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/mapmatch/go-pathplan/geo"
	"github.com/mapmatch/go-pathplan/graph"
	. "github.com/mapmatch/go-pathplan/util"
)

//*******************************************
// rasterization oracle
//*******************************************

// IOracle answers "which way is visible here" for a square window of sample
// points centered on a coordinate. A result of -1 means no way is visible at
// that sample. Implementations report against the same road geometry the
// graph holds.
type IOracle interface {
	Query(center geo.Coord, scale float32, size int) Array[int32]
}

type seg_ref struct {
	way     int32
	segment int32
}

// Index is a deterministic in-process oracle. Instead of rendering way ids
// into an offscreen buffer it buckets every way segment into a uniform grid
// keyed by cell coordinates and rasterizes sample windows against the
// bucketed segments. Immutable after construction, concurrent queries are
// safe.
type Index struct {
	g         *graph.Graph
	cell_size float64
	cells     Dict[int64, List[seg_ref]]
}

// NewIndex builds the segment grid in one pass over the ways. cell_size is
// the grid pitch in degrees.
func NewIndex(g *graph.Graph, cell_size float64) *Index {
	index := &Index{
		g:         g,
		cell_size: cell_size,
		cells:     NewDict[int64, List[seg_ref]](1000),
	}
	for way_id := 0; way_id < g.WayCount(); way_id++ {
		way := g.GetWay(int32(way_id))
		for seg := 0; seg+1 < len(way.Nodes); seg++ {
			c1 := g.GetNodeCoord(way.Nodes[seg])
			c2 := g.GetNodeCoord(way.Nodes[seg+1])
			bound := segment_bound(c1, c2)
			index.add_segment(bound, seg_ref{way: int32(way_id), segment: int32(seg)})
		}
	}
	return index
}

func segment_bound(c1 geo.Coord, c2 geo.Coord) orb.Bound {
	min := orb.Point{math.Min(float64(c1[0]), float64(c2[0])), math.Min(float64(c1[1]), float64(c2[1]))}
	max := orb.Point{math.Max(float64(c1[0]), float64(c2[0])), math.Max(float64(c1[1]), float64(c2[1]))}
	return orb.Bound{Min: min, Max: max}
}

func (self *Index) cell_key(x int32, y int32) int64 {
	return int64(x)<<32 | int64(uint32(y))
}

func (self *Index) add_segment(bound orb.Bound, ref seg_ref) {
	x0 := int32(math.Floor(bound.Min.X() / self.cell_size))
	x1 := int32(math.Floor(bound.Max.X() / self.cell_size))
	y0 := int32(math.Floor(bound.Min.Y() / self.cell_size))
	y1 := int32(math.Floor(bound.Max.Y() / self.cell_size))
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			key := self.cell_key(x, y)
			refs := self.cells.Get(key)
			refs.Add(ref)
			self.cells.Set(key, refs)
		}
	}
}

// Query samples a size x size window centered on center. The pixel pitch is
// 1/scale degrees, a way is visible at a sample if one of its segments
// passes within half a pixel of the sample point. Among overlapping ways the
// closest segment wins, ties keep the earlier-inserted segment. Returns the
// window row-major.
func (self *Index) Query(center geo.Coord, scale float32, size int) Array[int32] {
	pixels := NewArray[int32](size * size)
	pitch := 1.0 / float64(scale)
	half := size / 2
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			sample := orb.Point{
				float64(center[0]) + float64(col-half)*pitch,
				float64(center[1]) + float64(row-half)*pitch,
			}
			pixels[row*size+col] = self.sample_way(sample, pitch/2.0)
		}
	}
	return pixels
}

func (self *Index) sample_way(sample orb.Point, tolerance float64) int32 {
	x := int32(math.Floor(sample.X() / self.cell_size))
	y := int32(math.Floor(sample.Y() / self.cell_size))
	best_way := int32(-1)
	best_dist := math.Inf(1)
	// every cell the tolerance radius can reach has to be examined: at
	// coarse scales half a pixel spans more than one cell, and a sample
	// near a cell border can be within tolerance of segments bucketed
	// into the adjacent cell
	reach := int32(math.Ceil(tolerance / self.cell_size))
	if reach < 1 {
		reach = 1
	}
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			refs := self.cells.Get(self.cell_key(x+dx, y+dy))
			for _, ref := range refs {
				way := self.g.GetWay(ref.way)
				c1 := self.g.GetNodeCoord(way.Nodes[ref.segment])
				c2 := self.g.GetNodeCoord(way.Nodes[ref.segment+1])
				dist := segment_distance(sample, c1, c2)
				if dist <= tolerance && dist < best_dist {
					best_dist = dist
					best_way = ref.way
				}
			}
		}
	}
	return best_way
}

// segment_distance returns the planar degree-space distance between a point
// and the closest point of a segment.
func segment_distance(p orb.Point, c1 geo.Coord, c2 geo.Coord) float64 {
	a := orb.Point{float64(c1[0]), float64(c1[1])}
	b := orb.Point{float64(c2[0]), float64(c2[1])}
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	len_2 := dx*dx + dy*dy
	t := 0.0
	if len_2 > 0 {
		t = ((p.X()-a.X())*dx + (p.Y()-a.Y())*dy) / len_2
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	cx := a.X() + t*dx - p.X()
	cy := a.Y() + t*dy - p.Y()
	return math.Sqrt(cx*cx + cy*cy)
}
