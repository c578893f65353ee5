package graph

import (
	"math"

	"github.com/mapmatch/go-pathplan/geo"
)

const (
	earth_radius = 6371000.8
	pi180        = math.Pi / 180.0
)

// Distance returns the planar-approximated distance between two nodes in
// meters. The longitude delta is scaled by the cosine of the mean latitude
// before combining with the latitude delta in a Euclidean norm, which keeps
// the function symmetric. Adequate for regional road networks, not valid
// near the poles or over long distances.
func (self *Graph) Distance(a int32, b int32) float32 {
	na := self.nodes[a]
	nb := self.nodes[b]
	lon_a := float64(na.Lon) / 10000000.0
	lat_a := float64(na.Lat) / 10000000.0
	lon_b := float64(nb.Lon) / 10000000.0
	lat_b := float64(nb.Lat) / 10000000.0
	mid_lat := (lat_a + lat_b) / 2.0
	dlon := (lon_b - lon_a) * math.Cos(mid_lat*pi180)
	dlat := lat_b - lat_a
	deg := math.Sqrt(dlon*dlon + dlat*dlat)
	return float32(deg * pi180 * earth_radius)
}

// CoordDistance is the same planar approximation between two floating
// coordinates, used by the locator's refinement sampling.
func CoordDistance(a geo.Coord, b geo.Coord) float32 {
	mid_lat := float64(a[1]+b[1]) / 2.0
	dlon := float64(b[0]-a[0]) * math.Cos(mid_lat*pi180)
	dlat := float64(b[1] - a[1])
	deg := math.Sqrt(dlon*dlon + dlat*dlat)
	return float32(deg * pi180 * earth_radius)
}
