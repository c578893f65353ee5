package geo

//*******************************************
// geometry primitives
//*******************************************

// Coord is a geographic coordinate, [0] is longitude and [1] latitude
// (in floating-point degrees).
type Coord [2]float32

func (self Coord) Lon() float32 {
	return self[0]
}

func (self Coord) Lat() float32 {
	return self[1]
}

type CoordArray []Coord
