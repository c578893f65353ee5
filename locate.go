package main

import (
	"github.com/mapmatch/go-pathplan/geo"
	"github.com/mapmatch/go-pathplan/graph"
)

//**********************************************************
// locate requests and responses
//**********************************************************

type LocateRequest struct {
	Lon float32 `json:"lon"`
	Lat float32 `json:"lat"`
}

type LocateResponse struct {
	Found    bool               `json:"found"`
	Position graph.RoadPosition `json:"position"`
	Coord    []float32          `json:"coord,omitempty"`
	Tags     []string           `json:"tags,omitempty"`
}

//**********************************************************
// locate handler
//**********************************************************

// HandleLocateRequest map-matches a coordinate onto the road network. A miss
// is an ordinary outcome, not an error.
func HandleLocateRequest(req LocateRequest) Result {
	point := geo.Coord{req.Lon, req.Lat}
	pos, ok := LOCATOR.Locate(point)
	if !ok {
		return OK(LocateResponse{Found: false, Position: pos})
	}
	coord := GRAPH.ResolvePosition(pos)
	return OK(LocateResponse{
		Found:    true,
		Position: pos,
		Coord:    []float32{coord.Lon(), coord.Lat()},
		Tags:     GRAPH.GetWayTags(pos.Way),
	})
}
