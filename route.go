package main

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/mapmatch/go-pathplan/geo"
	"github.com/mapmatch/go-pathplan/graph"
	"github.com/mapmatch/go-pathplan/routing"
)

//**********************************************************
// route requests and responses
//**********************************************************

type RouteRequest struct {
	Start  graph.RoadPosition `json:"start"`
	End    graph.RoadPosition `json:"end"`
	Mode   routing.Mode       `json:"mode"`
	Budget int                `json:"budget"`
}

type RouteResponse struct {
	// "ok", "no-route" or "budget-exhausted"; the latter two are distinct
	// so callers can tell "definitely no path" from "gave up"
	Status   string                     `json:"status"`
	Features *geojson.FeatureCollection `json:"features"`
}

func NewRouteResponse(coords geo.CoordArray, mode routing.Mode, status string) RouteResponse {
	collection := geojson.NewFeatureCollection()
	if len(coords) > 0 {
		points := make([][]float64, 0, len(coords))
		for _, coord := range coords {
			points = append(points, []float64{float64(coord.Lon()), float64(coord.Lat())})
		}
		if mode == routing.FRONTIER {
			collection.AddFeature(geojson.NewFeature(geojson.NewMultiPointGeometry(points...)))
		} else if len(points) == 1 {
			// start == end yields a single coordinate, which is not a
			// valid LineString
			collection.AddFeature(geojson.NewFeature(geojson.NewPointGeometry(points[0])))
		} else {
			// coordinates run from the target back to the start
			collection.AddFeature(geojson.NewFeature(geojson.NewLineStringGeometry(points)))
		}
	}
	return RouteResponse{
		Status:   status,
		Features: collection,
	}
}

//**********************************************************
// route handler
//**********************************************************

func HandleRouteRequest(req RouteRequest) Result {
	if !valid_position(req.Start) {
		return BadRequest("invalid start position")
	}
	if !valid_position(req.End) {
		return BadRequest("invalid end position")
	}
	if req.Budget < 1 {
		return BadRequest("budget must be at least 1")
	}
	budget := req.Budget
	if budget > CONFIG.Planner.MaxBudget {
		budget = CONFIG.Planner.MaxBudget
	}
	coords, err := routing.Plan(GRAPH, req.Start, req.End, req.Mode, budget)
	switch {
	case err == nil:
		return OK(NewRouteResponse(coords, req.Mode, "ok"))
	case errors.Is(err, routing.ErrNoRoute):
		return OK(NewRouteResponse(nil, req.Mode, "no-route"))
	case errors.Is(err, routing.ErrBudgetExhausted):
		return OK(NewRouteResponse(nil, req.Mode, "budget-exhausted"))
	default:
		return BadRequest(err.Error())
	}
}

func valid_position(pos graph.RoadPosition) bool {
	if pos.Way < 0 || int(pos.Way) >= GRAPH.WayCount() {
		return false
	}
	way := GRAPH.GetWay(pos.Way)
	if pos.Segment < 0 || int(pos.Segment)+1 >= len(way.Nodes) {
		return false
	}
	return pos.Factor >= 0 && pos.Factor <= 1
}
