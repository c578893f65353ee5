package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"

	"github.com/mapmatch/go-pathplan/graph"
	"github.com/mapmatch/go-pathplan/locator"
	"github.com/mapmatch/go-pathplan/parser"
	"github.com/mapmatch/go-pathplan/raster"
)

var CONFIG Config
var GRAPH *graph.Graph
var LOCATOR *locator.Locator

type none struct{}

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	CONFIG = ReadConfig("./config.yaml")

	g, err := parser.ParseGraph(CONFIG.Source.OSM, CONFIG.WayFilter())
	if err != nil {
		slog.Error("failed to load graph: " + err.Error())
		os.Exit(1)
	}
	GRAPH = g
	oracle := raster.NewIndex(g, CONFIG.Locator.CellSize)
	LOCATOR = locator.NewLocator(g, oracle, CONFIG.LocatorOptions())

	app := mux.NewRouter()
	MapGet(app, "/v0/status", HandleStatusRequest)
	MapGet(app, "/v0/locate", HandleLocateRequest)
	MapPost(app, "/v0/route", HandleRouteRequest)

	slog.Info("server listening on " + CONFIG.Server.Address)
	if err := http.ListenAndServe(CONFIG.Server.Address, app); err != nil {
		slog.Error("server stopped: " + err.Error())
		os.Exit(1)
	}
}

type StatusResponse struct {
	Nodes int `json:"nodes"`
	Ways  int `json:"ways"`
}

func HandleStatusRequest(none) Result {
	return OK(StatusResponse{
		Nodes: GRAPH.NodeCount(),
		Ways:  GRAPH.WayCount(),
	})
}
