package parser

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"

	"github.com/mapmatch/go-pathplan/graph"
	. "github.com/mapmatch/go-pathplan/util"
)

//*******************************************
// osm parser
//*******************************************

type temp_way struct {
	refs []int64
	tags []string
}

// ParseGraph reads an OSM pbf extract and builds the road graph. Ways are
// scanned first to collect the referenced node ids, then nodes are scanned
// and re-indexed into a dense array, so way node lists become indexes into
// it. A way referencing a node missing from the extract is a load fault.
func ParseGraph(pbf_file string, filter IWayFilter) (*graph.Graph, error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open pbf file")
	}
	defer file.Close()

	ways := NewList[temp_way](10000)
	index_mapping := NewDict[int64, int32](10000)

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_WayHandler(scanner, filter, &ways, &index_mapping)
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, errors.Wrap(err, "failed to scan ways")
	}
	scanner.Close()
	if _, err := file.Seek(0, 0); err != nil {
		return nil, errors.Wrap(err, "failed to rewind pbf file")
	}

	nodes := NewList[graph.Node](10000)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_NodeHandler(scanner, &nodes, &index_mapping)
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, errors.Wrap(err, "failed to scan nodes")
	}
	scanner.Close()

	graph_ways := NewList[graph.Way](ways.Length())
	for i, way := range ways {
		way_nodes := make([]int32, len(way.refs))
		for j, ref := range way.refs {
			// mapping values are stored off by one, zero marks a node
			// the way pass saw but the node pass never delivered
			index := index_mapping.Get(ref)
			if index == 0 {
				return nil, errors.Errorf("way %v references node %v missing from the extract", i, ref)
			}
			way_nodes[j] = index - 1
		}
		graph_ways.Add(graph.Way{Nodes: way_nodes, Tags: way.tags})
	}

	slog.Info(fmt.Sprintf("parsed %v nodes and %v ways", nodes.Length(), graph_ways.Length()))
	g, err := graph.NewGraph(Array[graph.Node](nodes), Array[graph.Way](graph_ways))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build graph")
	}
	return g, nil
}

//*******************************************
// osm handler methods
//*******************************************

func _WayHandler(scanner *osmpbf.Scanner, filter IWayFilter, ways *List[temp_way], index_mapping *Dict[int64, int32]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	c := 0
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !filter.IsValidWay(tags) {
				continue
			}
			if len(object.Nodes) < 2 {
				continue
			}
			c += 1
			if c%1000 == 0 {
				slog.Debug(fmt.Sprintf("scanned %v ways", c))
			}
			refs := make([]int64, 0, len(object.Nodes))
			for _, node_id := range object.Nodes.NodeIDs() {
				ref := node_id.FeatureID().Ref()
				refs = append(refs, ref)
				if !index_mapping.ContainsKey(ref) {
					index_mapping.Set(ref, 0)
				}
			}
			way_tags := make([]string, 0, len(object.Tags))
			for _, tag := range object.Tags {
				way_tags = append(way_tags, tag.Key+"/"+tag.Value)
			}
			ways.Add(temp_way{refs: refs, tags: way_tags})
		default:
			continue
		}
	}
}

func _NodeHandler(scanner *osmpbf.Scanner, nodes *List[graph.Node], index_mapping *Dict[int64, int32]) {
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			ref := object.FeatureID().Ref()
			if !index_mapping.ContainsKey(ref) {
				continue
			}
			nodes.Add(graph.Node{
				Lon: int32(math.Round(object.Lon * 10000000.0)),
				Lat: int32(math.Round(object.Lat * 10000000.0)),
			})
			index_mapping.Set(ref, int32(nodes.Length()))
		default:
			continue
		}
	}
}
