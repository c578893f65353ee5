package routing

import (
	"github.com/pkg/errors"

	"github.com/mapmatch/go-pathplan/geo"
	"github.com/mapmatch/go-pathplan/graph"
	. "github.com/mapmatch/go-pathplan/util"
)

// ErrNoRoute is returned when the open set is exhausted before the target is
// reached, there is definitely no path.
var ErrNoRoute = errors.New("no route between start and end")

// ErrBudgetExhausted is returned when the expansion budget runs out before
// the search converges, a larger budget may still find a path.
var ErrBudgetExhausted = errors.New("search budget exhausted")

//*******************************************
// a-star search
//*******************************************

// all search state lives for a single Plan call
type astar struct {
	g         *graph.Graph
	end_node  int32
	open      open_list
	g_score   Dict[int32, float32]
	f_score   Dict[int32, float32]
	came_from Dict[int32, int32]
	// nodes in first f-score-assignment order, keeps frontier output
	// deterministic
	f_order List[int32]
}

// Plan runs an A* search over the road graph between two road positions.
// Both positions are snapped to the first endpoint of their segment before
// the search, the interpolation factor is not used inside the graph.
//
// In SHORTEST mode the returned path is in target-to-start order, the first
// coordinate is the end position's node and the last the start position's
// node. In FRONTIER mode the result is not a path but the coordinates of
// every node the search touched.
//
// budget caps the number of node expansions. There is no unlimited default,
// an unbounded search on a disconnected graph would never return.
func Plan(g *graph.Graph, start graph.RoadPosition, end graph.RoadPosition, mode Mode, budget int) (geo.CoordArray, error) {
	if budget < 1 {
		return nil, errors.Errorf("invalid node budget %v, must be at least 1", budget)
	}
	start_node := g.PositionNode(start)
	end_node := g.PositionNode(end)

	search := &astar{
		g:         g,
		end_node:  end_node,
		open:      new_open_list(100),
		g_score:   NewDict[int32, float32](100),
		f_score:   NewDict[int32, float32](100),
		came_from: NewDict[int32, int32](100),
		f_order:   NewList[int32](100),
	}
	search.g_score.Set(start_node, 0)
	search.set_f_score(start_node, g.Distance(start_node, end_node))
	search.open.Push(start_node, search.f_score.Get(start_node))

	expanded := 0
	budget_hit := false
	for {
		curr, ok := search.open.Pop()
		if !ok {
			break
		}
		if curr == end_node {
			if mode == FRONTIER {
				// leave the frontier observable instead of consuming
				// the target
				break
			}
			return search.reconstruct_path(curr), nil
		}
		if expanded >= budget {
			budget_hit = true
			break
		}
		expanded += 1
		search.expand(curr)
	}

	if mode == FRONTIER {
		return search.frontier(), nil
	}
	if budget_hit {
		return nil, ErrBudgetExhausted
	}
	return nil, ErrNoRoute
}

func (self *astar) set_f_score(node int32, f_score float32) {
	if !self.f_score.ContainsKey(node) {
		self.f_order.Add(node)
	}
	self.f_score.Set(node, f_score)
}

func (self *astar) expand(curr int32) {
	curr_g := self.g_score.Get(curr)
	self.g.ForNeighbors(curr, func(neighbor int32) {
		tentative_g := curr_g + self.g.Distance(curr, neighbor)
		if self.g_score.ContainsKey(neighbor) && tentative_g >= self.g_score.Get(neighbor) {
			return
		}
		self.came_from.Set(neighbor, curr)
		self.g_score.Set(neighbor, tentative_g)
		f := tentative_g + self.g.Distance(neighbor, self.end_node)
		self.set_f_score(neighbor, f)
		self.open.Push(neighbor, f)
	})
}

// reconstruct_path follows the came-from pointers back from the target,
// emitting coordinates in target-to-start order.
func (self *astar) reconstruct_path(curr int32) geo.CoordArray {
	path := NewList[geo.Coord](100)
	path.Add(self.g.GetNodeCoord(curr))
	for self.came_from.ContainsKey(curr) {
		curr = self.came_from.Get(curr)
		path.Add(self.g.GetNodeCoord(curr))
	}
	return geo.CoordArray(path)
}

func (self *astar) frontier() geo.CoordArray {
	coords := NewList[geo.Coord](self.f_order.Length())
	for _, node := range self.f_order {
		coords.Add(self.g.GetNodeCoord(node))
	}
	return geo.CoordArray(coords)
}
