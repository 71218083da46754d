// Package pathing implements A* search over hex coordinates with
// pluggable heuristic, neighbor, and cost functions.
package pathing

import (
	"container/heap"

	"github.com/tannersley/hexland/internal/hexmath"
)

// AStar computes a least-cost path from start to goal.
//   - h: admissible heuristic (e.g. hex distance to goal)
//   - neighbors: adjacent coordinates to explore
//   - cost: edge cost between adjacent coordinates (clamped to >= 1)
//
// Returns the path including start and goal, or nil if the search
// exhausts without reaching the goal. Tie order among equal-f nodes is
// unspecified.
func AStar(start, goal hexmath.Hex,
	h func(a hexmath.Hex) int,
	neighbors func(a hexmath.Hex) []hexmath.Hex,
	cost func(a, b hexmath.Hex) int,
) []hexmath.Hex {
	if start == goal {
		return []hexmath.Hex{start}
	}

	open := &nodePQ{}
	heap.Init(open)
	push := func(a hexmath.Hex, f int) { heap.Push(open, &pqNode{coord: a, f: f}) }

	g := map[hexmath.Hex]int{start: 0}
	came := map[hexmath.Hex]hexmath.Hex{}
	closed := map[hexmath.Hex]bool{}
	push(start, h(start))

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode).coord
		if closed[cur] {
			continue
		}
		closed[cur] = true

		if cur == goal {
			path := []hexmath.Hex{goal}
			for k := goal; k != start; {
				k = came[k]
				path = append(path, k)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, nb := range neighbors(cur) {
			if closed[nb] {
				continue
			}
			step := cost(cur, nb)
			if step < 1 {
				step = 1
			}
			tentative := g[cur] + step
			old, ok := g[nb]
			if !ok || tentative < old {
				g[nb] = tentative
				came[nb] = cur
				push(nb, tentative+h(nb))
			}
		}
	}
	return nil
}

// HeuristicTo returns the hex-distance heuristic toward goal.
func HeuristicTo(goal hexmath.Hex) func(a hexmath.Hex) int {
	return func(a hexmath.Hex) int { return hexmath.Distance(a, goal) }
}

type pqNode struct {
	coord hexmath.Hex
	f     int
}

type nodePQ []*pqNode

func (p nodePQ) Len() int           { return len(p) }
func (p nodePQ) Less(i, j int) bool { return p[i].f < p[j].f }
func (p nodePQ) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p *nodePQ) Push(x any)        { *p = append(*p, x.(*pqNode)) }
func (p *nodePQ) Pop() any {
	old := *p
	n := len(old)
	x := old[n-1]
	*p = old[:n-1]
	return x
}
