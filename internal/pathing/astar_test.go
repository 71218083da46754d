package pathing

import (
	"testing"

	"github.com/tannersley/hexland/internal/hexmath"
)

// gridNeighbors restricts exploration to a small axial rectangle.
func gridNeighbors(allowed map[hexmath.Hex]bool) func(hexmath.Hex) []hexmath.Hex {
	return func(a hexmath.Hex) []hexmath.Hex {
		out := make([]hexmath.Hex, 0, 6)
		for _, nb := range a.Neighbors() {
			if allowed[nb] {
				out = append(out, nb)
			}
		}
		return out
	}
}

func rectangle(w, h int) map[hexmath.Hex]bool {
	allowed := make(map[hexmath.Hex]bool)
	for q := 0; q < w; q++ {
		for r := 0; r < h; r++ {
			allowed[hexmath.Hex{Q: q, R: r}] = true
		}
	}
	return allowed
}

func uniformCost(_, _ hexmath.Hex) int { return 1 }

func TestAStarShortestOnUniformCost(t *testing.T) {
	allowed := rectangle(8, 8)
	start := hexmath.Hex{Q: 0, R: 0}
	goal := hexmath.Hex{Q: 6, R: 3}

	path := AStar(start, goal, HeuristicTo(goal), gridNeighbors(allowed), uniformCost)
	if path == nil {
		t.Fatal("no path found on open grid")
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("path endpoints wrong: %v", path)
	}
	want := hexmath.Distance(start, goal) + 1
	if len(path) != want {
		t.Fatalf("path length %d, want %d on uniform cost", len(path), want)
	}
	for i := 1; i < len(path); i++ {
		if hexmath.Distance(path[i-1], path[i]) != 1 {
			t.Fatalf("path not contiguous at %d: %v", i, path)
		}
	}
}

func TestAStarStartEqualsGoal(t *testing.T) {
	h := hexmath.Hex{Q: 2, R: 2}
	path := AStar(h, h, HeuristicTo(h), gridNeighbors(rectangle(4, 4)), uniformCost)
	if len(path) != 1 || path[0] != h {
		t.Fatalf("expected single-hex path, got %v", path)
	}
}

func TestAStarNilWhenUnreachable(t *testing.T) {
	// Two disconnected cells: the goal is not in the allowed set's
	// reachable component.
	allowed := map[hexmath.Hex]bool{
		{Q: 0, R: 0}: true,
		{Q: 5, R: 5}: true,
	}
	start := hexmath.Hex{Q: 0, R: 0}
	goal := hexmath.Hex{Q: 5, R: 5}
	if path := AStar(start, goal, HeuristicTo(goal), gridNeighbors(allowed), uniformCost); path != nil {
		t.Fatalf("expected nil for unreachable goal, got %v", path)
	}
}

func TestAStarAvoidsExpensiveTile(t *testing.T) {
	allowed := rectangle(6, 6)
	expensive := hexmath.Hex{Q: 2, R: 2}
	cost := func(_, b hexmath.Hex) int {
		if b == expensive {
			return 100
		}
		return 1
	}

	start := hexmath.Hex{Q: 0, R: 2}
	goal := hexmath.Hex{Q: 4, R: 2}
	path := AStar(start, goal, HeuristicTo(goal), gridNeighbors(allowed), cost)
	if path == nil {
		t.Fatal("no path found")
	}
	for _, h := range path {
		if h == expensive {
			t.Fatalf("path crosses expensive tile when a cheap detour exists: %v", path)
		}
	}
}
