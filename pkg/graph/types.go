package graph

import "iter"

// =============================================================================
// View - Read-only Graph Access
// =============================================================================

// View is read-only access to a weighted undirected graph.
type View interface {
	// Len returns the number of nodes.
	Len() int
	// Weight returns the weight of edge u–v, or 0 if there is none.
	Weight(u, v int) int
	// Neighbors yields every i with Weight(v, i) != 0 in ascending order.
	Neighbors(v int) iter.Seq[int]
}

// =============================================================================
// Point, Edge
// =============================================================================

// Point is a node position on the logical canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge is an undirected weighted edge with U < V.
type Edge struct {
	U      int `json:"u"`
	V      int `json:"v"`
	Weight int `json:"weight"`
}

// =============================================================================
// Default Topology
// =============================================================================

// DefaultPositions returns the positions of the five default nodes.
func DefaultPositions() []Point {
	return []Point{
		{X: 350, Y: 80},
		{X: 560, Y: 200},
		{X: 490, Y: 370},
		{X: 210, Y: 370},
		{X: 140, Y: 200},
	}
}

// DefaultEdges returns the edges of the default topology.
func DefaultEdges() []Edge {
	return []Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 0, V: 4, Weight: 2},
		{U: 1, V: 2, Weight: 3},
		{U: 2, V: 3, Weight: 5},
		{U: 3, V: 4, Weight: 6},
	}
}

// =============================================================================
// Snapshot
// =============================================================================

// Snapshot is an immutable copy of a graph's weight relation.
type Snapshot struct {
	w [][]int
}

// Len returns the number of nodes.
func (s *Snapshot) Len() int { return len(s.w) }

// Weight returns the weight of edge u–v, or 0 if there is none.
// Out-of-range indices report 0.
func (s *Snapshot) Weight(u, v int) int { return weightAt(s.w, u, v) }

// Neighbors yields the neighbours of v in ascending index order.
func (s *Snapshot) Neighbors(v int) iter.Seq[int] { return neighbors(s.w, v) }

var (
	_ View = (*Snapshot)(nil)
	_ View = (*Store)(nil)
)

// =============================================================================
// Internal Helpers
// =============================================================================

func weightAt(w [][]int, u, v int) int {
	if u < 0 || v < 0 || u >= len(w) || v >= len(w) {
		return 0
	}
	return w[u][v]
}

func neighbors(w [][]int, v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if v < 0 || v >= len(w) {
			return
		}
		for i, weight := range w[v] {
			if weight == 0 || i == v {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

func cloneMatrix(w [][]int) [][]int {
	out := make([][]int, len(w))
	for i, row := range w {
		out[i] = append([]int(nil), row...)
	}
	return out
}
