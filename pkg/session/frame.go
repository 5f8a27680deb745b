package session

import (
	"slices"

	"github.com/matzehuels/graphwalk/pkg/anim"
	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/traverse"
)

// Frame is a read-only copy of everything a view needs to draw one frame.
// Renderers only ever see frames, never the live session.
type Frame struct {
	SessionID string
	Revision  uint64

	Canvas    graph.Canvas
	Positions []graph.Point
	Weights   [][]int // symmetric N×N, 0 = no edge

	Kind      traverse.Kind
	State     anim.State
	Highlight []int // visited nodes, ascending
	Order     []int // full visit order being revealed
	Parent    []int // discovery tree, -1 for the root and unreached nodes
	Cursor    int   // number of nodes revealed so far

	Status string
}

// Frame captures the current state.
func (s *Session) Frame() *Frame {
	f := &Frame{
		SessionID: s.id,
		Revision:  s.revision,
		Canvas:    s.graph.Canvas(),
		Positions: s.graph.Positions(),
		Weights:   s.graph.Weights(),
		Kind:      s.anim.Kind(),
		State:     s.anim.State(),
		Highlight: s.anim.HighlightSet(),
		Order:     s.anim.Sequence(),
		Cursor:    s.anim.Cursor(),
		Status:    s.status,
	}
	if s.result != nil {
		f.Parent = slices.Clone(s.result.Parent)
	}
	return f
}

// Len returns the number of nodes.
func (f *Frame) Len() int { return len(f.Weights) }

// Weight returns the weight of edge u–v, or 0 if there is none.
func (f *Frame) Weight(u, v int) int {
	if u < 0 || v < 0 || u >= len(f.Weights) || v >= len(f.Weights) {
		return 0
	}
	return f.Weights[u][v]
}

// Highlighted reports whether node i has been visited.
func (f *Frame) Highlighted(i int) bool {
	_, ok := slices.BinarySearch(f.Highlight, i)
	return ok
}

// Edges lists every edge once (U < V) in ascending (U, V) order.
func (f *Frame) Edges() []graph.Edge {
	var edges []graph.Edge
	for u := range f.Weights {
		for v := u + 1; v < len(f.Weights); v++ {
			if w := f.Weights[u][v]; w != 0 {
				edges = append(edges, graph.Edge{U: u, V: v, Weight: w})
			}
		}
	}
	return edges
}

// TreeEdge reports whether u–v is the edge through which one endpoint was
// discovered during the current traversal.
func (f *Frame) TreeEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= len(f.Parent) || v >= len(f.Parent) {
		return false
	}
	return f.Parent[v] == u || f.Parent[u] == v
}
