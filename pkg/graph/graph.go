package graph

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/graphwalk/pkg/errors"
)

// Store holds node positions and the symmetric weight relation.
//
// The zero value is not usable - use New or FromEdges.
type Store struct {
	canvas Canvas
	pos    []Point
	w      [][]int
}

// New creates a store holding the default topology on the given canvas.
func New(canvas Canvas) *Store {
	s := &Store{canvas: canvas}
	s.Reset()
	return s
}

// FromEdges builds a store with the given positions and edges. The number
// of nodes is len(positions). Every edge goes through AddEdge validation;
// the first invalid edge aborts construction.
func FromEdges(canvas Canvas, positions []Point, edges []Edge) (*Store, error) {
	s := &Store{
		canvas: canvas,
		pos:    slices.Clone(positions),
		w:      newMatrix(len(positions)),
	}
	for _, e := range edges {
		if err := s.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Reset restores the default positions and weights unconditionally.
// Positions are clamped so they fit a canvas smaller than the default.
func (s *Store) Reset() {
	s.pos = DefaultPositions()
	for i, p := range s.pos {
		s.pos[i] = s.canvas.Clamp(p)
	}
	s.w = newMatrix(len(s.pos))
	for _, e := range DefaultEdges() {
		s.w[e.U][e.V] = e.Weight
		s.w[e.V][e.U] = e.Weight
	}
}

// AddEdge sets weight(u,v) = weight(v,u) = w, overwriting any prior value.
//
// Returns OUT_OF_RANGE if u or v is outside [0, N), SELF_LOOP if u == v,
// or INVALID_WEIGHT if w < 1. On error the weights are unchanged.
func (s *Store) AddEdge(u, v, w int) error {
	if err := s.checkRange(u, v); err != nil {
		return err
	}
	if u == v {
		return errors.New(errors.ErrCodeSelfLoop, "self-loops not supported")
	}
	if w < 1 {
		return errors.New(errors.ErrCodeInvalidWeight, "weight must be ≥ 1")
	}
	s.w[u][v] = w
	s.w[v][u] = w
	return nil
}

// RemoveEdge clears edge u–v in both directions.
//
// Returns OUT_OF_RANGE if u or v is outside [0, N). Returns the NO_EDGE
// warning if there is no edge between u and v (which includes u == v);
// nothing is changed in that case.
func (s *Store) RemoveEdge(u, v int) error {
	if err := s.checkRange(u, v); err != nil {
		return err
	}
	if s.w[u][v] == 0 {
		return errors.New(errors.ErrCodeNoEdge, "no edge exists between %d and %d", u, v)
	}
	s.w[u][v] = 0
	s.w[v][u] = 0
	return nil
}

// Len returns the number of nodes.
func (s *Store) Len() int { return len(s.w) }

// Weight returns the weight of edge u–v, or 0 if there is none.
// Out-of-range indices report 0.
func (s *Store) Weight(u, v int) int { return weightAt(s.w, u, v) }

// Neighbors yields the neighbours of v in ascending index order.
// The sequence reads the live store; do not edit while ranging over it.
func (s *Store) Neighbors(v int) iter.Seq[int] { return neighbors(s.w, v) }

// Snapshot returns an immutable copy of the weight relation.
func (s *Store) Snapshot() *Snapshot { return &Snapshot{w: cloneMatrix(s.w)} }

// Weights returns a deep copy of the N×N weight matrix.
func (s *Store) Weights() [][]int { return cloneMatrix(s.w) }

// Positions returns a copy of the node positions.
func (s *Store) Positions() []Point { return slices.Clone(s.pos) }

// Canvas returns the logical canvas the positions live on.
func (s *Store) Canvas() Canvas { return s.canvas }

// Edges lists every edge once (U < V) in ascending (U, V) order.
func (s *Store) Edges() []Edge {
	var edges []Edge
	for u := range s.w {
		for v := u + 1; v < len(s.w); v++ {
			if s.w[u][v] != 0 {
				edges = append(edges, Edge{U: u, V: v, Weight: s.w[u][v]})
			}
		}
	}
	return edges
}

// EdgeCount returns the number of undirected edges.
func (s *Store) EdgeCount() int { return len(s.Edges()) }

func (s *Store) checkRange(u, v int) error {
	n := len(s.w)
	if u < 0 || v < 0 || u >= n || v >= n {
		return errors.New(errors.ErrCodeOutOfRange, "node indices must be 0 – %d", n-1)
	}
	return nil
}

func newMatrix(n int) [][]int {
	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, n)
	}
	return w
}

// =============================================================================
// Input Parsing
// =============================================================================

// ParseEdgeInput converts raw add-edge fields to integers.
// Returns INVALID_INPUT if any field is not a base-10 integer.
func ParseEdgeInput(u, v, w string) (int, int, int, error) {
	nums, err := parseInts(u, v, w)
	if err != nil {
		return 0, 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "all fields must be numbers")
	}
	return nums[0], nums[1], nums[2], nil
}

// ParsePairInput converts raw remove-edge fields to integers.
// Returns INVALID_INPUT if either field is not a base-10 integer.
func ParsePairInput(u, v string) (int, int, error) {
	nums, err := parseInts(u, v)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "enter valid node indices")
	}
	return nums[0], nums[1], nil
}

func parseInts(fields ...string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
