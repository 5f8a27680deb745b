// Package traverse computes breadth-first and depth-first visit orders over
// a [graph.View].
//
// Both searches start at [Root], consider only edge presence (never weight),
// and explore neighbours in ascending index order. That makes them pure,
// deterministic functions of the graph: for the default topology BFS visits
// [0 1 4 2 3] and DFS visits [0 1 2 3 4].
//
// DFS runs on an explicit stack, so deep graphs cannot exhaust the call
// stack.
package traverse

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

// Root is the fixed start node of every traversal.
const Root = 0

// Kind selects a traversal algorithm.
type Kind int

const (
	// KindNone means no traversal has been requested.
	KindNone Kind = iota
	// KindBFS is breadth-first (level order).
	KindBFS
	// KindDFS is depth-first pre-order.
	KindDFS
)

// String returns the lowercase name ("none", "bfs", "dfs").
func (k Kind) String() string {
	switch k {
	case KindBFS:
		return "bfs"
	case KindDFS:
		return "dfs"
	default:
		return "none"
	}
}

// Label returns the uppercase name used in status messages.
func (k Kind) Label() string { return strings.ToUpper(k.String()) }

// ParseKind converts "bfs" or "dfs" (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return KindBFS, nil
	case "dfs":
		return KindDFS, nil
	}
	return KindNone, fmt.Errorf("invalid traversal kind: %q (must be 'bfs' or 'dfs')", s)
}

// Result is the outcome of one traversal. It is never modified after
// being returned.
type Result struct {
	Kind  Kind
	Order []int // visit order; each reachable node exactly once

	// Depth[v] is the tree depth at which v was reached, -1 if unreached.
	// For BFS this is the hop distance from Root.
	Depth []int
	// Parent[v] is the node v was discovered from; -1 for Root and
	// unreached nodes.
	Parent []int
}

// Len returns the number of visited nodes.
func (r *Result) Len() int { return len(r.Order) }

// Visited reports whether v appears in the order.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// String joins the order with arrows, e.g. "0 → 1 → 4".
func (r *Result) String() string { return JoinOrder(r.Order) }

// JoinOrder formats a visit order as "0 → 1 → 4".
func JoinOrder(order []int) string {
	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " → ")
}

// Run dispatches to BFS or DFS. KindNone yields an empty result.
func Run(kind Kind, g graph.View) *Result {
	switch kind {
	case KindBFS:
		return BFS(g)
	case KindDFS:
		return DFS(g)
	}
	return newResult(KindNone, g.Len())
}

// BFS visits nodes in level order from Root. A node is marked when it is
// enqueued, so it can never be queued twice.
func BFS(g graph.View) *Result {
	res := newResult(KindBFS, g.Len())
	if g.Len() == 0 {
		return res
	}

	queue := []int{Root}
	res.Depth[Root] = 0

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, v)

		for nbr := range g.Neighbors(v) {
			if res.Depth[nbr] >= 0 {
				continue
			}
			res.Depth[nbr] = res.Depth[v] + 1
			res.Parent[nbr] = v
			queue = append(queue, nbr)
		}
	}
	return res
}

// DFS visits nodes in depth-first pre-order from Root, descending into the
// lowest-index unvisited neighbour before trying the next one.
func DFS(g graph.View) *Result {
	res := newResult(KindDFS, g.Len())
	if g.Len() == 0 {
		return res
	}

	type frame struct {
		node int
		nbrs []int
		next int
	}

	visit := func(v, parent, depth int) frame {
		res.Depth[v] = depth
		res.Parent[v] = parent
		res.Order = append(res.Order, v)
		return frame{node: v, nbrs: slices.Collect(g.Neighbors(v))}
	}

	stack := []frame{visit(Root, -1, 0)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++
		if res.Depth[nbr] >= 0 {
			continue
		}
		stack = append(stack, visit(nbr, top.node, res.Depth[top.node]+1))
	}
	return res
}

func newResult(kind Kind, n int) *Result {
	res := &Result{
		Kind:   kind,
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range n {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}
	return res
}
