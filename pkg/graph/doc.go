// Package graph provides the weighted undirected graph behind a traversal
// visualization.
//
// # Overview
//
// A [Store] owns two things: the node positions used for drawing and a
// symmetric weight relation. Nodes are identified by their index 0..N-1.
// A weight of 0 means "no edge"; positive weights are edges and are only
// ever used for display, never for search.
//
// The store validates every structural edit:
//
//	s := graph.New(graph.DefaultCanvas)
//	err := s.AddEdge(0, 2, 7)    // both directions become 7
//	err = s.RemoveEdge(1, 3)     // NO_EDGE warning, nothing changed
//	err = s.AddEdge(2, 2, 1)     // SELF_LOOP, rejected
//
// Rejected edits leave the weights byte-for-byte unchanged. See
// [github.com/matzehuels/graphwalk/pkg/errors] for the codes.
//
// # Views
//
// Traversal code reads a [View]. Both [*Store] and the immutable
// [*Snapshot] implement it; [View.Neighbors] yields indices in ascending
// order, which fixes tie-breaking for BFS and DFS.
//
// # Default Topology
//
// [New] and [Store.Reset] install the five-node default graph:
//
//	0 ─4─ 1 ─3─ 2 ─5─ 3 ─6─ 4 ─2─ 0
//
// # Canvas
//
// Positions live on a logical [Canvas]. [Store.MoveNode] clamps dragged
// nodes so their circles stay inside it and [Store.NodeAt] performs the
// pointer hit-test.
//
// # Concurrency
//
// A Store is not safe for concurrent use. Snapshots are immutable and may
// be shared freely.
package graph
