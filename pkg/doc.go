// Package pkg provides the libraries behind graphwalk, an interactive
// breadth-first and depth-first search visualizer.
//
// # Overview
//
// graphwalk keeps a small weighted undirected graph, lets the user edit its
// edges, and reveals the BFS or DFS visit order from node 0 one node per
// tick. The pkg directory is organized bottom-up:
//
//  1. [graph] - The graph store: fixed node set, symmetric weight matrix
//  2. [traverse] - BFS and DFS over a read-only graph view
//  3. [anim] - The tick-driven animation state machine
//  4. [session] - Ties the three together and publishes status and frames
//  5. [render] - Frame styling plus node-link and matrix views
//
// # Architecture
//
// Every user action goes through a session, and every view draws from a
// frame:
//
//	edit / start / tick / cancel
//	         ↓
//	    [session] package (graph + animator + status)
//	         ↓
//	    Frame (immutable copy)
//	         ↓
//	    [render/nodelink] DOT/SVG/PDF/PNG/JSON    [render/matrix] table
//
// # Quick Start
//
//	sess := session.New()
//	_ = sess.RemoveEdge(0, 1)
//
//	run := sess.StartTraversal(traverse.KindBFS)
//	for sess.Tick(run) {
//	}
//	fmt.Println(sess.Status()) // BFS complete — visited: [0 → 4 → 3 → 2 → 1]
//
//	dot := nodelink.ToDOT(sess.Frame(), nodelink.Options{Caption: true})
//	svg, _ := nodelink.RenderSVG(ctx, dot)
//
// # Supporting Packages
//
// [config] - TOML settings for canvas, tick interval, log level and cache.
//
// [observability] - Hooks for edit and animation events; the CLI logs them.
//
// [errors] - Coded errors separating rejected edits from no-op warnings.
//
// [cache] - Content-addressed cache for rendered diagrams.
//
// [buildinfo] - Version information set at build time.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/graph
// [traverse]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/traverse
// [anim]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/anim
// [session]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/session
// [render]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/render/nodelink
// [render/matrix]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/render/matrix
// [config]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/errors
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/buildinfo
package pkg
