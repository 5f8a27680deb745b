// Package render provides the shared visual vocabulary of graph views.
//
// # Overview
//
// Every view draws from a [session.Frame] and decides how to show each node
// and edge from the frame's highlight set alone:
//
//   - [ClassifyNode] marks a node visited or idle
//   - [ClassifyEdge] marks an edge visited (both endpoints highlighted),
//     frontier (exactly one endpoint) or idle
//   - [Palette] picks the accent colours for the traversal kind: green for
//     BFS, purple for DFS
//
// The concrete views live in subpackages:
//
//   - [matrix]: the adjacency matrix as a terminal table
//   - [nodelink]: the node-link diagram as Graphviz DOT and SVG
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert an SVG with the external rsvg-convert tool
// (from librsvg):
//
//	dot := nodelink.ToDOT(frame, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [session.Frame]: github.com/matzehuels/graphwalk/pkg/session.Frame
// [matrix]: github.com/matzehuels/graphwalk/pkg/render/matrix
// [nodelink]: github.com/matzehuels/graphwalk/pkg/render/nodelink
package render
