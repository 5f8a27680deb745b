// Package nodelink renders a traversal frame as a node-link diagram.
//
// # Overview
//
// This package turns a [session.Frame] into Graphviz DOT and renders it with
// the neato engine so nodes stay exactly where they sit on the canvas. Edge
// labels show weights; colours follow the highlight set the same way the
// interactive view does.
//
// # Usage
//
// Convert a frame to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(sess.Frame(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// [Export] packages the frame and its DOT source as JSON-ready [Layout].
//
// # Options
//
//   - Detailed: label visited nodes with their depth and dash non-tree edges
//   - Caption: print the status line below the diagram
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [session.Frame]: github.com/matzehuels/graphwalk/pkg/session.Frame
package nodelink
