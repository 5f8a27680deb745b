package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphwalk/pkg/render"
	"github.com/matzehuels/graphwalk/pkg/session"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds each visited node's discovery depth to its label and
	// draws the traversal tree's edges solid, the rest dashed.
	Detailed bool

	// Caption shows the frame's status line under the diagram.
	Caption bool
}

// ToDOT converts a frame to an undirected Graphviz graph for the neato
// engine. Nodes are pinned at their canvas positions (y flipped so the
// picture matches the canvas) and every edge carries its weight as label.
//
// Styling follows the frame's highlight set: visited nodes and edges with
// both endpoints visited use the traversal kind's accent colour, edges with
// one visited endpoint use the frontier colour.
func ToDOT(f *session.Frame, opts Options) string {
	pal := render.PaletteFor(f.Kind)
	depth := depths(f)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", render.ColorBackground)
	fmt.Fprintf(&buf, "  node [shape=circle, fixedsize=true, width=%s, style=filled, fontname=\"DM Sans\", fontsize=13];\n",
		fmtFloat(2*f.Canvas.Radius/72))
	buf.WriteString("  edge [fontname=\"DM Mono\", fontsize=12];\n")
	if opts.Caption && f.Status != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=b;\n  fontcolor=%q;\n", f.Status, render.ColorIdleLabel)
	}
	buf.WriteString("\n")

	for i, p := range f.Positions {
		label := strconv.Itoa(i)
		if opts.Detailed && depth[i] >= 0 {
			label = fmt.Sprintf("%d\nd=%d", i, depth[i])
		}
		attrs := nodeAttrs(render.ClassifyNode(f, i), pal, label)
		attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(p.X), fmtFloat(f.Canvas.Height-p.Y)))
		fmt.Fprintf(&buf, "  %d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range f.Edges() {
		attrs := edgeAttrs(render.ClassifyEdge(f, e.U, e.V), pal, e.Weight)
		if opts.Detailed && len(f.Parent) > 0 && !f.TreeEdge(e.U, e.V) {
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&buf, "  %d -- %d [%s];\n", e.U, e.V, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(class render.NodeClass, pal render.Palette, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if class == render.NodeVisited {
		return append(attrs,
			fmt.Sprintf("fillcolor=%q", pal.Fill),
			fmt.Sprintf("color=%q", pal.Border),
			fmt.Sprintf("fontcolor=%q", render.ColorVisitedLabel),
			"penwidth=2.5")
	}
	return append(attrs,
		fmt.Sprintf("fillcolor=%q", render.ColorIdleFill),
		fmt.Sprintf("color=%q", render.ColorIdleBorder),
		fmt.Sprintf("fontcolor=%q", render.ColorIdleLabel),
		"penwidth=1")
}

func edgeAttrs(class render.EdgeClass, pal render.Palette, weight int) []string {
	attrs := []string{fmt.Sprintf("label=\"%d\"", weight)}
	switch class {
	case render.EdgeVisited:
		return append(attrs,
			fmt.Sprintf("color=%q", pal.Edge),
			fmt.Sprintf("fontcolor=%q", render.ColorWeightActive),
			"penwidth=2.5")
	case render.EdgeFrontier:
		attrs = append(attrs, fmt.Sprintf("color=%q", render.ColorFrontierEdge))
	default:
		attrs = append(attrs, fmt.Sprintf("color=%q", render.ColorIdleEdge))
	}
	return append(attrs, fmt.Sprintf("fontcolor=%q", render.ColorWeight), "penwidth=1.5")
}

// depths returns the discovery depth of every revealed node, -1 elsewhere.
func depths(f *session.Frame) []int {
	d := make([]int, len(f.Positions))
	for i := range d {
		d[i] = -1
	}
	for _, v := range f.Highlight {
		if v >= len(f.Parent) {
			continue
		}
		n := 0
		for p := f.Parent[v]; p >= 0 && n < len(d); p = f.Parent[p] {
			n++
		}
		d[v] = n
	}
	return d
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders DOT produced by ToDOT to SVG using the neato engine.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders DOT as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders DOT as PNG via SVG conversion at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
