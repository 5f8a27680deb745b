package render

import (
	"github.com/matzehuels/graphwalk/pkg/session"
	"github.com/matzehuels/graphwalk/pkg/traverse"
)

// NodeClass is how a node should be drawn.
type NodeClass int

const (
	NodeIdle NodeClass = iota
	NodeVisited
)

func (c NodeClass) String() string {
	if c == NodeVisited {
		return "visited"
	}
	return "idle"
}

// EdgeClass is how an edge should be drawn.
type EdgeClass int

const (
	EdgeNone     EdgeClass = iota // no edge between the nodes
	EdgeIdle                      // neither endpoint visited
	EdgeFrontier                  // exactly one endpoint visited
	EdgeVisited                   // both endpoints visited
)

func (c EdgeClass) String() string {
	switch c {
	case EdgeIdle:
		return "idle"
	case EdgeFrontier:
		return "frontier"
	case EdgeVisited:
		return "visited"
	default:
		return "none"
	}
}

// ClassifyNode reports whether node i is in the frame's highlight set.
func ClassifyNode(f *session.Frame, i int) NodeClass {
	if f.Highlighted(i) {
		return NodeVisited
	}
	return NodeIdle
}

// ClassifyEdge classifies edge u–v by how many endpoints are highlighted.
// Pairs without an edge, including u == v, are EdgeNone.
func ClassifyEdge(f *session.Frame, u, v int) EdgeClass {
	if u == v || f.Weight(u, v) == 0 {
		return EdgeNone
	}
	hu, hv := f.Highlighted(u), f.Highlighted(v)
	switch {
	case hu && hv:
		return EdgeVisited
	case hu || hv:
		return EdgeFrontier
	}
	return EdgeIdle
}

// =============================================================================
// Palette
// =============================================================================

// Colours shared by every view, as Graphviz-compatible "#RRGGBB[AA]".
const (
	ColorBackground   = "#050a19"
	ColorIdleFill     = "#080d20"
	ColorIdleBorder   = "#00ffe766"
	ColorIdleLabel    = "#c8e6f0cc"
	ColorIdleEdge     = "#648cb44d"
	ColorFrontierEdge = "#00ffe766"
	ColorWeight       = "#ffd7008c"
	ColorWeightActive = "#ffd700"
	ColorVisitedLabel = "#ffffff"
)

// Palette holds the accent colours of one traversal kind.
type Palette struct {
	Border string // visited node outline and visited edge
	Fill   string // visited node fill
	Edge   string // visited edge stroke
}

var (
	paletteBFS  = Palette{Border: "#00ff99", Fill: "#004d26", Edge: "#00ff99cc"}
	paletteDFS  = Palette{Border: "#a855f7", Fill: "#2e1065", Edge: "#a855f7cc"}
	paletteNone = Palette{Border: "#00ffe7", Fill: "#0d2a4a", Edge: "#00ffe7cc"}
)

// PaletteFor returns the accent colours for kind: green for BFS, purple for
// DFS, cyan otherwise.
func PaletteFor(kind traverse.Kind) Palette {
	switch kind {
	case traverse.KindBFS:
		return paletteBFS
	case traverse.KindDFS:
		return paletteDFS
	}
	return paletteNone
}
