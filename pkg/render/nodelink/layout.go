package nodelink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/render"
	"github.com/matzehuels/graphwalk/pkg/session"
)

// Layout is the serializable form of one node-link frame.
type Layout struct {
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Radius    float64      `json:"radius"`
	Kind      string       `json:"kind"`
	State     string       `json:"state"`
	Status    string       `json:"status,omitempty"`
	Order     []int        `json:"order,omitempty"`
	Highlight []int        `json:"highlight"`
	Nodes     []LayoutNode `json:"nodes"`
	Edges     []LayoutEdge `json:"edges"`
	DOT       string       `json:"dot,omitempty"`
}

// LayoutNode is one positioned node.
type LayoutNode struct {
	ID    int         `json:"id"`
	Pos   graph.Point `json:"pos"`
	Class string      `json:"class"`
}

// LayoutEdge is one weighted edge.
type LayoutEdge struct {
	U      int    `json:"u"`
	V      int    `json:"v"`
	Weight int    `json:"weight"`
	Class  string `json:"class"`
}

// Export packages a frame and its DOT source into a Layout.
// dot may be empty.
func Export(f *session.Frame, dot string) Layout {
	l := Layout{
		Width:     f.Canvas.Width,
		Height:    f.Canvas.Height,
		Radius:    f.Canvas.Radius,
		Kind:      f.Kind.String(),
		State:     f.State.String(),
		Status:    f.Status,
		Order:     f.Order,
		Highlight: f.Highlight,
		DOT:       dot,
	}
	if l.Highlight == nil {
		l.Highlight = []int{}
	}
	for i, p := range f.Positions {
		l.Nodes = append(l.Nodes, LayoutNode{ID: i, Pos: p, Class: render.ClassifyNode(f, i).String()})
	}
	for _, e := range f.Edges() {
		l.Edges = append(l.Edges, LayoutEdge{
			U: e.U, V: e.V, Weight: e.Weight,
			Class: render.ClassifyEdge(f, e.U, e.V).String(),
		})
	}
	return l
}

// MarshalLayout encodes a Layout as indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return append(data, '\n'), nil
}
