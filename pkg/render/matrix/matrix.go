// Package matrix renders the adjacency matrix view of a traversal frame.
//
// [Build] classifies every cell from the frame's weights and highlight set:
//
//   - the diagonal shows "–" (there are no self-loops)
//   - a non-zero cell whose row and column nodes are both visited is a
//     highlight cell
//   - other non-zero cells are plain edges, zeros are empty pairs
//
// Row and column headers are flagged when their node is visited. [Table]
// turns the grid into a lipgloss table coloured for the traversal kind.
package matrix

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/graphwalk/pkg/render"
	"github.com/matzehuels/graphwalk/pkg/session"
	"github.com/matzehuels/graphwalk/pkg/traverse"
)

// Corner is the text of the top-left header cell.
const Corner = "·"

// Diagonal is the text shown on the diagonal.
const Diagonal = "–"

// CellKind classifies one matrix cell.
type CellKind int

const (
	CellZero CellKind = iota
	CellNonzero
	CellHighlight
	CellDiagonal
)

func (k CellKind) String() string {
	switch k {
	case CellNonzero:
		return "nonzero"
	case CellHighlight:
		return "highlight"
	case CellDiagonal:
		return "diagonal"
	default:
		return "zero"
	}
}

// Cell is one entry of the grid.
type Cell struct {
	Kind   CellKind
	Weight int
}

// Text returns what the cell displays.
func (c Cell) Text() string {
	if c.Kind == CellDiagonal {
		return Diagonal
	}
	return strconv.Itoa(c.Weight)
}

// Grid is the classified N×N matrix of one frame.
type Grid struct {
	Kind   traverse.Kind
	Header []bool // Header[i] is true when node i is visited
	Cells  [][]Cell
}

// Build classifies every cell of f.
func Build(f *session.Frame) *Grid {
	n := f.Len()
	g := &Grid{
		Kind:   f.Kind,
		Header: make([]bool, n),
		Cells:  make([][]Cell, n),
	}
	for i := range n {
		g.Header[i] = f.Highlighted(i)
	}
	for i := range n {
		row := make([]Cell, n)
		for j := range n {
			row[j] = classify(f, g.Header, i, j)
		}
		g.Cells[i] = row
	}
	return g
}

func classify(f *session.Frame, visited []bool, i, j int) Cell {
	if i == j {
		return Cell{Kind: CellDiagonal}
	}
	w := f.Weight(i, j)
	switch {
	case w == 0:
		return Cell{Kind: CellZero}
	case visited[i] && visited[j]:
		return Cell{Kind: CellHighlight, Weight: w}
	}
	return Cell{Kind: CellNonzero, Weight: w}
}

// Len returns the number of nodes.
func (g *Grid) Len() int { return len(g.Cells) }

// String renders the grid as plain space-separated text, one row per
// line, headers included.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString(Corner)
	for j := range g.Len() {
		b.WriteString(" " + strconv.Itoa(j))
	}
	for i, row := range g.Cells {
		b.WriteString("\n" + strconv.Itoa(i))
		for _, c := range row {
			b.WriteString(" " + c.Text())
		}
	}
	return b.String()
}

// =============================================================================
// Table
// =============================================================================

var (
	styleBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleHeader  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	styleZero    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleNonzero = lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorWeightActive))
	styleDiag    = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	styleCell    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
)

// Table builds a lipgloss table for g. Visited headers and highlight cells
// use the accent colour of the grid's traversal kind.
func Table(g *Grid) *table.Table {
	accent := lipgloss.Color(render.PaletteFor(g.Kind).Border)

	headers := make([]string, 0, g.Len()+1)
	headers = append(headers, Corner)
	rows := make([][]string, g.Len())
	for i, row := range g.Cells {
		headers = append(headers, strconv.Itoa(i))
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, strconv.Itoa(i))
		for _, c := range row {
			cells = append(cells, c.Text())
		}
		rows[i] = cells
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			// Header row and header column.
			if row == table.HeaderRow || col == 0 {
				node := col - 1
				if col == 0 {
					node = row
				}
				if node >= 0 && node < g.Len() && g.Header[node] {
					return styleCell.Inherit(styleHeader).Foreground(accent)
				}
				return styleCell.Inherit(styleHeader)
			}
			if row < 0 || row >= g.Len() || col-1 >= g.Len() {
				return styleCell
			}
			switch g.Cells[row][col-1].Kind {
			case CellHighlight:
				return styleCell.Foreground(accent).Bold(true)
			case CellNonzero:
				return styleCell.Inherit(styleNonzero)
			case CellDiagonal:
				return styleCell.Inherit(styleDiag)
			}
			return styleCell.Inherit(styleZero)
		})
}

// Render returns the table for f as a string.
func Render(f *session.Frame) string {
	return Table(Build(f)).Render()
}
