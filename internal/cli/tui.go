package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/anim"
	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/observability"
	"github.com/matzehuels/graphwalk/pkg/render"
	"github.com/matzehuels/graphwalk/pkg/render/matrix"
	"github.com/matzehuels/graphwalk/pkg/session"
	"github.com/matzehuels/graphwalk/pkg/traverse"
)

// Size of the character grid the canvas is scaled onto.
const (
	canvasCols = 64
	canvasRows = 22
)

// Screen offset of the canvas grid: title, blank line and the box border.
const (
	canvasTop  = 3
	canvasLeft = 1
)

// moveStep is how far one arrow key press moves the selected node.
const moveStep = 10.0

// tuiCommand creates the tui command for the interactive view.
func (c *CLI) tuiCommand() *cobra.Command {
	var (
		logFile  string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Explore BFS and DFS interactively",
		Long: `Explore BFS and DFS interactively.

The graph is drawn on the left and its adjacency matrix on the right.
Starting a traversal reveals one node per tick; editing the graph stops it.

Keys:
  b / d        start BFS / DFS
  c            cancel the animation
  a / x        add or remove an edge (type "u v w" or "u v", then enter)
  r            reset to the default graph
  tab          select the next node
  arrows/hjkl  move the selected node
  mouse        drag a node to move it, hover to highlight it
  q            quit

Session events are logged to --log-file, or discarded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), logFile, interval)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write session events to this file")
	cmd.Flags().DurationVar(&interval, "interval", 0, "tick interval (default from config)")

	return cmd
}

// runTUI runs the bubbletea program until the user quits.
func (c *CLI) runTUI(ctx context.Context, logFile string, interval time.Duration) error {
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	// The terminal belongs to the view; events go to the side logger.
	hooks := newLogHooks(newLogger(w, c.Logger.GetLevel()))
	observability.SetGraphHooks(hooks)
	observability.SetAnimationHooks(hooks)

	sess := c.newSession(interval)
	p := tea.NewProgram(newTUIModel(sess), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}

	printInfo("%s", sess.Status())
	printKeyValue("Session", shortID(sess.ID()))
	if res := sess.Result(); res != nil {
		printKeyValue(res.Kind.Label(), "["+res.String()+"]")
	}
	return nil
}

// =============================================================================
// Model
// =============================================================================

type inputMode int

const (
	modeNormal inputMode = iota
	modeAdd
	modeRemove
)

// tickMsg carries the run it was scheduled for. Ticks of a superseded run
// are dropped by the session.
type tickMsg struct {
	run anim.Run
}

// tuiModel is the bubbletea model of the interactive view.
type tuiModel struct {
	sess     *session.Session
	run      anim.Run
	selected int
	dragging int // node held by the mouse, or -1
	hover    int // node under the pointer, or -1
	mode     inputMode
	input    string
}

func newTUIModel(sess *session.Session) tuiModel {
	return tuiModel{sess: sess, dragging: -1, hover: -1}
}

func tick(run anim.Run, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{run: run} })
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.sess.Tick(msg.run) {
			return m, tick(msg.run, m.sess.Interval())
		}
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

// updateMouse grabs a node on left press, drags it while held and tracks
// the node under the pointer.
func (m tuiModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	canvas := m.sess.Frame().Canvas
	x, y, inside := canvasPoint(canvas, msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return m, nil
		}
		if i := m.sess.NodeAt(x, y, graph.DragSlop); i >= 0 {
			m.selected, m.dragging = i, i
		}
	case tea.MouseActionRelease:
		m.dragging = -1
	case tea.MouseActionMotion:
		if m.dragging >= 0 {
			_ = m.sess.MoveNode(m.dragging, x, y)
		}
	}

	m.hover = -1
	if m.dragging >= 0 {
		m.hover = m.dragging
	} else if inside {
		m.hover = m.sess.NodeAt(x, y, graph.HoverSlop)
	}
	return m, nil
}

// canvasPoint maps a screen cell to canvas coordinates. It is the inverse
// of the scaling in drawCanvas; inside reports whether the cell lies on
// the grid.
func canvasPoint(c graph.Canvas, col, row int) (x, y float64, inside bool) {
	col -= canvasLeft
	row -= canvasTop
	inside = col >= 0 && col < canvasCols && row >= 0 && row < canvasRows
	x = float64(col) / float64(canvasCols-1) * c.Width
	y = float64(row) / float64(canvasRows-1) * c.Height
	return x, y, inside
}

func (m tuiModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "b":
		return m.start(traverse.KindBFS)
	case "d":
		return m.start(traverse.KindDFS)
	case "c":
		m.sess.Cancel()
	case "r":
		m.sess.Reset()
	case "a":
		m.mode = modeAdd
	case "x":
		m.mode = modeRemove
	case "tab":
		m.selected = (m.selected + 1) % m.sess.Graph().Len()
	case "shift+tab":
		n := m.sess.Graph().Len()
		m.selected = (m.selected + n - 1) % n
	case "up", "k":
		m.move(0, -moveStep)
	case "down", "j":
		m.move(0, moveStep)
	case "left", "h":
		m.move(-moveStep, 0)
	case "right", "l":
		m.move(moveStep, 0)
	}
	return m, nil
}

func (m tuiModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.submit()
		m.mode, m.input = modeNormal, ""
	case tea.KeyEsc:
		m.mode, m.input = modeNormal, ""
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m tuiModel) start(kind traverse.Kind) (tea.Model, tea.Cmd) {
	m.run = m.sess.StartTraversal(kind)
	return m, tick(m.run, m.sess.Interval())
}

func (m tuiModel) move(dx, dy float64) {
	p := m.sess.Frame().Positions[m.selected]
	_ = m.sess.MoveNode(m.selected, p.X+dx, p.Y+dy)
}

// submit applies the typed edge. Missing fields are passed on empty so the
// session reports them like any other malformed input.
func (m tuiModel) submit() {
	fields := strings.FieldsFunc(m.input, func(r rune) bool { return r == ' ' || r == ',' })
	switch m.mode {
	case modeAdd:
		fields = padFields(fields, 3)
		_ = m.sess.AddEdgeInput(fields[0], fields[1], fields[2])
	case modeRemove:
		fields = padFields(fields, 2)
		_ = m.sess.RemoveEdgeInput(fields[0], fields[1])
	}
}

func padFields(fields []string, n int) []string {
	for len(fields) < n {
		fields = append(fields, "")
	}
	return fields[:n]
}

// =============================================================================
// View
// =============================================================================

var (
	tuiHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	tuiStatusStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	tuiPromptStyle = lipgloss.NewStyle().Foreground(colorYellow)
	tuiBoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)
)

func (m tuiModel) View() string {
	f := m.sess.Frame()

	var b strings.Builder
	b.WriteString(StyleTitle.Render("graphwalk"))
	if f.Kind != traverse.KindNone {
		b.WriteString("  " + StyleDim.Render(f.Kind.Label()+" · "+f.State.String()))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		tuiBoxStyle.Render(drawCanvas(f, m.selected, m.hover)),
		"  ",
		matrix.Render(f),
	))
	b.WriteString("\n\n")
	b.WriteString(tuiStatusStyle.Render(f.Status))
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(tuiPromptStyle.Render("add u v w › ") + m.input + "\n")
	case modeRemove:
		b.WriteString(tuiPromptStyle.Render("remove u v › ") + m.input + "\n")
	default:
		b.WriteString(tuiHelpStyle.Render("b bfs · d dfs · c cancel · a add · x remove · r reset · tab select · arrows/drag move · q quit") + "\n")
	}
	return b.String()
}

// cell is one character of the canvas grid.
type cell struct {
	ch    rune
	style lipgloss.Style
}

// drawCanvas scales node positions onto a character grid. Edges are dotted
// lines coloured by how many of their endpoints are highlighted. The
// selected node is underlined, the hovered one bold.
func drawCanvas(f *session.Frame, selected, hover int) string {
	grid := make([][]cell, canvasRows)
	blank := cell{ch: ' ', style: lipgloss.NewStyle()}
	for r := range grid {
		grid[r] = make([]cell, canvasCols)
		for c := range grid[r] {
			grid[r][c] = blank
		}
	}
	put := func(col, row int, ch rune, style lipgloss.Style) {
		if row >= 0 && row < canvasRows && col >= 0 && col < canvasCols {
			grid[row][col] = cell{ch: ch, style: style}
		}
	}
	scale := func(i int) (int, int) {
		p := f.Positions[i]
		col := int(math.Round(p.X / f.Canvas.Width * float64(canvasCols-1)))
		row := int(math.Round(p.Y / f.Canvas.Height * float64(canvasRows-1)))
		return col, row
	}

	pal := render.PaletteFor(f.Kind)
	for _, e := range f.Edges() {
		style := edgeStyle(render.ClassifyEdge(f, e.U, e.V), pal)
		c0, r0 := scale(e.U)
		c1, r1 := scale(e.V)
		steps := max(abs(c1-c0), abs(r1-r0))
		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			put(lerp(c0, c1, t), lerp(r0, r1, t), '·', style)
		}
		weightStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(opaque(render.ColorWeight)))
		mc, mr := (c0+c1)/2, (r0+r1)/2
		for k, ch := range fmt.Sprint(e.Weight) {
			put(mc+k, mr, ch, weightStyle)
		}
	}

	for i := range f.Positions {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(opaque(render.ColorIdleLabel)))
		if render.ClassifyNode(f, i) == render.NodeVisited {
			style = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color(render.ColorVisitedLabel)).
				Background(lipgloss.Color(pal.Fill))
		}
		if i == selected {
			style = style.Underline(true)
		}
		if i == hover {
			style = style.Bold(true)
		}
		c, r := scale(i)
		put(c-1, r, '(', style)
		put(c, r, rune('0'+i%10), style)
		put(c+1, r, ')', style)
	}

	lines := make([]string, canvasRows)
	for r, row := range grid {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(c.style.Render(string(c.ch)))
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func edgeStyle(class render.EdgeClass, pal render.Palette) lipgloss.Style {
	switch class {
	case render.EdgeVisited:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(opaque(pal.Edge))).Bold(true)
	case render.EdgeFrontier:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(opaque(render.ColorFrontierEdge)))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(opaque(render.ColorIdleEdge)))
}

// opaque drops the alpha channel of a "#RRGGBBAA" colour; terminals have
// no transparency.
func opaque(c string) string {
	if len(c) == 9 {
		return c[:7]
	}
	return c
}

func lerp(a, b int, t float64) int {
	return int(math.Round(float64(a) + float64(b-a)*t))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
