package cli

import (
	"math"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/session"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m tuiModel, msg tea.Msg) (tuiModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	tm, ok := next.(tuiModel)
	if !ok {
		t.Fatalf("Update returned %T, want tuiModel", next)
	}
	return tm, cmd
}

func typeText(t *testing.T, m tuiModel, text string) tuiModel {
	t.Helper()
	for _, r := range text {
		if r == ' ' {
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = update(t, m, keys(string(r)))
	}
	return m
}

func TestTUIAnimatesToCompletion(t *testing.T) {
	sess := session.New(session.WithID("tui"))
	m := newTUIModel(sess)

	m, cmd := update(t, m, keys("b"))
	if cmd == nil {
		t.Fatal("starting a traversal should schedule a tick")
	}
	if !sess.Running() {
		t.Fatal("session should be running after 'b'")
	}

	for i := 0; i < 5; i++ {
		if m, cmd = update(t, m, tickMsg{run: m.run}); cmd == nil {
			t.Fatalf("tick %d: expected another tick", i+1)
		}
	}
	if m, cmd = update(t, m, tickMsg{run: m.run}); cmd != nil {
		t.Error("completion tick should not schedule another")
	}

	want := "BFS complete — visited: [0 → 1 → 4 → 2 → 3]"
	if got := sess.Status(); got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
	if !strings.Contains(m.View(), want) {
		t.Error("View() should show the status line")
	}
}

func TestTUIRestartDropsStaleTicks(t *testing.T) {
	sess := session.New()
	m := newTUIModel(sess)

	m, _ = update(t, m, keys("b"))
	stale := m.run
	m, _ = update(t, m, tickMsg{run: stale})

	m, _ = update(t, m, keys("d"))
	if m.run == stale {
		t.Fatal("restart should issue a new run")
	}
	if _, cmd := update(t, m, tickMsg{run: stale}); cmd != nil {
		t.Error("stale tick should not be rescheduled")
	}
	if got := sess.Frame().Highlight; len(got) != 0 {
		t.Errorf("stale tick highlighted %v", got)
	}
}

func TestTUIAddEdgeInput(t *testing.T) {
	sess := session.New()
	m := newTUIModel(sess)

	m, _ = update(t, m, keys("a"))
	if m.mode != modeAdd {
		t.Fatalf("mode = %v, want modeAdd", m.mode)
	}
	m = typeText(t, m, "1 3 99")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeNormal || m.input != "" {
		t.Errorf("enter should leave input mode, got mode=%v input=%q", m.mode, m.input)
	}
	if got := sess.Graph().Weight(1, 3); got != 9 {
		t.Errorf("Weight(1, 3) = %d, want 9", got)
	}
}

func TestTUIRemoveEdgeInput(t *testing.T) {
	sess := session.New()
	m := newTUIModel(sess)

	m, _ = update(t, m, keys("x"))
	m = typeText(t, m, "0,1")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := sess.Graph().Weight(0, 1); got != 0 {
		t.Errorf("Weight(0, 1) = %d, want 0", got)
	}
	if got := sess.Status(); got != "EDGE REMOVED: 0 ↔ 1" {
		t.Errorf("status = %q", got)
	}
}

func TestTUIIncompleteInputIsRejected(t *testing.T) {
	sess := session.New()
	m := newTUIModel(sess)

	m, _ = update(t, m, keys("a"))
	m = typeText(t, m, "1 3")
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := sess.Status(); !strings.HasPrefix(got, "ERROR: ") {
		t.Errorf("status = %q, want an ERROR", got)
	}
	if got := sess.Graph().Weight(1, 3); got != 0 {
		t.Errorf("Weight(1, 3) = %d, want 0", got)
	}
}

func TestTUIEscapeCancelsInput(t *testing.T) {
	sess := session.New()
	m := newTUIModel(sess)
	before := sess.Revision()

	m, _ = update(t, m, keys("a"))
	m = typeText(t, m, "1 3 9")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.mode != modeNormal || m.input != "" {
		t.Errorf("esc should clear input, got mode=%v input=%q", m.mode, m.input)
	}
	if sess.Revision() != before {
		t.Error("esc should not edit the graph")
	}
}

func TestTUISelectAndMove(t *testing.T) {
	sess := session.New()
	m := newTUIModel(sess)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.selected != 2 {
		t.Fatalf("selected = %d, want 2", m.selected)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}

	before := sess.Frame().Positions[1]
	m, _ = update(t, m, keys("l"))
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	after := sess.Frame().Positions[1]
	if after.X != before.X+moveStep || after.Y != before.Y+moveStep {
		t.Errorf("position = %+v, want %+v moved by %v", after, before, moveStep)
	}
}

// cellOf returns the screen cell drawCanvas puts node i at.
func cellOf(f *session.Frame, i int) (int, int) {
	p := f.Positions[i]
	col := int(math.Round(p.X / f.Canvas.Width * float64(canvasCols-1)))
	row := int(math.Round(p.Y / f.Canvas.Height * float64(canvasRows-1)))
	return col + canvasLeft, row + canvasTop
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestTUIMouseDrag(t *testing.T) {
	sess := session.New()
	m := newTUIModel(sess)
	weights := sess.Frame().Edges()

	x, y := cellOf(sess.Frame(), 2)
	m, _ = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y))
	if m.selected != 2 || m.dragging != 2 {
		t.Fatalf("press on node 2: selected=%d dragging=%d", m.selected, m.dragging)
	}

	// Far left of the grid, middle row.
	m, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, canvasLeft+1, canvasTop+canvasRows/2))
	got := sess.Frame().Positions[2]
	wantX, wantY, _ := canvasPoint(graph.DefaultCanvas, canvasLeft+1, canvasTop+canvasRows/2)
	want := graph.DefaultCanvas.Clamp(graph.Point{X: wantX, Y: wantY})
	if got != want {
		t.Errorf("dragged position = %+v, want %+v", got, want)
	}
	if m.hover != 2 {
		t.Errorf("hover while dragging = %d, want 2", m.hover)
	}
	if !slices.Equal(sess.Frame().Edges(), weights) {
		t.Error("dragging changed the weights")
	}

	m, _ = update(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, canvasLeft+1, canvasTop+canvasRows/2))
	if m.dragging != -1 {
		t.Fatalf("release should drop the node, dragging=%d", m.dragging)
	}
	_, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonNone, canvasLeft+30, canvasTop+5))
	if sess.Frame().Positions[2] != got {
		t.Error("motion after release moved the node")
	}
}

func TestTUIMousePressMisses(t *testing.T) {
	tests := []struct {
		name   string
		button tea.MouseButton
		x, y   int
	}{
		{"empty canvas", tea.MouseButtonLeft, canvasLeft + 1, canvasTop + 1},
		{"outside grid", tea.MouseButtonLeft, 0, 0},
		{"right button", tea.MouseButtonRight, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.New()
			m := newTUIModel(sess)
			x, y := tt.x, tt.y
			if x < 0 {
				x, y = cellOf(sess.Frame(), 3)
			}
			before := sess.Revision()

			m, _ = update(t, m, mouse(tea.MouseActionPress, tt.button, x, y))
			m, _ = update(t, m, mouse(tea.MouseActionMotion, tt.button, x+10, y+2))
			if m.dragging != -1 || m.selected != 0 {
				t.Errorf("dragging=%d selected=%d, want -1 and 0", m.dragging, m.selected)
			}
			if sess.Revision() != before {
				t.Error("a missed press should not move anything")
			}
		})
	}
}

func TestTUIMouseHover(t *testing.T) {
	sess := session.New()
	m := newTUIModel(sess)

	x, y := cellOf(sess.Frame(), 4)
	m, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonNone, x, y))
	if m.hover != 4 {
		t.Errorf("hover over node 4 = %d", m.hover)
	}

	m, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonNone, canvasLeft+1, canvasTop+1))
	if m.hover != -1 {
		t.Errorf("hover over empty canvas = %d, want -1", m.hover)
	}
}

func TestCanvasPoint(t *testing.T) {
	c := graph.DefaultCanvas
	tests := []struct {
		name       string
		col, row   int
		x, y       float64
		wantInside bool
	}{
		{"top-left cell", canvasLeft, canvasTop, 0, 0, true},
		{"bottom-right cell", canvasLeft + canvasCols - 1, canvasTop + canvasRows - 1, c.Width, c.Height, true},
		{"border", 0, canvasTop, -c.Width / float64(canvasCols-1), 0, false},
		{"below grid", canvasLeft, canvasTop + canvasRows, 0, c.Height * float64(canvasRows) / float64(canvasRows-1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, inside := canvasPoint(c, tt.col, tt.row)
			if math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9 || inside != tt.wantInside {
				t.Errorf("canvasPoint(%d, %d) = (%v, %v, %v), want (%v, %v, %v)",
					tt.col, tt.row, x, y, inside, tt.x, tt.y, tt.wantInside)
			}
		})
	}
}

func TestTUIEditCancelsAnimation(t *testing.T) {
	sess := session.New()
	m := newTUIModel(sess)

	m, _ = update(t, m, keys("d"))
	m, _ = update(t, m, tickMsg{run: m.run})
	m, _ = update(t, m, keys("r"))

	if sess.Running() {
		t.Error("reset should stop the animation")
	}
	if _, cmd := update(t, m, tickMsg{run: m.run}); cmd != nil {
		t.Error("tick after reset should be dropped")
	}
}

func TestTUIQuit(t *testing.T) {
	m := newTUIModel(session.New())
	_, cmd := update(t, m, keys("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestDrawCanvas(t *testing.T) {
	sess := session.New()
	out := drawCanvas(sess.Frame(), 0, -1)

	if got := strings.Count(out, "\n") + 1; got != canvasRows {
		t.Errorf("canvas has %d rows, want %d", got, canvasRows)
	}
	for _, label := range []string{"0", "1", "2", "3", "4"} {
		if !strings.Contains(out, label) {
			t.Errorf("canvas missing node %s", label)
		}
	}
}

func TestOpaque(t *testing.T) {
	tests := []struct{ in, want string }{
		{"#648cb44d", "#648cb4"},
		{"#ffd700", "#ffd700"},
	}
	for _, tt := range tests {
		if got := opaque(tt.in); got != tt.want {
			t.Errorf("opaque(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
