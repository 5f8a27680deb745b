package observability

import (
	"errors"
	"testing"
)

func TestNoopHooks(t *testing.T) {
	// Noop hooks must not panic.
	g := NoopGraphHooks{}
	g.OnEdit("s", OpAddEdge, 0, 1, 4, nil)
	g.OnEdit("s", OpRemoveEdge, 0, 2, 0, errors.New("no edge"))
	g.OnMove("s", 3, 10, 20)

	a := NoopAnimationHooks{}
	a.OnStart("s", "bfs", 1, []int{0, 1})
	a.OnStep("s", "bfs", 1, 2, 2)
	a.OnComplete("s", "bfs", []int{0, 1})
	a.OnCancel("s", "dfs", 1, 5)
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Errorf("Graph() = %T, want NoopGraphHooks", Graph())
	}
	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Errorf("Animation() = %T, want NoopAnimationHooks", Animation())
	}
}

type testGraphHooks struct {
	NoopGraphHooks
	edits []EditOp
}

func (h *testGraphHooks) OnEdit(_ string, op EditOp, _, _, _ int, _ error) {
	h.edits = append(h.edits, op)
}

type testAnimationHooks struct {
	NoopAnimationHooks
	steps int
}

func (h *testAnimationHooks) OnStep(string, string, int, int, int) { h.steps++ }

func TestSetHooks(t *testing.T) {
	defer Reset()

	gh := &testGraphHooks{}
	ah := &testAnimationHooks{}
	SetGraphHooks(gh)
	SetAnimationHooks(ah)

	Graph().OnEdit("s", OpReset, -1, -1, 0, nil)
	Animation().OnStep("s", "dfs", 2, 3, 5)

	if len(gh.edits) != 1 || gh.edits[0] != OpReset {
		t.Errorf("graph hooks received %v, want [reset]", gh.edits)
	}
	if ah.steps != 1 {
		t.Errorf("animation hooks received %d steps, want 1", ah.steps)
	}
}

func TestSetNilIgnored(t *testing.T) {
	defer Reset()

	gh := &testGraphHooks{}
	SetGraphHooks(gh)
	SetGraphHooks(nil)
	SetAnimationHooks(nil)

	if Graph() != GraphHooks(gh) {
		t.Error("SetGraphHooks(nil) replaced registered hooks")
	}
	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Error("SetAnimationHooks(nil) replaced the default")
	}
}

func TestReset(t *testing.T) {
	SetGraphHooks(&testGraphHooks{})
	SetAnimationHooks(&testAnimationHooks{})
	Reset()

	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Reset did not restore graph hooks")
	}
	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Error("Reset did not restore animation hooks")
	}
}
