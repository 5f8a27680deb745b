// Package observability provides hooks for logging and metrics.
//
// Sessions emit events about graph edits and animation progress without
// depending on a particular logging or metrics backend. Consumers register
// hooks at startup; the defaults do nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    observability.SetAnimationHooks(&myAnimationHooks{})
//	    // ... run application
//	}
//
// Sessions call hooks to emit events:
//
//	observability.Graph().OnEdit(sessionID, observability.OpAddEdge, u, v, w, err)
//	observability.Animation().OnStep(sessionID, "bfs", node, i, n)
package observability

import "sync"

// EditOp names a structural graph edit.
type EditOp string

// Graph edit operations.
const (
	OpAddEdge    EditOp = "add_edge"
	OpRemoveEdge EditOp = "remove_edge"
	OpReset      EditOp = "reset"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events about structural graph edits.
type GraphHooks interface {
	// OnEdit records an edit attempt. err is nil on success and carries the
	// validation error or no-op warning otherwise. w is 0 for removals and
	// resets; u and v are -1 for resets.
	OnEdit(session string, op EditOp, u, v, w int, err error)

	// OnMove records a node being dragged to a new position.
	OnMove(session string, node int, x, y float64)
}

// =============================================================================
// Animation Hooks
// =============================================================================

// AnimationHooks receives events from traversal animations.
type AnimationHooks interface {
	// OnStart records a new run with its full visit order.
	OnStart(session, kind string, run uint64, order []int)

	// OnStep records one node being highlighted (index is 1-based).
	OnStep(session, kind string, node, index, total int)

	// OnComplete records a run revealing its last node.
	OnComplete(session, kind string, order []int)

	// OnCancel records a run stopped after cursor of total nodes.
	OnCancel(session, kind string, cursor, total int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnEdit(string, EditOp, int, int, int, error) {}
func (NoopGraphHooks) OnMove(string, int, float64, float64)       {}

// NoopAnimationHooks is a no-op implementation of AnimationHooks.
type NoopAnimationHooks struct{}

func (NoopAnimationHooks) OnStart(string, string, uint64, []int) {}
func (NoopAnimationHooks) OnStep(string, string, int, int, int)  {}
func (NoopAnimationHooks) OnComplete(string, string, []int)      {}
func (NoopAnimationHooks) OnCancel(string, string, int, int)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks     GraphHooks     = NoopGraphHooks{}
	animationHooks AnimationHooks = NoopAnimationHooks{}
	hooksMu        sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any session is created.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetAnimationHooks registers custom animation hooks.
// This should be called once at application startup before any session is created.
func SetAnimationHooks(h AnimationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		animationHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Animation returns the registered animation hooks.
func Animation() AnimationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return animationHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	animationHooks = NoopAnimationHooks{}
}
