// Package anim reveals a traversal order one node per tick.
//
// An [Animator] is a small state machine:
//
//	Idle ──Start──▶ Running ──Tick…──▶ Done
//	                   │
//	                 Cancel
//	                   ▼
//	                Canceled
//
// The animator never arms a timer itself. [Animator.Start] returns a [Run]
// token and the driver (a bubbletea tea.Tick, a time.Ticker, or a test
// calling Tick in a loop) delivers ticks tagged with that token. A tick for
// any other token is ignored, so at most one run ever advances even if an
// old timer is still in flight.
//
// The highlight set is the only thing renderers need to know which nodes
// have been visited so far.
package anim

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/matzehuels/graphwalk/pkg/traverse"
)

// DefaultInterval is the delay between ticks.
const DefaultInterval = 700 * time.Millisecond

// State is the animator's lifecycle state.
type State int

const (
	// StateIdle: no sequence and an empty highlight set.
	StateIdle State = iota
	// StateRunning: ticks advance the cursor.
	StateRunning
	// StateDone: every node of the sequence is highlighted; no more ticks.
	StateDone
	// StateCanceled: stopped mid-run; the highlight set keeps what was
	// applied until Clear or the next Start.
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateCanceled:
		return "canceled"
	default:
		return "idle"
	}
}

// Run identifies one animation run. The zero Run never matches.
type Run uint64

// Event describes what a tick did.
type Event int

const (
	// EventIgnored: the tick was stale or nothing was running.
	EventIgnored Event = iota
	// EventVisit: one more node was highlighted.
	EventVisit
	// EventComplete: the run finished; the timer should stop.
	EventComplete
)

// Step reports the effect of a single tick.
type Step struct {
	Event Event
	Node  int // node highlighted by EventVisit, -1 otherwise
	Index int // 1-based step number of EventVisit
	Total int // sequence length
}

// Continue reports whether the driver should schedule another tick.
func (s Step) Continue() bool { return s.Event == EventVisit }

// Animator owns the highlight state of one traversal animation.
// It is not safe for concurrent use.
type Animator struct {
	interval  time.Duration
	state     State
	kind      traverse.Kind
	sequence  []int
	cursor    int
	highlight map[int]struct{}
	run       Run
	status    string
}

// New creates an idle animator. A non-positive interval selects
// DefaultInterval.
func New(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{
		interval:  interval,
		highlight: make(map[int]struct{}),
	}
}

// Start pre-empts any current run, clears the highlight set and begins
// revealing sequence. The returned token must accompany every tick.
func (a *Animator) Start(kind traverse.Kind, sequence []int) Run {
	a.Cancel()
	clear(a.highlight)
	a.run++
	a.state = StateRunning
	a.kind = kind
	a.sequence = slices.Clone(sequence)
	a.cursor = 0
	return a.run
}

// Tick advances run by one step.
//
// While nodes remain it highlights the next one and sets the status to
// "<KIND> — visiting node <id> (step <i>/<n>)". On the tick after the last
// node it moves to StateDone with "<KIND> complete — visited: [<order>]".
// Ticks for a stale run or outside StateRunning change nothing.
func (a *Animator) Tick(run Run) Step {
	if run == 0 || run != a.run || a.state != StateRunning {
		return Step{Event: EventIgnored, Node: -1}
	}

	total := len(a.sequence)
	if a.cursor < total {
		node := a.sequence[a.cursor]
		a.highlight[node] = struct{}{}
		a.cursor++
		a.status = fmt.Sprintf("%s — visiting node %d (step %d/%d)", a.kind.Label(), node, a.cursor, total)
		return Step{Event: EventVisit, Node: node, Index: a.cursor, Total: total}
	}

	a.state = StateDone
	a.status = fmt.Sprintf("%s complete — visited: [%s]", a.kind.Label(), traverse.JoinOrder(a.sequence))
	return Step{Event: EventComplete, Node: -1, Total: total}
}

// Cancel stops a running animation. Highlights already applied stay.
// It reports whether a run was actually stopped.
func (a *Animator) Cancel() bool {
	if a.state != StateRunning {
		return false
	}
	a.state = StateCanceled
	return true
}

// Clear drops the sequence and highlight set and returns to StateIdle.
// It does not touch the status text.
func (a *Animator) Clear() {
	a.Cancel()
	clear(a.highlight)
	a.state = StateIdle
	a.kind = traverse.KindNone
	a.sequence = nil
	a.cursor = 0
}

// Interval returns the delay drivers should wait between ticks.
func (a *Animator) Interval() time.Duration { return a.interval }

// State returns the lifecycle state.
func (a *Animator) State() State { return a.state }

// Running reports whether ticks are currently accepted.
func (a *Animator) Running() bool { return a.state == StateRunning }

// CurrentRun returns the token of the latest Start.
func (a *Animator) CurrentRun() Run { return a.run }

// Kind returns the traversal being shown; KindNone after Clear.
func (a *Animator) Kind() traverse.Kind { return a.kind }

// Cursor returns how many nodes have been revealed.
func (a *Animator) Cursor() int { return a.cursor }

// Sequence returns a copy of the full visit order being revealed.
func (a *Animator) Sequence() []int { return slices.Clone(a.sequence) }

// Highlighted reports whether node i is in the highlight set.
func (a *Animator) Highlighted(i int) bool {
	_, ok := a.highlight[i]
	return ok
}

// HighlightSet returns the highlighted nodes in ascending order.
func (a *Animator) HighlightSet() []int {
	return slices.Sorted(maps.Keys(a.highlight))
}

// Status returns the message produced by the latest tick.
func (a *Animator) Status() string { return a.status }
