// Package session ties one graph, one animator and one status line together.
//
// A [Session] is the single entry point for everything a user can do:
// edit edges, reset, drag nodes and start a traversal. It enforces the
// ordering rules between those actions:
//
//   - A successful structural edit (add, remove, reset) cancels any running
//     animation and clears the highlight set before returning.
//   - Starting a traversal pre-empts the previous one. Ticks carrying the
//     old run token are ignored afterwards.
//   - Rejected edits leave the graph and the animation untouched; their only
//     effect is the status message.
//   - Dragging a node is not a structural edit.
//
// Every mutating call publishes exactly one status string, readable through
// [Session.Status] or as part of a [Frame].
//
// # Driving the Animation
//
// A session never arms a timer itself. Interactive front ends schedule
// their own ticks (for example with bubbletea's tea.Tick) and call
// [Session.Tick] with the run token returned by [Session.StartTraversal].
// Headless callers use [Session.Play], which owns exactly one ticker for
// the lifetime of a run:
//
//	sess := session.New()
//	sess.StartTraversal(traverse.KindBFS)
//	if err := sess.Play(ctx, session.SystemClock()); err != nil {
//	    return err
//	}
//	fmt.Println(sess.Status()) // BFS complete — visited: [0 → 1 → 4 → 2 → 3]
//
// # Observability
//
// Edits and animation progress are reported to the hooks registered in
// [github.com/matzehuels/graphwalk/pkg/observability], tagged with the
// session ID.
//
// # Concurrency
//
// A Session is not safe for concurrent use. Exactly one goroutine (the
// driver) may call it.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/graphwalk/pkg/anim"
	"github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/observability"
	"github.com/matzehuels/graphwalk/pkg/traverse"
)

// StatusReset is published after Reset.
const StatusReset = "GRAPH RESET — default topology restored"

// Session owns the state of one visualization.
type Session struct {
	id       string
	graph    *graph.Store
	anim     *anim.Animator
	result   *traverse.Result
	status   string
	revision uint64
}

// Option configures a Session.
type Option func(*options)

type options struct {
	id       string
	canvas   graph.Canvas
	interval time.Duration
}

// WithID sets the session ID instead of generating a random one.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithCanvas sets the logical canvas node positions are clamped to.
func WithCanvas(c graph.Canvas) Option {
	return func(o *options) { o.canvas = c }
}

// WithInterval sets the delay between animation ticks.
// A non-positive interval selects anim.DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// New creates a session holding the default topology.
func New(opts ...Option) *Session {
	o := options{canvas: graph.DefaultCanvas}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	return &Session{
		id:    o.id,
		graph: graph.New(o.canvas),
		anim:  anim.New(o.interval),
	}
}

// ID returns the session identifier used to tag observability events.
func (s *Session) ID() string { return s.id }

// Graph returns a read-only view of the live graph.
func (s *Session) Graph() graph.View { return s.graph }

// Status returns the most recent status message.
func (s *Session) Status() string { return s.status }

// Revision increases every time observable state changes.
// Views compare it to decide whether to redraw.
func (s *Session) Revision() uint64 { return s.revision }

// Interval returns the delay between animation ticks.
func (s *Session) Interval() time.Duration { return s.anim.Interval() }

// Running reports whether an animation is accepting ticks.
func (s *Session) Running() bool { return s.anim.Running() }

// Result returns the traversal being animated, or nil if none.
func (s *Session) Result() *traverse.Result { return s.result }

// =============================================================================
// Structural Edits
// =============================================================================

// AddEdge creates or overwrites edge u–v with weight w.
//
// On success any running animation is canceled, the highlight set is
// cleared and the status reads "EDGE ADDED: u ↔ v  [weight w]". On a
// validation error nothing changes except the status, which carries the
// error message. The error is returned so callers can classify it.
func (s *Session) AddEdge(u, v, w int) error {
	err := s.graph.AddEdge(u, v, w)
	observability.Graph().OnEdit(s.id, observability.OpAddEdge, u, v, w, err)
	if err != nil {
		s.reject(err)
		return err
	}
	s.structuralEdit(fmt.Sprintf("EDGE ADDED: %d ↔ %d  [weight %d]", u, v, w))
	return nil
}

// RemoveEdge deletes edge u–v.
//
// Removing an edge that does not exist yields a NO_EDGE warning with the
// status "WARNING: no edge exists between u and v" and changes nothing.
func (s *Session) RemoveEdge(u, v int) error {
	err := s.graph.RemoveEdge(u, v)
	observability.Graph().OnEdit(s.id, observability.OpRemoveEdge, u, v, 0, err)
	if err != nil {
		s.reject(err)
		return err
	}
	s.structuralEdit(fmt.Sprintf("EDGE REMOVED: %d ↔ %d", u, v))
	return nil
}

// AddEdgeInput parses raw form fields and calls AddEdge.
// Non-integer fields fail with "ERROR: all fields must be numbers".
func (s *Session) AddEdgeInput(u, v, w string) error {
	iu, iv, iw, err := graph.ParseEdgeInput(u, v, w)
	if err != nil {
		observability.Graph().OnEdit(s.id, observability.OpAddEdge, -1, -1, 0, err)
		s.reject(err)
		return err
	}
	return s.AddEdge(iu, iv, iw)
}

// RemoveEdgeInput parses raw form fields and calls RemoveEdge.
// Non-integer fields fail with "ERROR: enter valid node indices".
func (s *Session) RemoveEdgeInput(u, v string) error {
	iu, iv, err := graph.ParsePairInput(u, v)
	if err != nil {
		observability.Graph().OnEdit(s.id, observability.OpRemoveEdge, -1, -1, 0, err)
		s.reject(err)
		return err
	}
	return s.RemoveEdge(iu, iv)
}

// Reset restores the default topology and positions, stops any animation
// and clears the highlight set.
func (s *Session) Reset() {
	s.graph.Reset()
	observability.Graph().OnEdit(s.id, observability.OpReset, -1, -1, 0, nil)
	s.structuralEdit(StatusReset)
}

// MoveNode drags node i to (x, y), clamped into the canvas.
// It neither cancels the animation nor publishes a status.
func (s *Session) MoveNode(i int, x, y float64) error {
	if err := s.graph.MoveNode(i, x, y); err != nil {
		return err
	}
	p := s.graph.Positions()[i]
	observability.Graph().OnMove(s.id, i, p.X, p.Y)
	s.revision++
	return nil
}

// NodeAt returns the node under (x, y) widened by slop, or -1.
func (s *Session) NodeAt(x, y, slop float64) int {
	return s.graph.NodeAt(x, y, slop)
}

func (s *Session) structuralEdit(status string) {
	s.cancel()
	s.anim.Clear()
	s.result = nil
	s.setStatus(status)
}

func (s *Session) reject(err error) {
	prefix := "ERROR: "
	if errors.IsNoOp(err) {
		prefix = "WARNING: "
	}
	s.setStatus(prefix + errors.UserMessage(err))
}

func (s *Session) setStatus(msg string) {
	s.status = msg
	s.revision++
}

// =============================================================================
// Animation
// =============================================================================

// StartTraversal computes the visit order of kind on a snapshot of the
// graph and starts animating it from an empty highlight set. Any running
// animation is pre-empted. The returned token must accompany every Tick.
//
// KindNone stops and clears the animation and returns the zero Run, which
// no tick ever matches.
func (s *Session) StartTraversal(kind traverse.Kind) anim.Run {
	s.cancel()
	if kind == traverse.KindNone {
		s.anim.Clear()
		s.result = nil
		s.revision++
		return 0
	}

	s.result = traverse.Run(kind, s.graph.Snapshot())
	run := s.anim.Start(kind, s.result.Order)
	observability.Animation().OnStart(s.id, kind.String(), uint64(run), s.result.Order)
	s.revision++
	return run
}

// Tick advances the animation identified by run by one step. It reports
// whether another tick should be scheduled. Stale or unexpected ticks are
// ignored and report false.
func (s *Session) Tick(run anim.Run) bool {
	step := s.anim.Tick(run)
	kind := s.anim.Kind().String()

	switch step.Event {
	case anim.EventVisit:
		observability.Animation().OnStep(s.id, kind, step.Node, step.Index, step.Total)
	case anim.EventComplete:
		observability.Animation().OnComplete(s.id, kind, s.anim.Sequence())
	default:
		return false
	}
	s.setStatus(s.anim.Status())
	return step.Continue()
}

// Cancel stops a running animation without clearing its highlights.
// It reports whether anything was running.
func (s *Session) Cancel() bool {
	if !s.cancel() {
		return false
	}
	s.revision++
	return true
}

func (s *Session) cancel() bool {
	if !s.anim.Cancel() {
		return false
	}
	observability.Animation().OnCancel(s.id, s.anim.Kind().String(), s.anim.Cursor(), len(s.anim.Sequence()))
	return true
}
