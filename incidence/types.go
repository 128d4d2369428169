package incidence

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for incidence walks.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("incidence: graph is nil")

	// ErrStartNotFound is returned when the start node does not exist.
	ErrStartNotFound = errors.New("incidence: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("incidence: invalid option supplied")
)

// Option configures Walk via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Walk runs.
type Option func(*WalkOptions)

// WalkOptions holds parameters and callbacks for a walk.
type WalkOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called for every visited node with its depth. A non-nil
	// error aborts the walk.
	OnVisit func(node, depth int) error

	// FilterNode skips a neighbor when it returns false.
	FilterNode func(curr, next int) bool

	// visited, when set, is shared with other walks over the same graph.
	visited []bool

	err error
}

// DefaultOptions returns background context, no-op hook, no filtering.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:        context.Background(),
		OnVisit:    func(int, int) error { return nil },
		FilterNode: func(int, int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNode skips neighbors for which fn returns false.
func WithFilterNode(fn func(curr, next int) bool) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.FilterNode = fn
		}
	}
}

// withVisited makes the walk mark and honour a caller-owned visited slice,
// so consecutive walks never re-enter each other's nodes.
func withVisited(visited []bool) Option {
	return func(o *WalkOptions) {
		o.visited = visited
	}
}

// WalkResult holds the outcome of a walk.
//   - Order: nodes in visit sequence.
//   - Depth: node → distance (in incidence edges) from the start.
type WalkResult struct {
	Order []int
	Depth map[int]int
}

// Component is one connected piece of the incidence structure.
//
// Vertices holds vertex ids (not node numbers), ascending. Hyperedges holds
// hyperedge indices, ascending.
type Component struct {
	Vertices   []int
	Hyperedges []int
}
