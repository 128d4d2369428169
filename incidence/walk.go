package incidence

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/hypergen/hypergraph"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state. visited may be shared across walks
// so that Components can sweep every node once.
type walker struct {
	graph   *Graph
	opts    WalkOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *WalkResult
}

// Walk runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, a context error,
// or a wrapped OnVisit error.
func Walk(g *Graph, start int, opts ...Option) (*WalkResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.NumNodes() {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartNotFound, start, g.NumNodes())
	}

	visited := o.visited
	if visited == nil {
		visited = make([]bool, g.NumNodes())
	} else if len(visited) != g.NumNodes() {
		return nil, fmt.Errorf("%w: visited has %d entries for %d nodes", ErrOptionViolation, len(visited), g.NumNodes())
	}

	w := newWalker(g, o, visited)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

func newWalker(g *Graph, o WalkOptions, visited []bool) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: visited,
		res: &WalkResult{
			Order: make([]int, 0),
			Depth: make(map[int]int),
		},
	}
}

func (w *walker) enqueue(node, d int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("incidence: OnVisit error at node %d: %w", item.node, err)
		}
		for _, nbr := range w.graph.adj[item.node] {
			if w.visited[nbr] || !w.opts.FilterNode(item.node, nbr) {
				continue
			}
			w.enqueue(nbr, item.depth+1)
		}
	}
	return nil
}

// Components partitions all nodes of g into connected components, ordered by
// their smallest node number. Since vertex-nodes precede hyperedge-nodes and
// follow ascending vertex id, a component containing any vertex is ordered by
// its smallest vertex id.
//
// Each component is one Walk sharing a single visited slice, so the whole
// sweep stays O(V + E + Σ|e|).
func Components(g *Graph) []Component {
	if g == nil {
		return nil
	}
	visited := make([]bool, g.NumNodes())
	var comps []Component
	for start := 0; start < g.NumNodes(); start++ {
		if visited[start] {
			continue
		}

		var c Component
		collect := func(node, _ int) error {
			if g.IsVertexNode(node) {
				c.Vertices = append(c.Vertices, g.VertexID(node))
			} else {
				c.Hyperedges = append(c.Hyperedges, g.EdgeIndex(node))
			}
			return nil
		}
		// start is in range, the hook never fails and the context is background.
		_, _ = Walk(g, start, withVisited(visited), WithOnVisit(collect))

		sort.Ints(c.Vertices)
		sort.Ints(c.Hyperedges)
		comps = append(comps, c)
	}
	return comps
}

// IsConnected reports whether the incidence structure of h has at most one
// component (invariant I4). An empty hypergraph is connected.
func IsConnected(h *hypergraph.Hypergraph) bool {
	return len(Components(Build(h))) <= 1
}
