package enforce

import (
	"fmt"

	"github.com/katalvlaran/hypergen/hypergraph"
)

// Order selects the sequence of finishing passes.
type Order int

const (
	// SimpleThenConnected runs Simple before Connected.
	SimpleThenConnected Order = iota
	// ConnectedThenSimple runs Connected before Simple.
	ConnectedThenSimple
)

// String returns the configuration token for o.
func (o Order) String() string {
	switch o {
	case SimpleThenConnected:
		return "simple_first"
	case ConnectedThenSimple:
		return "connected_first"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "simple_first", "":
		return SimpleThenConnected, nil
	case "connected_first":
		return ConnectedThenSimple, nil
	default:
		return 0, fmt.Errorf("enforce: unknown order %q", s)
	}
}

// Apply runs the requested passes on h in the given order. With both flags
// false h itself is returned.
func Apply(h *hypergraph.Hypergraph, order Order, simple, connected bool) *hypergraph.Hypergraph {
	out := h
	if order == ConnectedThenSimple {
		if connected {
			out = Connected(out)
		}
		if simple {
			out = Simple(out)
		}
		return out
	}

	if simple {
		out = Simple(out)
	}
	if connected {
		out = Connected(out)
	}
	return out
}
