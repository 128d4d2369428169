// Package enforce implements the two finishing passes a generator may run on
// a freshly sampled hypergraph.
//
//   - Simple removes every hyperedge that is contained in another surviving
//     hyperedge. Among mutually equal hyperedges the earliest one survives.
//     The result is an antichain under set inclusion (invariant I3).
//   - Connected keeps only the incidence component with the most vertices
//     (ties: the component holding the smallest vertex id) and relabels the
//     survivors to 0..k-1 (invariant I4).
//
// Both passes may shrink the hypergraph below the requested size. That is
// the documented contract; nothing is resampled. Neither pass mutates its
// input.
//
// Order
//
//	Apply runs the passes in a caller-chosen Order. SimpleThenConnected is the
//	default. Removing a hyperedge contained in another never disconnects
//	anything, so both orders select the same vertices and hyperedges.
package enforce
