// SPDX-License-Identifier: MIT
// Package: hypergen/generator
//
// api.go - method selector and a single dispatch entry point for drivers
// (CLI, dataset sweep).

package generator

import (
	"fmt"

	"github.com/katalvlaran/hypergen/hypergraph"
)

// Method selects a generation model.
type Method string

const (
	// MethodFromScratch selects FromScratch.
	MethodFromScratch Method = "from_scratch"
	// MethodFromTree selects FromTree.
	MethodFromTree Method = "from_tree"
	// MethodFromRandomTree selects FromRandomTree.
	MethodFromRandomTree Method = "from_random_tree"
)

// Methods lists every supported method in a stable order.
func Methods() []Method {
	return []Method{MethodFromScratch, MethodFromTree, MethodFromRandomTree}
}

// ParseMethod validates a method token.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("ParseMethod: %q: %w [%w]", s, ErrUnknownMethod, ErrInvalidParameter)
}

// Generate dispatches on method. The two sizes mean:
//   - from_scratch:     vertices=n, hyperedges=m;
//   - from_tree:        vertices=a, hyperedges=b;
//   - from_random_tree: the tree has vertices+hyperedges nodes.
func Generate(method Method, vertices, hyperedges int, p float64, opts ...Option) (*hypergraph.Hypergraph, error) {
	switch method {
	case MethodFromScratch:
		return FromScratch(vertices, hyperedges, p, opts...)
	case MethodFromTree:
		return FromTree(vertices, hyperedges, p, opts...)
	case MethodFromRandomTree:
		return FromRandomTree(vertices+hyperedges, p, opts...)
	default:
		return nil, fmt.Errorf("Generate: %q: %w [%w]", method, ErrUnknownMethod, ErrInvalidParameter)
	}
}
