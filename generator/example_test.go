package generator_test

import (
	"fmt"

	"github.com/katalvlaran/hypergen/generator"
)

// ExampleFromScratch shows the p=1 case, where every trial set is the whole
// universe and simplicity collapses them to one.
func ExampleFromScratch() {
	h, err := generator.FromScratch(4, 3, 1.0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(h.NumHyperedges(), h.Hyperedges()[0])

	h, _ = generator.FromScratch(4, 3, 1.0, generator.WithSimple(true))
	fmt.Println(h.NumHyperedges(), h.Hyperedges()[0])
	// Output:
	// 3 0 1 2 3
	// 1 0 1 2 3
}

// ExampleFromTree shows that a tree-built hypergraph keeps its sizes.
func ExampleFromTree() {
	h, err := generator.FromTree(5, 3, 0.1, generator.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(h.NumVertices(), h.NumHyperedges())
	// Output:
	// 5 3
}
