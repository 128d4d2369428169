package generator

import (
	"math/rand"
	"sort"
)

// bipartiteSpanningTree returns a uniform spanning tree of the complete
// bipartite graph K_{a,b} by the Aldous–Broder random walk.
//
// Nodes 0..a-1 are one side, a..a+b-1 the other. Each returned edge is
// (side-a node, side-b node). The walk starts at rng.Intn(a+b); from a side-a
// node it steps to a+rng.Intn(b), from a side-b node to rng.Intn(a). The first
// entrance into a node contributes the edge it was entered by.
//
// Expected steps: O((a+b)·log(a+b)) for the cover time of K_{a,b}.
// Requires a ≥ 1, b ≥ 1.
func bipartiteSpanningTree(a, b int, rng *rand.Rand) [][2]int {
	n := a + b
	visited := make([]bool, n)
	edges := make([][2]int, 0, n-1)

	cur := rng.Intn(n)
	visited[cur] = true
	for remaining := n - 1; remaining > 0; {
		var next int
		if cur < a {
			next = a + rng.Intn(b)
		} else {
			next = rng.Intn(a)
		}
		if !visited[next] {
			visited[next] = true
			remaining--
			if cur < a {
				edges = append(edges, [2]int{cur, next})
			} else {
				edges = append(edges, [2]int{next, cur})
			}
		}
		cur = next
	}
	return edges
}

// randomPruferTree returns a uniform labeled tree on n ≥ 2 nodes by decoding
// a random Prüfer sequence of length n-2 (one rng.Intn(n) draw per entry).
// Linear-time decoding; edges come out in decoding order.
func randomPruferTree(n int, rng *rand.Rand) [][2]int {
	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = rng.Intn(n)
	}
	return decodePrufer(seq, n)
}

// decodePrufer decodes a Prüfer sequence over nodes 0..n-1.
func decodePrufer(seq []int, n int) [][2]int {
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}

	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr

	edges := make([][2]int, 0, n-1)
	for _, v := range seq {
		edges = append(edges, [2]int{leaf, v})
		degree[v]--
		if degree[v] == 1 && v < ptr {
			leaf = v
			continue
		}
		ptr++
		for degree[ptr] != 1 {
			ptr++
		}
		leaf = ptr
	}
	edges = append(edges, [2]int{leaf, n - 1})
	return edges
}

// adjacency builds ascending neighbor lists for n nodes.
func adjacency(n int, edges [][2]int) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for _, nb := range adj {
		sort.Ints(nb)
	}
	return adj
}

// levelParity splits a tree into even-level and odd-level nodes by BFS from
// root. Both results are ascending.
func levelParity(adj [][]int, root int) (even, odd []int) {
	level := make([]int, len(adj))
	for i := range level {
		level[i] = -1
	}
	level[root] = 0
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	for node, l := range level {
		if l%2 == 0 {
			even = append(even, node)
		} else {
			odd = append(odd, node)
		}
	}
	return even, odd
}

// densify adds each vertex of {0..numVertices-1} missing from edge with
// probability p, scanning vertices ascending. Only non-members consume a draw.
func densify(edge []int, numVertices int, p float64, rng *rand.Rand) []int {
	in := make([]bool, numVertices)
	for _, v := range edge {
		in[v] = true
	}
	for v := 0; v < numVertices; v++ {
		if in[v] {
			continue
		}
		if rng.Float64() < p {
			in[v] = true
		}
	}
	out := make([]int, 0, numVertices)
	for v, ok := range in {
		if ok {
			out = append(out, v)
		}
	}
	return out
}
