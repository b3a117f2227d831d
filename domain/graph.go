package domain

import "fmt"

// Edge is one undirected edge (Src, Dst). Orientation is arbitrary but fixed:
// difference matrices built from a Graph put −1 at Src and +1 at Dst, in the
// order the edges were given.
type Edge struct {
	Src, Dst int
}

// Graph is a simple undirected graph over vertices 0..n-1 with a stable,
// ordered edge list. Immutable once built.
type Graph struct {
	n     int
	edges []Edge
	adj   [][]int
}

// NewGraph constructs a graph with n vertices and the given undirected edges,
// each listed exactly once. The input slice is copied.
//
// Returns ErrEmptyDomain if n < 1, ErrVertexRange if an endpoint is outside
// [0, n), ErrLoopEdge on self-loops, and ErrDuplicateEdge if the same
// undirected pair appears twice (in either orientation).
//
// Complexity: O(n + E) time and memory.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrEmptyDomain, n)
	}
	g := &Graph{
		n:     n,
		edges: make([]Edge, len(edges)),
		adj:   make([][]int, n),
	}
	seen := make(map[[2]int]struct{}, len(edges))
	for idx, e := range edges {
		if e.Src < 0 || e.Src >= n || e.Dst < 0 || e.Dst >= n {
			return nil, fmt.Errorf("%w: edge %d is (%d,%d), n=%d", ErrVertexRange, idx, e.Src, e.Dst, n)
		}
		if e.Src == e.Dst {
			return nil, fmt.Errorf("%w: edge %d at vertex %d", ErrLoopEdge, idx, e.Src)
		}
		key := [2]int{e.Src, e.Dst}
		if e.Dst < e.Src {
			key = [2]int{e.Dst, e.Src}
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: edge %d is (%d,%d)", ErrDuplicateEdge, idx, e.Src, e.Dst)
		}
		seen[key] = struct{}{}
		g.edges[idx] = e
		g.adj[e.Src] = append(g.adj[e.Src], e.Dst)
		g.adj[e.Dst] = append(g.adj[e.Dst], e.Src)
	}
	return g, nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return g.n }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge list in its original, stable order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Degree returns the number of edges incident to vertex v.
// Complexity: O(1).
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// ConnectedComponents returns the vertex sets of all connected components,
// each in BFS discovery order, components ordered by their smallest vertex.
//
// Time: O(n + E), Memory: O(n).
func (g *Graph) ConnectedComponents() [][]int {
	seen := make([]bool, g.n)
	var comps [][]int

	for v := 0; v < g.n; v++ {
		if seen[v] {
			continue
		}
		// BFS to collect the component rooted at v.
		queue := []int{v}
		seen[v] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, w := range g.adj[u] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether the graph has exactly one connected component.
// An order-1 structure matrix over a disconnected graph is singular, so this
// is a cheap pre-factorization diagnostic.
func (g *Graph) Connected() bool {
	return len(g.ConnectedComponents()) == 1
}
