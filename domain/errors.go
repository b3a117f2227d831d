package domain

import "errors"

// Sentinel errors for domain construction.
var (
	// ErrEmptyDomain indicates a requested extent smaller than one element.
	ErrEmptyDomain = errors.New("domain: domain must have at least one element")
	// ErrVertexRange indicates an edge endpoint outside the vertex range [0, n).
	ErrVertexRange = errors.New("domain: edge endpoint out of vertex range")
	// ErrLoopEdge indicates an edge connecting a vertex to itself.
	ErrLoopEdge = errors.New("domain: self-loop edges are not allowed")
	// ErrDuplicateEdge indicates the same undirected edge was listed more than once.
	ErrDuplicateEdge = errors.New("domain: duplicate undirected edge")
)
