// Package graph provides an append-only adjacency-list graph that owns a
// payload per node. Nodes are addressed by index and are never removed.
package graph

import (
	"errors"
	"fmt"
	"slices"
)

// NodeID indexes a node within a Graph.
type NodeID int

// ErrInvalidNode is returned when an id is out of range or an edge would loop
// back onto its own node.
var ErrInvalidNode = errors.New("invalid node")

// node holds a payload and the ids of its neighbors in insertion order.
type node[T any] struct {
	data      T
	neighbors []NodeID
}

// Graph is a directed graph. Callers that want undirected semantics insert
// both directions.
type Graph[T any] struct {
	nodes []*node[T]
}

// New creates an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{}
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Valid reports whether id names an existing node.
func (g *Graph[T]) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// NewNode appends a node holding data and returns its id.
func (g *Graph[T]) NewNode(data T) NodeID {
	g.nodes = append(g.nodes, &node[T]{data: data})
	return NodeID(len(g.nodes) - 1)
}

// AddNeighbor inserts the edge a -> b. Inserting an edge that already exists
// is a no-op.
func (g *Graph[T]) AddNeighbor(a, b NodeID) error {
	if a == b {
		return fmt.Errorf("edge %d -> %d: self loop: %w", a, b, ErrInvalidNode)
	}
	if !g.Valid(a) || !g.Valid(b) {
		return fmt.Errorf("edge %d -> %d with %d nodes: %w", a, b, len(g.nodes), ErrInvalidNode)
	}
	if slices.Contains(g.nodes[a].neighbors, b) {
		return nil
	}
	g.nodes[a].neighbors = append(g.nodes[a].neighbors, b)
	return nil
}

// AddNewNeighbor creates a node holding data and links a -> new node.
func (g *Graph[T]) AddNewNeighbor(a NodeID, data T) (NodeID, error) {
	if !g.Valid(a) {
		return 0, fmt.Errorf("node %d with %d nodes: %w", a, len(g.nodes), ErrInvalidNode)
	}
	id := g.NewNode(data)
	g.nodes[a].neighbors = append(g.nodes[a].neighbors, id)
	return id, nil
}

// Get returns the payload of the node, if it exists.
func (g *Graph[T]) Get(id NodeID) (T, bool) {
	if !g.Valid(id) {
		var zero T
		return zero, false
	}
	return g.nodes[id].data, true
}

// Neighbors returns the neighbor ids of a node, if it exists.
func (g *Graph[T]) Neighbors(id NodeID) ([]NodeID, bool) {
	if !g.Valid(id) {
		return nil, false
	}
	return g.nodes[id].neighbors, true
}

// HasEdge reports whether a -> b exists.
func (g *Graph[T]) HasEdge(a, b NodeID) bool {
	if !g.Valid(a) {
		return false
	}
	return slices.Contains(g.nodes[a].neighbors, b)
}

// Each calls fn for every node in id order.
func (g *Graph[T]) Each(fn func(id NodeID, data T)) {
	for i, n := range g.nodes {
		fn(NodeID(i), n.data)
	}
}
