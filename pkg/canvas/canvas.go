// Package canvas is the receiving end of a sidebar drag: it turns a dropped
// payload into a node-creation event. Layout and rendering live elsewhere.
package canvas

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mattsolo1/grove-palette/pkg/sidebar"
)

// Position is a canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a created flow node.
type Node struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Position Position         `json:"position"`
	Data     sidebar.DragData `json:"data"`
}

// Flow collects the nodes created by drops and notifies listeners.
type Flow struct {
	mu       sync.Mutex
	nodes    []Node
	newID    func() string
	onCreate []func(Node)
}

// Option configures a Flow.
type Option func(*Flow)

// WithIDSource replaces the random id suffix generator.
func WithIDSource(next func() string) Option {
	return func(f *Flow) {
		f.newID = next
	}
}

// OnCreate registers a listener for created nodes.
func OnCreate(fn func(Node)) Option {
	return func(f *Flow) {
		f.onCreate = append(f.onCreate, fn)
	}
}

// New creates an empty flow.
func New(opts ...Option) *Flow {
	f := &Flow{newID: func() string { return uuid.New().String() }}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Drop creates a node from payload at pos. Node ids are "<type>_<suffix>".
func (f *Flow) Drop(payload sidebar.DragPayload, pos Position) (Node, error) {
	if payload.Type == "" {
		return Node{}, fmt.Errorf("drop: payload has no node type")
	}

	f.mu.Lock()
	n := Node{
		ID:       payload.Type + "_" + f.newID(),
		Type:     payload.Type,
		Position: pos,
		Data:     payload.Data,
	}
	f.nodes = append(f.nodes, n)
	listeners := append(([]func(Node))(nil), f.onCreate...)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(n)
	}
	return n, nil
}

// DropEncoded decodes a transferred payload and drops it.
func (f *Flow) DropEncoded(b []byte, pos Position) (Node, error) {
	p, err := sidebar.DecodeDragPayload(b)
	if err != nil {
		return Node{}, err
	}
	return f.Drop(p, pos)
}

// Nodes returns the created nodes in creation order.
func (f *Flow) Nodes() []Node {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Node(nil), f.nodes...)
}
