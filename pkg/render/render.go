// Package render dispatches document nodes to format-specific renderers.
//
// A Map is built once per render pass from an ordered list of
// NodeRenderers. Each node kind is bound to the first renderer that
// declares it; later renderers declaring the same kind are ignored for
// that kind. Nodes without a renderer are skipped silently, so trees
// carrying extension nodes unknown to a format still render.
package render

import "github.com/yaklabco/gomdkit/pkg/mdast"

// NodeRenderer renders a fixed set of node kinds.
type NodeRenderer interface {
	// Kinds lists the node kinds this renderer handles.
	Kinds() []mdast.NodeKind
	// Render renders n, whose kind is one of Kinds.
	Render(n *mdast.Node)
	// BeforeRoot is called once before the document is rendered.
	BeforeRoot(root *mdast.Node)
	// AfterRoot is called once after the document is rendered.
	AfterRoot(root *mdast.Node)
}

// Hooks provides no-op root hooks for embedding in renderers that don't
// need them.
type Hooks struct{}

// BeforeRoot does nothing.
func (Hooks) BeforeRoot(*mdast.Node) {}

// AfterRoot does nothing.
func (Hooks) AfterRoot(*mdast.Node) {}

// Map binds node kinds to renderers. The zero value is ready to use.
type Map struct {
	renderers []NodeRenderer
	byKind    map[mdast.NodeKind]NodeRenderer
}

// NewMap creates a Map and adds renderers in order.
func NewMap(renderers ...NodeRenderer) *Map {
	m := &Map{}
	for _, r := range renderers {
		m.Add(r)
	}
	return m
}

// Add appends r and binds each kind it declares that is not bound yet.
func (m *Map) Add(r NodeRenderer) {
	if m.byKind == nil {
		m.byKind = make(map[mdast.NodeKind]NodeRenderer)
	}
	m.renderers = append(m.renderers, r)
	for _, kind := range r.Kinds() {
		if _, taken := m.byKind[kind]; !taken {
			m.byKind[kind] = r
		}
	}
}

// Lookup returns the renderer bound to kind.
func (m *Map) Lookup(kind mdast.NodeKind) (NodeRenderer, bool) {
	r, ok := m.byKind[kind]
	return r, ok
}

// Renderers returns the renderers in registration order.
func (m *Map) Renderers() []NodeRenderer {
	out := make([]NodeRenderer, len(m.renderers))
	copy(out, m.renderers)
	return out
}

// Render renders n with the renderer bound to its kind, if any.
func (m *Map) Render(n *mdast.Node) {
	if n == nil {
		return
	}
	if r, ok := m.byKind[n.Kind]; ok {
		r.Render(n)
	}
}

// RenderChildren renders each child of n in order.
func (m *Map) RenderChildren(n *mdast.Node) {
	for child := n.FirstChild; child != nil; child = child.Next {
		m.Render(child)
	}
}

// BeforeRoot calls every renderer's BeforeRoot in registration order.
func (m *Map) BeforeRoot(root *mdast.Node) {
	for _, r := range m.renderers {
		r.BeforeRoot(root)
	}
}

// AfterRoot calls every renderer's AfterRoot in registration order.
func (m *Map) AfterRoot(root *mdast.Node) {
	for _, r := range m.renderers {
		r.AfterRoot(root)
	}
}

// Document runs a full pass: BeforeRoot, Render(root), AfterRoot.
func (m *Map) Document(root *mdast.Node) {
	m.BeforeRoot(root)
	m.Render(root)
	m.AfterRoot(root)
}
