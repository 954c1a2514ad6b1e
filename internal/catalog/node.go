package catalog

import (
	"slices"
	"sort"
)

// Node is one position in a slot's selection tree. It is either an *Internal
// node (more choices below) or a *Leaf (terminal asset references); consumers
// branch with a type switch on those two types.
type Node interface {
	isNode()
}

// Internal maps child keys (variant or subvariant names) to child nodes
type Internal struct {
	keys     []string
	children map[string]Node
}

// Leaf holds one or more equivalent terminal asset references
type Leaf struct {
	refs []string
}

func (*Internal) isNode() {}
func (*Leaf) isNode()     {}

func newInternal() *Internal {
	return &Internal{children: make(map[string]Node)}
}

func newLeaf(refs ...string) *Leaf {
	l := &Leaf{}
	l.add(refs...)
	return l
}

// Keys returns the child keys in sorted order
func (n *Internal) Keys() []string {
	return slices.Clone(n.keys)
}

// Child returns the child stored under key
func (n *Internal) Child(key string) (Node, bool) {
	child, ok := n.children[key]
	return child, ok
}

// Len returns the number of children
func (n *Internal) Len() int {
	return len(n.keys)
}

func (n *Internal) set(key string, child Node) {
	if _, exists := n.children[key]; !exists {
		i := sort.SearchStrings(n.keys, key)
		n.keys = slices.Insert(n.keys, i, key)
	}
	n.children[key] = child
}

// mergeLeaf adds refs under key. An existing leaf gains the refs it lacks; an
// existing internal node already describes the key and is left untouched.
func (n *Internal) mergeLeaf(key string, refs ...string) {
	switch existing := n.children[key].(type) {
	case nil:
		n.set(key, newLeaf(refs...))
	case *Leaf:
		existing.add(refs...)
	case *Internal:
	}
}

// Refs returns the terminal references in declaration order
func (l *Leaf) Refs() []string {
	return slices.Clone(l.refs)
}

// First returns the leading reference
func (l *Leaf) First() string {
	return l.refs[0]
}

// Len returns the number of references
func (l *Leaf) Len() int {
	return len(l.refs)
}

// Contains reports whether ref is one of the leaf's references
func (l *Leaf) Contains(ref string) bool {
	return slices.Contains(l.refs, ref)
}

func (l *Leaf) add(refs ...string) {
	for _, ref := range refs {
		if ref != "" && !slices.Contains(l.refs, ref) {
			l.refs = append(l.refs, ref)
		}
	}
}

// walkLeaves visits every leaf below n with the key path leading to it,
// in sorted key order.
func walkLeaves(n *Internal, prefix []string, visit func(path []string, leaf *Leaf) bool) bool {
	for _, key := range n.keys {
		path := append(slices.Clone(prefix), key)
		switch child := n.children[key].(type) {
		case *Internal:
			if !walkLeaves(child, path, visit) {
				return false
			}
		case *Leaf:
			if !visit(path, child) {
				return false
			}
		}
	}
	return true
}
