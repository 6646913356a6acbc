package tree

import (
	"fmt"
	"log/slog"
	"slices"
)

// NodeID is an alias for int used to address a node slot in the arena.
type NodeID = int

const (
	// Root is the index of the node created by New. It can not be deleted.
	Root NodeID = 0
	// NoParent marks a node without parent: the root, a detached node or a
	// node added without a parent.
	NoParent NodeID = -1
)

// Tree is a generic arena of nodes connected by labeled edges.
//
// The arena is a structure of arrays: the slot i of every column describes node i.
// transitions[p][k] is the label of the edge from p to children[p][k], nil for an
// unlabeled edge. A nil value means no value is associated with the node.
type Tree[V, L comparable] struct {
	children    [][]NodeID
	transitions [][]*L
	parents     []NodeID
	values      []*V
	deleted     []bool
	size        int // live nodes
	logger      *slog.Logger
}

// New creates a tree holding only the root node (index 0, no value).
func New[V, L comparable](opts ...Option[V, L]) *Tree[V, L] {
	t := defaultOptions[V, L]()
	for _, opt := range opts {
		t = opt(t)
	}
	if _, err := t.AddNode(NoParent, nil, nil, nil, nil); err != nil {
		panic("[BUG] New: can not create the root node: " + err.Error())
	}
	return t
}

// AddNode appends a new node to the arena and returns the 1-based successor of its
// index: the node itself is stored at the returned value minus one.
//
// If parent is not NoParent, the new node is appended to the parent's children and
// parentTransition to the parent's transitions. A nil parentTransition is stored as an
// unlabeled edge, so both lists always keep the same length. The given children are
// adopted by the new node: each of them must be a live node without parent (added with
// NoParent), other than the root and listed once. transitions are their edge labels.
//
// Returns ErrOutOfRange if parent or one of the children is not a slot of the arena
// (a deleted parent is accepted), ErrInvalidOperation if children and transitions
// differ in length, or if a child is the root, already attached, deleted, listed twice
// or an ancestor of parent.
func (t *Tree[V, L]) AddNode(parent NodeID, children []NodeID, transitions []*L, value *V, parentTransition *L) (NodeID, error) {
	index := len(t.children)

	if parent != NoParent && (parent < 0 || parent >= index) {
		return 0, fmt.Errorf("add node: parent %d should point to a valid node: %w", parent, ErrOutOfRange)
	}
	if len(children) != len(transitions) {
		return 0, fmt.Errorf("add node: %d children for %d transitions: %w", len(children), len(transitions), ErrInvalidOperation)
	}
	for k, child := range children {
		if child < 0 || child >= index {
			return 0, fmt.Errorf("add node: child %d should point to a valid node: %w", child, ErrOutOfRange)
		}
		if child == Root || t.parents[child] != NoParent || t.deleted[child] {
			return 0, fmt.Errorf("add node: child %d is the root, attached or deleted: %w", child, ErrInvalidOperation)
		}
		if slices.Contains(children[:k], child) {
			return 0, fmt.Errorf("add node: child %d is listed twice: %w", child, ErrInvalidOperation)
		}
		if t.isAncestor(child, parent) {
			return 0, fmt.Errorf("add node: child %d is an ancestor of parent %d: %w", child, parent, ErrInvalidOperation)
		}
	}

	if parent != NoParent {
		t.children[parent] = append(t.children[parent], index)
		t.transitions[parent] = append(t.transitions[parent], parentTransition)
	}

	t.children = append(t.children, slices.Clone(children))
	t.transitions = append(t.transitions, slices.Clone(transitions))
	t.parents = append(t.parents, parent)
	t.values = append(t.values, value)
	t.deleted = append(t.deleted, false)
	t.size++

	for _, child := range children {
		t.parents[child] = index
	}

	t.logger.Debug("node added", "node", index, "parent", parent)
	return index + 1, nil
}

// DeleteNode detaches node i and splices its children up to i's parent.
//
// The children take the place i had in its parent's list, in their original order and
// with their original edge labels. The slot of i is kept (its value included) but it
// is left without parent nor children and is never reused.
//
// Returns ErrNotFound if i is not a slot of the arena, ErrInvalidOperation if i has no
// parent (the root, or an already deleted node).
func (t *Tree[V, L]) DeleteNode(i NodeID) error {
	if i < 0 || i >= len(t.parents) {
		return fmt.Errorf("delete node %d: %w", i, ErrNotFound)
	}
	parent := t.parents[i]
	if parent == NoParent {
		return fmt.Errorf("delete node %d: node has no parent: %w", i, ErrInvalidOperation)
	}

	orphans, orphanLabels := t.children[i], t.transitions[i]
	siblings, siblingLabels := t.children[parent], t.transitions[parent]

	children := make([]NodeID, 0, len(siblings)+len(orphans))
	transitions := make([]*L, 0, len(siblings)+len(orphans))
	spliced := false
	for k, sibling := range siblings {
		if sibling != i {
			children = append(children, sibling)
			transitions = append(transitions, siblingLabels[k])
			continue
		}
		if !spliced {
			children = append(children, orphans...)
			transitions = append(transitions, orphanLabels...)
			spliced = true
		}
	}
	if !spliced {
		panic(fmt.Sprintf("[BUG] DeleteNode: node %d is missing from the children of its parent %d", i, parent))
	}

	t.children[parent] = children
	t.transitions[parent] = transitions
	for _, orphan := range orphans {
		t.parents[orphan] = parent
	}

	t.children[i] = nil
	t.transitions[i] = nil
	t.parents[i] = NoParent
	t.deleted[i] = true
	t.size--

	t.logger.Debug("node deleted", "node", i, "parent", parent, "promoted", len(orphans))
	return nil
}

// Len returns the number of live nodes, the root included.
func (t *Tree[V, L]) Len() int {
	return t.size
}

// Cap returns the number of slots in the arena, dead ones included.
func (t *Tree[V, L]) Cap() int {
	return len(t.parents)
}

func (t *Tree[V, L]) exists(i NodeID) bool {
	return i >= 0 && i < len(t.parents)
}

// IsLive reports whether i is the root or a node attached to a parent.
func (t *Tree[V, L]) IsLive(i NodeID) bool {
	return t.exists(i) && (i == Root || t.parents[i] != NoParent)
}

// isAncestor reports whether a is n or one of n's ancestors.
func (t *Tree[V, L]) isAncestor(a, n NodeID) bool {
	for current := n; current != NoParent; current = t.parents[current] {
		if current == a {
			return true
		}
	}
	return false
}

// Children returns a copy of the ordered children of i.
func (t *Tree[V, L]) Children(i NodeID) []NodeID {
	if !t.exists(i) {
		return nil
	}
	return slices.Clone(t.children[i])
}

// Transitions returns a copy of the edge labels of i, index-aligned with Children(i).
func (t *Tree[V, L]) Transitions(i NodeID) []*L {
	if !t.exists(i) {
		return nil
	}
	return slices.Clone(t.transitions[i])
}

// Parent returns the parent of i, or NoParent.
func (t *Tree[V, L]) Parent(i NodeID) NodeID {
	if !t.exists(i) {
		return NoParent
	}
	return t.parents[i]
}

// Value returns the value stored at i, nil if there is none.
func (t *Tree[V, L]) Value(i NodeID) *V {
	if !t.exists(i) {
		return nil
	}
	return t.values[i]
}

// SetValue replaces the value stored at i. A nil value clears it.
func (t *Tree[V, L]) SetValue(i NodeID, value *V) error {
	if !t.exists(i) {
		return fmt.Errorf("set value of node %d: %w", i, ErrNotFound)
	}
	t.values[i] = value
	return nil
}

// Child returns the first child of i reached by an edge labeled label.
// A nil label only matches unlabeled edges.
func (t *Tree[V, L]) Child(i NodeID, label *L) (NodeID, bool) {
	if !t.exists(i) {
		return NoParent, false
	}
	for k, transition := range t.transitions[i] {
		if sameLabel(transition, label) {
			return t.children[i][k], true
		}
	}
	return NoParent, false
}

// Path returns the edge labels from the root down to i.
// It returns ErrNotFound if i is not reachable from the root.
func (t *Tree[V, L]) Path(i NodeID) ([]*L, error) {
	if !t.exists(i) {
		return nil, fmt.Errorf("path of node %d: %w", i, ErrNotFound)
	}
	path := []*L{}
	// AddNode never links a node below itself, so parent links have no cycle
	for current := i; current != Root; {
		parent := t.parents[current]
		if parent == NoParent {
			return nil, fmt.Errorf("path of node %d: node %d is detached: %w", i, current, ErrNotFound)
		}
		k := slices.Index(t.children[parent], current)
		path = append(path, t.transitions[parent][k])
		current = parent
	}
	slices.Reverse(path)
	return path, nil
}

func sameLabel[L comparable](a, b *L) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
