package trie

import (
	"errors"
	"fmt"

	"github.com/khalid-nowaf/ramage/pkg/tree"
)

// ErrKeyNotFound is returned when a key has no entry in the trie.
var ErrKeyNotFound = errors.New("key not found")

// Trie is a generic prefix tree mapping keys of symbols L to values V.
type Trie[L, V comparable] struct {
	tree *tree.Tree[V, L]
}

// Entry is a key stored in the trie with its value.
type Entry[L, V comparable] struct {
	Key   []L
	Value V
}

// New creates an empty trie, its root holds no value.
func New[L, V comparable](opts ...tree.Option[V, L]) *Trie[L, V] {
	return &Trie[L, V]{
		tree: tree.New(opts...),
	}
}

// Tree returns the tree backing the trie.
func (t *Trie[L, V]) Tree() *tree.Tree[V, L] {
	return t.tree
}

// Set stores value under key, creating the missing nodes along the way.
// An existing value is overwritten.
func (t *Trie[L, V]) Set(key []L, value V) {
	current := tree.Root
	for _, symbol := range key {
		if next, ok := t.tree.Child(current, &symbol); ok {
			current = next
			continue
		}
		label := symbol
		next, err := t.tree.AddNode(current, nil, nil, nil, &label)
		if err != nil {
			panic("[BUG] Set: can not add a node under a walked node: " + err.Error())
		}
		current = next - 1
	}

	if err := t.tree.SetValue(current, &value); err != nil {
		panic("[BUG] Set: walked node is missing: " + err.Error())
	}
}

// walk follows key from the root and returns the node it ends on.
func (t *Trie[L, V]) walk(key []L) (tree.NodeID, error) {
	current := tree.Root
	for depth, symbol := range key {
		next, ok := t.tree.Child(current, &symbol)
		if !ok {
			return tree.NoParent, fmt.Errorf("%v: no edge for symbol %v at depth %d: %w", key, symbol, depth, ErrKeyNotFound)
		}
		current = next
	}
	return current, nil
}

// Get returns the value stored under key.
// It returns ErrKeyNotFound if the key can not be walked or only denotes a prefix of
// other keys.
func (t *Trie[L, V]) Get(key []L) (V, error) {
	var zero V
	node, err := t.walk(key)
	if err != nil {
		return zero, err
	}
	value := t.tree.Value(node)
	if value == nil {
		return zero, fmt.Errorf("%v: prefix without value: %w", key, ErrKeyNotFound)
	}
	return *value, nil
}

// Contains reports whether a value is stored under key.
func (t *Trie[L, V]) Contains(key []L) bool {
	_, err := t.Get(key)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		panic("[BUG] Contains: unexpected error: " + err.Error())
	}
	return err == nil
}

// Entries returns every stored key with its value, in the order the nodes are
// visited by method.
func (t *Trie[L, V]) Entries(method tree.Method) []Entry[L, V] {
	entries := []Entry[L, V]{}
	t.tree.Walk(method, func(node tree.NodeID) bool {
		value := t.tree.Value(node)
		if value == nil {
			return true
		}
		key, err := t.Key(node)
		if err != nil {
			// reached over an unlabeled edge added through Tree
			return true
		}
		entries = append(entries, Entry[L, V]{Key: key, Value: *value})
		return true
	})
	return entries
}

// Len returns the number of stored keys.
func (t *Trie[L, V]) Len() int {
	n := 0
	t.tree.Walk(tree.Depth, func(node tree.NodeID) bool {
		if t.tree.Value(node) != nil {
			n++
		}
		return true
	})
	return n
}

// Key returns the key spelled by the edges from the root to node.
func (t *Trie[L, V]) Key(node tree.NodeID) ([]L, error) {
	path, err := t.tree.Path(node)
	if err != nil {
		return nil, err
	}
	key := make([]L, len(path))
	for i, label := range path {
		if label == nil {
			return nil, fmt.Errorf("node %d: unlabeled edge at depth %d: %w", node, i, tree.ErrInvalidOperation)
		}
		key[i] = *label
	}
	return key, nil
}
