// ## Overview
// Package trie implements a generic prefix tree keyed by sequences of symbols.
// It is built on top of the arena in package tree: each edge label is a key symbol
// and each node value is the payload stored for the key spelled from the root.
// Lookups and insertions scan the outgoing labels of a node linearly, the first
// equal label wins.
//
// ## Example usage:
//
//	t := trie.New[string, int]()
//	t.Set([]string{"c", "a", "t"}, 1)
//	t.Set([]string{"c", "a", "r"}, 2)
//
//	v, err := t.Get([]string{"c", "a", "t"}) // 1, nil
//	_, err = t.Get([]string{"c", "a"})       // ErrKeyNotFound, "ca" is only a prefix
//	t.Contains([]string{"c", "a", "r"})      // true
//
//	// the underlying tree can be searched directly
//	ids, _ := t.Tree().Search(tree.Scalar(2), true, tree.Values, tree.Depth)
//
// A Trie is not safe for concurrent use.
package trie
