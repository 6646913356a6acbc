// ## Overview
// Package tree implements a generic, mutable, edge-labeled ordered tree stored as an arena.
// Every node lives in a set of parallel columns (children, transitions, parent, value)
// addressed by a dense integer index. Indices are never reused: deleting a node
// tombstones its slot and splices its children up to its former parent.
//
// ## Example usage:
//
//	t := tree.New[string, string]()
//	x := "x"
//	next, _ := t.AddNode(tree.Root, nil, nil, nil, &x) // node stored at next-1
//
//	// find every node reachable over an edge labeled "x"
//	ids, found := t.Search(tree.Scalar("x"), true, tree.Transitions, tree.Breadth)
//
//	// collapse node 1, its children move up to the root
//	_ = t.DeleteNode(next - 1)
//
// A Tree is not safe for concurrent use.
package tree
