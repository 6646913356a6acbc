package tree

import (
	"fmt"
	"reflect"
	"strings"
)

// Property selects which column of a node Search compares against.
type Property int

const (
	Children    Property = iota // the ordered child indices
	Transitions                 // the ordered edge labels, nil for unlabeled edges
	Parents                     // the parent index, nil when there is none
	Values                      // the value, nil when there is none
)

var propertyNames = [...]string{"children", "transitions", "parents", "values"}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyNames[p]
}

// ParseProperty returns the property named s (case insensitive).
func ParseProperty(s string) (Property, error) {
	for i, name := range propertyNames {
		if strings.EqualFold(s, name) {
			return Property(i), nil
		}
	}
	return 0, fmt.Errorf("unknown property %q: %w", s, ErrInvalidOperation)
}

// Method selects the traversal order.
type Method int

const (
	Depth   Method = iota // pre-order, first child first
	Breadth               // level by level, first child first within a level
)

func (m Method) String() string {
	switch m {
	case Depth:
		return "depth"
	case Breadth:
		return "breadth"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the traversal method named s (case insensitive).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "depth":
		return Depth, nil
	case "breadth":
		return Breadth, nil
	}
	return 0, fmt.Errorf("unknown traversal method %q: %w", s, ErrInvalidOperation)
}

// Target is what Search compares a node property against: a single scalar or an
// ordered sequence. Elements are compared with ==; nil matches an absent label,
// parent or value.
type Target struct {
	elems    []any
	sequence bool
}

// Scalar builds a target compared against every element of the property.
func Scalar(v any) Target {
	return Target{elems: []any{v}}
}

// Sequence builds a target compared element-wise against the property.
func Sequence[T any](vs ...T) Target {
	elems := make([]any, len(vs))
	for i, v := range vs {
		elems[i] = v
	}
	return Target{elems: elems, sequence: true}
}

// matches reports the result of the last comparison made against the property:
// earlier comparisons do not count. A sequence is zipped with the property and stops
// at the shorter of the two. Nothing compared means no match.
func (target Target) matches(property []any) bool {
	matched := false
	if target.sequence {
		for k := 0; k < min(len(target.elems), len(property)); k++ {
			matched = equal(target.elems[k], property[k])
		}
		return matched
	}
	for _, elem := range property {
		matched = equal(target.elems[0], elem)
	}
	return matched
}

func equal(a, b any) bool {
	if a != nil && !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}

// worklist pops from the back (stack) for Depth and from the front (queue) for Breadth.
type worklist struct {
	method Method
	items  []NodeID
}

func (w *worklist) empty() bool {
	return len(w.items) == 0
}

// push adds the children of a visited node so they come out in their stored order.
func (w *worklist) push(children []NodeID) {
	if w.method == Breadth {
		w.items = append(w.items, children...)
		return
	}
	for k := len(children) - 1; k >= 0; k-- {
		w.items = append(w.items, children[k])
	}
}

func (w *worklist) pop() NodeID {
	var next NodeID
	if w.method == Breadth {
		next, w.items = w.items[0], w.items[1:]
	} else {
		last := len(w.items) - 1
		next, w.items = w.items[last], w.items[:last]
	}
	return next
}

// Walk visits every live node reachable from the root in the given order, until
// visit returns false.
func (t *Tree[V, L]) Walk(method Method, visit func(NodeID) bool) {
	work := &worklist{method: method, items: []NodeID{Root}}
	for !work.empty() {
		current := work.pop()
		if !visit(current) {
			return
		}
		work.push(t.children[current])
	}
}

// property reads the selected column of node i as a sequence.
func (t *Tree[V, L]) property(i NodeID, property Property) []any {
	switch property {
	case Children:
		elems := make([]any, len(t.children[i]))
		for k, child := range t.children[i] {
			elems[k] = child
		}
		return elems
	case Transitions:
		elems := make([]any, len(t.transitions[i]))
		for k, label := range t.transitions[i] {
			if label != nil {
				elems[k] = *label
			}
		}
		return elems
	case Parents:
		if t.parents[i] == NoParent {
			return []any{nil}
		}
		return []any{t.parents[i]}
	case Values:
		if t.values[i] == nil {
			return []any{nil}
		}
		return []any{*t.values[i]}
	}
	panic(fmt.Sprintf("[BUG] property: unknown property %d", int(property)))
}

// Search walks the tree from the root and compares target against the selected
// property of each visited node.
//
// Only the last comparison made at a node decides if it matches: a scalar target
// matches a node when it equals the last element of the property, a sequence target
// when its last element zipped with the property is equal. Earlier elements are
// compared but ignored, so Sequence(1, 2) matches the children [9, 2].
//
// With matchAll false the index of the first matching node in traversal order is
// returned as a one element slice. With matchAll true every matching node is returned
// in visiting order. The boolean is false when nothing matched.
func (t *Tree[V, L]) Search(target Target, matchAll bool, property Property, method Method) ([]NodeID, bool) {
	var matches []NodeID
	t.Walk(method, func(current NodeID) bool {
		if !target.matches(t.property(current, property)) {
			return true
		}
		matches = append(matches, current)
		return matchAll
	})
	if len(matches) == 0 {
		return nil, false
	}
	return matches, true
}
