package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khalid-nowaf/ramage/pkg/tree"
)

type SearchCmd struct {
	Load     LoadFlags `embed:""`
	Target   string    `help:"Value to compare the property against" required:""`
	Sequence bool      `help:"Split the target by --key-sep and compare it element-wise"`
	Property string    `help:"Node property to compare" enum:"children,transitions,parents,values" default:"values"`
	Method   string    `help:"Traversal order" enum:"depth,breadth" default:"depth"`
	All      bool      `help:"Print every matching node instead of the first one"`
}

// Run prints the matching nodes, one per line: index, key and value.
func (cmd *SearchCmd) Run(ctx *Context) error {
	property, err := tree.ParseProperty(cmd.Property)
	if err != nil {
		return err
	}
	method, err := tree.ParseMethod(cmd.Method)
	if err != nil {
		return err
	}
	target, err := cmd.target(property)
	if err != nil {
		return err
	}

	t, _, err := loadTrie(ctx, &cmd.Load)
	if err != nil {
		return err
	}

	matches, found := t.Tree().Search(target, cmd.All, property, method)
	if !found {
		fmt.Fprintln(ctx.Out, "no match")
		return nil
	}

	for _, node := range matches {
		key, err := t.Key(node)
		if err != nil {
			return err
		}
		value := "-"
		if v := t.Tree().Value(node); v != nil {
			value = *v
		}
		fmt.Fprintf(ctx.Out, "%d\t%s\t%s\n", node, strings.Join(key, cmd.Load.KeySep), value)
	}
	return nil
}

// target converts the raw target to the element type of the property: node indices
// for children and parents, strings otherwise.
func (cmd *SearchCmd) target(property tree.Property) (tree.Target, error) {
	elems := []string{cmd.Target}
	if cmd.Sequence {
		elems = splitKey(cmd.Target, cmd.Load.KeySep)
	}

	if property == tree.Children || property == tree.Parents {
		ids := make([]tree.NodeID, len(elems))
		for i, elem := range elems {
			id, err := strconv.Atoi(elem)
			if err != nil {
				return tree.Target{}, fmt.Errorf("target %q of %s must be a node index: %w", elem, property, err)
			}
			ids[i] = id
		}
		if cmd.Sequence {
			return tree.Sequence(ids...), nil
		}
		return tree.Scalar(ids[0]), nil
	}

	if cmd.Sequence {
		return tree.Sequence(elems...), nil
	}
	return tree.Scalar(elems[0]), nil
}
