package cli

import (
	"fmt"

	"github.com/khalid-nowaf/ramage/pkg/tree"
)

type BuildCmd struct {
	Load   LoadFlags `embed:""`
	Format string    `help:"Output format" enum:"csv,tsv,json,yaml" default:"csv"`
	Out    string    `help:"Output directory" type:"existingdir" default:"."`
	Method string    `help:"Order the entries are written in" enum:"depth,breadth" default:"depth"`
}

// Run loads the records and writes the trie entries to the output directory.
func (cmd *BuildCmd) Run(ctx *Context) error {
	method, err := tree.ParseMethod(cmd.Method)
	if err != nil {
		return err
	}

	t, stats, err := loadTrie(ctx, &cmd.Load)
	if err != nil {
		return err
	}

	writer, err := newWriter(cmd.Format, cmd.Out, stats)
	if err != nil {
		return err
	}

	columns := Columns{Key: cmd.Load.KeyCol, Value: cmd.Load.ValueCol, KeySep: cmd.Load.KeySep}
	if err := writer.Write(t, columns, method); err != nil {
		return err
	}

	fmt.Fprintln(ctx.Out, stats.String())
	return nil
}
