package cli

import "fmt"

type GetCmd struct {
	Load     LoadFlags `embed:""`
	Key      string    `help:"Key to look up, symbols separated by --key-sep" required:""`
	Contains bool      `help:"Only print whether the key is stored"`
}

// Run prints the value stored under the key.
func (cmd *GetCmd) Run(ctx *Context) error {
	t, _, err := loadTrie(ctx, &cmd.Load)
	if err != nil {
		return err
	}

	key := splitKey(cmd.Key, cmd.Load.KeySep)
	if cmd.Contains {
		fmt.Fprintln(ctx.Out, t.Contains(key))
		return nil
	}

	value, err := t.Get(key)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, value)
	return nil
}
