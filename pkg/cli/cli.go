package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/khalid-nowaf/ramage/pkg/tree"
	"github.com/khalid-nowaf/ramage/pkg/trie"
)

// Context is bound to every command Run method.
type Context struct {
	Logger *slog.Logger
	Out    io.Writer
}

// NewContext builds a Context logging to stderr at the given level and printing results to out.
func NewContext(level string, out io.Writer) *Context {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelWarn
	}
	return &Context{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})),
		Out:    out,
	}
}

// App is the command line definition.
type App struct {
	LogLevel string    `help:"Log level" enum:"debug,info,warn,error" default:"warn"`
	Build    BuildCmd  `cmd:"" help:"Load records into a trie and write its entries"`
	Get      GetCmd    `cmd:"" help:"Look up a key in the loaded records"`
	Search   SearchCmd `cmd:"" help:"Search the nodes of the loaded trie"`
}

var CLI App

// Stats counts what happened while loading and writing records.
type Stats struct {
	Input       int // records read
	Overwritten int // records replacing the value of an already loaded key
	Output      int // entries written
}

func (s Stats) String() string {
	return fmt.Sprintf("Input: %d, Overwritten: %d, Output: %d", s.Input, s.Overwritten, s.Output)
}

// loadTrie parses every input file and stores its records in a new trie, the last
// record of a key wins.
func loadTrie(ctx *Context, flags *LoadFlags) (*trie.Trie[string, string], *Stats, error) {
	t := trie.New(tree.WithLogger[string, string](ctx.Logger))
	stats := &Stats{}

	for _, file := range flags.Files {
		err := parseFile(flags, file, func(entry *Entry) error {
			stats.Input++
			if t.Contains(entry.Key) {
				stats.Overwritten++
				ctx.Logger.Info("overwriting key", "key", entry.Key, "file", file)
			}
			t.Set(entry.Key, entry.Value)
			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("loading %s: %w", file, err)
		}
		ctx.Logger.Info("file loaded", "file", file, "records", stats.Input)
	}

	return t, stats, nil
}
