package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/ramage/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const csvRecords = `key,value,comment
c/a/t,1,first
c/a/r,2,second
d/o/g,3,third
c/a/t,4,overwrite
`

// run parses args like the binary does and runs the selected command.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var app App
	parser, err := kong.New(&app, kong.Name("ramage"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	ctx := &Context{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Out:    &out,
	}
	err = kctx.Run(ctx)
	return out.String(), err
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGet(t *testing.T) {
	input := writeFile(t, "records.csv", csvRecords)

	out, err := run(t, "get", input, "--key", "c/a/r")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, "get", input, "--key", "c/a/t")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out, "the last record of a key should win")

	_, err = run(t, "get", input, "--key", "c/a")
	assert.ErrorIs(t, err, trie.ErrKeyNotFound)

	out, err = run(t, "get", input, "--key", "c/a", "--contains")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestGetCharacterKeys(t *testing.T) {
	input := writeFile(t, "words.tsv", "word\tmeaning\ncat\tfeline\ncar\tvehicle\n")

	out, err := run(t, "get", input, "--key", "car", "--key-sep=", "--key-col", "word", "--value-col", "meaning")
	require.NoError(t, err)
	assert.Equal(t, "vehicle\n", out)
}

func TestSearch(t *testing.T) {
	input := writeFile(t, "records.csv", csvRecords)

	// nodes: 1 c, 2 c/a, 3 c/a/t, 4 c/a/r, 5 d, 6 d/o, 7 d/o/g
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"first value", []string{"--target", "2"}, "4\tc/a/r\t2\n"},
		{"all values", []string{"--target", "3", "--all"}, "7\td/o/g\t3\n"},
		{"last transition", []string{"--target", "r", "--property", "transitions"}, "2\tc/a\t-\n"},
		{"parents breadth", []string{"--target", "2", "--property", "parents", "--method", "breadth", "--all"}, "3\tc/a/t\t4\n4\tc/a/r\t2\n"},
		{"children sequence", []string{"--target", "3/4", "--sequence", "--property", "children"}, "2\tc/a\t-\n"},
		{"no match", []string{"--target", "42"}, "no match\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, append([]string{"search", input}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestSearchRejectsNonIndexTarget(t *testing.T) {
	input := writeFile(t, "records.csv", csvRecords)
	_, err := run(t, "search", input, "--target", "x", "--property", "children")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	input := writeFile(t, "records.csv", csvRecords)

	testCases := []struct {
		format string
		file   string
	}{
		{"csv", "trie.csv"},
		{"tsv", "trie.tsv"},
		{"json", "trie.json"},
		{"yaml", "trie.yaml"},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			dir := t.TempDir()
			out, err := run(t, "build", input, "--format", tc.format, "--out", dir)
			require.NoError(t, err)
			assert.Equal(t, "Input: 4, Overwritten: 1, Output: 3\n", out)

			// the written file can be loaded back
			written := filepath.Join(dir, tc.file)
			out, err = run(t, "get", written, "--key", "d/o/g")
			require.NoError(t, err)
			assert.Equal(t, "3\n", out)
		})
	}
}

func TestBuildCsvContent(t *testing.T) {
	input := writeFile(t, "records.csv", csvRecords)
	dir := t.TempDir()

	_, err := run(t, "build", input, "--out", dir, "--method", "breadth")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "trie.csv"))
	require.NoError(t, err)
	assert.Equal(t, "key,value\nc/a/t,4\nc/a/r,2\nd/o/g,3\n", string(content))
}

func TestBuildJsonContent(t *testing.T) {
	input := writeFile(t, "records.csv", csvRecords)
	dir := t.TempDir()

	_, err := run(t, "build", input, "--format", "json", "--out", dir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "trie.json"))
	require.NoError(t, err)
	records := []Record{}
	require.NoError(t, json.Unmarshal(content, &records))
	assert.Equal(t, []Record{
		{"key": "c/a/t", "value": "4"},
		{"key": "c/a/r", "value": "2"},
		{"key": "d/o/g", "value": "3"},
	}, records)
}

func TestParseYaml(t *testing.T) {
	records := []Record{{"key": "a/b", "value": "1"}, {"key": "a", "value": "2"}}
	content, err := yaml.Marshal(records)
	require.NoError(t, err)
	input := writeFile(t, "records.yml", string(content))

	entries := []*Entry{}
	flags := &LoadFlags{KeyCol: "key", ValueCol: "value", KeySep: "/"}
	require.NoError(t, parseFile(flags, input, func(entry *Entry) error {
		entries = append(entries, entry)
		return nil
	}))
	assert.Equal(t, []*Entry{
		{Key: []string{"a", "b"}, Value: "1"},
		{Key: []string{"a"}, Value: "2"},
	}, entries)
}

func TestParseErrors(t *testing.T) {
	flags := &LoadFlags{KeyCol: "key", ValueCol: "value", KeySep: "/"}
	noop := func(*Entry) error { return nil }

	missingKey := writeFile(t, "records.csv", "name,value\na,1\n")
	err := parseFile(flags, missingKey, noop)
	assert.ErrorContains(t, err, `key column "key" is missing`)

	missingValue := writeFile(t, "records.json", `[{"key": "a"}]`)
	err = parseFile(flags, missingValue, noop)
	assert.ErrorContains(t, err, `value column "value" is missing`)

	unknown := writeFile(t, "records.xml", "<records/>")
	err = parseFile(flags, unknown, noop)
	assert.ErrorContains(t, err, "unsupported file format")
}

func TestSplitKey(t *testing.T) {
	assert.Equal(t, []string{}, splitKey("", "/"))
	assert.Equal(t, []string{"a", "b"}, splitKey("a/b", "/"))
	assert.Equal(t, []string{"a", "b", "c"}, splitKey("abc", ""))
	assert.Equal(t, []string{"a.b"}, splitKey("a.b", "/"))
}

func TestNewContext(t *testing.T) {
	var out bytes.Buffer
	ctx := NewContext("debug", &out)
	assert.True(t, ctx.Logger.Enabled(context.Background(), slog.LevelDebug))

	ctx = NewContext("bogus", &out)
	assert.False(t, ctx.Logger.Enabled(context.Background(), slog.LevelInfo), "an unknown level should fall back to warn")
}
