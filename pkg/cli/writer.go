package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/ramage/pkg/tree"
	"github.com/khalid-nowaf/ramage/pkg/trie"
	"gopkg.in/yaml.v3"
)

// Columns names the output columns and how keys are joined back.
type Columns struct {
	Key    string
	Value  string
	KeySep string
}

type Writer interface {
	Write(t *trie.Trie[string, string], columns Columns, method tree.Method) error
}

func newWriter(format string, directory string, stats *Stats) (Writer, error) {
	switch format {
	case "csv":
		return &CsvWriter{Directory: directory, Stats: stats}, nil
	case "tsv":
		return &CsvWriter{isTSV: true, Directory: directory, Stats: stats}, nil
	case "json":
		return &JsonWriter{Directory: directory, Stats: stats}, nil
	case "yaml":
		return &YamlWriter{Directory: directory, Stats: stats}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// toRecord turns a trie entry back into an input shaped record.
func toRecord(entry trie.Entry[string, string], columns Columns) Record {
	return Record{
		columns.Key:   strings.Join(entry.Key, columns.KeySep),
		columns.Value: entry.Value,
	}
}

type JsonWriter struct {
	Directory string
	Stats     *Stats
}

func (w *JsonWriter) Write(t *trie.Trie[string, string], columns Columns, method tree.Method) error {
	file, err := os.Create(filepath.Join(w.Directory, "trie.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)

	if _, err = file.Write([]byte("[")); err != nil {
		return err
	}
	for i, entry := range t.Entries(method) {
		if i > 0 {
			if _, err = file.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err = encoder.Encode(toRecord(entry, columns)); err != nil {
			return err
		}
		w.Stats.Output++
	}
	_, err = file.Write([]byte("]"))
	return err
}

type CsvWriter struct {
	isTSV     bool
	Directory string
	Stats     *Stats
}

// Write writes the entries with a key,value header.
func (w *CsvWriter) Write(t *trie.Trie[string, string], columns Columns, method tree.Method) error {
	filePath := "trie"
	separator := ','
	if w.isTSV {
		filePath += ".tsv"
		separator = '\t'
	} else {
		filePath += ".csv"
	}

	file, err := os.Create(filepath.Join(w.Directory, filePath))
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = separator

	headers := []string{columns.Key, columns.Value}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, entry := range t.Entries(method) {
		record := toRecord(entry, columns)
		row := make([]string, 0, len(headers))
		// same order as the headers
		for _, header := range headers {
			row = append(row, record[header])
		}
		if err := writer.Write(row); err != nil {
			return err
		}
		w.Stats.Output++
	}

	writer.Flush()
	return writer.Error()
}

type YamlWriter struct {
	Directory string
	Stats     *Stats
}

func (w *YamlWriter) Write(t *trie.Trie[string, string], columns Columns, method tree.Method) error {
	file, err := os.Create(filepath.Join(w.Directory, "trie.yaml"))
	if err != nil {
		return err
	}
	defer file.Close()

	records := []Record{}
	for _, entry := range t.Entries(method) {
		records = append(records, toRecord(entry, columns))
	}

	encoder := yaml.NewEncoder(file)
	if err := encoder.Encode(records); err != nil {
		return err
	}
	w.Stats.Output += len(records)
	return encoder.Close()
}
