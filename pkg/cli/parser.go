package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is a flat row of an input file, column name to value.
type Record map[string]string

// Entry is a record ready to be stored in the trie.
type Entry struct {
	Key   []string
	Value string
}

// LoadFlags are the flags shared by every command that loads records into a trie.
type LoadFlags struct {
	Files    []string `arg:"" type:"existingfile" help:"Input files containing records in CSV, TSV, JSON or YAML format"`
	KeyCol   string   `help:"Name of the column holding the key" default:"key"`
	ValueCol string   `help:"Name of the column holding the value" default:"value"`
	KeySep   string   `help:"Separator between the symbols of a key, empty to split per character" default:"/"`
}

// parseFile reads the records of path, the format is picked from the file extension.
func parseFile(flags *LoadFlags, path string, onEachEntry func(entry *Entry) error) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return parseCsv(flags, path, ',', onEachEntry)
	case ".tsv":
		return parseCsv(flags, path, '\t', onEachEntry)
	case ".json":
		return parseJson(flags, path, onEachEntry)
	case ".yaml", ".yml":
		return parseYaml(flags, path, onEachEntry)
	default:
		return fmt.Errorf("unsupported file format %q for %s", ext, path)
	}
}

func parseJson(flags *LoadFlags, filepath string, onEachEntry func(entry *Entry) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	for decoder.More() {
		data := Record{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}
		entry, err := parseEntry(data, flags)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

func parseCsv(flags *LoadFlags, filepath string, comma rune, onEachEntry func(entry *Entry) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma

	// the first line is the header
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header of %s: %w", filepath, err)
	}

	for {
		recordData, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		entry, err := parseEntry(record, flags)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}
}

func parseYaml(flags *LoadFlags, filepath string, onEachEntry func(entry *Entry) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	records := []Record{}
	if err := yaml.NewDecoder(file).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding %s: %w", filepath, err)
	}

	for _, record := range records {
		entry, err := parseEntry(record, flags)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}
	return nil
}

func parseEntry(record Record, flags *LoadFlags) (*Entry, error) {
	rawKey, found := record[flags.KeyCol]
	if !found {
		return nil, fmt.Errorf("key column %q is missing in record: %v", flags.KeyCol, record)
	}
	value, found := record[flags.ValueCol]
	if !found {
		return nil, fmt.Errorf("value column %q is missing in record: %v", flags.ValueCol, record)
	}
	return &Entry{
		Key:   splitKey(rawKey, flags.KeySep),
		Value: value,
	}, nil
}

// splitKey splits a raw key into symbols. An empty raw key is the empty key.
func splitKey(rawKey string, sep string) []string {
	if rawKey == "" {
		return []string{}
	}
	return strings.Split(rawKey, sep)
}
