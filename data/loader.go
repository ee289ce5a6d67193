package data

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
// Use this for data that must be present for the tool to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

// ReadRows reads an embedded map file and returns its text rows.
// Carriage returns are stripped and a trailing empty line is dropped, but
// interior spacing is preserved exactly: spaces are open floor.
func ReadRows(filename string) ([]string, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded map %s: %w", filename, err)
	}
	return SplitRows(string(content)), nil
}

// SplitRows splits raw map text into rows, tolerating CRLF endings and a
// trailing newline.
func SplitRows(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	rows := strings.Split(content, "\n")
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}
