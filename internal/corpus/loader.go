// Package corpus reads the strings a detection run compares. It is a thin
// reader for the CLI: plain text with one item per line, or a YAML list.
package corpus

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"neardup/internal/diagnostic"
)

// maxLineSize bounds a single text line.
const maxLineSize = 1 << 20

// LoadFile reads a corpus file. Files ending in .yaml or .yml must hold a
// YAML sequence of strings; anything else is read as text lines.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	default:
		return ReadLines(bytes.NewReader(data))
	}
}

// ReadLines returns one item per line with surrounding whitespace trimmed.
// Blank lines are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var items []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		items = append(items, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus lines: %w", err)
	}

	return items, nil
}

// ParseYAML decodes a YAML sequence of strings. Null entries are input
// errors; every one of them is reported with its index. Empty strings are
// valid items. source names the input in diagnostics.
func ParseYAML(data []byte, source string) ([]string, error) {
	var entries []*string

	err := yaml.Unmarshal(data, &entries)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse corpus YAML: %w", err)
	}

	var diags diagnostic.Diagnostics

	items := make([]string, 0, len(entries))
	for i, entry := range entries {
		if entry == nil {
			diags.AddInputError(diagnostic.CodeNullEntry, source, i, "entry is null")
			continue
		}

		items = append(items, strings.TrimSpace(*entry))
	}

	if err := diags.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
