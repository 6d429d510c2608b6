// Package novelsplit cuts a novel into chapter files along long dash rules.
package novelsplit

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// separator matches a rule of at least 30 ASCII hyphens or 10 em dashes.
var separator = regexp.MustCompile(`-{30,}|—{10,}`)

// Split returns the trimmed, non-empty pieces of text between separators.
func Split(text string) []string {
	raw := separator.Split(text, -1)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// WriteParts writes parts to dir as 1.txt, 2.txt, ... and returns the paths.
func WriteParts(dir string, parts []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(parts))
	for i, p := range parts {
		path := filepath.Join(dir, strconv.Itoa(i+1)+".txt")
		if err := os.WriteFile(path, []byte(p), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SplitFile reads input, splits it and writes the parts into dir.
func SplitFile(input, dir string) ([]string, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read novel: %w", err)
	}
	return WriteParts(dir, Split(string(data)))
}
