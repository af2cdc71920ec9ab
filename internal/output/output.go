// Package output writes rendered DOT documents to their destinations.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// StdoutPath selects standard output as the destination.
const StdoutPath = "-"

// Document is one rendered function graph.
type Document struct {
	Name string // display name, used for the split file name
	ID   uint32 // function id, disambiguates equal names
	Data []byte
}

// WriteFile writes data to path, or to stdout when path is empty or "-".
// Parent directories are created as needed.
func WriteFile(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == StdoutPath {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("output: write stdout: %w", err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("output: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}

// WriteSplit writes each document to <dir>/<name>.dot and returns the paths
// in document order. A name already taken in this call gets "_<id>" appended.
//
// The documents are staged in a temporary directory inside dir and renamed
// into place once all of them are written. On failure the files already
// renamed are removed, and so is dir when this call created it.
func WriteSplit(dir string, docs []Document) (paths []string, err error) {
	_, statErr := os.Stat(dir)
	created := errors.Is(statErr, fs.ErrNotExist)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("output: mkdir %s: %w", dir, err)
	}
	stage, err := os.MkdirTemp(dir, ".spirvcfg-")
	if err != nil {
		return nil, fmt.Errorf("output: staging dir: %w", err)
	}
	defer os.RemoveAll(stage)

	var moved []string
	defer func() {
		if err == nil {
			return
		}
		for _, p := range moved {
			os.Remove(p)
		}
		if created {
			os.RemoveAll(dir)
		}
	}()

	names := splitNames(docs)
	for i, d := range docs {
		if err := os.WriteFile(filepath.Join(stage, names[i]), d.Data, 0644); err != nil {
			return nil, fmt.Errorf("output: write %s: %w", filepath.Join(dir, names[i]), err)
		}
	}
	paths = make([]string, 0, len(docs))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.Rename(filepath.Join(stage, name), path); err != nil {
			return nil, fmt.Errorf("output: write %s: %w", path, err)
		}
		moved = append(moved, path)
		paths = append(paths, path)
	}
	return paths, nil
}

func splitNames(docs []Document) []string {
	used := make(map[string]bool, len(docs))
	names := make([]string, len(docs))
	for i, d := range docs {
		base := FileName(d.Name)
		if used[base] {
			base = fmt.Sprintf("%s_%d", base, d.ID)
		}
		used[base] = true
		names[i] = base + ".dot"
	}
	return names
}

// FileName maps a display name to a safe file base name. Characters outside
// [A-Za-z0-9_.-] become '_'; "%" id prefixes are dropped.
func FileName(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c == '%':
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'),
			c == '_', c == '-', c == '.':
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}
	s := strings.Trim(b.String(), "_.")
	if s == "" {
		return "fn"
	}
	return s
}
