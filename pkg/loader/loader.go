// Package loader reads a JSON document from disk into a document tree and
// writes it back atomically.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oakwood-commons/jex/pkg/document"
)

// Load reads and parses the JSON file at path. A parse failure is fatal to
// the caller; nothing is held open afterwards.
func Load(path string) (*document.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	root, err := document.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return root, nil
}

// Save writes root to path atomically: the document is serialized to a
// temporary file in the destination directory, fsynced, and renamed over
// the target. A failed save leaves any existing file at path untouched.
func Save(path string, root *document.Node) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	if err := root.Encode(w); err != nil {
		tmp.Close()
		return fmt.Errorf("serialize %s: %w", path, err)
	}
	if _, err := w.WriteString("\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
