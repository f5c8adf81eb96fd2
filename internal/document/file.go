package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoPage is returned when the document has no page to scan.
var ErrNoPage = errors.New("document has no page")

// Document is the top-level file structure: a name plus the root node.
type Document struct {
	Name string `json:"name"`
	Root *Node  `json:"document"`
}

// Load reads and parses a document file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse document %q: %w", path, err)
	}
	if d.Root == nil {
		return nil, fmt.Errorf("parse document %q: missing document root", path)
	}
	return &d, nil
}

// Save writes the document back as indented JSON. The write goes through a
// temp file in the same directory plus a rename, so a crash mid-write
// never leaves a truncated document behind.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".instancer-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Page returns the page with the given name, or the first page when name
// is empty. A root that is itself a page (single-page export) counts.
func (d *Document) Page(name string) (*Node, error) {
	if d.Root.Type == TypePage {
		if name == "" || d.Root.Name == name {
			return d.Root, nil
		}
		return nil, fmt.Errorf("%w named %q", ErrNoPage, name)
	}

	pages := d.Root.ChildrenOfType(TypePage)
	if len(pages) == 0 {
		return nil, ErrNoPage
	}
	if name == "" {
		return pages[0], nil
	}
	for _, p := range pages {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w named %q", ErrNoPage, name)
}

// Find returns the node with the given id anywhere in the document, or nil.
func (d *Document) Find(id string) *Node {
	return d.Root.Find(id)
}
