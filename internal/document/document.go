// Package document reads Inkfinite document files and renders their
// markdown body to HTML for the shell's preview pane.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Document is the JSON envelope stored in a *.inkfinite.json file.
type Document struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid document %s: %w", path, err)
	}
	return &doc, nil
}
