// Package render — JSON renderer.
// Emits the fully classified guide as structured JSON, preserving the
// tagged paragraph variants so downstream consumers don't have to re-parse
// the Markdown.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/evaldasg/md--betterspecs-org/core"
)

// JSONRenderer produces structured JSON output from the parsed guide.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the guide with its metadata and classified sections.
func (r *JSONRenderer) Render(g *core.Guide) ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
