package migrate

import (
	"encoding/json"
	"errors"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/settings"
	"tableflip.dev/moodlog/pkg/tags"
)

// ErrUnknownFormat marks a document that fails basic shape validation. It is
// distinct from I/O errors: nothing has been mutated when it is returned.
var ErrUnknownFormat = errors.New("migrate: unknown document format")

// CurrentDocumentVersion stamps exported documents.
const CurrentDocumentVersion = "1.0.0"

// Document is a normalized import/export payload.
type Document struct {
	Version    string          `json:"version"`
	Items      []entry.Entry   `json:"items"`
	Categories []tags.Category `json:"categories,omitempty"`
	Tags       []tags.Tag      `json:"tags,omitempty"`
	Settings   settings.Export `json:"settings"`
}

type rawDocument struct {
	Version    string          `json:"version"`
	Items      json.RawMessage `json:"items"`
	Categories []tags.Category `json:"categories"`
	Tags       []tags.Tag      `json:"tags"`
	Settings   json.RawMessage `json:"settings"`
}

// ParseDocument validates and migrates an import document from any historical
// shape. Documents without a recognizable items collection are rejected with
// ErrUnknownFormat before any store is touched.
func ParseDocument(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, ErrUnknownFormat
	}
	if len(raw.Items) == 0 {
		return Document{}, ErrUnknownFormat
	}

	var items interface{}
	if err := json.Unmarshal(raw.Items, &items); err != nil {
		return Document{}, ErrUnknownFormat
	}
	switch items.(type) {
	case []interface{}, map[string]interface{}:
	default:
		return Document{}, ErrUnknownFormat
	}

	doc := Document{
		Version:    raw.Version,
		Items:      Entries(items),
		Categories: raw.Categories,
		Tags:       raw.Tags,
	}
	if doc.Version == "" {
		doc.Version = CurrentDocumentVersion
	}

	for i := range doc.Categories {
		doc.Categories[i].Color = renameColor(doc.Categories[i].Color)
	}
	for i := range doc.Tags {
		doc.Tags[i].Color = renameColor(doc.Tags[i].Color)
	}

	doc.Settings = parseSettings(raw.Settings)

	return doc, nil
}

// parseSettings migrates the settings side of a document: unknown and
// obsolete keys (the legacy embedded tags field among them) are stripped by
// the typed decode, and the actions-done ledger is guaranteed to exist.
func parseSettings(raw json.RawMessage) settings.Export {
	exp := settings.Export{}
	if len(raw) > 0 {
		// Tolerant decode: a malformed settings block degrades to defaults
		// instead of failing the whole import.
		_ = json.Unmarshal(raw, &exp)
	}
	if exp.ActionsDone == nil {
		exp.ActionsDone = []settings.Action{}
	}
	return exp
}

// renameColor maps deprecated color names to their current equivalents.
func renameColor(color string) string {
	if color == "stone" {
		return "slate"
	}
	return color
}
