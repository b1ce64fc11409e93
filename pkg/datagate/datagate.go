// Package datagate moves whole-journal documents in and out of the stores.
// Imports always route through the migration engine; a document that fails
// shape validation is rejected before any store is mutated.
package datagate

import (
	"encoding/json"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/logs"
	"tableflip.dev/moodlog/pkg/migrate"
	"tableflip.dev/moodlog/pkg/settings"
	"tableflip.dev/moodlog/pkg/tags"
)

// Stores bundles the three store handles the gate operates on.
type Stores struct {
	Logs     *logs.Store
	Tags     *tags.Store
	Settings *settings.Store
}

// Import validates, migrates, and applies a full export document. The error
// is migrate.ErrUnknownFormat for shape failures, returned before any store
// changes, so callers can distinguish a bad document from an I/O problem.
func (s Stores) Import(data []byte) error {
	doc, err := migrate.ParseDocument(data)
	if err != nil {
		return err
	}

	s.Logs.ImportItems(doc.Items)
	s.Tags.Import(catalogState(doc))
	s.Settings.Import(doc.Settings)
	return nil
}

// Flush waits for every store's in-flight writes.
func (s Stores) Flush() {
	s.Logs.Flush()
	s.Tags.Flush()
	s.Settings.Flush()
}

// Export assembles the current journal into a portable document.
func (s Stores) Export() ([]byte, error) {
	items := s.Logs.Items()
	if items == nil {
		// An empty journal must still export "items": [], the gate rejects
		// documents without an items collection.
		items = []entry.Entry{}
	}
	catalog := s.Tags.State()
	doc := migrate.Document{
		Version:    migrate.CurrentDocumentVersion,
		Items:      items,
		Categories: catalog.Categories,
		Tags:       catalog.Tags,
		Settings:   s.Settings.State().Export(),
	}
	return json.MarshalIndent(&doc, "", "  ")
}

// catalogState builds the tag store slice from a migrated document. Legacy
// flat tags arrive without a category; they are attached to a default
// category, created when the document does not carry one.
func catalogState(doc migrate.Document) tags.State {
	st := tags.State{
		Categories: doc.Categories,
		Tags:       doc.Tags,
		Version:    tags.CurrentVersion,
	}

	orphans := false
	for _, t := range st.Tags {
		if t.CategoryID == "" {
			orphans = true
			break
		}
	}
	if !orphans {
		return st
	}

	defaultID := ""
	for _, c := range st.Categories {
		if c.IsDefault {
			defaultID = c.ID
			break
		}
	}
	if defaultID == "" {
		seeded := tags.DefaultState(time.Now())
		def := seeded.Categories[0]
		st.Categories = append(st.Categories, def)
		defaultID = def.ID
	}

	for i := range st.Tags {
		if st.Tags[i].CategoryID == "" {
			st.Tags[i].CategoryID = defaultID
		}
	}
	return st
}
