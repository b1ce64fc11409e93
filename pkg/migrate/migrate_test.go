package migrate

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/moodlog/pkg/entry"
)

func decode(t *testing.T, doc string) interface{} {
	t.Helper()
	var raw interface{}
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return raw
}

func TestLogsKeyedMapForm(t *testing.T) {
	raw := decode(t, `{
		"abc": {"id": "abc", "date": "2021-03-01", "rating": "good", "notes": "ok"},
		"def": {"id": "def", "date": "2021-03-02", "rating": [2], "notes": ""}
	}`)

	items := Logs(raw)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	byID := map[string]entry.Entry{}
	for _, e := range items {
		byID[e.ID] = e
	}
	if got := byID["abc"].Rating; !reflect.DeepEqual(got, []int{5}) {
		t.Errorf("named rating migrated to %v, want [5]", got)
	}
	if byID["abc"].Notes != "ok" {
		t.Errorf("notes lost: %q", byID["abc"].Notes)
	}
	if byID["abc"].DateTime.IsZero() {
		t.Error("dateTime not derived from date")
	}
	if got := byID["def"].Rating; !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("rating = %v, want [2]", got)
	}
}

func TestLogsCurrentForm(t *testing.T) {
	raw := decode(t, `{"items": [
		{"id": "a", "dateTime": "2022-01-10T09:00:00Z", "rating": [6], "notes": "n",
		 "tags": [{"tagId": "t1"}]}
	]}`)

	items := Logs(raw)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	e := items[0]
	if e.ID != "a" || e.Notes != "n" {
		t.Errorf("entry = %+v", e)
	}
	if len(e.Tags) != 1 || e.Tags[0].TagID != "t1" {
		t.Errorf("tags = %v", e.Tags)
	}
}

func TestMigrationIsIdempotent(t *testing.T) {
	raw := decode(t, `{"items": [
		{"id": "a", "date": "2021-03-01", "rating": "very_bad", "notes": "x",
		 "tags": [{"id": "legacy"}],
		 "sleep": {"quality": "good"}}
	]}`)

	once := Logs(raw)

	// Round-trip through JSON the way persistence would and migrate again.
	data, err := json.Marshal(map[string]interface{}{"items": once})
	if err != nil {
		t.Fatal(err)
	}
	twice := Logs(decode(t, string(data)))

	if len(once) != len(twice) {
		t.Fatalf("second pass changed the count: %d != %d", len(once), len(twice))
	}
	for i := range once {
		a, b := once[i], twice[i]
		if a.ID != b.ID || a.Date != b.Date || a.Notes != b.Notes ||
			!a.DateTime.Equal(b.DateTime.Time) ||
			!reflect.DeepEqual(a.Rating, b.Rating) ||
			!reflect.DeepEqual(a.Tags, b.Tags) ||
			!reflect.DeepEqual(a.Metrics, b.Metrics) {
			t.Errorf("second pass changed item %d:\n%+v\n%+v", i, a, b)
		}
	}
}

func TestNormalizeRatingDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want []int
	}{
		{"missing", nil, []int{entry.NeutralRating}},
		{"malformed", "no_such_rating", []int{entry.NeutralRating}},
		{"empty array", []interface{}{}, []int{entry.NeutralRating}},
		{"bare number", float64(6), []int{6}},
		{"array", []interface{}{float64(2), float64(3)}, []int{2, 3}},
		{"legacy name", "extremely_good", []int{7}},
	}
	for _, tt := range tests {
		if got := normalizeRating(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: normalizeRating = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeTagsShapes(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"tagId": "current"},
		map[string]interface{}{"id": "legacy"},
		"bare",
		map[string]interface{}{"unrelated": true},
	}
	got := normalizeTags(raw)
	want := []entry.TagRef{{TagID: "current"}, {TagID: "legacy"}, {TagID: "bare"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeTags = %v, want %v", got, want)
	}
}

func TestLegacySleepFoldsIntoMetrics(t *testing.T) {
	raw := decode(t, `{"items": [
		{"id": "a", "date": "2021-03-01", "rating": [4], "sleep": {"quality": "very_good"}}
	]}`)
	items := Logs(raw)
	if got := items[0].Metrics["sleep"]; !reflect.DeepEqual(got, []float64{5}) {
		t.Errorf("sleep metric = %v, want [5]", got)
	}
}

func TestEntriesGeneratesMissingIDs(t *testing.T) {
	items := Entries([]interface{}{
		map[string]interface{}{"date": "2021-03-01", "rating": []interface{}{float64(4)}},
	})
	if len(items) != 1 || items[0].ID == "" {
		t.Fatalf("expected a generated id, got %+v", items)
	}
}

func TestParseDocumentRejectsUnknownFormat(t *testing.T) {
	for _, doc := range []string{
		`[]`,
		`{"version": "1.0.0"}`,
		`{"items": 42}`,
		`{"items": "nope"}`,
		`garbage`,
	} {
		if _, err := ParseDocument([]byte(doc)); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseDocument(%q) err = %v, want ErrUnknownFormat", doc, err)
		}
	}
}

func TestParseDocumentMigratesCatalogAndSettings(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"items": [],
		"categories": [{"id": "c1", "name": "Vie", "color": "stone"}],
		"tags": [{"id": "t1", "categoryId": "c1", "title": "Sport", "color": "stone"}],
		"settings": {"theme": "dark", "tags": [{"id": "embedded"}], "bogus": 1}
	}`))
	if err != nil {
		t.Fatal(err)
	}

	if doc.Version != CurrentDocumentVersion {
		t.Errorf("version defaulted to %q", doc.Version)
	}
	if doc.Categories[0].Color != "slate" {
		t.Errorf("category color = %q, want slate", doc.Categories[0].Color)
	}
	if doc.Tags[0].Color != "slate" {
		t.Errorf("tag color = %q, want slate", doc.Tags[0].Color)
	}
	if doc.Settings.Theme != "dark" {
		t.Errorf("theme = %q", doc.Settings.Theme)
	}
	if doc.Settings.ActionsDone == nil {
		t.Error("actionsDone not defaulted")
	}
}

func TestParseDocumentToleratesBadSettings(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"items": [], "settings": "not an object"}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Settings.ActionsDone == nil {
		t.Error("settings did not degrade to defaults")
	}
}
