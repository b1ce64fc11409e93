package store

import (
	"reflect"
	"testing"
)

type document struct {
	Items []map[string]any `json:"items"`
}

func TestDiskRoundTrip(t *testing.T) {
	kv, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	in := document{Items: []map[string]any{
		{"id": "a", "notes": "fine day"},
		{"id": "b", "notes": ""},
	}}
	kv.Store("MOODLOG_ENTRIES", in)

	var out document
	found, err := kv.Load("MOODLOG_ENTRIES", &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected stored document to be found")
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: %#v != %#v", in, out)
	}
}

func TestLoadAbsentKey(t *testing.T) {
	kv, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	var out document
	found, err := kv.Load("MOODLOG_SETTINGS", &out)
	if err != nil {
		t.Fatalf("absent key should not error, got %v", err)
	}
	if found {
		t.Fatal("absent key reported as found")
	}
}

func TestMemoryRoundTripAndErase(t *testing.T) {
	kv := NewMemory()

	in := document{Items: []map[string]any{{"id": "x"}}}
	kv.Store("k", in)

	var out document
	if found, _ := kv.Load("k", &out); !found {
		t.Fatal("expected value")
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: %#v != %#v", in, out)
	}

	if err := kv.Erase("k"); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if found, _ := kv.Load("k", &out); found {
		t.Fatal("erased key still present")
	}
}
