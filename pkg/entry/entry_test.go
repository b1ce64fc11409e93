package entry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewEntry(t *testing.T) {
	at := time.Date(2022, 1, 10, 9, 30, 0, 0, time.Local)
	e := New(at, []int{6}, "great ride", "tag-1", "tag-2")

	if e.ID == "" {
		t.Fatal("expected a generated id")
	}
	if e.Date != "2022-01-10" {
		t.Errorf("Date = %q, want 2022-01-10", e.Date)
	}
	if !e.DateTime.Equal(at) {
		t.Errorf("DateTime = %v, want %v", e.DateTime, at)
	}
	if len(e.Tags) != 2 || e.Tags[0].TagID != "tag-1" || e.Tags[1].TagID != "tag-2" {
		t.Errorf("Tags = %v", e.Tags)
	}
}

func TestDayPrefersDateTime(t *testing.T) {
	e := New(time.Date(2022, 1, 10, 23, 0, 0, 0, time.Local), []int{4}, "")
	e.Date = "1999-01-01" // stale derived field loses to the instant
	if got := e.Day(); got != "2022-01-10" {
		t.Errorf("Day() = %q, want 2022-01-10", got)
	}

	legacy := Entry{Date: "2021-06-01"}
	if got := legacy.Day(); got != "2021-06-01" {
		t.Errorf("Day() = %q, want the date fallback", got)
	}
}

func TestWithoutTags(t *testing.T) {
	e := New(time.Now(), []int{5}, "", "a", "b", "c")
	out := e.WithoutTags(map[string]bool{"a": true, "c": true})

	if len(out.Tags) != 1 || out.Tags[0].TagID != "b" {
		t.Errorf("Tags = %v, want only b", out.Tags)
	}
	if len(e.Tags) != 3 {
		t.Errorf("receiver mutated: %v", e.Tags)
	}
}

func TestValidRating(t *testing.T) {
	for r := 1; r <= NumberOfRatings; r++ {
		if !ValidRating(r) {
			t.Errorf("ValidRating(%d) = false", r)
		}
	}
	for _, r := range []int{0, -1, NumberOfRatings + 1} {
		if ValidRating(r) {
			t.Errorf("ValidRating(%d) = true", r)
		}
	}
}

func TestTimestampJSON(t *testing.T) {
	at, err := ParseTime("2022-01-10T09:30:00Z")
	if err != nil {
		t.Fatal(err)
	}
	ts := Timestamp{Time: at}

	data, err := json.Marshal(&ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2022-01-10T09:30:00Z"` {
		t.Errorf("marshaled %s", data)
	}

	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(at) {
		t.Errorf("round trip %v != %v", back, at)
	}
}

func TestTimestampJSONZero(t *testing.T) {
	var ts Timestamp
	data, err := json.Marshal(&ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `""` {
		t.Errorf("zero marshaled %s, want empty string", data)
	}

	var back Timestamp
	if err := json.Unmarshal([]byte(`""`), &back); err != nil {
		t.Fatal(err)
	}
	if !back.IsZero() {
		t.Errorf("empty string decoded to %v", back)
	}
}
