// Package tags owns the categorized tagging model: named categories and the
// selectable tags inside them. Entries reference tags by id only.
package tags

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/moodlog/pkg/entry"
)

// CurrentVersion tags the persisted document schema.
const CurrentVersion = 1

const maxNameLength = 50

// ColorNames is the fixed set of tag color names.
var ColorNames = []string{
	"slate", "red", "orange", "amber", "yellow", "lime",
	"green", "emerald", "teal", "cyan", "sky", "blue",
	"indigo", "violet", "purple", "fuchsia", "pink", "rose",
}

// ValidColor reports whether name is a known tag color.
func ValidColor(name string) bool {
	for _, c := range ColorNames {
		if c == name {
			return true
		}
	}
	return false
}

// Category is a named grouping of tags. Default categories are protected
// from deletion.
type Category struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Icon      string          `json:"icon,omitempty"`
	IsDefault bool            `json:"isDefault"`
	CreatedAt entry.Timestamp `json:"createdAt"`
	UpdatedAt entry.Timestamp `json:"updatedAt"`
}

// EmotionData carries over the descriptor of a tag migrated from the
// deprecated emotion system.
type EmotionData struct {
	Key         string `json:"key"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// Tag is a selectable label inside a category. Archiving hides it from new
// entries without touching historical references.
type Tag struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Title      string          `json:"title"`
	Color      string          `json:"color"`
	IsArchived bool            `json:"isArchived"`
	CreatedAt  entry.Timestamp `json:"createdAt"`
	UpdatedAt  entry.Timestamp `json:"updatedAt"`
	Emotion    *EmotionData    `json:"emotionData,omitempty"`
}

// State is the store's slice. Loaded is transient and never persisted.
type State struct {
	Loaded     bool       `json:"-"`
	Categories []Category `json:"categories"`
	Tags       []Tag      `json:"tags"`
	Version    int        `json:"version"`
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > maxNameLength {
		return "", fmt.Errorf("tags: name must be 1-%d characters", maxNameLength)
	}
	return name, nil
}

func newCategory(name, color, icon string, isDefault bool, now time.Time) Category {
	ts := entry.Timestamp{Time: now}
	return Category{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		IsDefault: isDefault,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func newTag(categoryID, title, color string, now time.Time) Tag {
	ts := entry.Timestamp{Time: now}
	return Tag{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		Title:      title,
		Color:      color,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
}

// DefaultState seeds the first-launch catalog: the protected default emotion
// category plus an activity category with a few starter tags.
func DefaultState(now time.Time) State {
	emotions := newCategory("Émotions", "purple", "😊", true, now)
	activities := newCategory("Activités", "blue", "🎯", false, now)

	starter := []struct {
		title    string
		color    string
		key      string
		category string
	}{
		{"Heureux·se", "yellow", "happy", "good"},
		{"Calme", "teal", "calm", "good"},
		{"Fatigué·e", "slate", "tired", "bad"},
		{"Stressé·e", "orange", "stressed", "bad"},
		{"Triste", "indigo", "sad", "very_bad"},
	}

	tags := make([]Tag, 0, len(starter))
	for _, s := range starter {
		t := newTag(emotions.ID, s.title, s.color, now)
		t.Emotion = &EmotionData{Key: s.key, Category: s.category}
		tags = append(tags, t)
	}

	return State{
		Categories: []Category{emotions, activities},
		Tags:       tags,
		Version:    CurrentVersion,
	}
}
