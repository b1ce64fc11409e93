// Package store provides the string-keyed JSON persistence primitive the
// moodlog stores consume, backed by diskv on disk and by memory in tests.
package store

// KV is the persistence contract. It is best-effort by design: Load reports
// an absent key as (false, nil) and a read or decode failure as (false, err),
// already logged by the adapter; Store serializes the value and replaces the
// whole document under key, logging failures instead of returning them. A
// failed write never corrupts the previously stored document.
type KV interface {
	Load(key string, v interface{}) (bool, error)
	Store(key string, v interface{})
	Erase(key string) error
}
