package store

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog"

	"tableflip.dev/moodlog/pkg/feedback"
)

// Open creates a disk-backed KV rooted at the configured base path. Each key
// is a single JSON document file directly under the base path.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &diskKV{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      feedback.NewLogger("store"),
	}, nil
}

type diskKV struct {
	d        *diskv.Diskv
	basePath string
	log      zerolog.Logger
}

func (p *diskKV) Load(key string, v interface{}) (bool, error) {
	data, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		p.log.Error().Err(err).Str("key", key).Msg("read failed")
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		p.log.Error().Err(err).Str("key", key).Msg("decode failed")
		return false, err
	}
	return true, nil
}

func (p *diskKV) Store(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		p.log.Error().Err(err).Str("key", key).Msg("encode failed")
		return
	}
	if err := p.d.Write(key, data); err != nil {
		p.log.Error().Err(err).Str("key", key).Msg("write failed")
	}
}

func (p *diskKV) Erase(key string) error {
	if err := p.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func flatTransform(string) []string {
	return []string{}
}
