package commands

import (
	"context"

	"tableflip.dev/moodlog/pkg/datagate"
	"tableflip.dev/moodlog/pkg/logs"
	"tableflip.dev/moodlog/pkg/settings"
	"tableflip.dev/moodlog/pkg/store"
	"tableflip.dev/moodlog/pkg/tags"
)

// mount opens the configured storage and loads the stores in dependency
// order: settings first, then entries, then the tag catalog (which seeds
// defaults on first run and refuses to load before settings).
func mount(ctx context.Context) (datagate.Stores, store.KV, error) {
	kv, err := store.Open(nil)
	if err != nil {
		return datagate.Stores{}, nil, err
	}

	sett := settings.NewStore(kv, nil)
	sett.Mount(ctx)

	lg := logs.NewStore(kv, nil)
	lg.Mount(ctx)

	tg := tags.NewStore(kv, nil, sett, lg)
	if err := tg.Mount(ctx); err != nil {
		return datagate.Stores{}, nil, err
	}

	return datagate.Stores{Logs: lg, Tags: tg, Settings: sett}, kv, nil
}
