// Package watch follows the storage directory and refreshes the stores when
// another process writes to it.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/datagate"
	"tableflip.dev/moodlog/pkg/logs"
	"tableflip.dev/moodlog/pkg/settings"
	"tableflip.dev/moodlog/pkg/stats"
	"tableflip.dev/moodlog/pkg/store"
	"tableflip.dev/moodlog/pkg/tags"
)

type Watch struct {
	KV     store.KV
	Stores datagate.Stores
}

// Do blocks until ctx is cancelled, re-mounting whichever store's document
// changed on disk and printing a one-line summary per change.
func (n *Watch) Do(ctx context.Context) error {
	watcher, ok := n.KV.(store.Watcher)
	if !ok {
		return errors.New("the configured store can not be watched")
	}

	events, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	fmt.Println("watching for changes, ctrl-c to stop")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, open := <-events:
			if !open {
				return nil
			}
			n.refresh(ctx, ev.Key)
		}
	}
}

func (n *Watch) refresh(ctx context.Context, key string) {
	stamp := time.Now().Format("15:04:05")

	switch key {
	case logs.Key:
		n.Stores.Logs.Mount(ctx)
		items := n.Stores.Logs.Items()
		fmt.Printf("%s entries changed: %d entries, %d day streak\n",
			stamp, len(items), stats.CurrentStreak(items, time.Now()))
	case tags.Key:
		if err := n.Stores.Tags.Mount(ctx); err != nil {
			fmt.Printf("%s tags changed but reload failed: %v\n", stamp, err)
			return
		}
		st := n.Stores.Tags.State()
		fmt.Printf("%s tags changed: %d categories, %d tags\n",
			stamp, len(st.Categories), len(st.Tags))
	case settings.Key:
		n.Stores.Settings.Mount(ctx)
		fmt.Printf("%s settings changed: theme %s\n",
			stamp, n.Stores.Settings.State().Theme)
	}
}
