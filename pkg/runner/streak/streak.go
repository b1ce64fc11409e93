package streak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/logs"
	"tableflip.dev/moodlog/pkg/stats"
)

type Streak struct {
	Logs *logs.Store
}

func (n *Streak) Do(ctx context.Context) error {
	if n.Logs == nil {
		return errors.New("can not report a streak, no store")
	}

	items := n.Logs.Items()
	fmt.Printf("current: %d\n", stats.CurrentStreak(items, time.Now()))
	fmt.Printf("longest: %d\n", stats.LongestStreak(items))
	return nil
}
