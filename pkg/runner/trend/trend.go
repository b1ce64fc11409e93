package trend

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodlog/pkg/logs"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/stats"
)

type Trend struct {
	Logs *logs.Store
}

func (n *Trend) Do(ctx context.Context) error {
	if n.Logs == nil {
		return errors.New("can not report a trend, no store")
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Mood trend")
	pp.Trend(stats.MoodTrend(n.Logs.Items(), time.Now()))
	return nil
}
