package get

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/logs"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/stats"
	"tableflip.dev/moodlog/pkg/tags"
)

type Get struct {
	ShowID  bool
	On      time.Time
	All     bool
	Month   bool
	Year    bool
	Logs    *logs.Store
	Catalog *tags.Store
}

const (
	layoutISO = "2006-01-02"
	layoutUS  = "January 2, 2006"
)

func (n *Get) Do(ctx context.Context) error {
	if n.Logs == nil {
		return errors.New("can not get, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, TagTitle: n.tagTitle()}
	pp.NewLine()

	items := n.Logs.Items()

	if n.Month || n.Year {
		avgs := map[string]int{}
		for _, day := range stats.LogDays(items) {
			avgs[day.Date] = day.RatingAvg
		}
		if n.Year {
			pp.CalendarYear(n.on(), avgs)
			return nil
		}
		pp.Calendar(n.on(), avgs)
		return nil
	}

	if n.All {
		for _, day := range stats.LogDays(items) {
			n.day(&pp, day.Date, items)
		}
		return nil
	}

	n.day(&pp, n.on().Local().Format(layoutISO), items)
	return nil
}

func (n *Get) on() time.Time {
	if n.On.IsZero() {
		return time.Now()
	}
	return n.On
}

func (n *Get) day(pp *printers.PrettyPrint, date string, items []entry.Entry) {
	todays := make([]entry.Entry, 0)
	for _, item := range items {
		if item.Day() == date {
			todays = append(todays, item)
		}
	}

	title := date
	if at, err := time.ParseInLocation(layoutISO, date, time.Local); err == nil {
		title = at.Format(layoutUS)
	}

	pp.TitleWithCount(title, len(todays))
	pp.Entries(todays...)
}

func (n *Get) tagTitle() func(id string) string {
	if n.Catalog == nil {
		return nil
	}
	return func(id string) string {
		if t, ok := n.Catalog.TagByID(id); ok {
			return t.Title
		}
		return ""
	}
}
