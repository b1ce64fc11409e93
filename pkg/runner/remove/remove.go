package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodlog/pkg/logs"
)

type Remove struct {
	ID   string
	Logs *logs.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Logs == nil {
		return errors.New("can not remove, no store")
	}
	if n.ID == "" {
		return errors.New("an entry id is required")
	}
	if _, ok := n.Logs.EntryByID(n.ID); !ok {
		return fmt.Errorf("no entry with id %q", n.ID)
	}

	n.Logs.Delete(n.ID)
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
