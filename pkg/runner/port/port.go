// Package port moves journal documents between the stores and the filesystem.
package port

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/moodlog/pkg/datagate"
)

type Import struct {
	Path   string
	Stores datagate.Stores
}

// Do reads the file and routes it through the migrating importer. A document
// that fails shape validation leaves every store untouched.
func (n *Import) Do(ctx context.Context) error {
	if n.Path == "" {
		return errors.New("a file to import is required")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return err
	}
	if err := n.Stores.Import(data); err != nil {
		return err
	}

	fmt.Printf("imported %d entries\n", len(n.Stores.Logs.Items()))
	return nil
}

type Export struct {
	Path   string
	Stores datagate.Stores
}

// Do writes the journal document to the path, or stdout when no path is set.
func (n *Export) Do(ctx context.Context) error {
	data, err := n.Stores.Export()
	if err != nil {
		return err
	}

	if n.Path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(n.Path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", n.Path)
	return nil
}
