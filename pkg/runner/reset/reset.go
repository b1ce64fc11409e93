package reset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tableflip.dev/moodlog/pkg/datagate"
)

type Reset struct {
	Entries  bool
	Tags     bool
	Settings bool
	Force    bool
	Stores   datagate.Stores
}

// Do clears the selected stores after confirmation. With no selection the
// whole journal is reset (entries, tags, and settings; the device identity is
// regenerated).
func (n *Reset) Do(ctx context.Context) error {
	all := !n.Entries && !n.Tags && !n.Settings

	if !n.Force && !confirm() {
		return errors.New("aborted")
	}

	if all || n.Entries {
		n.Stores.Logs.Reset()
		fmt.Println("entries cleared")
	}
	if all || n.Tags {
		n.Stores.Tags.Reset()
		fmt.Println("tags cleared")
	}
	if all || n.Settings {
		n.Stores.Settings.Reset()
		fmt.Println("settings restored to defaults")
	}
	return nil
}

func confirm() bool {
	fmt.Print("this can not be undone, type yes to continue: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == "yes"
}
