package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/teranos/xcsettings/cmd/xcsettings/commands"
	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		// One line on stderr, hints inline
		msg := err.Error()
		if hints := errors.GetAllHints(err); len(hints) > 0 {
			msg += " (hint: " + strings.Join(hints, "; ") + ")"
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		os.Exit(1)
	}
}
