package main

import (
	"github.com/haytac/emojipack/internal/cli"
	"github.com/haytac/emojipack/internal/logging"
)

func main() {
	// Basic logger for anything that runs before PersistentPreRunE loads
	// the real logging config.
	logging.Setup(logging.Config{Level: "info", Console: true, TimeFormat: "15:04:05"})

	cli.Execute()
}
