package main

import (
	"log/slog"
	"os"

	"github.com/danielhkuo/panchayat/commands"
)

func main() {
	if err := commands.NewRoot().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
