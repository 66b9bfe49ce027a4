package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitctl/internal/backup"
	"github.com/julianstephens/habitctl/internal/clock"
	"github.com/julianstephens/habitctl/internal/constants"
	"github.com/julianstephens/habitctl/internal/errors"
	"github.com/julianstephens/habitctl/internal/logger"
	"github.com/julianstephens/habitctl/internal/repl"
	"github.com/julianstephens/habitctl/internal/storage"
	"github.com/julianstephens/habitctl/internal/tui"
)

var CLI struct {
	Version kong.VersionFlag
	File    string `help:"Habit store path (.json or .db)." type:"path" default:"${store}"`
	Tui     bool   `help:"Launch the full-screen TUI instead of the REPL."`
	Debug   bool   `help:"Enable debug logging."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("habitctl"),
		kong.Description("Terminal habit tracker with streak and quantity habits"),
		kong.UsageOnError(),
		kong.Vars{
			"version": "v0.1.0",
			"store":   constants.DefaultStorePath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, Dir: filepath.Dir(CLI.File)}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}

	// Pick the storage provider by extension, JSON being the default.
	var store storage.Provider
	if strings.HasSuffix(CLI.File, ".json") {
		store = storage.NewJSONStore(CLI.File)
	} else {
		store = storage.NewSQLiteStore(CLI.File)
	}

	backup.Automatic(store.Path())

	if CLI.Tui {
		// Terminal setup failure is the one fatal error.
		errors.Fatal(tui.Run(store))
		return
	}

	if err := repl.New(store, clock.System{}, os.Stdin, os.Stdout).Run(); err != nil {
		errors.Fatal(err)
	}
}
