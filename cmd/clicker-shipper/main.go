package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bblue/clicker-shipper/internal/gui"
)

// version, commit, date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		dataDir     string
		catalogPath string
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&dataDir, "data", ".", "directory for settings and progression files")
	flag.StringVar(&catalogPath, "catalog", "", "items.json path (empty uses the builtin catalog)")
	flag.Int64Var(&seed, "seed", 0, "fixed RNG seed (0 seeds from the clock)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Clicker Shipper %s (%s) %s\n", version, commit, date)
		return
	}

	app := gui.NewApp(gui.AppConfig{
		Version:     version,
		DataDir:     dataDir,
		CatalogPath: catalogPath,
		Seed:        seed,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
