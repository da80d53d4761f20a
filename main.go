package main

import (
	"os"

	"github.com/leonardinius/gomango/cmd"
	"github.com/leonardinius/gomango/internal/config"
	"github.com/leonardinius/gomango/internal/mangoerrors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		mangoerrors.DefaultReportPanic(os.Stderr, err)
		os.Exit(mangoerrors.ExitUsage)
	}

	app := cmd.NewMangoApp(cfg, os.Stdout, os.Stderr)
	os.Exit(app.Main(os.Args[1:]))
}
