package main

import (
	"context"
	"log"
	"os"

	"github.com/devmoodys/cls-node-final/internal/admin"
	"github.com/devmoodys/cls-node-final/internal/buildinfo"
	"github.com/devmoodys/cls-node-final/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := admin.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = app.Run(ctx, config.StripCLIFlags(os.Args[1:]))
	app.Close()
	if err != nil {
		log.Fatalf("%v", err)
	}
}
