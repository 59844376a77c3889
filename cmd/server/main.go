// Command server runs the dashboard data API.
package main

import (
	"context"
	"fmt"
	"os"

	"campusboard/internal/app"
	"campusboard/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup: %v\n", err)
		os.Exit(1)
	}

	application.PreloadDatasets(context.Background())

	if err := application.Run(); err != nil {
		application.Logger.Error("server exited with error")
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
