package main

import (
	"context"
	"os"

	"github.com/kyaoi/courseview/internal/app"
	"github.com/kyaoi/courseview/internal/log"
)

func main() {
	ctx := context.Background()
	logger := log.New("courseview")
	ctx = log.IntoContext(ctx, logger)

	if err := app.Command().Run(ctx, os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
