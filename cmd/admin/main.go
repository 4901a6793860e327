package main

import (
	"os"

	"go.uber.org/zap"

	"yatube/internal/config"
)

func main() {
	config.InitLogger(os.Getenv("APP_ENV"))
	defer func() { _ = config.Logger.Sync() }()

	if err := newRootCmd().Execute(); err != nil {
		config.Logger.Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}
