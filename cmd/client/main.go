// Package main is the entry point for the torusgl client.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/torusgl/internal/client"
	"github.com/Faultbox/torusgl/internal/config"
	"github.com/Faultbox/torusgl/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== torusgl ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	c, err := client.New(cfg)
	if err != nil {
		logger.Error("failed to create client", zap.Error(err))
		os.Exit(1)
	}
	defer c.Close()

	if err := c.Run(); err != nil {
		logger.Error("client error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("client closed normally")
}
