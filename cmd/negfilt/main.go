package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/charmingruby/negfilt/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := cli.NewRootCommand(os.Stdout, logger).Execute(); err != nil {
		logger.Error("negfilt failed", zap.Error(err))
		return 1
	}
	return 0
}
