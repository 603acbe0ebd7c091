// Command firecalc simulates a FIRE portfolio and prints a localized report.
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger, lerr := zap.NewDevelopment()
		if lerr != nil {
			os.Exit(1)
		}
		logger.Error("firecalc failed", zap.String("op", "main"), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
