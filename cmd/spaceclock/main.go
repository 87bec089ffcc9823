// Command spaceclock is the S.P.A.C.E. window: a clock with Start, Stop, Now and
// Midnight controls next to the globe.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/spaceglobe/internal/app"
	"github.com/Faultbox/spaceglobe/internal/config"
	"github.com/Faultbox/spaceglobe/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

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

	if err := run(cfg); err != nil {
		logger.Error("spaceclock failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("spaceclock closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== S.P.A.C.E. ===")
	logger.Sugar.Debugf("config: %+v", cfg)

	a, err := app.NewClockApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run()
}
