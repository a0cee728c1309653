// Seasons draws a small house and tree under a sky that cycles through the
// seasons and times of day, using only line and circle rasterizers. Press S
// to change the season, T to change the sky phase and P to save a
// screenshot. Settings are read from SEASONS_* environment variables or a
// .env file.
package main

import (
	"log"
	"os"

	"github.com/phanxgames/seasons"
	"go.uber.org/zap"
)

func main() {
	cfg, err := seasons.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	scene, err := seasons.NewScene(cfg)
	if err != nil {
		logger.Fatal("create scene", zap.Error(err))
	}
	scene.SetLogger(logger)

	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			logger.Fatal("read test script", zap.Error(err))
		}
		runner, err := seasons.LoadTestScript(data)
		if err != nil {
			logger.Fatal("load test script", zap.Error(err))
		}
		scene.SetTestRunner(runner)
		scene.ExitOnDone = true
	}

	logger.Info("starting",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Uint64("seed", cfg.Seed),
	)
	if err := seasons.Run(scene, cfg.RunConfig()); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
