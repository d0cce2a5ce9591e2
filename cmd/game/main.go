package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/gunplay/internal/config"
	"github.com/Garsondee/gunplay/internal/game"
	"github.com/Garsondee/gunplay/internal/logger"
	"github.com/Garsondee/gunplay/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.Init(cfg.LoggerConfig(), os.Stderr)

	collector := metrics.NewCollector()
	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           collector.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("metrics listening", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	g := game.New(cfg, game.WithLogger(log), game.WithMetrics(collector))

	ebiten.SetWindowTitle("Gunplay")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	if err := ebiten.RunGame(g); err != nil {
		log.Error("game exited", "error", err)
		os.Exit(1)
	}
}
