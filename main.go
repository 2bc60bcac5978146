package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	g, err := game.New(cfg)
	if err != nil {
		slog.Error("failed to build particle field", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if g.CustomCursor() {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
