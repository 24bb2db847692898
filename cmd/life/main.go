//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"lifewatch/internal/app"
	"lifewatch/internal/config"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	engine, err := app.BuildEngine(cfg)
	if err != nil {
		log.Fatalf("board: %v", err)
	}

	game := app.New(engine, cfg, log.New(os.Stderr, "life: ", log.LstdFlags))
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(app.WindowTitle)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
