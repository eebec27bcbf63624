//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lc, err := cfg.Life()
	if err != nil {
		log.Fatal(err)
	}
	s, err := session.New(lc, core.RealClock{})
	if err != nil {
		log.Fatal(err)
	}
	defer s.Stop()
	log.Printf("life: pattern=%s speed=%dms density=%.2f", lc.Pattern, s.Speed(), cfg.Density)

	game := app.New(s, cfg.Scale)
	size := s.Size()

	ebiten.SetWindowTitle("mad-life — Conway's Game of Life")
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
