package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/session"
	"mad-life/internal/term"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.NewView(screen, s).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
