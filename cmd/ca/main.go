//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"pan-ca/internal/app"
	"pan-ca/internal/core"
	_ "pan-ca/internal/sims/briansbrain"
	_ "pan-ca/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Machines()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown automaton %q", cfg.Sim)
	}

	machine, err := factory(map[string]string{
		"w": strconv.Itoa(cfg.Width),
		"h": strconv.Itoa(cfg.Height),
	}, cfg.Settings())
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	game := app.New(machine, cfg.Settings(), cfg.Seed)

	ebiten.SetWindowTitle("pan-ca — " + machine.Name())
	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
