//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ofc-quake/internal/app"
	"ofc-quake/internal/core"
	_ "ofc-quake/internal/sims/ofc"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	sim, err := factory(cfg.SimParams())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("ofc-quake - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
