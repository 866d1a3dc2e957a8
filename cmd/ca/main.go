//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"halo-ca/internal/app"
	"halo-ca/internal/core"
	_ "halo-ca/internal/sims/rule30"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(nil)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.GPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("halo-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
