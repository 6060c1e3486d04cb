//go:build !ebiten

package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lifeloop/internal/app"
	"lifeloop/internal/core"
	"lifeloop/internal/driver"
	_ "lifeloop/internal/sims/briansbrain"
	_ "lifeloop/internal/sims/life"
	"lifeloop/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim := factory(cfg.SimParams())
	sim.Reset(cfg.Seed)

	policy, err := cfg.Policy()
	if err != nil {
		log.Fatal(err)
	}

	screen := term.NewScreen(os.Stdout)
	screen.Plain = cfg.Plain
	if err := screen.Open(); err != nil {
		log.Fatal(err)
	}
	defer screen.Close()

	d := driver.New(sim, screen, driver.NewIntervalPacer(cfg.TPS),
		driver.WithErrorPolicy(policy),
		driver.WithMaxFrames(cfg.Frames),
		driver.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	)
	if err := d.Start(); err != nil {
		log.Fatal(err)
	}
	defer d.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sig:
	case <-d.Done():
	}
}
