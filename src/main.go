package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"gridlife/src/config"
	"gridlife/src/driver"
	"gridlife/src/universe"
	"gridlife/src/view"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridlife: ")

	o, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalln(err)
	}

	sim, err := newSimulator(o)
	if err != nil {
		log.Fatalln(err)
	}

	if o.Interactive {
		v := view.NewConsoleUI(sim, o.Runner(), o.Summary())
		v.Start()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := view.NewConsoleOut(os.Stdout, o.Color, o.ClearScreen)
	out.Register(o.Summary())
	st, err := driver.NewRunner(sim, out, o.Runner()).Run(ctx)
	out.Finish(st)
	if err != nil {
		log.Fatalln(err)
	}
}

// newSimulator creates the simulator from the options and settles the template if one is set
func newSimulator(o *config.Options) (*universe.GridSimulator, error) {
	var rnd *rand.Rand
	if o.Seed != 0 {
		rnd = rand.New(rand.NewPCG(o.Seed, 0))
	}
	sim, err := universe.NewGridSimulator(o.Universe(), rnd)
	if err != nil {
		return nil, err
	}
	if o.Template != "" {
		if err := sim.SettleTemplate(o.Template); err != nil {
			return nil, err
		}
	}
	return sim, nil
}
