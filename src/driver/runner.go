// Package driver paces a simulator: show the generation, step, wait, repeat.
package driver

import (
	"context"
	"fmt"
	"time"

	"gridlife/src/universe"
)

// DefInterval is the pause between two generations
const DefInterval = 500 * time.Millisecond

// Simulator is the part of universe.GridSimulator the runner drives
type Simulator interface {
	Step()
	Render() string
	Status() universe.Status
}

// Display is anything that can show a rendered generation
type Display interface {
	Show(frame string, st universe.Status) error
}

// Options controls the running cycle
type Options struct {
	Interval       time.Duration
	MaxSteps       int  //0 means no limit
	StopWhenStable bool //stop once a step changes nothing
}

var DefaultOptions = Options{
	Interval: DefInterval,
}

type Runner struct {
	sim     Simulator
	display Display
	options Options
}

func NewRunner(sim Simulator, d Display, o Options) *Runner {
	return &Runner{sim: sim, display: d, options: o}
}

// Run shows the current generation and steps until ctx is done or a boundary condition is reached
// cancellation is a normal stop: the last status is returned with a nil error
func (r *Runner) Run(ctx context.Context) (universe.Status, error) {
	for {
		st := r.sim.Status()
		if err := r.display.Show(r.sim.Render(), st); err != nil {
			return st, fmt.Errorf("show generation %d: %w", st.Generation, err)
		}
		if r.finished(st) {
			return st, nil
		}
		if !r.wait(ctx) {
			return st, nil
		}
		r.sim.Step()
	}
}

// wait pauses for the interval, false means ctx is done
func (r *Runner) wait(ctx context.Context) bool {
	if r.options.Interval <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(r.options.Interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// finished checks the boundary conditions
func (r *Runner) finished(st universe.Status) bool {
	if r.options.MaxSteps > 0 && st.Generation >= r.options.MaxSteps {
		return true
	}
	return r.options.StopWhenStable && st.Generation > 0 && !st.Changed
}
