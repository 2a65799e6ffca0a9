// Package config loads the run options from LIFE_* environment variables and command-line flags.
// Flags win over the environment, the environment wins over the defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/integrii/flaggy"

	"gridlife/src/driver"
	"gridlife/src/universe"
)

const Version = "1.0.0"

type Options struct {
	Size            int           `env:"LIFE_SIZE" envDefault:"20"`
	LiveProbability float64       `env:"LIFE_PROBABILITY" envDefault:"0.5"`
	Seed            uint64        `env:"LIFE_SEED"` //0 picks a random seed
	Engine          string        `env:"LIFE_ENGINE" envDefault:"swap"`
	Template        string        `env:"LIFE_TEMPLATE"`
	Interval        time.Duration `env:"LIFE_INTERVAL" envDefault:"500ms"`
	MaxSteps        int           `env:"LIFE_MAX_STEPS"`
	StopWhenStable  bool          `env:"LIFE_STOP_WHEN_STABLE"`
	Interactive     bool          `env:"LIFE_INTERACTIVE"`
	Color           bool          `env:"LIFE_COLOR" envDefault:"true"`
	ClearScreen     bool          `env:"LIFE_CLEAR" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment and then parses args (without the program name) over it
func Load(args []string) (*Options, error) {
	o := &Options{}
	if err := ParseEnv(o); err != nil {
		return nil, err
	}
	p := newParser(o)
	if err := p.ParseArgs(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func newParser(o *Options) *flaggy.Parser {
	p := flaggy.NewParser("gridlife")
	p.Description = "\"The Life\" game simulation on a square field with closed edges"
	p.Version = Version
	p.ShowHelpOnUnexpected = true
	p.Int(&o.Size, "x", "size", "Size of the square simulation field")
	p.Float64(&o.LiveProbability, "p", "probability", "Probability of a cell to be alive at start, within [0, 1]")
	p.UInt64(&o.Seed, "r", "seed", "Seed of the random generator, 0 picks a random one")
	p.String(&o.Engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	p.String(&o.Template, "t", "template", "Settle the empty field with a template ["+strings.Join(universe.TemplateNames(), "|")+"]")
	p.Duration(&o.Interval, "i", "interval", "Simulation speed (interval between the steps), for example 150ms")
	p.Int(&o.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 runs until interrupted")
	p.Bool(&o.StopWhenStable, "f", "stopWhenStable", "Stop once a step changes nothing")
	p.Bool(&o.Interactive, "n", "interactive", "Start interactive mode")
	p.Bool(&o.Color, "c", "color", "Colorize the output")
	p.Bool(&o.ClearScreen, "l", "clear", "Clear the terminal between frames")
	return p
}

// Validate checks the options that belong to the driver, the simulator validates its own
func (o *Options) Validate() error {
	if o.Interval < 0 {
		return fmt.Errorf("%w: negative interval %v", universe.ErrInvalidConfiguration, o.Interval)
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: negative max steps %d", universe.ErrInvalidConfiguration, o.MaxSteps)
	}
	return o.Universe().Validate()
}

// Universe returns the simulator options
// a template starts from an empty field
func (o *Options) Universe() *universe.Options {
	uo := universe.Options{
		Size:            o.Size,
		LiveProbability: o.LiveProbability,
		Engine:          o.Engine,
	}
	if o.Template != "" {
		uo.LiveProbability = 0
	}
	return &uo
}

// Runner returns the driver options
func (o *Options) Runner() driver.Options {
	return driver.Options{
		Interval:       o.Interval,
		MaxSteps:       o.MaxSteps,
		StopWhenStable: o.StopWhenStable,
	}
}

// Summary describes the running configuration for the views
func (o *Options) Summary() map[string]interface{} {
	d := map[string]interface{}{
		"Dimension":        fmt.Sprintf("%v x %v", o.Size, o.Size),
		"Interval":         o.Interval,
		"Engine":           o.Engine,
		"Live probability": o.LiveProbability,
	}
	if o.MaxSteps > 0 {
		d["Max iterations"] = fmt.Sprintf("%v steps", o.MaxSteps)
	}
	if o.Template != "" {
		d["Template"] = o.Template
	}
	if o.Seed != 0 {
		d["Seed"] = o.Seed
	}
	return d
}
