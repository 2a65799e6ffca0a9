package main

import (
	"errors"
	"testing"

	"gridlife/src/config"
	"gridlife/src/universe"
)

func TestNewSimulator_Seeded(t *testing.T) {
	o := &config.Options{Size: 12, LiveProbability: 0.5, Seed: 17, Engine: universe.EngineSwap}
	a, err := newSimulator(o)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := newSimulator(o)
	if a.Render() != b.Render() {
		t.Fatalf("the same seed gave different fields")
	}
}

func TestNewSimulator_Template(t *testing.T) {
	o := &config.Options{Size: 6, LiveProbability: 0.5, Seed: 3, Template: "block"}
	sim, err := newSimulator(o)
	if err != nil {
		t.Fatal(err)
	}
	want := "......\n......\n..##..\n..##..\n......\n......\n"
	if got := sim.Render(); got != want {
		t.Fatalf("got\n%swant\n%s", got, want)
	}

	o.Template = "no-such"
	if _, err := newSimulator(o); !errors.Is(err, universe.ErrUnknownTemplate) {
		t.Fatalf("got %v, want ErrUnknownTemplate", err)
	}
}

func TestNewSimulator_Invalid(t *testing.T) {
	if _, err := newSimulator(&config.Options{Size: 0}); !errors.Is(err, universe.ErrInvalidConfiguration) {
		t.Fatalf("got %v, want ErrInvalidConfiguration", err)
	}
}
