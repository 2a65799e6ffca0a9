package config

import (
	"errors"
	"testing"
	"time"

	"gridlife/src/driver"
	"gridlife/src/universe"
)

func TestLoad_Defaults(t *testing.T) {
	o, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if o.Size != universe.DefSize || o.LiveProbability != universe.DefLiveProbability || o.Engine != universe.DefEngine {
		t.Fatalf("unexpected simulator defaults %+v", o)
	}
	if o.Interval != driver.DefInterval {
		t.Fatalf("interval %v, want %v", o.Interval, driver.DefInterval)
	}
	if !o.Color || !o.ClearScreen || o.Interactive || o.MaxSteps != 0 {
		t.Fatalf("unexpected view defaults %+v", o)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LIFE_SIZE", "7")
	t.Setenv("LIFE_PROBABILITY", "0.25")
	t.Setenv("LIFE_SEED", "99")
	t.Setenv("LIFE_INTERVAL", "150ms")
	t.Setenv("LIFE_MAX_STEPS", "12")
	t.Setenv("LIFE_ENGINE", "alloc")
	t.Setenv("LIFE_COLOR", "false")
	o, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if o.Size != 7 || o.LiveProbability != 0.25 || o.Seed != 99 || o.Engine != "alloc" || o.Color {
		t.Fatalf("env not applied: %+v", o)
	}
	ro := o.Runner()
	if ro.Interval != 150*time.Millisecond || ro.MaxSteps != 12 || ro.StopWhenStable {
		t.Fatalf("runner options %+v", ro)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("LIFE_SIZE", "7")
	o, err := Load([]string{"--size", "9", "--template", "glider", "--stopWhenStable"})
	if err != nil {
		t.Fatal(err)
	}
	if o.Size != 9 || o.Template != "glider" || !o.StopWhenStable {
		t.Fatalf("flags not applied: %+v", o)
	}
	if uo := o.Universe(); uo.LiveProbability != 0 || uo.Size != 9 {
		t.Fatalf("template should start from an empty field: %+v", uo)
	}
	if _, ok := o.Summary()["Template"]; !ok {
		t.Fatalf("summary misses the template")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"zero size":      {"LIFE_SIZE": "0"},
		"p above one":    {"LIFE_PROBABILITY": "2"},
		"negative steps": {"LIFE_MAX_STEPS": "-1"},
		"negative pause": {"LIFE_INTERVAL": "-1s"},
		"unknown engine": {"LIFE_ENGINE": "warp"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			if _, err := Load(nil); !errors.Is(err, universe.ErrInvalidConfiguration) {
				t.Fatalf("got %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestLoad_MalformedEnv(t *testing.T) {
	t.Setenv("LIFE_SIZE", "big")
	if _, err := Load(nil); err == nil {
		t.Fatal("expected a parse error")
	}
}
