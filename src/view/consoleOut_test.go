package view

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"gridlife/src/driver"
	"gridlife/src/universe"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func newSim(t *testing.T) *universe.GridSimulator {
	t.Helper()
	s, err := universe.NewGridSimulator(&universe.Options{Size: 4, LiveProbability: 0}, rand.New(rand.NewPCG(1, 0)))
	if err != nil {
		t.Fatal(err)
	}
	s.Settle([][]int{{0, 0}, {3, 3}})
	return s
}

func TestConsoleOut_ShowPlain(t *testing.T) {
	sim := newSim(t)
	var b bytes.Buffer
	c := NewConsoleOut(&b, false, false)
	if err := c.Show(sim.Render(), sim.Status()); err != nil {
		t.Fatal(err)
	}
	want := "#...\n....\n....\n...#\nStep: 0  Live cells: 2\n"
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

func TestConsoleOut_ShowColorAndClear(t *testing.T) {
	sim := newSim(t)
	var b bytes.Buffer
	c := NewConsoleOut(&b, true, true)
	if err := c.Show(sim.Render(), sim.Status()); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.HasPrefix(out, clearScreen) {
		t.Fatalf("frame doesn't clear the screen: %q", out)
	}
	if strings.Count(out, "\033[") <= 2 {
		t.Fatalf("frame isn't colored: %q", out)
	}
	if strings.Count(out, "#") != 2 {
		t.Fatalf("expected 2 live glyphs in %q", out)
	}
}

func TestConsoleOut_WriteError(t *testing.T) {
	sim := newSim(t)
	c := NewConsoleOut(failingWriter{}, false, false)
	if err := c.Show(sim.Render(), sim.Status()); err == nil {
		t.Fatal("expected the writer error")
	}
}

func TestConsoleOut_RegisterAndFinish(t *testing.T) {
	var b bytes.Buffer
	c := NewConsoleOut(&b, false, false)
	c.Register(map[string]interface{}{"b": 2, "a": 1})
	c.Finish(universe.Status{Generation: 3, LiveCells: 5})
	out := b.String()
	if strings.Index(out, "  a: 1") > strings.Index(out, "  b: 2") {
		t.Fatalf("configuration isn't sorted:\n%s", out)
	}
	for _, want := range []string{"Running configuration:", "Finished:", "Last iteration: 3", "Live cells: 5", "Total time:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestConsoleOut_WithRunner(t *testing.T) {
	sim := newSim(t)
	var b bytes.Buffer
	c := NewConsoleOut(&b, false, false)
	st, err := driver.NewRunner(sim, c, driver.Options{MaxSteps: 2}).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Generation != 2 {
		t.Fatalf("stopped at %d", st.Generation)
	}
	if n := strings.Count(b.String(), "Step:"); n != 3 {
		t.Fatalf("got %d frames, want 3", n)
	}
	if !strings.HasSuffix(b.String(), "....\n....\n....\n....\nStep: 2  Live cells: 0\n") {
		t.Fatalf("isolated cells should be gone:\n%s", b.String())
	}
}
