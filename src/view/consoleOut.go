package view

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"gridlife/src/universe"
)

// clearScreen moves the cursor home and erases the terminal
const clearScreen = "\033[H\033[2J"

// ConsoleOut prints every generation to the writer, it is the display of the non-interactive mode
type ConsoleOut struct {
	w         io.Writer
	au        aurora.Aurora
	clear     bool
	startTime time.Time
}

func NewConsoleOut(w io.Writer, color bool, clear bool) *ConsoleOut {
	return &ConsoleOut{
		w:     w,
		au:    aurora.NewAurora(color),
		clear: clear,
	}
}

// Register prints the running configuration and starts the clock
func (c *ConsoleOut) Register(config map[string]interface{}) {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(config)
	fmt.Fprintln(c.w, "\nSimulation started...")
}

// Show implements driver.Display
func (c *ConsoleOut) Show(frame string, st universe.Status) error {
	var b strings.Builder
	if c.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(colorize(c.au, frame))
	b.WriteString(c.au.Colorize("Step", aurora.GreenFg).String())
	fmt.Fprintf(&b, ": %v  ", st.Generation)
	b.WriteString(c.au.Colorize("Live cells", aurora.GreenFg).String())
	fmt.Fprintf(&b, ": %v\n", st.LiveCells)
	_, err := io.WriteString(c.w, b.String())
	return err
}

// Finish prints the summary of the run
func (c *ConsoleOut) Finish(st universe.Status) {
	resultData := map[string]interface{}{
		"Last iteration": st.Generation,
		"Live cells":     st.LiveCells,
	}
	if !c.startTime.IsZero() {
		resultData["Total time"] = time.Since(c.startTime).Round(time.Millisecond)
	}
	fmt.Fprintln(c.w, c.au.Colorize("\nFinished:", aurora.RedFg))
	c.printHashData(resultData)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	for _, propName := range sortedKeys(d) {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}

func sortedKeys(d map[string]interface{}) []string {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	return propNames
}

// colorize replaces the render glyphs with colored ones, a colorless aurora leaves the frame as is
func colorize(au aurora.Aurora, frame string) string {
	live := au.Green(string(universe.LiveGlyph)).Bold().String()
	dead := au.Gray(8, string(universe.DeadGlyph)).String()
	var b strings.Builder
	b.Grow(len(frame))
	for _, r := range frame {
		switch r {
		case universe.LiveGlyph:
			b.WriteString(live)
		case universe.DeadGlyph:
			b.WriteString(dead)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
