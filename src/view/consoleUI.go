package view

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gridlife/src/driver"
	"gridlife/src/universe"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// runningMode is what the frontend is doing with the simulator right now
type runningMode int

const (
	modeWaiting runningMode = iota
	modeRunning
	modeFinished
)

var (
	runningModeDescr = map[runningMode]string{
		modeWaiting:  aurora.Colorize("waiting", aurora.BlueFg).String(),
		modeRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
		modeFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

// lockedSim serializes the simulator between the key handlers and the runner goroutine
type lockedSim struct {
	mu  *sync.Mutex
	sim *universe.GridSimulator
}

func (l lockedSim) Step() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sim.Step()
}

func (l lockedSim) Render() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sim.Render()
}

func (l lockedSim) Status() universe.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sim.Status()
}

// ConsoleUI is the interactive terminal frontend
type ConsoleUI struct {
	sim    lockedSim
	runner *driver.Runner
	config map[string]interface{}
	g      *gocui.Gui
	k      []keyBindings

	mu     sync.Mutex //guards mode and cancel
	mode   runningMode
	cancel context.CancelFunc
	wg     sync.WaitGroup

	liveFiller string
	deadFiller string
}

func NewConsoleUI(sim *universe.GridSimulator, o driver.Options, config map[string]interface{}) *ConsoleUI {
	var err error
	t := ConsoleUI{
		sim:        lockedSim{mu: &sync.Mutex{}, sim: sim},
		config:     config,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
	t.runner = driver.NewRunner(t.sim, &t, o)

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdNextStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Settle with random", t.cmdSettleWithRandom, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdMouseClick, "field"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings(t.k)
	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the main loop until ^C, then stops the runner and releases the terminal
func (t *ConsoleUI) Start() {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.stopRunner()
	t.wg.Wait()
}

// Show implements driver.Display, it's called from the runner goroutine
func (t *ConsoleUI) Show(frame string, st universe.Status) error {
	t.g.Update(func(g *gocui.Gui) error {
		t.renderField(g, frame)
		t.renderStatus(g, st)
		return nil
	})
	return nil
}

// refresh redraws the field and the status after a key command
func (t *ConsoleUI) refresh() {
	_ = t.Show(t.sim.Render(), t.sim.Status())
}

func (t *ConsoleUI) currentMode() runningMode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

func (t *ConsoleUI) renderField(g *gocui.Gui, frame string) {
	v, e := g.View("field")
	if e != nil {
		return
	}
	//the entire field is redrawing at once
	v.Clear()

	maxW, maxH := v.Size()
	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	crop := len(lines) > maxH || (len(lines) > 0 && len(lines[0]) > maxW)

	var b bytes.Buffer
	for i, l := range lines {
		//discard the data outside the view area
		if i >= maxH {
			break
		}
		if i != 0 {
			b.WriteByte('\n')
		}
		if crop && i == maxH-1 {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for j, r := range l {
			if j >= maxW {
				break
			}
			if r == universe.LiveGlyph {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui, s universe.Status) {
	v, e := g.View("status")
	if e != nil {
		return
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.Generation))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningModeDescr[t.currentMode()]))
}

func (t *ConsoleUI) renderConfiguration(g *gocui.Gui) {
	v, e := g.View("configuration")
	if e != nil {
		return
	}
	v.Clear()
	b := bytes.Buffer{}
	for _, name := range sortedKeys(t.config) {
		b.WriteString(t.renderProp(name, "%v", t.config[name]))
		b.WriteByte('\n')
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 32
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil && err != gocui.ErrUnknownView {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil && err != gocui.ErrUnknownView {
		return err
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration(g)
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}
	//field size may change with the terminal
	t.renderField(g, t.sim.Render())
	t.renderStatus(g, t.sim.Status())

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

// startRunner runs the simulation in a goroutine until stopRunner or a boundary condition
func (t *ConsoleUI) startRunner() {
	t.mu.Lock()
	if t.mode == modeRunning {
		t.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.mode = modeRunning
	t.cancel = cancel
	t.mu.Unlock()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		st, err := t.runner.Run(ctx)
		t.mu.Lock()
		if ctx.Err() != nil {
			t.mode = modeWaiting
		} else {
			t.mode = modeFinished
		}
		t.cancel = nil
		t.mu.Unlock()
		cancel()
		if err != nil {
			log.Println(err)
		}
		_ = t.Show(t.sim.Render(), st)
	}()
}

func (t *ConsoleUI) stopRunner() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextStep(_ *gocui.View) error {
	if t.currentMode() == modeRunning {
		return nil
	}
	t.sim.Step()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.startRunner()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.stopRunner()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.withSim(func(s *universe.GridSimulator) { s.Clear() })
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.withSim(func(s *universe.GridSimulator) { s.Reseed() })
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.withSim(func(s *universe.GridSimulator) { s.InverseCell(cx, cy) })
	return nil
}

// withSim applies a seeding command to the stopped simulator
func (t *ConsoleUI) withSim(f func(s *universe.GridSimulator)) {
	if t.currentMode() == modeRunning {
		return
	}
	t.sim.mu.Lock()
	f(t.sim.sim)
	t.sim.mu.Unlock()
	t.mu.Lock()
	t.mode = modeWaiting
	t.mu.Unlock()
	t.refresh()
}
