package universe

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// GridSimulator owns the current generation and advances it with the transition rule
// it is not safe for concurrent use, the driver serializes access
type GridSimulator struct {
	options Options
	rnd     *rand.Rand
	area    Area
	state   Status
	//nextIteration computes the next generation and replaces the current one,
	//it is chosen by the engine name
	nextIteration func() (liveCells int, changed bool)
}

// NewGridSimulator creates the simulator and settles every cell alive with o.LiveProbability
// rnd is the source of the initial states, nil means a randomly seeded one
func NewGridSimulator(o *Options, rnd *rand.Rand) (*GridSimulator, error) {
	if o == nil {
		o = &DefaultOptions
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := GridSimulator{
		options: *o,
		rnd:     rnd,
	}
	if s.options.Engine == "" {
		s.options.Engine = DefEngine
	}
	s.area = createArea(o.Size)
	s.nextIteration = engines[s.options.Engine](&s)
	s.fillRandom()
	return &s, nil
}

// Validate checks the options before any grid is allocated
func (o Options) Validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidConfiguration, o.Size)
	}
	if math.IsNaN(o.LiveProbability) || o.LiveProbability < 0 || o.LiveProbability > 1 {
		return fmt.Errorf("%w: live probability must be within [0, 1], got %v", ErrInvalidConfiguration, o.LiveProbability)
	}
	if _, ok := engines[o.Engine]; !ok && o.Engine != "" {
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidConfiguration, o.Engine)
	}
	return nil
}

// Options returns the configuration the simulator was created with
func (s *GridSimulator) Options() Options {
	return s.options
}

// Status returns current simulator status
func (s *GridSimulator) Status() Status {
	return s.state
}

// Area returns a copy of the current generation
func (s *GridSimulator) Area() Area {
	return s.area.Clone()
}

// Render returns the text snapshot of the current generation
func (s *GridSimulator) Render() string {
	return s.area.String()
}

// Step computes the next generation and replaces the current one
func (s *GridSimulator) Step() {
	start := time.Now()
	liveCells, changed := s.nextIteration()
	s.state.Generation++
	s.state.LiveCells = liveCells
	s.state.Changed = changed
	s.state.IterationTime = time.Since(start)
}

// Clear kills all cells and resets the counters
func (s *GridSimulator) Clear() {
	s.walkArea(func(x int, y int, _ Cell) {
		s.area.Entities[y][x] = Dead
	})
	s.state = Status{}
}

// Reseed populates the field with random data drawn from the simulator's source
func (s *GridSimulator) Reseed() {
	s.fillRandom()
	s.state = Status{LiveCells: s.area.LiveCells()}
}

// Settle places live cells at the [x, y] coordinates, coordinates outside the field are skipped
func (s *GridSimulator) Settle(vc [][]int) {
	s.settle(vc, 0, 0)
	s.state.LiveCells = s.area.LiveCells()
}

// SettleTemplate places the named template in the middle of the field
func (s *GridSimulator) SettleTemplate(name string) error {
	tmpl, ok := templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	w, h := tmpl.Bounds()
	s.settle(tmpl.Coordinates, (s.area.Size-w)/2, (s.area.Size-h)/2)
	s.state.LiveCells = s.area.LiveCells()
	return nil
}

// InverseCell inverses the cell state at point x, y
func (s *GridSimulator) InverseCell(x int, y int) {
	if x < 0 || y < 0 || x >= s.area.Size || y >= s.area.Size {
		return
	}
	s.area.Entities[y][x] = !s.area.Entities[y][x]
	s.state.LiveCells = s.area.LiveCells()
}

// settle sets the cells alive shifted by dx, dy
func (s *GridSimulator) settle(vc [][]int, dx int, dy int) {
	for _, v := range vc {
		if len(v) < 2 {
			continue
		}
		x, y := v[0]+dx, v[1]+dy
		if x < 0 || y < 0 || x >= s.area.Size || y >= s.area.Size {
			continue
		}
		s.area.Entities[y][x] = Alive
	}
}

// fillRandom draws every cell from Bernoulli(LiveProbability)
func (s *GridSimulator) fillRandom() {
	p := s.options.LiveProbability
	s.walkArea(func(x int, y int, _ Cell) {
		s.area.Entities[y][x] = Cell(s.rnd.Float64() < p)
	})
	s.state.LiveCells = s.area.LiveCells()
}

// walkArea walks the entire area and calls the cb function for each cell
func (s *GridSimulator) walkArea(cb func(x int, y int, entity Cell)) {
	for y := range s.area.Entities {
		for x := range s.area.Entities[y] {
			cb(x, y, s.area.Entities[y][x])
		}
	}
}
