package universe

import (
	"errors"
	"strings"
	"time"
)

// Cell is the state of a single grid position
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

// glyphs used by Render
const (
	LiveGlyph = '#'
	DeadGlyph = '.'
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownTemplate      = errors.New("unknown template")
)

// Area is one generation: a square field of Size x Size cells, Entities[y][x]
type Area struct {
	Size     int
	Entities [][]Cell
}

// Options represents the simulator's configurable options
type Options struct {
	Size            int
	LiveProbability float64
	Engine          string
}

// Status represents the status of the simulator at concrete moment
type Status struct {
	Generation    int
	LiveCells     int
	Changed       bool
	IterationTime time.Duration
}

// default options
const (
	DefSize            = 20
	DefLiveProbability = 0.5
	DefEngine          = EngineSwap
)

var DefaultOptions = Options{
	Size:            DefSize,
	LiveProbability: DefLiveProbability,
	Engine:          DefEngine,
}

// createArea allocates a new area with all cells dead
func createArea(size int) Area {
	area := Area{Size: size, Entities: make([][]Cell, size)}
	b := make([]Cell, size*size)
	for i := range area.Entities {
		start := size * i
		area.Entities[i] = b[start : start+size : start+size]
	}
	return area
}

// Clone returns a deep copy of the area
func (a Area) Clone() Area {
	c := createArea(a.Size)
	for y := range a.Entities {
		copy(c.Entities[y], a.Entities[y])
	}
	return c
}

// Equal reports whether both areas have the same size and cell states
func (a Area) Equal(b Area) bool {
	if a.Size != b.Size {
		return false
	}
	for y := range a.Entities {
		for x := range a.Entities[y] {
			if a.Entities[y][x] != b.Entities[y][x] {
				return false
			}
		}
	}
	return true
}

// LiveCells calculates the count of live cells
func (a Area) LiveCells() int {
	liveCells := 0
	for _, row := range a.Entities {
		for _, e := range row {
			if e == Alive {
				liveCells++
			}
		}
	}
	return liveCells
}

// LiveNeighbours counts live cells around x,y
// the field doesn't wrap: cells outside the area are skipped
func (a Area) LiveNeighbours(x int, y int) int {
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			ny := y + j
			if nx < 0 || ny < 0 || nx >= a.Size || ny >= a.Size {
				continue
			}
			if a.Entities[ny][nx] == Alive {
				liveNeighbours++
			}
		}
	}
	return liveNeighbours
}

// String renders the area, one line per row
func (a Area) String() string {
	var b strings.Builder
	b.Grow(a.Size * (a.Size + 1))
	for _, row := range a.Entities {
		for _, e := range row {
			if e == Alive {
				b.WriteByte(LiveGlyph)
			} else {
				b.WriteByte(DeadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// NextState applies the transition rule to one cell
// underpopulation (<2) and overpopulation (>3) kill, exactly 3 gives birth,
// 2 keeps the current state
func NextState(c Cell, liveNeighbours int) Cell {
	switch {
	case liveNeighbours == 3:
		return Alive
	case liveNeighbours == 2:
		return c
	default:
		return Dead
	}
}
