package universe

import "sort"

/*
	Step strategies. Every engine computes the whole next generation from the current one
	into a separate buffer and only then replaces the current area, so no cell is read after
	it has been overwritten within the same step
*/

const (
	EngineSwap  = "swap"
	EngineAlloc = "alloc"
)

var engines = map[string]func(s *GridSimulator) func() (liveCells int, changed bool){
	EngineSwap:  newSwapIteration,
	EngineAlloc: newAllocIteration,
}

// EngineNames returns the names of the available engines in sorted order
func EngineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}

// newSwapIteration: two buffers of the same size
// the next state is calculated into the back buffer and then the buffers are swapped
func newSwapIteration(s *GridSimulator) func() (int, bool) {
	back := createArea(s.area.Size)
	return func() (liveCells int, changed bool) {
		liveCells, changed = nextGeneration(s.area, back)
		s.area, back = back, s.area
		return
	}
}

// newAllocIteration: the simplest implementation, creates the new area buffer with full size on each call
// the old area is dropped
func newAllocIteration(s *GridSimulator) func() (int, bool) {
	return func() (liveCells int, changed bool) {
		a := createArea(s.area.Size)
		liveCells, changed = nextGeneration(s.area, a)
		s.area = a
		return
	}
}

// nextGeneration writes the successor of cur into next, cur is only read
func nextGeneration(cur Area, next Area) (liveCells int, changed bool) {
	for y := range cur.Entities {
		for x, e := range cur.Entities[y] {
			nextState := NextState(e, cur.LiveNeighbours(x, y))
			if nextState == Alive {
				liveCells++
			}
			changed = changed || nextState != e
			next.Entities[y][x] = nextState
		}
	}
	return
}
