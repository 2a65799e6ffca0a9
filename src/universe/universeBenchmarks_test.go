package universe

import (
	"testing"
)

const (
	benchSize = 200
)

func newBenchSimulator(b *testing.B, engine string) *GridSimulator {
	s, err := NewGridSimulator(&Options{Size: benchSize, LiveProbability: 0.3, Engine: engine}, newRand(1))
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func Benchmark_Step(b *testing.B) {
	for _, e := range EngineNames() {
		b.Run(e, func(b *testing.B) {
			s := newBenchSimulator(b, e)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Step()
			}
		})
	}
}

func Benchmark_Render(b *testing.B) {
	s := newBenchSimulator(b, DefEngine)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Render()
	}
}
