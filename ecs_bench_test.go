package kumiki

import (
	"fmt"
	"testing"
	"time"
)

type Position struct{ X, Y float32 }
type Velocity struct{ X, Y float32 }

var benchSizes = []int{1000, 10000, 100000}

func sizeName(size int) string {
	return fmt.Sprintf("%dK", size/1000)
}

// Entity Creation Benchmarks
func BenchmarkCreateEntity(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				a := NewAssembly()
				for range size {
					a.CreateEntity()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkBuilderNewEntities(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				a := NewAssembly()
				NewBuilder2[Position, Velocity](a).NewEntities(size, Position{}, Velocity{X: 1, Y: 1})
			}
			b.ReportAllocs()
		})
	}
}

// Query Benchmarks
func BenchmarkR2(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			a := NewAssembly()
			NewBuilder2[Position, Velocity](a).NewEntities(size, Position{}, Velocity{X: 1, Y: 1})
			NewBuilder[Position](a).NewEntities(size, Position{})
			b.ResetTimer()
			for b.Loop() {
				_ = R2[Position, Velocity](a)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkCount2(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			a := NewAssembly()
			NewBuilder2[Position, Velocity](a).NewEntities(size, Position{}, Velocity{})
			b.ResetTimer()
			for b.Loop() {
				_ = Count2[Position, Velocity](a)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkW1(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			a := NewAssembly()
			NewBuilder[Position](a).NewEntities(size, Position{})
			b.ResetTimer()
			for b.Loop() {
				W1(a, func(_ Entity, p *Position) {
					p.X++
					p.Y++
				})
			}
			b.ReportAllocs()
		})
	}
}

type benchEvent uint8

func (e benchEvent) Flag() EventFlag               { return 1 << EventFlag(e) }
func (e benchEvent) Core() (CoreEvent, bool)       { return CoreEvent(e), e >= 1 && e <= 3 }
func (benchEvent) FromCore(c CoreEvent) benchEvent { return benchEvent(c) }

type benchHandler struct {
	NoRequirements
	seen int
}

func (h *benchHandler) LoopStageFilter() LoopStageFlag { return StageHandleEvent }
func (h *benchHandler) EventFilter() EventFlag         { return AllEvents }

func (h *benchHandler) HandleEvent(*Assembly, *struct{}, benchEvent) ([]benchEvent, []benchEvent) {
	h.seen++
	return nil, nil
}

// Dispatch Benchmarks
func BenchmarkHandleEvents(b *testing.B) {
	w := NewWorld[benchEvent](struct{}{})
	for range 8 {
		w.AddSystem(&benchHandler{})
	}
	b.ReportAllocs()
	for b.Loop() {
		for range 64 {
			w.Dispatch(benchEvent(10))
		}
		w.HandleEvents()
		w.Update(0, time.Millisecond)
	}
}
