// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/kumiki"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		a := kumiki.NewAssembly()
		builder := kumiki.NewBuilder2[comp1, comp2](a)

		for range iters {
			builder.NewEntities(numEntities, comp1{}, comp2{V: 1, W: 1})
			for _, row := range kumiki.R2[comp1, comp2](a) {
				_ = row.C1.V + row.C2.V
			}
			for _, e := range a.Entities() {
				a.DestroyEntity(e)
			}
		}
	}
}
