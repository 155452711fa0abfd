// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

func main() {
	rounds := 20
	iters := 200
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		a := kumiki.NewAssembly()
		builder := kumiki.NewBuilder5[comp1, comp2, comp3, comp4, comp5](a)
		builder.NewEntities(numEntities, comp1{}, comp2{V: 1, W: 1}, comp3{}, comp4{}, comp5{})

		for range iters {
			for _, row := range kumiki.R5[comp1, comp2, comp3, comp4, comp5](a) {
				c1, c2, _, _, _ := row.Get()
				_ = c1.V + c2.V
			}
			kumiki.W1(a, func(_ kumiki.Entity, c *comp1) {
				c.V++
				c.W--
			})
		}
	}
}
