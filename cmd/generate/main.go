// Command generate writes the arity variants of the query and builder
// families. Run it through go generate from the repository root.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

type arity struct {
	N int
	// Is holds 1..N.
	Is []int
}

func (a arity) join(format, sep string) string {
	parts := make([]string, len(a.Is))
	for i, n := range a.Is {
		parts[i] = strings.ReplaceAll(format, "#", fmt.Sprint(n))
	}
	return strings.Join(parts, sep)
}

// TypeParams renders "T1 any, T2 any".
func (a arity) TypeParams() string { return a.join("T# any", ", ") }

// TypeArgs renders "T1, T2".
func (a arity) TypeArgs() string { return a.join("T#", ", ") }

// TypeFors renders "reflect.TypeFor[T1](), reflect.TypeFor[T2]()".
func (a arity) TypeFors() string { return a.join("reflect.TypeFor[T#]()", ", ") }

// Vars renders "t1, t2".
func (a arity) Vars() string { return a.join("t#", ", ") }

// Fields renders "r.C1, r.C2".
func (a arity) Fields() string { return a.join("r.C#", ", ") }

// Params renders "c1 T1, c2 T2".
func (a arity) Params() string { return a.join("c# T#", ", ") }

// Args renders "c1, c2".
func (a arity) Args() string { return a.join("c#", ", ") }

// Names renders "T1, T2" for doc comments.
func (a arity) Names() string { return a.TypeArgs() }

const queryTmpl = `// Code generated by cmd/generate; DO NOT EDIT.

package kumiki

import "reflect"
{{range .}}
// Row{{.N}} is one match of a {{.N}}-component query: the matched entity and
// copies of its components {{.Names}}.
type Row{{.N}}[{{.TypeParams}}] struct {
	Entity Entity
{{- range .Is}}
	C{{.}} T{{.}}
{{- end}}
}

// Get returns the matched components.
func (r Row{{.N}}[{{.TypeArgs}}]) Get() ({{.TypeArgs}}) {
	return {{.Fields}}
}

// R{{.N}} returns every entity that has all of {{.Names}}, in ascending
// entity order.
func R{{.N}}[{{.TypeParams}}](v Viewer) []Row{{.N}}[{{.TypeArgs}}] {
	return RF{{.N}}[{{.TypeArgs}}](v, nil)
}

// RF{{.N}} is R{{.N}} restricted to the rows accepted by pred. A nil pred
// accepts every row.
func RF{{.N}}[{{.TypeParams}}](v Viewer, pred func(Row{{.N}}[{{.TypeArgs}}]) bool) []Row{{.N}}[{{.TypeArgs}}] {
	a := v.View().assembly()
	a.borrow.acquireRead("RF{{.N}}")
	defer a.borrow.releaseRead()
	{{.Vars}} := {{.TypeFors}}
	var rows []Row{{.N}}[{{.TypeArgs}}]
	for _, e := range a.order {
		g := a.groups[e]
{{- range .Is}}
		s{{.}} := g.lookup(t{{.}})
		if s{{.}} == nil {
			continue
		}
{{- end}}
		row := Row{{.N}}[{{.TypeArgs}}]{Entity: e{{range .Is}}, C{{.}}: *slotOf[T{{.}}](s{{.}}){{end}}}
		if pred != nil && !pred(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// RS{{.N}} returns the only entity that has all of {{.Names}}.
func RS{{.N}}[{{.TypeParams}}](v Viewer) (Row{{.N}}[{{.TypeArgs}}], error) {
	return single(R{{.N}}[{{.TypeArgs}}](v), {{.TypeFors}})
}

// RSF{{.N}} is RS{{.N}} over the rows accepted by pred.
func RSF{{.N}}[{{.TypeParams}}](v Viewer, pred func(Row{{.N}}[{{.TypeArgs}}]) bool) (Row{{.N}}[{{.TypeArgs}}], error) {
	return single(RF{{.N}}(v, pred), {{.TypeFors}})
}

// Count{{.N}} returns the number of entities that have all of {{.Names}}.
func Count{{.N}}[{{.TypeParams}}](v Viewer) int {
	a := v.View().assembly()
	a.borrow.acquireRead("Count{{.N}}")
	defer a.borrow.releaseRead()
	{{.Vars}} := {{.TypeFors}}
	n := 0
	for _, e := range a.order {
		g := a.groups[e]
		if {{range $i, $n := .Is}}{{if $i}} && {{end}}g.lookup(t{{$n}}) != nil{{end}} {
			n++
		}
	}
	return n
}
{{end}}`

const builderTmpl = `// Code generated by cmd/generate; DO NOT EDIT.

package kumiki

import "reflect"
{{range .}}
// Builder{{.N}} creates entities carrying the {{.N}} components {{.Names}}.
type Builder{{.N}}[{{.TypeParams}}] struct {
	a *Assembly
}

// NewBuilder{{.N}} creates a Builder{{.N}} for a. It panics if the component
// types are not distinct.
func NewBuilder{{.N}}[{{.TypeParams}}](a *Assembly) *Builder{{.N}}[{{.TypeArgs}}] {
	checkDistinct("Builder{{.N}}", {{.TypeFors}})
	return &Builder{{.N}}[{{.TypeArgs}}]{a: a}
}

// NewEntity creates one entity holding the given components.
func (b *Builder{{.N}}[{{.TypeArgs}}]) NewEntity({{.Params}}) Entity {
	e := b.a.CreateEntity()
	g := b.a.groups[e]
{{- range .Is}}
	Insert(g, c{{.}})
{{- end}}
	return e
}

// NewEntities creates count entities, each holding a copy of the given
// components.
func (b *Builder{{.N}}[{{.TypeArgs}}]) NewEntities(count int, {{.Params}}) []Entity {
	entities := make([]Entity, 0, count)
	for range count {
		entities = append(entities, b.NewEntity({{.Args}}))
	}
	return entities
}

// Set replaces the components of an existing entity.
func (b *Builder{{.N}}[{{.TypeArgs}}]) Set(e Entity, {{.Params}}) error {
	b.a.borrow.checkFree("Builder{{.N}}.Set")
	g, err := b.a.group(e)
	if err != nil {
		return err
	}
{{- range .Is}}
	Insert(g, c{{.}})
{{- end}}
	return nil
}

// Get returns copies of the components of e.
func (b *Builder{{.N}}[{{.TypeArgs}}]) Get(e Entity) (row Row{{.N}}[{{.TypeArgs}}], err error) {
	g, err := b.a.group(e)
	if err != nil {
		return row, err
	}
	row.Entity = e
{{- range .Is}}
	if row.C{{.}}, err = Borrow[T{{.}}](g); err != nil {
		return row, err
	}
{{- end}}
	return row, nil
}
{{end}}`

func main() {
	maxArity := flag.Int("max", 5, "highest arity to generate")
	flag.Parse()

	var arities []arity
	for n := 2; n <= *maxArity; n++ {
		a := arity{N: n}
		for i := 1; i <= n; i++ {
			a.Is = append(a.Is, i)
		}
		arities = append(arities, a)
	}

	write("query_generated.go", queryTmpl, arities)
	write("builder_generated.go", builderTmpl, arities)
}

func write(name, text string, arities []arity) {
	tmpl := template.Must(template.New(name).Parse(text))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatalf("generate %s: %v", name, err)
	}
	src, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format %s: %v", name, err)
	}
	if err := os.WriteFile(name, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", name, err)
	}
}
