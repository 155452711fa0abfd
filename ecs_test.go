package kumiki_test

import (
	"errors"
	"testing"

	"github.com/edwinsyarief/kumiki"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Health struct{ Current, Max int }
type Tag struct{ Name string }
type Marker struct{}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if target == nil {
			return
		}
		if err, ok := r.(error); !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, r)
		}
	}()
	fn()
}

// --- Tests ---

// go test -run ^TestCreateEntity$ . -count 1
func TestCreateEntity(t *testing.T) {
	a := kumiki.NewAssembly()
	e1 := a.CreateEntity()
	e2 := a.CreateEntity()

	if e1 != 1 {
		t.Errorf("Expected first entity to be 1, got %d", e1)
	}
	if e1.IsNil() {
		t.Error("Issued entity must not be nil")
	}
	if e2 != 2 {
		t.Errorf("Expected second entity to be 2, got %d", e2)
	}
	if !a.HasEntity(e1) || !a.HasEntity(e2) {
		t.Error("Created entities should be live")
	}
	if a.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", a.EntityCount())
	}
	if got := e2.String(); got != "Entity(2)" {
		t.Errorf("Unexpected string form %q", got)
	}
}

// go test -run ^TestZeroValueAssembly$ . -count 1
func TestZeroValueAssembly(t *testing.T) {
	var a kumiki.Assembly
	if got := kumiki.Count1[Position](&a); got != 0 {
		t.Errorf("Expected empty count, got %d", got)
	}
	e := a.CreateEntity()
	if _, _, err := kumiki.AddComponent(&a, e, Position{X: 1}); err != nil {
		t.Fatalf("AddComponent on zero Assembly failed: %v", err)
	}
}

// go test -run ^TestEntityUniqueness$ . -count 1
func TestEntityUniqueness(t *testing.T) {
	a := kumiki.NewAssembly()
	seen := make(map[kumiki.Entity]bool)
	for i := range 1000 {
		e := a.CreateEntity()
		if seen[e] {
			t.Fatalf("Entity %s issued twice", e)
		}
		seen[e] = true
		if i%3 == 0 {
			if _, ok := a.DestroyEntity(e); !ok {
				t.Fatalf("DestroyEntity(%s) reported absent", e)
			}
		}
	}
	// Identifiers are not reused after destruction.
	for range 100 {
		e := a.CreateEntity()
		if seen[e] {
			t.Fatalf("Entity %s reused", e)
		}
		seen[e] = true
	}
}

// go test -run ^TestDestroyEntity$ . -count 1
func TestDestroyEntity(t *testing.T) {
	a := kumiki.NewAssembly()
	e := a.CreateEntity()
	kumiki.AddComponent(a, e, Position{X: 3, Y: 4})

	g, ok := a.DestroyEntity(e)
	if !ok || g == nil {
		t.Fatal("DestroyEntity should return the group")
	}
	p, err := kumiki.Borrow[Position](g)
	if err != nil || p.X != 3 || p.Y != 4 {
		t.Errorf("Returned group lost its data: %+v, %v", p, err)
	}
	if a.HasEntity(e) {
		t.Error("Destroyed entity still live")
	}

	t.Run("Absent", func(t *testing.T) {
		g, ok := a.DestroyEntity(e)
		if ok || g != nil {
			t.Error("Destroying an absent entity should return nil, false")
		}
	})
}

// go test -run ^TestComponentLifecycle$ . -count 1
func TestComponentLifecycle(t *testing.T) {
	a := kumiki.NewAssembly()
	e := a.CreateEntity()

	t.Run("Add", func(t *testing.T) {
		_, replaced, err := kumiki.AddComponent(a, e, Position{X: 10, Y: 20})
		if err != nil || replaced {
			t.Fatalf("AddComponent: replaced=%v err=%v", replaced, err)
		}
		prev, replaced, err := kumiki.AddComponent(a, e, Position{X: 30, Y: 40})
		if err != nil || !replaced {
			t.Fatalf("Second AddComponent: replaced=%v err=%v", replaced, err)
		}
		if prev.X != 10 || prev.Y != 20 {
			t.Errorf("Expected previous {10, 20}, got %+v", prev)
		}
	})

	t.Run("Has", func(t *testing.T) {
		ok, err := kumiki.HasComponent[Position](a, e)
		if err != nil || !ok {
			t.Errorf("HasComponent[Position] = %v, %v", ok, err)
		}
		ok, err = kumiki.HasComponent[Velocity](a, e)
		if err != nil || ok {
			t.Errorf("HasComponent[Velocity] = %v, %v", ok, err)
		}
	})

	t.Run("BorrowMut", func(t *testing.T) {
		err := kumiki.BorrowComponentMut(a, e, func(p *Position) { p.X++ })
		if err != nil {
			t.Fatal(err)
		}
		p, err := kumiki.BorrowComponent[Position](a, e)
		if err != nil || p.X != 31 {
			t.Errorf("Expected X=31, got %+v (%v)", p, err)
		}
		err = kumiki.BorrowComponentMut(a, e, func(*Velocity) { t.Error("callback must not run") })
		if !errors.Is(err, kumiki.ErrComponentNotFound) {
			t.Errorf("Expected ErrComponentNotFound, got %v", err)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		c, ok, err := kumiki.RemoveComponent[Position](a, e)
		if err != nil || !ok || c.X != 31 {
			t.Fatalf("RemoveComponent = %+v, %v, %v", c, ok, err)
		}
		_, ok, err = kumiki.RemoveComponent[Position](a, e)
		if err != nil || ok {
			t.Errorf("Second RemoveComponent = %v, %v", ok, err)
		}
		if _, err := kumiki.BorrowComponent[Position](a, e); !errors.Is(err, kumiki.ErrComponentNotFound) {
			t.Errorf("Expected ErrComponentNotFound, got %v", err)
		}
	})
}

// go test -run ^TestUnknownEntity$ . -count 1
func TestUnknownEntity(t *testing.T) {
	a := kumiki.NewAssembly()
	ghost := kumiki.Entity(42)

	if _, _, err := kumiki.AddComponent(a, ghost, Position{}); !errors.Is(err, kumiki.ErrEntityNotFound) {
		t.Errorf("AddComponent: expected ErrEntityNotFound, got %v", err)
	}
	if _, _, err := kumiki.RemoveComponent[Position](a, ghost); !errors.Is(err, kumiki.ErrEntityNotFound) {
		t.Errorf("RemoveComponent: expected ErrEntityNotFound, got %v", err)
	}
	if _, err := kumiki.HasComponent[Position](a, ghost); !errors.Is(err, kumiki.ErrEntityNotFound) {
		t.Errorf("HasComponent: expected ErrEntityNotFound, got %v", err)
	}
	if _, err := kumiki.BorrowComponent[Position](a, ghost); !errors.Is(err, kumiki.ErrEntityNotFound) {
		t.Errorf("BorrowComponent: expected ErrEntityNotFound, got %v", err)
	}
	if err := kumiki.BorrowComponentMut(a, ghost, func(*Position) {}); !errors.Is(err, kumiki.ErrEntityNotFound) {
		t.Errorf("BorrowComponentMut: expected ErrEntityNotFound, got %v", err)
	}
	if _, err := a.Inspect(ghost); !errors.Is(err, kumiki.ErrEntityNotFound) {
		t.Errorf("Inspect: expected ErrEntityNotFound, got %v", err)
	}
}

// go test -run ^TestInspect$ . -count 1
func TestInspect(t *testing.T) {
	a := kumiki.NewAssembly()
	e := a.CreateEntity()
	kumiki.AddComponent(a, e, Tag{Name: "camera"})
	kumiki.AddComponent(a, e, Health{Current: 3, Max: 5})

	snap, err := a.View().Inspect(e)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap) != 2 {
		t.Fatalf("Expected 2 components, got %d", len(snap))
	}
	if tag, ok := snap["kumiki_test.Tag"].(Tag); !ok || tag.Name != "camera" {
		t.Errorf("Unexpected Tag entry: %#v", snap["kumiki_test.Tag"])
	}
}

// go test -run ^TestBorrowConflicts$ . -count 1
func TestBorrowConflicts(t *testing.T) {
	a := kumiki.NewAssembly()
	e := a.CreateEntity()
	kumiki.AddComponent(a, e, Position{})

	t.Run("ReadDuringWrite", func(t *testing.T) {
		expectPanic(t, kumiki.ErrBorrowConflict, func() {
			kumiki.W1(a, func(kumiki.Entity, *Position) {
				kumiki.R1[Position](a)
			})
		})
	})

	t.Run("WriteDuringWrite", func(t *testing.T) {
		expectPanic(t, kumiki.ErrBorrowConflict, func() {
			kumiki.BorrowComponentMut(a, e, func(*Position) {
				kumiki.BorrowComponentMut(a, e, func(*Position) {})
			})
		})
	})

	t.Run("StructuralChangeDuringRead", func(t *testing.T) {
		expectPanic(t, kumiki.ErrBorrowConflict, func() {
			kumiki.RF1(a, func(kumiki.Row1[Position]) bool {
				a.CreateEntity()
				return true
			})
		})
	})

	t.Run("NestedReads", func(t *testing.T) {
		rows := kumiki.RF1(a, func(kumiki.Row1[Position]) bool {
			return kumiki.Count1[Position](a) == 1
		})
		if len(rows) != 1 {
			t.Errorf("Nested reads should be allowed, got %d rows", len(rows))
		}
	})

	t.Run("ReleasedAfterPanic", func(t *testing.T) {
		if _, _, err := kumiki.AddComponent(a, a.CreateEntity(), Position{}); err != nil {
			t.Fatalf("Borrow state leaked across panics: %v", err)
		}
	})
}
