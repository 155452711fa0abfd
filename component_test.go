package kumiki_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/edwinsyarief/kumiki"
)

// go test -run ^TestComponentGroup$ . -count 1
func TestComponentGroup(t *testing.T) {
	t.Run("InsertReplaces", func(t *testing.T) {
		var g kumiki.ComponentGroup
		if _, replaced := kumiki.Insert(&g, Tag{Name: "a"}); replaced {
			t.Error("First insert should not replace")
		}
		prev, replaced := kumiki.Insert(&g, Tag{Name: "b"})
		if !replaced || prev.Name != "a" {
			t.Errorf("Expected previous a, got %+v (%v)", prev, replaced)
		}
		got, ok := kumiki.Remove[Tag](&g)
		if !ok || got.Name != "b" {
			t.Errorf("Expected b, got %+v (%v)", got, ok)
		}
		if g.Len() != 0 {
			t.Errorf("Expected empty group, got %d", g.Len())
		}
	})

	t.Run("DistinctTypes", func(t *testing.T) {
		g := kumiki.NewComponentGroup()
		kumiki.Insert(g, Position{X: 1})
		kumiki.Insert(g, &Position{X: 2})
		if g.Len() != 2 {
			t.Fatalf("Position and *Position are distinct types, got %d slots", g.Len())
		}
		if !kumiki.Has[Position](g) || !kumiki.Has[*Position](g) || kumiki.Has[Velocity](g) {
			t.Error("Has mismatch")
		}
		want := []string{"*kumiki_test.Position", "kumiki_test.Position"}
		if names := g.TypeNames(); !slices.Equal(names, want) {
			t.Errorf("TypeNames = %v, want %v", names, want)
		}
	})

	t.Run("Borrow", func(t *testing.T) {
		g := kumiki.NewComponentGroup()
		if _, err := kumiki.Borrow[Health](g); !errors.Is(err, kumiki.ErrComponentNotFound) {
			t.Errorf("Expected ErrComponentNotFound, got %v", err)
		}
		kumiki.Insert(g, Health{Current: 1, Max: 2})
		h, err := kumiki.BorrowMut[Health](g)
		if err != nil {
			t.Fatal(err)
		}
		h.Current = 2
		if got, _ := kumiki.Borrow[Health](g); got.Current != 2 {
			t.Errorf("BorrowMut should write through, got %+v", got)
		}
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		var g kumiki.ComponentGroup
		if _, ok := kumiki.Remove[Health](&g); ok {
			t.Error("Remove on empty group should report absence")
		}
	})
}
