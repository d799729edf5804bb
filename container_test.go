package construct

import "testing"

func TestContainerSetGetOrder(t *testing.T) {
	c := NewContainer(P("a", 1), P("b", 2), P("c", 3))
	if got := c.Keys(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("Keys() = %v, want [a b c]", got)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %v, %v, want 2, true", v, ok)
	}
}

func TestContainerSetPreservesPosition(t *testing.T) {
	c := NewContainer(P("a", 1), P("b", 2))
	c.Set("a", 100)
	if got := c.Keys(); got[0] != "a" || got[1] != "b" {
		t.Fatalf("Keys() = %v, want [a b] (position preserved)", got)
	}
	if v, _ := c.Get("a"); v != 100 {
		t.Errorf("Get(a) = %v, want 100", v)
	}
}

func TestContainerDelete(t *testing.T) {
	c := NewContainer(P("a", 1), P("b", 2))
	c.Delete("a")
	if c.Contains("a") {
		t.Error("Contains(a) after delete, want false")
	}
	if got := c.Keys(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("Keys() = %v, want [b]", got)
	}
}

func TestContainerEqualIgnoresOrder(t *testing.T) {
	c1 := NewContainer(P("a", 1), P("b", 2))
	c2 := NewContainer(P("b", 2), P("a", 1))
	if !c1.Equal(c2) {
		t.Error("expected equal containers regardless of insertion order")
	}
}

func TestContainerEqualDetectsDifference(t *testing.T) {
	c1 := NewContainer(P("a", 1))
	c2 := NewContainer(P("a", 2))
	if c1.Equal(c2) {
		t.Error("expected containers with different values to be unequal")
	}
	c3 := NewContainer(P("a", 1), P("b", 2))
	if c1.Equal(c3) {
		t.Error("expected containers with different key sets to be unequal")
	}
}

func TestContainerEqualNested(t *testing.T) {
	c1 := NewContainer(P("outer", NewContainer(P("x", 1))))
	c2 := NewContainer(P("outer", NewContainer(P("x", 1))))
	if !c1.Equal(c2) {
		t.Error("expected nested containers to compare equal")
	}
}

func TestValidateNameReservedUnderscore(t *testing.T) {
	if err := validateName("_"); err == nil {
		t.Error(`expected error for name "_"`)
	}
}

func TestValidateNameReservedPrefix(t *testing.T) {
	if err := validateName("<obj>"); err == nil {
		t.Error(`expected error for name starting with "<"`)
	}
}

func TestValidateNameOrdinary(t *testing.T) {
	if err := validateName("foo"); err != nil {
		t.Errorf("unexpected error for ordinary name: %v", err)
	}
	if err := validateName(""); err != nil {
		t.Errorf("unexpected error for empty (unnamed): %v", err)
	}
}
