package construct

import (
	"bytes"
	"testing"
)

func TestBitStructScenario(t *testing.T) {
	foo := BitStruct("foo",
		BitField("a", 3),
		Flag("b"),
		PaddingAdapter(StaticField("", 3), 0, false),
		Nibble("c"),
		Struct("bar", Nibble("d"), Bit("e")),
	)

	v, err := foo.Parse([]byte{0xE1, 0x1F})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := v.(*Container)

	a, _ := c.Get("a")
	if a.(uint64) != 7 {
		t.Errorf("a = %v, want 7", a)
	}
	b, _ := c.Get("b")
	if b.(bool) != false {
		t.Errorf("b = %v, want false", b)
	}
	cc, _ := c.Get("c")
	if cc.(uint64) != 8 {
		t.Errorf("c = %v, want 8", cc)
	}
	barVal, _ := c.Get("bar")
	bar := barVal.(*Container)
	d, _ := bar.Get("d")
	if d.(uint64) != 15 {
		t.Errorf("bar.d = %v, want 15", d)
	}
	e, _ := bar.Get("e")
	if e.(uint64) != 1 {
		t.Errorf("bar.e = %v, want 1", e)
	}

	n, err := foo.SizeOf()
	if err != nil || n != 2 {
		t.Fatalf("SizeOf() = %d, %v, want 2, nil", n, err)
	}
}

func TestBitStructBuildRoundTrip(t *testing.T) {
	foo := BitStruct("foo",
		BitField("a", 3),
		Flag("b"),
		PaddingAdapter(StaticField("", 3), 0, false),
		Nibble("c"),
		Struct("bar", Nibble("d"), Bit("e")),
	)
	obj := NewContainer(
		P("a", 7),
		P("b", false),
		P("c", 8),
		P("bar", NewContainer(P("d", 15), P("e", 1))),
	)
	data, err := foo.Build(obj)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !bytes.Equal(data, []byte{0xE1, 0x1F}) {
		t.Fatalf("Build() = % x, want [E1 1F]", data)
	}
}

func TestBitIntegerAdapterSigned(t *testing.T) {
	field := BitIntegerAdapter(StaticField("v", 4), 4, false, true, 8)
	bits := []byte{1, 0, 0, 0} // MSB set -> negative in 4-bit two's complement
	v, err := field.Parse(bits)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.(int64) != -8 {
		t.Errorf("Parse() = %v, want -8", v)
	}
}

func TestBitIntegerAdapterRejectsNegativeWhenUnsigned(t *testing.T) {
	field := BitIntegerAdapter(StaticField("v", 4), 4, false, false, 8)
	if _, err := field.Build(-1); err == nil {
		t.Error("expected error building a negative value into an unsigned BitInteger")
	}
}

func TestBitIntegerAdapterPanicsOnBadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for width <= 0")
		}
	}()
	BitIntegerAdapter(StaticField("v", 0), 0, false, false, 8)
}
