package construct

import "testing"

func TestPassParseBuildSizeOf(t *testing.T) {
	v, err := Pass.Parse([]byte{1, 2, 3})
	if err != nil || v != nil {
		t.Fatalf("Pass.Parse = %v, %v, want nil, nil", v, err)
	}
	data, err := Pass.Build("anything")
	if err != nil || len(data) != 0 {
		t.Fatalf("Pass.Build = %v, %v, want empty, nil", data, err)
	}
	n, err := Pass.SizeOf()
	if err != nil || n != 0 {
		t.Fatalf("Pass.SizeOf = %v, %v, want 0, nil", n, err)
	}
}

func TestFlagsHas(t *testing.T) {
	f := FlagEmbed.with(FlagNesting)
	if !f.Has(FlagEmbed) || !f.Has(FlagNesting) {
		t.Errorf("Has() missing bits, got %v", f)
	}
	if f.Has(FlagDynamic) {
		t.Error("Has(FlagDynamic) = true, want false")
	}
}

func TestStaticFieldPanicsOnReservedName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for reserved name")
		}
	}()
	StaticField("_", 4)
}

func TestFormatFieldPanicsOnBadEndianness(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for bad endianness token")
		}
	}()
	FormatField("x", '!', 'I')
}

func TestFormatFieldPanicsOnBadCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown format code")
		}
	}()
	FormatField("x", '<', 'z')
}

func TestSizeOfFixedWidthStruct(t *testing.T) {
	// A Struct of fixed-width fields needs no context, so SizeOf succeeds
	// with a plain int and no SizeofError.
	s := Struct("s", StaticField("a", 4), StaticField("b", 2))
	n, err := s.SizeOf()
	if err != nil {
		t.Fatalf("SizeOf() error = %v", err)
	}
	if n != 6 {
		t.Errorf("SizeOf() = %d, want 6", n)
	}
}
