package construct

import (
	"bytes"
	"testing"
)

func TestStructOrderingAndContextScenario(t *testing.T) {
	p := Struct("p",
		FormatField("len", '<', 'B'),
		FieldFromContext("data", FromContext("len")),
	)

	v, err := p.Parse([]byte{3, 'a', 'b', 'c', 'X'})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := v.(*Container)
	data, _ := c.Get("data")
	if !bytes.Equal(data.([]byte), []byte("abc")) {
		t.Fatalf("data = %v, want abc (exactly len bytes, trailing byte untouched)", data)
	}
}

func TestStructOrderingAndContextBuildRoundTrip(t *testing.T) {
	p := Struct("p",
		FormatField("len", '<', 'B'),
		FieldFromContext("data", FromContext("len")),
	)
	obj := NewContainer(P("len", 3), P("data", []byte("abc")))
	data, err := p.Build(obj)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !bytes.Equal(data, []byte{3, 'a', 'b', 'c'}) {
		t.Fatalf("Build() = % x, want [03 61 62 63]", data)
	}
}

func TestFieldFromContextSizeOfWithoutContextErrors(t *testing.T) {
	f := FieldFromContext("data", FromContext("len"))
	if _, err := f.SizeOf(); err == nil {
		t.Error("expected SizeofError when context lacks the referenced key")
	}
}

func TestFieldFromContextSizeOfWithContext(t *testing.T) {
	f := FieldFromContext("data", FromContext("len"))
	ctx := NewContainer(P("len", 5))
	n, err := f.SizeOf(ctx)
	if err != nil || n != 5 {
		t.Fatalf("SizeOf(ctx) = %d, %v, want 5, nil", n, err)
	}
}
