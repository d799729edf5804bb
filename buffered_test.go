package construct

import (
	"bytes"
	"testing"
)

func TestBufferedRoundTrip(t *testing.T) {
	// A trivial XOR "encoding" to exercise Buffered's encode/decode split
	// independent of the bit-packing use BitStruct makes of it.
	xor := func(b []byte) ([]byte, error) {
		out := make([]byte, len(b))
		for i, v := range b {
			out[i] = v ^ 0xFF
		}
		return out, nil
	}
	child := Struct("pair", FormatField("x", '<', 'B'), FormatField("y", '<', 'B'))
	buf := Buffered(child, xor, xor, nil)

	raw := []byte{0xFF ^ 10, 0xFF ^ 20}
	v, err := buf.Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := v.(*Container)
	x, _ := c.Get("x")
	y, _ := c.Get("y")
	if x.(uint64) != 10 || y.(uint64) != 20 {
		t.Fatalf("got x=%v y=%v, want 10, 20", x, y)
	}

	data, err := buf.Build(c)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !bytes.Equal(data, raw) {
		t.Errorf("Build() = % x, want % x", data, raw)
	}
}

func TestBufferedEncoderLengthMismatchErrors(t *testing.T) {
	child := StaticField("v", 2)
	bad := func(b []byte) ([]byte, error) { return append(b, 0), nil }
	buf := Buffered(child, bad, bad, nil)
	if _, err := buf.Build([]byte{1, 2}); err == nil {
		t.Error("expected error when encoder changes length unexpectedly")
	}
}

func TestBufferedResizer(t *testing.T) {
	child := Struct("bits", FormatField("a", '<', 'B'))
	double := func(n int) int { return n * 2 }
	buf := Buffered(child, func(b []byte) ([]byte, error) { return b[:len(b)/2], nil },
		func(b []byte) ([]byte, error) { return append(b, b...), nil }, double)
	n, err := buf.SizeOf()
	if err != nil || n != 2 {
		t.Fatalf("SizeOf() = %d, %v, want 2, nil", n, err)
	}
}
