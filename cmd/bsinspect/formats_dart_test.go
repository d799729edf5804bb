package main

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"construct"
)

func buildGoldenDartSnapshot(t *testing.T, features string) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write([]byte{0xf5, 0xf5, 0xdc, 0xdc})

	le := binary.LittleEndian
	u64 := func(v uint64) { var b [8]byte; le.PutUint64(b[:], v); buf.Write(b[:]) }

	u64(12345)             // length
	u64(2)                 // kind = FullJIT
	buf.Write(make([]byte, 32)) // snapshot_hash

	if len(features) > 32 {
		t.Fatalf("test features string too long: %d", len(features))
	}
	featBuf := make([]byte, 32)
	copy(featBuf, features)
	buf.Write(featBuf)

	return buf.Bytes()
}

func TestDartSnapshotFormatRoundTrip(t *testing.T) {
	golden := buildGoldenDartSnapshot(t, "no-bytecode")
	desc := dartSnapshotFormat()

	v, err := desc.Parse(golden)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := v.(*construct.Container)

	if length, _ := c.Get("length"); length.(int64) != 12345 {
		t.Errorf("length = %v, want 12345", length)
	}
	if kind, _ := c.Get("kind"); kind.(string) != "FullJIT" {
		t.Errorf("kind = %v, want FullJIT", kind)
	}
	if feat, _ := c.Get("features"); feat.(string) != "no-bytecode" {
		t.Errorf("features = %q, want %q", feat, "no-bytecode")
	}

	rebuilt, err := desc.Build(c)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !bytes.Equal(rebuilt, golden) {
		t.Fatalf("round trip mismatch:\n got  % x\n want % x", rebuilt, golden)
	}
}

func TestDartSnapshotFormatRejectsBadMagic(t *testing.T) {
	golden := buildGoldenDartSnapshot(t, "")
	golden[0] = 0x00
	if _, err := dartSnapshotFormat().Parse(golden); err == nil {
		t.Error("expected ConstError for bad snapshot magic")
	}
}

func TestDartSnapshotFeaturesPadsAndTruncates(t *testing.T) {
	desc := dartSnapshotFormat()
	c := construct.NewContainer(
		construct.P("length", int64(1)),
		construct.P("kind", "Full"),
		construct.P("snapshot_hash", bytes.Repeat([]byte{0}, 32)),
		construct.P("features", strings.Repeat("x", 40)),
	)
	data, err := desc.Build(c)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(data) != 4+8+8+32+32 {
		t.Fatalf("built length = %d, want %d", len(data), 4+8+8+32+32)
	}
}
