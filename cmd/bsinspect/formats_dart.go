package main

import (
	"strings"

	"construct"
)

// dartSnapshotFormat describes the Dart VM snapshot data header that
// `internal/snapshot.Header` used to decode by hand with manual offset
// arithmetic (magic at +0x00, length at +0x04, kind at +0x0c, version hash
// at +0x14, features at +0x34). Expressed here as one Struct built from
// FormatFields and a Const adapter for the magic.
//
// features is null-terminated in the original; absent a CString-style
// combinator in this core, it is read as a fixed 32-byte field here and
// trailing NUL bytes are trimmed by an ExprAdapter.
func dartSnapshotFormat() construct.Construct {
	kindMap := map[any]any{0: "Full", 1: "FullCore", 2: "FullJIT", 3: "FullAOT"}
	kind := construct.MappingAdapter(construct.FormatField("kind", '<', 'q'),
		kindMap, reverseMap(kindMap), construct.Pass, construct.Pass)

	features := construct.ExprAdapter(construct.StaticField("features", 32),
		func(v any, ctx *construct.Container) (any, error) {
			s, _ := v.(string)
			if len(s) > 32 {
				s = s[:32]
			}
			return s + strings.Repeat("\x00", 32-len(s)), nil
		},
		func(v any, ctx *construct.Container) (any, error) {
			b, _ := v.([]byte)
			return strings.TrimRight(string(b), "\x00"), nil
		},
	)

	return construct.Struct("dartsnapshot",
		construct.Const(construct.StaticField("magic", 4), []byte{0xf5, 0xf5, 0xdc, 0xdc}),
		construct.FormatField("length", '<', 'q'),
		kind,
		construct.StaticField("snapshot_hash", 32),
		features,
	)
}
