package main

import "construct"

// tlvRecordFormat is a small bit-packed, length-prefixed TLV record: a
// one-byte header (5 bits of flags plus a 3-bit type nibble mapped to a
// human-readable name), a 16-bit length prefix, a payload whose length is
// read from the sibling "length" field already parsed into the struct's
// context, rendered as a hex dump, and two bytes of trailing strict
// padding. Layout modeled on the bit-packing style of `hit9-bitproto` and
// the standalone `njchilds90-go-construct` port.
func tlvRecordFormat() construct.Construct {
	typeMap := map[any]any{0: "PADDING", 1: "STRING", 2: "INTEGER", 3: "BLOB", 4: "NESTED"}
	typeMapping := construct.MappingAdapter(construct.BitField("type", 3),
		typeMap, reverseMap(typeMap), construct.Pass, construct.Pass)

	header := construct.BitStruct("header",
		construct.BitField("flags", 5),
		typeMapping,
	)

	payload := construct.HexDumpAdapter(
		construct.FieldFromContext("payload", construct.FromContext("length")),
		16,
	)

	return construct.Struct("tlvrecord",
		header,
		construct.FormatField("length", '<', 'H'),
		payload,
		construct.PaddingAdapter(construct.StaticField("", 2), 0x00, true),
	)
}
