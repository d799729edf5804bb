package main

import (
	"fmt"

	"construct"
)

// formatEntry names one worked-example format descriptor available to all
// three subcommands.
type formatEntry struct {
	description string
	build       func() construct.Construct
}

var formatRegistry = map[string]formatEntry{
	"elfheader":    {"ELF64 header plus one program header entry", elfHeaderFormat},
	"dartsnapshot": {"Dart VM snapshot data header", dartSnapshotFormat},
	"tlvrecord":    {"bit-packed, length-prefixed TLV record", tlvRecordFormat},
}

func lookupFormat(name string) (construct.Construct, error) {
	entry, ok := formatRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (known: elfheader, dartsnapshot, tlvrecord)", name)
	}
	return entry.build(), nil
}

// reverseMap builds the encode-direction table for a Mapping from its
// decode-direction table, so a format only has to spell out the
// code-to-name direction once.
func reverseMap(decMap map[any]any) map[any]any {
	out := make(map[any]any, len(decMap))
	for k, v := range decMap {
		out[v] = k
	}
	return out
}
