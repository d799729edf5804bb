package construct

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// HexDumpAdapter wraps a byte-producing child, presenting its value as a
// formatted hex string on parse (linesize bytes per line, offset-prefixed)
// and accepting on build either plain hex digits (whitespace stripped) or
// parse's own offset-prefixed dump, so a parsed value builds back to the
// same bytes. On build, a line that starts with eight hex digits followed
// by whitespace is taken to be an offset column and those digits are
// dropped.
func HexDumpAdapter(child Construct, linesize int) Construct {
	if linesize <= 0 {
		linesize = 16
	}
	return newAdapter(child,
		func(v any, ctx *Container) (any, error) {
			data, ok := v.([]byte)
			if !ok {
				return nil, fmt.Errorf("hexdump: expected []byte, got %T", v)
			}
			return formatHexDump(data, linesize), nil
		},
		func(v any, ctx *Container) (any, error) {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("hexdump: expected string, got %T", v)
			}
			clean := stripHexFormatting(s)
			data, err := hex.DecodeString(clean)
			if err != nil {
				return nil, fmt.Errorf("hexdump: %w", err)
			}
			return data, nil
		},
	)
}

func formatHexDump(data []byte, linesize int) string {
	var b strings.Builder
	for off := 0; off < len(data); off += linesize {
		end := off + linesize
		if end > len(data) {
			end = len(data)
		}
		line := data[off:end]
		fmt.Fprintf(&b, "%08x   %s\n", off, hex.EncodeToString(line))
	}
	return b.String()
}

// hexOffsetPrefix matches the "%08x   " offset column formatHexDump writes
// at the start of each line, so build can accept parse's own output without
// the offset digits being mistaken for payload hex.
var hexOffsetPrefix = regexp.MustCompile(`(?m)^[0-9a-fA-F]{8}\s+`)

// stripHexFormatting strips any per-line offset column plus all spaces and
// newlines from a hex digit string, per the build-direction contract: build
// expects plain hex digits (with optional whitespace between bytes, and an
// optional offset-prefixed line layout matching what parse produces).
func stripHexFormatting(s string) string {
	s = hexOffsetPrefix.ReplaceAllString(s, "")
	return strings.NewReplacer(" ", "", "\n", "", "\r", "", "\t", "").Replace(s)
}
