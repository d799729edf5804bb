package construct

import "fmt"

// BitIntegerAdapter wraps child, which must parse to and build from a
// byte-per-bit sequence of exactly width bytes (each 0 or 1, most
// significant bit first — the representation Buffered/BitStruct produces
// from real bytes), converting it to and from an integer. If swapped,
// the bit sequence is reordered in bytesize-bit groups before conversion
// (and after conversion on build) — the bit-domain equivalent of a
// byte-order swap for multi-byte fields. Negative values are rejected
// when signed is false.
func BitIntegerAdapter(child Construct, width int, swapped, signed bool, bytesize int) Construct {
	if width <= 0 {
		panic(newValueError("BitInteger width must be > 0"))
	}
	if bytesize <= 0 {
		bytesize = 8
	}
	return newAdapter(child,
		func(v any, ctx *Container) (any, error) {
			bits, ok := v.([]byte)
			if !ok || len(bits) != width {
				return nil, fmt.Errorf("construct: bitinteger: expected %d bit-bytes, got %T (len %d)", width, v, len(bits))
			}
			working := bits
			if swapped {
				working = swapBitGroups(bits, bytesize)
			}
			var u uint64
			for _, b := range working {
				u = u<<1 | uint64(b&1)
			}
			if signed && width < 64 && working[0] == 1 {
				return int64(u) - (int64(1) << uint(width)), nil
			}
			if signed {
				return int64(u), nil
			}
			return u, nil
		},
		func(v any, ctx *Container) (any, error) {
			n, ok := toInt64(v)
			if !ok {
				return nil, fmt.Errorf("construct: bitinteger: expected an integer, got %T", v)
			}
			if !signed && n < 0 {
				return nil, newBitIntegerError(fmt.Sprintf("negative value %d given to unsigned BitInteger", n))
			}
			mask := (uint64(1) << uint(width)) - 1
			u := uint64(n) & mask
			working := make([]byte, width)
			for i := width - 1; i >= 0; i-- {
				working[i] = byte(u & 1)
				u >>= 1
			}
			if swapped {
				working = swapBitGroups(working, bytesize)
			}
			return working, nil
		},
	)
}

// swapBitGroups splits bits into chunks of bytesize bits and reverses
// their order, leaving bit order within each chunk untouched. A trailing
// partial chunk is kept whole and, like every other chunk, moves to the
// opposite end (it becomes the first chunk of the result).
func swapBitGroups(bits []byte, bytesize int) []byte {
	var groups [][]byte
	for i := 0; i < len(bits); i += bytesize {
		end := i + bytesize
		if end > len(bits) {
			end = len(bits)
		}
		groups = append(groups, bits[i:end])
	}
	out := make([]byte, 0, len(bits))
	for i := len(groups) - 1; i >= 0; i-- {
		out = append(out, groups[i]...)
	}
	return out
}

// bitsToBytes expands each byte of raw into 8 bit-bytes (value 0 or 1),
// most significant bit first — the decoder half of BitStruct's Buffered
// wrapping.
func bitsToBytes(raw []byte) ([]byte, error) {
	out := make([]byte, 0, len(raw)*8)
	for _, b := range raw {
		for i := 7; i >= 0; i-- {
			out = append(out, (b>>uint(i))&1)
		}
	}
	return out, nil
}

// bytesFromBits compresses a byte-per-bit sequence (length a multiple of
// 8) back into real bytes — the encoder half of BitStruct's Buffered
// wrapping.
func bytesFromBits(bits []byte) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("construct: bitstruct: %d bits is not a whole number of bytes", len(bits))
	}
	out := make([]byte, len(bits)/8)
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out, nil
}

// BitStruct returns a Struct whose children operate on a byte-per-bit
// view of the input: each "byte" StaticField/BitInteger/Padding children
// read inside it is really one bit, so a BitField("a", 3) reads 3 bits,
// not 3 bytes. The whole thing occupies ceil(total-bits/8) real bytes of
// the outer stream (total bits must be a multiple of 8).
func BitStruct(name string, children ...Construct) Construct {
	inner := Struct(name, children...)
	return Buffered(inner, bytesFromBits, bitsToBytes, func(n int) int { return n / 8 })
}

// BitField returns a construct that reads/writes an unsigned width-bit
// integer, most significant bit first. Must be used inside a BitStruct.
func BitField(name string, width int) Construct {
	return BitIntegerAdapter(StaticField(name, width), width, false, false, 8)
}

// Nibble reads/writes an unsigned 4-bit integer.
func Nibble(name string) Construct { return BitField(name, 4) }

// Bit reads/writes a single unsigned bit as an integer (0 or 1).
func Bit(name string) Construct { return BitField(name, 1) }

// Flag reads/writes a single bit as a bool.
func Flag(name string) Construct {
	return ExprAdapter(BitField(name, 1),
		func(v any, ctx *Container) (any, error) {
			if b, ok := v.(bool); ok && b {
				return int64(1), nil
			}
			return int64(0), nil
		},
		func(v any, ctx *Container) (any, error) {
			n, _ := toInt64(v)
			return n != 0, nil
		},
	)
}
