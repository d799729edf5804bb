package construct

import (
	"encoding/binary"
	"fmt"
	"math"

	"construct/internal/binio"
)

// staticField reads/writes exactly length raw bytes.
type staticField struct {
	base
	length int
}

// StaticField returns a construct that reads or writes exactly length raw
// bytes, handed back (or accepted) as a []byte.
func StaticField(name string, length int) Construct {
	if err := validateName(name); err != nil {
		panic(err)
	}
	return &staticField{base: newBase(name, FlagNone), length: length}
}

func (f *staticField) Parse(data []byte) (any, error)        { return entryParse(f, data) }
func (f *staticField) Build(value any) ([]byte, error)        { return entryBuild(f, value) }
func (f *staticField) SizeOf(ctx ...*Container) (int, error)  { return entrySizeOf(f, ctx) }

func (f *staticField) parse(r *binio.Reader, ctx *Container) (any, error) {
	data, err := r.ReadExact(f.length)
	if err != nil {
		return nil, newFieldError(fmt.Sprintf("%s: read %d bytes", f.Name(), f.length), err)
	}
	return data, nil
}

func (f *staticField) build(value any, w *binio.Writer, ctx *Container) error {
	data, err := dataLength(value, f.length)
	if err != nil {
		return newFieldError(f.Name(), err)
	}
	if err := w.WriteExact(f.length, data); err != nil {
		return newFieldError(f.Name(), err)
	}
	return nil
}

func (f *staticField) sizeof(ctx *Container) (int, error) { return f.length, nil }

// dataLength turns value into a byte slice of exactly want bytes, deriving
// a value's "length" by kind: a byte sequence uses its own length, a
// single byte is length 1, an integer uses the minimal width in {1,2,4}
// bytes it fits in unsigned, and a string uses its character count
// (encoded as raw bytes, one per character).
func dataLength(value any, want int) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		if len(v) != want {
			return nil, fmt.Errorf("length mismatch: have %d bytes, want %d", len(v), want)
		}
		return v, nil
	case byte:
		if want != 1 {
			return nil, fmt.Errorf("length mismatch: single byte given, want %d", want)
		}
		return []byte{v}, nil
	case string:
		if len(v) != want {
			return nil, fmt.Errorf("length mismatch: string of %d chars, want %d", len(v), want)
		}
		return []byte(v), nil
	case int, int8, int16, int32, int64, uint, uint16, uint32, uint64:
		n := toUint64(v)
		width := minimalWidth(n)
		if width != want {
			return nil, fmt.Errorf("integer %d needs %d bytes, field wants %d", n, width, want)
		}
		out := make([]byte, want)
		for i := want - 1; i >= 0; i-- {
			out[i] = byte(n)
			n >>= 8
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot derive byte length for %T", value)
	}
}

func toUint64(v any) uint64 {
	switch n := v.(type) {
	case int:
		return uint64(n)
	case int8:
		return uint64(n)
	case int16:
		return uint64(n)
	case int32:
		return uint64(n)
	case int64:
		return uint64(n)
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	default:
		return 0
	}
}

// minimalWidth returns the narrowest of {1, 2, 4} bytes that n fits in
// unsigned. Values requiring more than 4 bytes are reported as needing 8.
func minimalWidth(n uint64) int {
	switch {
	case n <= 0xFF:
		return 1
	case n <= 0xFFFF:
		return 2
	case n <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

// formatKind and formatSpec describe one FormatField wire type: its byte
// width, and whether it is signed, unsigned, or floating point.
type formatKind int

const (
	formatInt formatKind = iota
	formatUint
	formatFloat
)

type formatSpec struct {
	width int
	kind  formatKind
}

// formatTable maps the classic struct-module format characters to their
// fixed width and numeric kind. This table, plus encoding/binary, is the
// "external fixed-format packer" this engine treats as an out-of-scope
// collaborator: it performs no framing or context logic of its own.
var formatTable = map[byte]formatSpec{
	'b': {1, formatInt},
	'B': {1, formatUint},
	'h': {2, formatInt},
	'H': {2, formatUint},
	'i': {4, formatInt},
	'I': {4, formatUint},
	'l': {4, formatInt},
	'L': {4, formatUint},
	'q': {8, formatInt},
	'Q': {8, formatUint},
	'f': {4, formatFloat},
	'd': {8, formatFloat},
}

// formatField delegates to the external fixed-width packer, selected by
// endianness token and format code.
type formatField struct {
	base
	endianness byte
	code       byte
	spec       formatSpec
	order      binary.ByteOrder
}

// FormatField returns a construct that packs/unpacks a single fixed-width
// primitive using endianness ('<' little, '>' big, '=' native) and a
// classic struct-module format code (b/B/h/H/i/I/l/L/q/Q/f/d).
func FormatField(name string, endianness byte, code byte) Construct {
	if err := validateName(name); err != nil {
		panic(err)
	}
	var order binary.ByteOrder
	switch endianness {
	case '<':
		order = binary.LittleEndian
	case '>':
		order = binary.BigEndian
	case '=':
		order = binary.NativeEndian
	default:
		panic(newValueError(fmt.Sprintf("unsupported endianness %q", endianness)))
	}
	spec, ok := formatTable[code]
	if !ok {
		panic(newValueError(fmt.Sprintf("unsupported format code %q", code)))
	}
	return &formatField{
		base:       newBase(name, FlagNone),
		endianness: endianness,
		code:       code,
		spec:       spec,
		order:      order,
	}
}

func (f *formatField) Parse(data []byte) (any, error)       { return entryParse(f, data) }
func (f *formatField) Build(value any) ([]byte, error)       { return entryBuild(f, value) }
func (f *formatField) SizeOf(ctx ...*Container) (int, error) { return entrySizeOf(f, ctx) }

func (f *formatField) parse(r *binio.Reader, ctx *Container) (any, error) {
	data, err := r.ReadExact(f.spec.width)
	if err != nil {
		return nil, newFieldError(f.Name(), err)
	}
	switch f.spec.kind {
	case formatFloat:
		if f.spec.width == 4 {
			return math.Float32frombits(f.order.Uint32(data)), nil
		}
		return math.Float64frombits(f.order.Uint64(data)), nil
	case formatUint:
		return readUint(f.order, data), nil
	default: // formatInt
		return toSignedWidth(readUint(f.order, data), f.spec.width), nil
	}
}

func (f *formatField) build(value any, w *binio.Writer, ctx *Container) error {
	buf := make([]byte, f.spec.width)
	switch f.spec.kind {
	case formatFloat:
		fv, ok := toFloat64(value)
		if !ok {
			return newFieldError(f.Name(), fmt.Errorf("expected a float, got %T", value))
		}
		if f.spec.width == 4 {
			f.order.PutUint32(buf, math.Float32bits(float32(fv)))
		} else {
			f.order.PutUint64(buf, math.Float64bits(fv))
		}
	default:
		iv, ok := toInt64(value)
		if !ok {
			return newFieldError(f.Name(), fmt.Errorf("expected an integer, got %T", value))
		}
		writeUint(f.order, buf, uint64(iv))
	}
	if err := w.WriteExact(f.spec.width, buf); err != nil {
		return newFieldError(f.Name(), err)
	}
	return nil
}

func (f *formatField) sizeof(ctx *Container) (int, error) { return f.spec.width, nil }

func readUint(order binary.ByteOrder, data []byte) uint64 {
	switch len(data) {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(order.Uint16(data))
	case 4:
		return uint64(order.Uint32(data))
	case 8:
		return order.Uint64(data)
	default:
		return 0
	}
}

func writeUint(order binary.ByteOrder, buf []byte, v uint64) {
	switch len(buf) {
	case 1:
		buf[0] = byte(v)
	case 2:
		order.PutUint16(buf, uint16(v))
	case 4:
		order.PutUint32(buf, uint32(v))
	case 8:
		order.PutUint64(buf, v)
	}
}

func toSignedWidth(v uint64, width int) int64 {
	bits := uint(width * 8)
	signBit := uint64(1) << (bits - 1)
	if v&signBit != 0 {
		return int64(v) - int64(uint64(1)<<bits)
	}
	return int64(v)
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	default:
		return 0, false
	}
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
