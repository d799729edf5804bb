package construct

import (
	"fmt"

	"construct/internal/binio"
)

// Buffered is a subconstruct that materializes an intermediate byte
// buffer so its child sees an encoded/decoded view distinct from the
// outer stream — for example, bit-packed data expanded to one byte per
// bit. Pointers inside a Buffered child are not supported: there is no
// offset translation between the outer stream and the scratch buffer.
type buffered struct {
	subconstruct
	encoder func([]byte) ([]byte, error)
	decoder func([]byte) ([]byte, error)
	resizer func(int) int
}

// Buffered returns a construct that reads resizer(child.SizeOf(ctx)) raw
// bytes, runs them through decoder, and parses child from the result; on
// build it builds child into a scratch buffer, runs it through encoder,
// and writes the result to the outer stream after checking its length
// matches resizer(child.SizeOf(ctx)). encoder must be length-preserving
// under resizer, or the size check will fail.
func Buffered(child Construct, encoder, decoder func([]byte) ([]byte, error), resizer func(int) int) Construct {
	if resizer == nil {
		resizer = func(n int) int { return n }
	}
	return &buffered{subconstruct: newSubconstruct(child), encoder: encoder, decoder: decoder, resizer: resizer}
}

func (b *buffered) Parse(data []byte) (any, error)       { return entryParse(b, data) }
func (b *buffered) Build(value any) ([]byte, error)       { return entryBuild(b, value) }
func (b *buffered) SizeOf(ctx ...*Container) (int, error) { return entrySizeOf(b, ctx) }

func (b *buffered) parse(r *binio.Reader, ctx *Container) (any, error) {
	childSize, err := b.child.sizeof(ctx)
	if err != nil {
		return nil, wrapSizeof(err)
	}
	n := b.resizer(childSize)
	raw, err := r.ReadExact(n)
	if err != nil {
		return nil, newFieldError(b.Name(), err)
	}
	decoded, err := b.decoder(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: decode: %w", b.Name(), err)
	}
	inner := binio.NewReader(decoded)
	return b.child.parse(inner, ctx)
}

func (b *buffered) build(value any, w *binio.Writer, ctx *Container) error {
	scratch := binio.NewWriter()
	if err := b.child.build(value, scratch, ctx); err != nil {
		return err
	}
	encoded, err := b.encoder(scratch.Bytes())
	if err != nil {
		return fmt.Errorf("%s: encode: %w", b.Name(), err)
	}
	childSize, err := b.child.sizeof(ctx)
	if err != nil {
		return wrapSizeof(err)
	}
	want := b.resizer(childSize)
	if len(encoded) != want {
		return newFieldError(b.Name(), fmt.Errorf("encoder produced %d bytes, want %d", len(encoded), want))
	}
	if err := w.WriteExact(want, encoded); err != nil {
		return newFieldError(b.Name(), err)
	}
	return nil
}

func (b *buffered) sizeof(ctx *Container) (int, error) {
	n, err := b.child.sizeof(ctx)
	if err != nil {
		return 0, err
	}
	return b.resizer(n), nil
}
