package construct

import (
	"fmt"

	"construct/internal/binio"
)

// contextField reads/writes a number of bytes determined at parse/build
// time by consulting the current context, for fields whose size is carried
// by an earlier sibling rather than fixed when the descriptor is built.
type contextField struct {
	base
	lengthFn func(ctx *Container) (int, error)
}

// FieldFromContext returns a construct that reads or writes exactly
// lengthFn(ctx) raw bytes, the variable-length counterpart to StaticField
// for length-prefixed payloads: a length field parsed earlier in the same
// Struct sets its value into the shared context, and this field's lengthFn
// reads it back out. SizeOf without enough context to evaluate lengthFn
// raises a SizeofError.
func FieldFromContext(name string, lengthFn func(ctx *Container) (int, error)) Construct {
	if err := validateName(name); err != nil {
		panic(err)
	}
	return &contextField{base: newBase(name, FlagDynamic), lengthFn: lengthFn}
}

// FromContext returns a lengthFn that reads key out of the context as an
// integer — the common case of "the length is whatever the field named
// key parsed to".
func FromContext(key string) func(ctx *Container) (int, error) {
	return func(ctx *Container) (int, error) {
		v, ok := ctx.Get(key)
		if !ok {
			return 0, fmt.Errorf("construct: context has no key %q", key)
		}
		n, ok := asInt64(v)
		if !ok {
			return 0, fmt.Errorf("construct: context key %q is not an integer (got %T)", key, v)
		}
		return int(n), nil
	}
}

func (f *contextField) Parse(data []byte) (any, error)       { return entryParse(f, data) }
func (f *contextField) Build(value any) ([]byte, error)       { return entryBuild(f, value) }
func (f *contextField) SizeOf(ctx ...*Container) (int, error) { return entrySizeOf(f, ctx) }

func (f *contextField) parse(r *binio.Reader, ctx *Container) (any, error) {
	n, err := f.lengthFn(ctx)
	if err != nil {
		return nil, newFieldError(f.Name(), err)
	}
	data, err := r.ReadExact(n)
	if err != nil {
		return nil, newFieldError(fmt.Sprintf("%s: read %d bytes", f.Name(), n), err)
	}
	return data, nil
}

func (f *contextField) build(value any, w *binio.Writer, ctx *Container) error {
	n, err := f.lengthFn(ctx)
	if err != nil {
		return newFieldError(f.Name(), err)
	}
	data, err := dataLength(value, n)
	if err != nil {
		return newFieldError(f.Name(), err)
	}
	if err := w.WriteExact(n, data); err != nil {
		return newFieldError(f.Name(), err)
	}
	return nil
}

func (f *contextField) sizeof(ctx *Container) (int, error) {
	return f.lengthFn(ctx)
}
