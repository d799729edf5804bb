package construct

import "construct/internal/binio"

// subconstruct is embedded by every wrapper type that forwards its three
// operations to a single child by default, inheriting the child's name and
// flags. Adapter and Buffered both embed it.
type subconstruct struct {
	base
	child Construct
}

func newSubconstruct(child Construct) subconstruct {
	s := subconstruct{child: child}
	s.name = child.Name()
	if s.name == "unnamed" {
		s.name = ""
	}
	s.inheritFlags(child)
	return s
}

// adapter is a subconstruct that inserts a value transformation: decode on
// parse, encode on build. It never touches the stream directly — the
// child does all I/O, and size is unchanged from the child.
type adapter struct {
	subconstruct
	decode func(v any, ctx *Container) (any, error)
	encode func(v any, ctx *Container) (any, error)
}

func newAdapter(child Construct, decode, encode func(any, *Container) (any, error)) *adapter {
	return &adapter{subconstruct: newSubconstruct(child), decode: decode, encode: encode}
}

func (a *adapter) Parse(data []byte) (any, error)        { return entryParse(a, data) }
func (a *adapter) Build(value any) ([]byte, error)        { return entryBuild(a, value) }
func (a *adapter) SizeOf(ctx ...*Container) (int, error)  { return entrySizeOf(a, ctx) }

func (a *adapter) parse(r *binio.Reader, ctx *Container) (any, error) {
	raw, err := a.child.parse(r, ctx)
	if err != nil {
		return nil, err
	}
	return a.decode(raw, ctx)
}

func (a *adapter) build(value any, w *binio.Writer, ctx *Container) error {
	encoded, err := a.encode(value, ctx)
	if err != nil {
		return err
	}
	return a.child.build(encoded, w, ctx)
}

func (a *adapter) sizeof(ctx *Container) (int, error) { return a.child.sizeof(ctx) }

// ExprAdapter returns an adapter whose decode/encode functions are
// supplied directly, for one-off value transforms that don't warrant a
// dedicated adapter type.
func ExprAdapter(child Construct, encodeFn, decodeFn func(obj any, ctx *Container) (any, error)) Construct {
	return newAdapter(child, decodeFn, encodeFn)
}
