// Package construct is a declarative library for parsing and building
// binary data. A layout is described once, as a tree of small composable
// constructs; the same tree drives three operations: Parse (bytes ->
// value), Build (value -> bytes), and SizeOf (-> byte count).
package construct

import (
	"strings"

	"construct/internal/binio"
)

// Flags is a bitset carried by every construct. Only FlagEmbed changes
// behavior in this engine; the others are tracked so extensions built on
// top of it have somewhere to put their own signaling.
type Flags uint8

const (
	FlagNone        Flags = 0
	FlagCopyContext Flags = 1 << 0
	FlagDynamic     Flags = 1 << 1
	FlagEmbed       Flags = 1 << 2
	FlagNesting     Flags = 1 << 3
)

// Has reports whether want is a subset of f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// with unions extra flags into f.
func (f Flags) with(extra Flags) Flags { return f | extra }

// Construct is the contract every descriptor satisfies: parse bytes into a
// value, build a value into bytes, and report its size. The unexported
// methods are the recursive extension points used while walking a tree;
// only this package implements them, which keeps the set of composable
// primitives closed and lets Adapter/Subconstruct forward to any of them
// without a type switch.
type Construct interface {
	// Name returns the descriptor's name, or "unnamed" if it has none.
	Name() string
	// Flags returns the descriptor's flag set.
	Flags() Flags

	// Parse decodes data from scratch, with a fresh empty context.
	Parse(data []byte) (any, error)
	// Build encodes value from scratch, with a fresh empty context.
	Build(value any) ([]byte, error)
	// SizeOf reports the byte size of this construct. If ctx is omitted a
	// fresh empty context is used; size-dependent constructs without
	// enough context fail with a *SizeofError.
	SizeOf(ctx ...*Container) (int, error)

	parse(r *binio.Reader, ctx *Container) (any, error)
	build(value any, w *binio.Writer, ctx *Container) error
	sizeof(ctx *Container) (int, error)
}

// base is embedded by every concrete construct to provide Name/Flags and
// the shared Parse/Build/SizeOf entry points.
type base struct {
	name  string
	flags Flags
}

func newBase(name string, flags Flags) base {
	return base{name: name, flags: flags}
}

func (b *base) Name() string {
	if b.name == "" {
		return "unnamed"
	}
	return b.name
}

func (b *base) Flags() Flags { return b.flags }

func (b *base) inheritFlags(children ...Construct) {
	for _, c := range children {
		b.flags = b.flags.with(c.Flags())
	}
}

// validateName rejects the reserved context keys so a user-supplied field
// name can never shadow internal signaling state. An empty name ("no
// name", i.e. an unnamed/padding field) is always allowed.
func validateName(name string) error {
	if name == "" {
		return nil
	}
	if name == keyParent {
		return newValueError(`name "_" is reserved for the parent-context key`)
	}
	if strings.HasPrefix(name, "<") {
		return newValueError("name " + name + " is reserved (starts with \"<\")")
	}
	return nil
}

// entryParse is the shared Parse implementation: wrap data in a cursor and
// delegate to self.parse with a fresh context.
func entryParse(self Construct, data []byte) (any, error) {
	r := binio.NewReader(data)
	return self.parse(r, newContext())
}

// entryBuild is the shared Build implementation: allocate an output buffer
// and delegate to self.build with a fresh context.
func entryBuild(self Construct, value any) ([]byte, error) {
	w := binio.NewWriter()
	if err := self.build(value, w, newContext()); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// entrySizeOf is the shared SizeOf implementation: delegate to self.sizeof
// with the given or a fresh context, wrapping any failure as a SizeofError.
func entrySizeOf(self Construct, ctx []*Container) (int, error) {
	c := newContext()
	if len(ctx) > 0 && ctx[0] != nil {
		c = ctx[0]
	}
	n, err := self.sizeof(c)
	if err != nil {
		return 0, wrapSizeof(err)
	}
	return n, nil
}

// Pass is a singleton no-op construct: it parses to nil, builds nothing,
// and has zero size. It is also used as a sentinel default inside Mapping
// to mean "pass the input through unchanged".
var Pass Construct = &passConstruct{base: newBase("", FlagNone)}

type passConstruct struct {
	base
}

func (p *passConstruct) Parse(data []byte) (any, error)             { return entryParse(p, data) }
func (p *passConstruct) Build(value any) ([]byte, error)            { return entryBuild(p, value) }
func (p *passConstruct) SizeOf(ctx ...*Container) (int, error)      { return entrySizeOf(p, ctx) }
func (p *passConstruct) parse(*binio.Reader, *Container) (any, error) { return nil, nil }
func (p *passConstruct) build(any, *binio.Writer, *Container) error   { return nil }
func (p *passConstruct) sizeof(*Container) (int, error)               { return 0, nil }
