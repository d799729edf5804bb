package construct

import (
	"fmt"

	"construct/internal/binio"
)

// Struct is an ordered sequence of named subconstructs. By default it
// nests the context it's given so each of its children's reads/writes
// are framed by a fresh Container whose only entry is the parent context
// (reachable by the reserved key "_"). A Struct whose EMBED flag is set by
// its parent instead has its fields placed directly into the parent's
// output container — see the embed algorithm in parse/build below.
type structConstruct struct {
	base
	children []Construct
	nested   bool
}

// Struct returns a construct that parses/builds children in declaration
// order into/from a Container keyed by each child's name. Unnamed children
// are parsed and discarded (e.g. padding); children with the EMBED flag
// (see EmbedStruct) have their own fields placed directly
// into this struct's output instead of being nested under a name.
func Struct(name string, children ...Construct) Construct {
	if err := validateName(name); err != nil {
		panic(err)
	}
	s := &structConstruct{base: newBase(name, FlagNesting), children: children, nested: true}
	s.inheritFlags(children...)
	// An embedded child does not make this Struct embedded itself; only
	// EmbedStruct sets FlagEmbed on a Struct.
	s.flags &^= FlagEmbed
	return s
}

// EmbedStruct marks a Struct so that, when used as a child of another
// Struct, its fields are placed directly into the parent's output
// container instead of being nested under its own name.
func EmbedStruct(s Construct) Construct {
	inner, ok := s.(*structConstruct)
	if !ok {
		panic(newValueError("EmbedStruct requires a Struct"))
	}
	embedded := *inner
	embedded.flags = embedded.flags.with(FlagEmbed)
	return &embedded
}

func (s *structConstruct) Parse(data []byte) (any, error)       { return entryParse(s, data) }
func (s *structConstruct) Build(value any) ([]byte, error)       { return entryBuild(s, value) }
func (s *structConstruct) SizeOf(ctx ...*Container) (int, error) { return entrySizeOf(s, ctx) }

func (s *structConstruct) parse(r *binio.Reader, ctx *Container) (any, error) {
	var obj *Container
	if raw, ok := ctx.Get(keyObj); ok {
		obj = raw.(*Container)
		ctx.Delete(keyObj)
	} else {
		obj = newContext()
		if s.nested {
			ctx = childContext(ctx)
		}
	}

	for _, child := range s.children {
		if child.Flags().Has(FlagEmbed) {
			ctx.Set(keyObj, obj)
			if _, err := child.parse(r, ctx); err != nil {
				return nil, fmt.Errorf("%s: embedded %s: %w", s.Name(), child.Name(), err)
			}
			continue
		}
		name := rawChildName(child)
		if name == "" {
			if _, err := child.parse(r, ctx); err != nil {
				return nil, fmt.Errorf("%s: %w", s.Name(), err)
			}
			continue
		}
		v, err := child.parse(r, ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: field %s: %w", s.Name(), name, err)
		}
		obj.Set(name, v)
		ctx.Set(name, v)
	}
	return obj, nil
}

func (s *structConstruct) build(value any, w *binio.Writer, ctx *Container) error {
	if ctx.Contains(keyUnnested) {
		ctx.Delete(keyUnnested)
	} else if s.nested {
		ctx = childContext(ctx)
	}

	cv, isContainer := value.(*Container)

	for _, child := range s.children {
		if child.Flags().Has(FlagEmbed) {
			ctx.Set(keyUnnested, true)
			if err := child.build(value, w, ctx); err != nil {
				return fmt.Errorf("%s: embedded %s: %w", s.Name(), child.Name(), err)
			}
			continue
		}
		name := rawChildName(child)
		if name == "" {
			if err := child.build(nil, w, ctx); err != nil {
				return fmt.Errorf("%s: %w", s.Name(), err)
			}
			continue
		}
		if !isContainer {
			// A non-Container value where a named child is expected is
			// tolerated: that child's write is skipped silently.
			continue
		}
		sub, _ := cv.Get(name)
		ctx.Set(name, sub)
		if err := child.build(sub, w, ctx); err != nil {
			return fmt.Errorf("%s: field %s: %w", s.Name(), name, err)
		}
	}
	return nil
}

func (s *structConstruct) sizeof(ctx *Container) (int, error) {
	if s.nested {
		ctx = childContext(ctx)
	}
	total := 0
	for _, child := range s.children {
		n, err := child.sizeof(ctx)
		if err != nil {
			return 0, fmt.Errorf("%s: field %s: %w", s.Name(), child.Name(), err)
		}
		total += n
	}
	return total, nil
}

// rawChildName returns "" for an unnamed child and the declared name
// otherwise, regardless of how Name() renders an unnamed construct for
// display.
func rawChildName(c Construct) string {
	if c.Name() == "unnamed" {
		return ""
	}
	return c.Name()
}
