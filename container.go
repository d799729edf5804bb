package construct

// Reserved context keys. A user-supplied field name can never collide with
// these; validateName rejects them at descriptor construction.
const (
	keyParent   = "_"
	keyObj      = "<obj>"
	keyUnnested = "<unnested>"
)

// Pair is one key-value entry, used only to build a Container literal via
// the NewContainer helper constructor.
type Pair struct {
	Key   string
	Value any
}

// P builds a Pair for use with NewContainer.
func P(key string, value any) Pair { return Pair{Key: key, Value: value} }

// Container is an ordered, string-keyed mapping used both as parsed output
// and as the parse/build context threaded through a construct tree.
//
// Iteration order follows insertion order so that building a container
// obtained from a parse round-trips field-for-field. Equality, however,
// only compares the key-value set: two containers with the same pairs in
// different orders are equal.
type Container struct {
	keys   []string
	values map[string]any
}

// NewContainer builds a Container from the given pairs, in order.
func NewContainer(pairs ...Pair) *Container {
	c := &Container{values: make(map[string]any, len(pairs))}
	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}
	return c
}

// Get returns the value stored under key and whether it was present.
func (c *Container) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[key]
	return v, ok
}

// MustGet returns the value stored under key, or nil if absent.
func (c *Container) MustGet(key string) any {
	v, _ := c.Get(key)
	return v
}

// Set stores value under key, preserving key's original position if it was
// already present, or appending it as a new key.
func (c *Container) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Delete removes key, if present.
func (c *Container) Delete(key string) {
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Contains reports whether key is present.
func (c *Container) Contains(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns the keys in insertion order. The caller must not mutate the
// returned slice.
func (c *Container) Keys() []string {
	if c == nil {
		return nil
	}
	return c.keys
}

// Len returns the number of entries.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Equal reports whether c and other hold the same set of key-value pairs,
// regardless of order. Values are compared with reflect-free ==  where
// possible; []byte and nested *Container values get dedicated comparisons.
func (c *Container) Equal(other *Container) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Len() != other.Len() {
		return false
	}
	for _, k := range c.keys {
		av := c.values[k]
		bv, ok := other.values[k]
		if !ok {
			return false
		}
		if !valuesEqual(av, bv) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	if ai, aok := asInt64(a); aok {
		if bi, bok := asInt64(b); bok {
			return ai == bi
		}
	}
	switch av := a.(type) {
	case []byte:
		var bv []byte
		switch b := b.(type) {
		case []byte:
			bv = b
		case string:
			bv = []byte(b)
		default:
			return false
		}
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case string:
		if bv, ok := b.([]byte); ok {
			return valuesEqual(bv, av)
		}
		return a == b
	case *Container:
		bv, ok := b.(*Container)
		if !ok {
			return false
		}
		return av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// asInt64 reports whether v is one of Go's built-in integer kinds and
// returns it widened to int64, so that values produced by different
// FormatField widths (e.g. a uint64 from an unsigned field vs. an int
// literal in a Mapping/OneOf table) compare equal when numerically equal.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

// newContext creates a fresh, empty Container for use as a parse/build
// context.
func newContext() *Container {
	return &Container{values: make(map[string]any)}
}

// childContext returns a new context nesting parent under keyParent.
func childContext(parent *Container) *Container {
	ctx := newContext()
	ctx.Set(keyParent, parent)
	return ctx
}
