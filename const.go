package construct

import "fmt"

// Const wraps child so parsing requires the decoded value to equal
// expected, and building writes expected unconditionally (accepting nil or
// expected itself as input). It's the classic magic-number guard: use it
// to pin a fixed signature like "MZ" at the front of a format.
func Const(child Construct, expected any) Construct {
	return newAdapter(child,
		func(v any, ctx *Container) (any, error) {
			if !valuesEqual(v, expected) {
				return nil, newConstError(fmt.Sprintf("got %v, want %v", v, expected))
			}
			return v, nil
		},
		func(v any, ctx *Container) (any, error) {
			if v == nil {
				return expected, nil
			}
			if !valuesEqual(v, expected) {
				return nil, newConstError(fmt.Sprintf("got %v, want %v", v, expected))
			}
			return v, nil
		},
	)
}
