package construct

import "fmt"

// PaddingAdapter wraps child (typically a StaticField) to represent filler bytes.
// On build it always writes sizeof(child) copies of pattern. On parse, if
// strict it requires every byte to equal pattern and fails with a
// PaddingError otherwise; non-strict parsing just returns the bytes as-is.
func PaddingAdapter(child Construct, pattern byte, strict bool) Construct {
	return newAdapter(child,
		func(v any, ctx *Container) (any, error) {
			if !strict {
				return v, nil
			}
			data, ok := v.([]byte)
			if !ok {
				return nil, newPaddingError(fmt.Sprintf("expected []byte, got %T", v))
			}
			for i, b := range data {
				if b != pattern {
					return nil, newPaddingError(fmt.Sprintf("byte %d is 0x%02x, want 0x%02x", i, b, pattern))
				}
			}
			return v, nil
		},
		func(v any, ctx *Container) (any, error) {
			n, err := child.sizeof(ctx)
			if err != nil {
				return nil, wrapSizeof(err)
			}
			out := make([]byte, n)
			for i := range out {
				out[i] = pattern
			}
			return out, nil
		},
	)
}
