package construct

import "fmt"

// Validator wraps child with validate, applied identically on parse and
// build: if it returns true the value passes through unchanged, otherwise
// the operation fails with a ValidationError.
func Validator(child Construct, validate func(obj any, ctx *Container) bool) Construct {
	check := func(v any, ctx *Container) (any, error) {
		if !validate(v, ctx) {
			return nil, newValidationError(fmt.Sprintf("value %v rejected", v))
		}
		return v, nil
	}
	return newAdapter(child, check, check)
}

// OneOf wraps child so only values in allowed pass validation, on both
// parse and build.
func OneOf(child Construct, allowed []any) Construct {
	return Validator(child, func(v any, ctx *Container) bool {
		for _, a := range allowed {
			if valuesEqual(v, a) {
				return true
			}
		}
		return false
	})
}
