package construct

import "fmt"

// MappingAdapter wraps child with a lookup table in each direction: decMap
// translates a parsed value to its mapped meaning, encMap translates a
// value back to what the child should write. A miss consults the
// matching default: nil raises a MappingError, Pass returns the input
// unchanged, anything else is used as the fallback value.
//
// On decode, single-byte sequences are normalized to their byte value
// before lookup, so a []byte{0x01} key behaves the same as an int(1) key;
// more generally, any integer-kind key (int, uint32, ...) is normalized to
// a common int64 representation so callers don't have to match the exact
// integer width a particular FormatField happens to produce.
func MappingAdapter(child Construct, decMap, encMap map[any]any, decDefault, encDefault any) Construct {
	dec := normalizeMapTable(decMap)
	enc := normalizeMapTable(encMap)
	return newAdapter(child,
		func(v any, ctx *Container) (any, error) { return mappingLookup(dec, decDefault, normalizeMapKey(v), v) },
		func(v any, ctx *Container) (any, error) { return mappingLookup(enc, encDefault, normalizeMapKey(v), v) },
	)
}

func normalizeMapTable(table map[any]any) map[any]any {
	out := make(map[any]any, len(table))
	for k, v := range table {
		out[normalizeMapKey(k)] = v
	}
	return out
}

func normalizeMapKey(v any) any {
	if b, ok := v.([]byte); ok && len(b) == 1 {
		return int64(b[0])
	}
	if n, ok := asInt64(v); ok {
		return n
	}
	return v
}

func mappingLookup(table map[any]any, def, key, original any) (any, error) {
	if v, ok := table[key]; ok {
		return v, nil
	}
	if def == nil {
		return nil, newMappingError(fmt.Sprintf("no mapping for %v", key))
	}
	if def == Pass {
		return original, nil
	}
	return def, nil
}
