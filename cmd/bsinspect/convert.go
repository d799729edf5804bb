package main

import (
	"encoding/base64"

	"construct"
)

// bytesKey is the one field of the {"$bytes": "..."} shape containerToAny
// emits for raw byte values, so anyToContainerValue can tell a byte string
// apart from an ordinary text field without any format-specific schema.
const bytesKey = "$bytes"

// containerToAny recursively converts a parsed *construct.Container (and
// any nested containers/lists) into plain map[string]any/[]any so it can be
// handed to encoding/json. []byte values become {"$bytes": "<base64>"}
// rather than a bare base64 string so anyToContainerValue can invert them
// exactly; a bare string would be ambiguous with a genuine text field.
func containerToAny(v any) any {
	switch val := v.(type) {
	case *construct.Container:
		out := make(map[string]any, val.Len())
		for _, k := range val.Keys() {
			cv, _ := val.Get(k)
			out[k] = containerToAny(cv)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = containerToAny(e)
		}
		return out
	case []byte:
		return map[string]any{bytesKey: base64.StdEncoding.EncodeToString(val)}
	default:
		return val
	}
}

// anyToContainerValue is containerToAny's inverse for values decoded from
// JSON: nested JSON objects become *construct.Container so Struct.build can
// walk them (a lone "$bytes" key decodes back to []byte instead), and
// json.Number-less float64 integers are normalized back to int64 so they
// compare equal against engine-produced integer values.
func anyToContainerValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if len(val) == 1 {
			if encoded, ok := val[bytesKey].(string); ok {
				if decoded, err := base64.StdEncoding.DecodeString(encoded); err == nil {
					return decoded
				}
			}
		}
		c := construct.NewContainer()
		for k, e := range val {
			c.Set(k, anyToContainerValue(e))
		}
		return c
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = anyToContainerValue(e)
		}
		return out
	case float64:
		if n := int64(val); float64(n) == val {
			return n
		}
		return val
	default:
		return val
	}
}
