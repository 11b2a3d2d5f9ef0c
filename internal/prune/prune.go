// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prune removes empty values from decoded JSON documents. The
// upstream APIs pad responses with nulls, empty strings, empty arrays and
// empty objects; pruning keeps command output readable.
package prune

// Prune returns v with every key whose value is null, an empty string, an
// empty array, or an empty object removed, at every nesting depth. List
// elements that reduce to empty values are dropped as well. Numbers and
// booleans are never removed, including 0 and false. Prune is idempotent.
func Prune(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			p := Prune(val)
			if isEmpty(p) {
				continue
			}
			out[k] = p
		}
		return out
	case []any:
		out := make([]any, 0, len(x))
		for _, val := range x {
			p := Prune(val)
			if isEmpty(p) {
				continue
			}
			out = append(out, p)
		}
		return out
	default:
		return v
	}
}

// Map prunes a JSON object in place of the generic form, preserving the
// map type for callers.
func Map(m map[string]any) map[string]any {
	pruned, _ := Prune(m).(map[string]any)
	return pruned
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case map[string]any:
		return len(x) == 0
	case []any:
		return len(x) == 0
	default:
		return false
	}
}
