// Package merge implements the depth-bounded structural merge used when
// layering configuration documents.
//
// Values follow the shape produced by TOML decoding: tables are
// map[string]any, arrays are []any, everything else is a scalar. Tables
// merge recursively up to a depth limit; arrays and scalars are opaque and
// the overlay side always replaces the base side. Type mismatches between
// the two sides resolve the same way: newest wins, never an error.
package merge

// MaxDepth is the merge depth used for configuration documents. Depth 3
// covers one level of sub-table nesting inside the editor settings without
// paying for unbounded recursion.
const MaxDepth = 3

// Merge merges overlay into base and returns the result. Neither input is
// mutated; the result shares no mutable structure with either input.
//
// If both sides are tables and maxDepth > 0, the result contains the union
// of their keys, recursing with maxDepth-1 for keys present in both. At
// depth zero, or when either side is not a table, overlay fully replaces
// base.
func Merge(base, overlay any, maxDepth int) any {
	baseTable, baseOK := base.(map[string]any)
	overlayTable, overlayOK := overlay.(map[string]any)
	if maxDepth <= 0 || !baseOK || !overlayOK {
		return Clone(overlay)
	}

	out := make(map[string]any, len(baseTable)+len(overlayTable))
	for key, val := range baseTable {
		out[key] = Clone(val)
	}
	for key, overlayVal := range overlayTable {
		if baseVal, exists := baseTable[key]; exists {
			out[key] = Merge(baseVal, overlayVal, maxDepth-1)
		} else {
			out[key] = Clone(overlayVal)
		}
	}
	return out
}

// Tables merges two tables, treating a nil side as empty. This is the entry
// point layered loading uses for the editor settings sub-tree.
func Tables(base, overlay map[string]any, maxDepth int) map[string]any {
	if base == nil {
		return CloneTable(overlay)
	}
	if overlay == nil {
		return CloneTable(base)
	}
	return Merge(base, overlay, maxDepth).(map[string]any)
}

// Clone creates a deep copy of a value.
func Clone(val any) any {
	switch v := val.(type) {
	case map[string]any:
		return CloneTable(v)
	case []any:
		return cloneSlice(v)
	default:
		return val
	}
}

// CloneTable creates a deep copy of a table.
func CloneTable(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, val := range src {
		dst[key] = Clone(val)
	}
	return dst
}

func cloneSlice(src []any) []any {
	if src == nil {
		return nil
	}
	dst := make([]any, len(src))
	for i, val := range src {
		dst[i] = Clone(val)
	}
	return dst
}
