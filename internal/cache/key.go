package cache

import (
	"fmt"
	"sort"
	"strings"
)

// BuildKey returns a canonical cache key for a request path and its parameters.
// Format: <path>?k1=v1&k2=v2 with keys in code-point order.
// Values are formatted with fmt.Sprint; nothing is escaped, so the result is
// not guaranteed to be a valid URI.
func BuildKey(path string, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(path)
	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fmt.Sprint(params[k]))
	}
	return b.String()
}
