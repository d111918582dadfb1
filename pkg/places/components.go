package places

import (
	"sort"
	"strings"
)

// Component filters accepted by the API.
var allowedComponents = map[string]bool{
	"administrative_area": true,
	"country":             true,
	"locality":            true,
	"postal_code":         true,
	"route":               true,
}

// EncodeComponents serializes a components filter into the "name:value"
// pairs joined by "|" that the API expects, keys in sorted order. Keys
// outside the accepted filter set are skipped; an accepted key without a
// value is a MissingValueError. An empty map yields an empty string.
func EncodeComponents(components map[string]string) (string, error) {
	if len(components) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(components))
	for k := range components {
		if !allowedComponents[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v := components[k]
		if v == "" {
			return "", &MissingValueError{Component: k}
		}
		pairs = append(pairs, k+":"+v)
	}

	return strings.Join(pairs, "|"), nil
}
