package format

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Route substitutes every ":name" placeholder in route with params[name].
//
// Longer names are replaced first so ":token" never clobbers ":tokenId".
func Route(route string, params map[string]string) string {
	names := slices.SortedFunc(maps.Keys(params), func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
	})

	formatted := route
	for _, name := range names {
		formatted = strings.ReplaceAll(formatted, ":"+name, params[name])
	}

	return formatted
}
