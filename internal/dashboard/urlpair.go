package dashboard

import (
	"sort"
	"strings"
)

// Pair is a display-ready resource reference: the server URL and the label
// shown for it.
type Pair struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// IndexURLs sorts urls lexicographically and names each one after its last
// non-empty path segment.
func IndexURLs(urls []string) []Pair {
	sorted := make([]string, len(urls))
	copy(sorted, urls)
	sort.Strings(sorted)
	return NamePairs(sorted)
}

// NamePairs names each url after its last non-empty path segment, keeping
// the given order.
func NamePairs(urls []string) []Pair {
	pairs := make([]Pair, 0, len(urls))
	for _, u := range urls {
		pairs = append(pairs, Pair{URL: u, Name: lastSegment(u)})
	}
	return pairs
}

// FilterPairs returns the pairs whose name contains query, ignoring case.
// An empty query matches everything.
func FilterPairs(pairs []Pair, query string) []Pair {
	if query == "" {
		return pairs
	}

	needle := strings.ToLower(query)
	var out []Pair
	for _, p := range pairs {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

func lastSegment(u string) string {
	segments := strings.Split(u, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}
