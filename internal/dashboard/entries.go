package dashboard

// entryList is the filterable, exclusively-selectable list shared by the
// host and plugin lists.
type entryList struct {
	items    []Pair
	query    string
	selected string
}

// replace swaps in a freshly fetched listing. The filter query survives,
// and so does the selection when its URL is still listed. It reports
// whether the selection was kept.
func (l *entryList) replace(items []Pair) bool {
	l.items = items
	if l.selected != "" && !l.contains(l.selected) {
		l.selected = ""
		return false
	}
	return true
}

func (l *entryList) filter(query string) {
	l.query = query
}

// visible returns the entries whose label contains the query, ignoring case.
func (l *entryList) visible() []Pair {
	return FilterPairs(l.items, l.query)
}

func (l *entryList) contains(url string) bool {
	for _, p := range l.items {
		if p.URL == url {
			return true
		}
	}
	return false
}

// choose marks url as the only selected entry. Unknown URLs are ignored.
func (l *entryList) choose(url string) bool {
	if !l.contains(url) {
		return false
	}
	l.selected = url
	return true
}
