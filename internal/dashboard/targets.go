package dashboard

// ResolveTargets picks the widgets a command applies to: the explicit
// selection if there is one, else the implicit widget if non-nil, else all.
func ResolveTargets(selected []Widget, implicit Widget, all []Widget) []Widget {
	if len(selected) > 0 {
		return selected
	}
	if implicit != nil {
		return []Widget{implicit}
	}
	return all
}
