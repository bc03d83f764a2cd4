package dashboard

// Ruler is a vertical marker drawn across the grid to line up the same
// instant on stacked graphs.
type Ruler struct {
	visible bool
	pos     int
}

func (r *Ruler) Show()         { r.visible = true }
func (r *Ruler) Hide()         { r.visible = false }
func (r *Ruler) Visible() bool { return r.visible }

// Position is the ruler column, counted from the left edge of a graph.
func (r *Ruler) Position() int { return r.pos }

// Move shifts the ruler by delta columns, stopping at zero.
func (r *Ruler) Move(delta int) {
	r.pos += delta
	if r.pos < 0 {
		r.pos = 0
	}
}

// Set toggles visibility from a checkbox value.
func (r *Ruler) Set(visible bool) {
	if visible {
		r.Show()
		return
	}
	r.Hide()
}
