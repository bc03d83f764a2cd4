package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rileyhilliard/cw/internal/dashboard"
)

const dateLayout = "2006-01-02 15:04"

// dateValues lives on the heap so the form's Value pointers stay valid while
// the Model is copied around by Bubble Tea.
type dateValues struct {
	from string
	to   string
}

// dateForm is the from/to prompt behind the d key.
type dateForm struct {
	form   *huh.Form
	values *dateValues
}

func newDateForm(start, end string) *dateForm {
	v := &dateValues{from: start, to: end}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("From").
				Description("2006-01-02 15:04, unix seconds, Jan 2 2006...").
				Value(&v.from),
			huh.NewInput().
				Title("To").
				Value(&v.to),
		),
	).WithShowHelp(false).WithWidth(48)

	return &dateForm{form: form, values: v}
}

func (d *dateForm) view() string {
	return ModalTitleStyle.Render("Date range") + "\n" + d.form.View() + "\n" +
		MutedStyle.Render("enter submit | esc cancel")
}

// openDateForm prefills the form with the window of the graph under the
// cursor, or the last day.
func (m *Model) openDateForm() tea.Cmd {
	now := m.clock()
	span, _ := dashboard.LastRange(now, dashboard.UnitDay)
	if c, ok := m.cursorWidget().(graphCard); ok {
		span = dashboard.DateRange{Start: c.Start(), End: c.End()}
	}

	m.dates = newDateForm(span.Start.Format(dateLayout), span.End.Format(dateLayout))
	return m.dates.form.Init()
}

// handleDateFormKey closes the form on esc and feeds it every other key.
func (m Model) handleDateFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == KeyClose {
		m.dates = nil
		return m, nil
	}
	return m.updateDateForm(msg)
}

// updateDateForm forwards msg to the form and submits it through the toolbar
// once completed. Invalid dates surface in the error modal.
func (m Model) updateDateForm(msg tea.Msg) (Model, tea.Cmd) {
	model, cmd := m.dates.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.dates.form = f
	}

	switch m.dates.form.State {
	case huh.StateCompleted:
		v := m.dates.values
		m.dates = nil
		m.dash.Toolbar.SubmitDate(v.from, v.to)
		return m, nil
	case huh.StateAborted:
		m.dates = nil
		return m, nil
	}
	return m, cmd
}
