package tui

import tea "github.com/charmbracelet/bubbletea"

// appliedMsg carries the result of background work back to Update.
type appliedMsg struct {
	apply func()
}

// cmdRunner implements dashboard.Runner on top of tea.Cmd. Go is called from
// Update; the queued commands are handed to Bubble Tea by drain, and their
// results come back as appliedMsg.
type cmdRunner struct {
	pending  []tea.Cmd
	inflight int
}

func (r *cmdRunner) Go(work func() func()) {
	r.inflight++
	r.pending = append(r.pending, func() tea.Msg {
		return appliedMsg{apply: work()}
	})
}

// drain returns the queued commands as one batch.
func (r *cmdRunner) drain() tea.Cmd {
	if len(r.pending) == 0 {
		return nil
	}
	cmds := r.pending
	r.pending = nil
	return tea.Batch(cmds...)
}

// finish applies a result and marks its request done.
func (r *cmdRunner) finish(msg appliedMsg) {
	if r.inflight > 0 {
		r.inflight--
	}
	if msg.apply != nil {
		msg.apply()
	}
}

// busy reports whether any request is still running.
func (r *cmdRunner) busy() bool {
	return r.inflight > 0
}
