package dashboard

import (
	"testing"
	"time"

	"github.com/rileyhilliard/cw/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolbar_SubmitDate(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{name: "iso dates", from: "2024-03-01", to: "2024-03-02 18:30"},
		{name: "unix seconds", from: "1700000000", to: "1700086400"},
		{name: "bad from", from: "yesterday", to: "2024-03-02", wantErr: true},
		{name: "bad to", from: "2024-03-01", to: "", wantErr: true},
		{name: "both bad", from: "x", to: "y", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := NewToolbar(nil)
			var ranges []DateRange
			var errs []string
			tb.SetDates.Subscribe(func(r DateRange) { ranges = append(ranges, r) })
			tb.Error.Subscribe(func(msg string) { errs = append(errs, msg) })

			tb.SubmitDate(tt.from, tt.to)

			if tt.wantErr {
				assert.Empty(t, ranges)
				assert.Equal(t, []string{InvalidDatesMessage}, errs)
				return
			}
			assert.Empty(t, errs)
			require.Len(t, ranges, 1)
			assert.True(t, ranges[0].Start.Before(ranges[0].End))
		})
	}
}

func TestToolbar_SelectTimespan(t *testing.T) {
	tb := NewToolbar(nil)
	var got []string
	tb.ChangeTimespan.Subscribe(func(u string) { got = append(got, u) })

	tb.SelectTimespan(UnitMonth)

	assert.Equal(t, []string{"month"}, got)
}

func TestToolbar_Press(t *testing.T) {
	tb := NewToolbar(nil)
	topics := map[Command]*events.Topic[events.Signal]{
		CmdSelectAll:    tb.SelectAll,
		CmdSelectNone:   tb.SelectNone,
		CmdMoveForward:  tb.MoveAllForward,
		CmdMoveBackward: tb.MoveAllBackward,
		CmdZoomIn:       tb.ZoomAllIn,
		CmdZoomOut:      tb.ZoomAllOut,
	}
	counts := map[string]int{}
	for _, topic := range topics {
		topic := topic
		topic.Subscribe(func(events.Signal) { counts[topic.Name()]++ })
	}

	for cmd := range topics {
		tb.Press(cmd)
	}
	tb.Press(Command(99))

	assert.Equal(t, map[string]int{
		"select-all":        1,
		"select-none":       1,
		"move-all-forward":  1,
		"move-all-backward": 1,
		"zoom-all-in":       1,
		"zoom-all-out":      1,
	}, counts)
}

func TestToolbar_ShowItem(t *testing.T) {
	tb := NewToolbar(nil)
	assert.Equal(t, ItemHome, tb.Item())

	tb.ShowItem(ItemTimespan)
	assert.Equal(t, ItemTimespan, tb.Item())

	tb.ShowItem("settings")
	assert.Equal(t, ItemTimespan, tb.Item())

	tb.NextItem()
	assert.Equal(t, ItemHome, tb.Item())
	tb.NextItem()
	assert.Equal(t, ItemPanZoom, tb.Item())
}

func TestOptions_PublishesToggles(t *testing.T) {
	o := NewOptions()
	var ruler, lazy []bool
	var views []string
	o.SetRuler.Subscribe(func(v bool) { ruler = append(ruler, v) })
	o.SetLazy.Subscribe(func(v bool) { lazy = append(lazy, v) })
	o.GridView.Subscribe(func(v string) { views = append(views, v) })

	o.ToggleRuler(true)
	o.ToggleLazy(true)
	o.ToggleLazy(false)
	o.ChangeGridView(ViewGrid)

	assert.Equal(t, []bool{true}, ruler)
	assert.Equal(t, []bool{true, false}, lazy)
	assert.Equal(t, []string{"grid"}, views)
	assert.True(t, o.Ruler())
	assert.False(t, o.Lazy())
	assert.Equal(t, ViewGrid, o.View())
}

func TestParseDate(t *testing.T) {
	local := func(y int, m time.Month, d, h, min int) time.Time {
		return time.Date(y, m, d, h, min, 0, 0, time.Local)
	}

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-03-01T10:00:00Z", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), true},
		{"2024-03-01 10:30", local(2024, 3, 1, 10, 30), true},
		{"2024-03-01", local(2024, 3, 1, 0, 0), true},
		{"2024/03/01", local(2024, 3, 1, 0, 0), true},
		{"03/01/2024", local(2024, 3, 1, 0, 0), true},
		{"Mar 1, 2024", local(2024, 3, 1, 0, 0), true},
		{"1 Mar 2024", local(2024, 3, 1, 0, 0), true},
		{"  1700000000 ", time.Unix(1700000000, 0), true},
		{"", time.Time{}, false},
		{"2024-13-01", time.Time{}, false},
		{"next tuesday", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestAddTime(t *testing.T) {
	base := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		unit string
		want time.Time
	}{
		{UnitHour, time.Date(2024, 3, 31, 11, 0, 0, 0, time.UTC)},
		{UnitDay, time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)},
		{UnitWeek, time.Date(2024, 3, 24, 12, 0, 0, 0, time.UTC)},
		// Feb 31 normalizes to Mar 2.
		{UnitMonth, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)},
		{UnitYear, time.Date(2023, 3, 31, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, err := AddTime(base, -1, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := AddTime(base, -1, "decade")
	assert.Error(t, err)
}
