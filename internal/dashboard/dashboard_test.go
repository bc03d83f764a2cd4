package dashboard

import (
	"testing"

	"github.com/rileyhilliard/cw/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(t *testing.T) (*Dashboard, *widgetRecorder) {
	t.Helper()
	rec := &widgetRecorder{}
	d := New(Deps{
		Source:    listingSource(),
		Runner:    inline,
		NewWidget: rec.factory,
		Clock:     fixedClock,
	})
	t.Cleanup(d.Close)
	return d, rec
}

func TestNew_DiscoveryPipeline(t *testing.T) {
	d, rec := newTestDashboard(t)
	require.Len(t, d.Hosts.Entries(), 3)

	d.Hosts.Select("/hosts/web-2/")
	d.Hosts.Plugins().Select("/hosts/web-2/memory/")

	require.Len(t, d.Grid.Widgets(), 2)
	assert.Equal(t, "/hosts/web-2/memory/memory.png", rec.built[0].URL())
}

func TestNew_ToolbarDrivesGrid(t *testing.T) {
	d, rec := newTestDashboard(t)
	d.Grid.DisplayGraphs(threeGraphs)

	d.Toolbar.Press(CmdSelectAll)
	assert.Len(t, d.Grid.Selection(), 3)

	d.Toolbar.Press(CmdSelectNone)
	assert.Empty(t, d.Grid.Selection())

	d.Toolbar.Press(CmdMoveBackward)
	d.Toolbar.Press(CmdZoomOut)
	d.Toolbar.SelectTimespan(UnitHour)
	d.Toolbar.SubmitDate("2024-01-01", "2024-01-02")

	for _, w := range rec.built {
		assert.Equal(t, 1, w.backward)
		assert.Equal(t, 1, w.zoomOut)
		assert.Len(t, w.dates, 2)
	}
}

func TestNew_InvalidDateOpensError(t *testing.T) {
	d, _ := newTestDashboard(t)

	d.Toolbar.SubmitDate("garbage", "2024-01-02")

	assert.True(t, d.Errors.IsOpen())
	assert.Equal(t, InvalidDatesMessage, d.Errors.Message())
}

func TestNew_OptionsDriveGridAndRuler(t *testing.T) {
	d, _ := newTestDashboard(t)

	d.Options.ChangeGridView(ViewGrid)
	d.Options.ToggleLazy(true)
	d.Options.ToggleRuler(true)

	assert.Equal(t, ViewGrid, d.Grid.View())
	assert.True(t, d.Grid.Lazy())
	assert.True(t, d.Ruler.Visible())
	assert.Equal(t, 1, d.Scroll.Len())
}

func TestNew_SharedScrollTopic(t *testing.T) {
	scroll := events.NewTopic[int]("scroll")
	rec := &widgetRecorder{}
	d := New(Deps{Source: listingSource(), Runner: inline, NewWidget: rec.factory, Scroll: scroll})
	d.Options.ToggleLazy(true)
	d.Grid.DisplayGraphs(threeGraphs)

	scroll.Publish(12)

	assert.Equal(t, []int{12}, rec.built[0].checks)
	d.Close()
	assert.Equal(t, 0, scroll.Len())
}

func TestClose_DetachesWiring(t *testing.T) {
	d, _ := newTestDashboard(t)
	d.Close()

	d.Toolbar.SubmitDate("bad", "bad")
	d.Options.ChangeGridView(ViewGrid)

	assert.False(t, d.Errors.IsOpen())
	assert.Equal(t, ViewList, d.Grid.View())
}
