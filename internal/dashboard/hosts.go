package dashboard

import (
	"context"

	"github.com/rileyhilliard/cw/internal/events"
	"github.com/rileyhilliard/cw/internal/logger"
)

// HostList lists the server's hosts. Selecting a host creates the
// PluginList for it; graph URLs picked from that list are re-published on
// ShowGraphs.
type HostList struct {
	ShowGraphs *events.Topic[[]string]

	src     Lister
	run     Runner
	log     logger.Logger
	entries entryList

	plugins   *PluginList
	pluginSub *events.Subscription
}

// NewHostList creates the list and starts fetching hosts right away.
func NewHostList(src Lister, run Runner, log logger.Logger) *HostList {
	h := &HostList{
		ShowGraphs: events.NewTopic[[]string]("show-graphes"),
		src:        src,
		run:        run,
		log:        logger.OrNoop(log),
	}
	h.Refresh()
	return h
}

// Refresh re-fetches the host listing. A failed fetch leaves the current
// entries untouched. When the selected host disappears its plugin list is
// detached along with the selection.
func (h *HostList) Refresh() {
	h.run.Go(func() func() {
		hosts, err := h.src.Hosts(context.Background())
		return func() {
			if err != nil {
				h.log.Warn("listing hosts: %v", err)
				return
			}
			if !h.entries.replace(IndexURLs(hosts)) {
				h.dropPlugins()
			}
			h.log.Debug("loaded %d hosts", len(h.entries.items))
		}
	})
}

// Filter narrows Visible to hosts whose name contains query, ignoring case.
func (h *HostList) Filter(query string) {
	h.entries.filter(query)
}

// Query returns the active filter.
func (h *HostList) Query() string {
	return h.entries.query
}

// Entries returns every host, ignoring the filter.
func (h *HostList) Entries() []Pair {
	return h.entries.items
}

// Visible returns the hosts matching the filter, in URL order.
func (h *HostList) Visible() []Pair {
	return h.entries.visible()
}

// Selected returns the selected host URL, or "" when none is.
func (h *HostList) Selected() string {
	return h.entries.selected
}

// Plugins returns the plugin list of the selected host, or nil.
func (h *HostList) Plugins() *PluginList {
	return h.plugins
}

// Select makes url the only selected host and replaces the plugin list.
// The previous plugin list is detached so its late results are dropped.
func (h *HostList) Select(url string) {
	if !h.entries.choose(url) {
		h.log.Debug("ignoring selection of unknown host %q", url)
		return
	}

	h.dropPlugins()
	h.plugins = NewPluginList(url, h.src, h.run, h.log)
	h.pluginSub = events.Forward(h.plugins.GotGraphs, h.ShowGraphs)
}

func (h *HostList) dropPlugins() {
	h.pluginSub.Unsubscribe()
	h.pluginSub = nil
	h.plugins = nil
}
