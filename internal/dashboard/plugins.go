package dashboard

import (
	"context"

	"github.com/rileyhilliard/cw/internal/events"
	"github.com/rileyhilliard/cw/internal/logger"
)

// PluginList lists the plugins of one host. Selecting a plugin fetches its
// graph URLs and publishes them on GotGraphs.
type PluginList struct {
	GotGraphs *events.Topic[[]string]

	host    string
	src     Lister
	run     Runner
	log     logger.Logger
	entries entryList
}

// NewPluginList creates the list for hostURL and starts fetching plugins.
func NewPluginList(hostURL string, src Lister, run Runner, log logger.Logger) *PluginList {
	p := &PluginList{
		GotGraphs: events.NewTopic[[]string]("got-graphes"),
		host:      hostURL,
		src:       src,
		run:       run,
		log:       logger.OrNoop(log),
	}
	p.fetch()
	return p
}

func (p *PluginList) fetch() {
	p.run.Go(func() func() {
		plugins, err := p.src.Plugins(context.Background(), p.host)
		return func() {
			if err != nil {
				p.log.Warn("listing plugins of %s: %v", p.host, err)
				return
			}
			p.entries.replace(IndexURLs(plugins))
		}
	})
}

// Host returns the host URL the list belongs to.
func (p *PluginList) Host() string {
	return p.host
}

func (p *PluginList) Filter(query string) {
	p.entries.filter(query)
}

func (p *PluginList) Query() string {
	return p.entries.query
}

func (p *PluginList) Entries() []Pair {
	return p.entries.items
}

func (p *PluginList) Visible() []Pair {
	return p.entries.visible()
}

func (p *PluginList) Selected() string {
	return p.entries.selected
}

// Select makes url the only selected plugin and fetches its graphs.
func (p *PluginList) Select(url string) {
	if !p.entries.choose(url) {
		p.log.Debug("ignoring selection of unknown plugin %q", url)
		return
	}

	p.run.Go(func() func() {
		graphs, err := p.src.Graphs(context.Background(), url)
		return func() {
			if err != nil {
				p.log.Warn("listing graphs of %s: %v", url, err)
				return
			}
			p.GotGraphs.Publish(graphs)
		}
	})
}
