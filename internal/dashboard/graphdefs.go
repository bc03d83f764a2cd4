package dashboard

import (
	"context"
	"sort"
	"strings"

	"github.com/rileyhilliard/cw/internal/logger"
)

// GraphDefs browses the server's graph definitions.
type GraphDefs struct {
	src DefsSource
	run Runner
	log logger.Logger

	defs    map[string][]string
	names   []string
	current string
	loaded  bool
}

func NewGraphDefs(src DefsSource, run Runner, log logger.Logger) *GraphDefs {
	return &GraphDefs{src: src, run: run, log: logger.OrNoop(log)}
}

// Load fetches the definitions. The previous set stays on failure.
func (d *GraphDefs) Load() {
	d.run.Go(func() func() {
		defs, err := d.src.GraphDefs(context.Background())
		return func() {
			if err != nil {
				d.log.Warn("loading graph definitions: %v", err)
				return
			}
			d.defs = defs
			d.names = make([]string, 0, len(defs))
			for name := range defs {
				d.names = append(d.names, name)
			}
			sort.Strings(d.names)
			d.loaded = true
		}
	})
}

// Loaded reports whether a Load has succeeded.
func (d *GraphDefs) Loaded() bool {
	return d.loaded
}

// Names returns the definition names sorted.
func (d *GraphDefs) Names() []string {
	return d.names
}

// Choose makes name current and returns its definition, one line per entry.
func (d *GraphDefs) Choose(name string) (string, bool) {
	lines, ok := d.defs[name]
	if !ok {
		return "", false
	}
	d.current = name
	return strings.Join(lines, "\n"), true
}

// Current returns the chosen definition name.
func (d *GraphDefs) Current() string {
	return d.current
}

// Content returns the chosen definition, or "" when nothing is chosen.
func (d *GraphDefs) Content() string {
	return strings.Join(d.defs[d.current], "\n")
}
