package dashboard

import "context"

// Lister fetches the host, plugin and graph listings.
type Lister interface {
	Hosts(ctx context.Context) ([]string, error)
	Plugins(ctx context.Context, hostURL string) ([]string, error)
	Graphs(ctx context.Context, pluginURL string) ([]string, error)
}

// Signer exchanges graph URLs for signed export URLs, one per input.
type Signer interface {
	Sign(ctx context.Context, urls []string) ([]string, error)
}

// DefsSource fetches graph definitions keyed by name.
type DefsSource interface {
	GraphDefs(ctx context.Context) (map[string][]string, error)
}

// Source is everything the dashboard needs from the server.
// *api.Client implements it.
type Source interface {
	Lister
	Signer
	DefsSource
}

// Runner moves blocking work off the UI goroutine. work runs elsewhere and
// returns a callback; the Runner applies that callback on the UI goroutine.
type Runner interface {
	Go(work func() func())
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(work func() func())

// Go calls f(work).
func (f RunnerFunc) Go(work func() func()) {
	f(work)
}
