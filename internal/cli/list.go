package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rileyhilliard/cw/internal/dashboard"
	"github.com/rileyhilliard/cw/internal/errors"
	"github.com/rileyhilliard/cw/internal/util"
)

// SignedURL pairs a graph URL with its signed export URL.
type SignedURL struct {
	URL    string `json:"url"`
	Signed string `json:"signed"`
}

// GraphDef is one named graph definition.
type GraphDef struct {
	Name    string   `json:"name"`
	Content []string `json:"content"`
}

func hostsCommand(ctx context.Context, w io.Writer, src dashboard.Lister, flags ListFlags) error {
	urls, err := src.Hosts(ctx)
	if err != nil {
		return err
	}
	return writePairs(w, dashboard.FilterPairs(dashboard.IndexURLs(urls), flags.Filter), flags.JSON)
}

func pluginsCommand(ctx context.Context, w io.Writer, src dashboard.Lister, hostURL string, flags ListFlags) error {
	urls, err := src.Plugins(ctx, hostURL)
	if err != nil {
		return err
	}
	return writePairs(w, dashboard.FilterPairs(dashboard.IndexURLs(urls), flags.Filter), flags.JSON)
}

// graphsCommand keeps the server's order, which is the order the dashboard
// lays the graphs out in.
func graphsCommand(ctx context.Context, w io.Writer, src dashboard.Lister, pluginURL string, flags ListFlags) error {
	urls, err := src.Graphs(ctx, pluginURL)
	if err != nil {
		return err
	}
	return writePairs(w, dashboard.FilterPairs(dashboard.NamePairs(urls), flags.Filter), flags.JSON)
}

func signCommand(ctx context.Context, w io.Writer, src dashboard.Signer, urls []string, asJSON bool) error {
	signed, err := src.Sign(ctx, urls)
	if err != nil {
		return err
	}
	if len(signed) != len(urls) {
		return errors.New(errors.ErrHTTP,
			fmt.Sprintf("Server signed %d of %d %s", len(signed), len(urls), util.Pluralize(len(urls), "URL", "URLs")),
			"Check that every argument is a graph URL from 'cw graphs'.")
	}

	if asJSON {
		out := make([]SignedURL, len(urls))
		for i := range urls {
			out[i] = SignedURL{URL: urls[i], Signed: signed[i]}
		}
		return WriteJSONSuccess(w, out)
	}

	for _, s := range signed {
		fmt.Fprintln(w, s)
	}
	return nil
}

func graphDefsCommand(ctx context.Context, w io.Writer, src dashboard.DefsSource, name string, asJSON bool) error {
	defs, err := src.GraphDefs(ctx)
	if err != nil {
		return err
	}

	if name == "" {
		names := make([]string, 0, len(defs))
		for n := range defs {
			names = append(names, n)
		}
		sort.Strings(names)

		if asJSON {
			return WriteJSONSuccess(w, names)
		}
		for _, n := range names {
			fmt.Fprintln(w, n)
		}
		return nil
	}

	content, ok := defs[name]
	if !ok {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Graph definition '%s' not found", name),
			"Run 'cw graphdefs' to list the available names.")
	}

	if asJSON {
		return WriteJSONSuccess(w, GraphDef{Name: name, Content: content})
	}
	fmt.Fprintln(w, strings.Join(content, "\n"))
	return nil
}

// writePairs prints name and URL columns, or the JSON envelope.
func writePairs(w io.Writer, pairs []dashboard.Pair, asJSON bool) error {
	if asJSON {
		if pairs == nil {
			pairs = []dashboard.Pair{}
		}
		return WriteJSONSuccess(w, pairs)
	}

	width := 0
	for _, p := range pairs {
		if len(p.Name) > width {
			width = len(p.Name)
		}
	}
	for _, p := range pairs {
		fmt.Fprintf(w, "%-*s  %s\n", width, p.Name, p.URL)
	}
	return nil
}
