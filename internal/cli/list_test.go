package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/cw/internal/api"
	"github.com/rileyhilliard/cw/internal/dashboard"
	cwerrors "github.com/rileyhilliard/cw/internal/errors"
)

// newTestServer serves a small collectd-web listing and returns a client for it.
func newTestServer(t *testing.T) *api.Client {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	r := mux.NewRouter()
	r.HandleFunc("/hosts/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []string{"/hosts/web-2/", "/hosts/db-1/", "/hosts/web-10/"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/hosts/{host}/", func(w http.ResponseWriter, req *http.Request) {
		host := mux.Vars(req)["host"]
		if host == "missing" {
			http.NotFound(w, req)
			return
		}
		writeJSON(w, []string{"/hosts/" + host + "/load/", "/hosts/" + host + "/cpu-0/"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/hosts/{host}/{plugin}/", func(w http.ResponseWriter, req *http.Request) {
		v := mux.Vars(req)
		base := "/hosts/" + v["host"] + "/" + v["plugin"] + "/"
		writeJSON(w, []string{base + "shortterm.png", base + "longterm.png"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/sign/", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var out []string
		for _, u := range req.PostForm["url"] {
			out = append(out, u+"?sig=abc")
		}
		writeJSON(w, out)
	}).Methods(http.MethodPost)
	r.HandleFunc("/graphdefs/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string][]string{
			"load":   {"DEF:s=shortterm", "LINE1:s#00ff00"},
			"memory": {"DEF:u=used"},
		})
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL, 5*time.Second)
	require.NoError(t, err)
	return client
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestHostsCommand_SortedColumns(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	require.NoError(t, hostsCommand(context.Background(), &buf, client, ListFlags{}))

	assert.Equal(t, []string{
		"db-1    /hosts/db-1/",
		"web-10  /hosts/web-10/",
		"web-2   /hosts/web-2/",
	}, lines(buf.String()))
}

func TestHostsCommand_FilterAndJSON(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	err := hostsCommand(context.Background(), &buf, client, ListFlags{Filter: "WEB", JSON: true})
	require.NoError(t, err)

	var env struct {
		Success bool             `json:"success"`
		Data    []dashboard.Pair `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, []dashboard.Pair{
		{URL: "/hosts/web-10/", Name: "web-10"},
		{URL: "/hosts/web-2/", Name: "web-2"},
	}, env.Data)
}

func TestHostsCommand_NoMatchesJSONIsEmptyArray(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	require.NoError(t, hostsCommand(context.Background(), &buf, client, ListFlags{Filter: "mail", JSON: true}))
	assert.Contains(t, buf.String(), `"data": []`)
}

func TestPluginsCommand_ByHostName(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	err := pluginsCommand(context.Background(), &buf, client, api.HostURL("web-1"), ListFlags{Filter: "cpu"})
	require.NoError(t, err)

	assert.Equal(t, []string{"cpu-0  /hosts/web-1/cpu-0/"}, lines(buf.String()))
}

func TestPluginsCommand_ServerError(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	err := pluginsCommand(context.Background(), &buf, client, api.HostURL("missing"), ListFlags{})
	require.Error(t, err)
	assert.True(t, cwerrors.IsCode(err, cwerrors.ErrHTTP))
	assert.Empty(t, buf.String())
}

func TestGraphsCommand_HostAndPlugin(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	err := graphsCommand(context.Background(), &buf, client, api.PluginURL("web-1", "load"), ListFlags{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"shortterm.png  /hosts/web-1/load/shortterm.png",
		"longterm.png   /hosts/web-1/load/longterm.png",
	}, lines(buf.String()))
}

// graphLister returns a fixed graph listing.
type graphLister struct {
	graphs []string
}

func (graphLister) Hosts(context.Context) ([]string, error) { return nil, nil }

func (graphLister) Plugins(context.Context, string) ([]string, error) { return nil, nil }

func (g graphLister) Graphs(context.Context, string) ([]string, error) { return g.graphs, nil }

func TestGraphsCommand_KeepsServerOrder(t *testing.T) {
	src := graphLister{graphs: []string{"/hosts/h/load/z-first.png", "/hosts/h/load/a-second.png"}}

	var buf bytes.Buffer
	require.NoError(t, graphsCommand(context.Background(), &buf, src, "/hosts/h/load/", ListFlags{}))
	assert.Equal(t, []string{
		"z-first.png   /hosts/h/load/z-first.png",
		"a-second.png  /hosts/h/load/a-second.png",
	}, lines(buf.String()))

	buf.Reset()
	require.NoError(t, graphsCommand(context.Background(), &buf, src, "/hosts/h/load/", ListFlags{JSON: true}))
	var env struct {
		Data []dashboard.Pair `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, []dashboard.Pair{
		{URL: "/hosts/h/load/z-first.png", Name: "z-first.png"},
		{URL: "/hosts/h/load/a-second.png", Name: "a-second.png"},
	}, env.Data)
}

func TestSignCommand(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	urls := []string{"/hosts/web-1/load/shortterm.png", "/hosts/web-1/load/longterm.png"}
	require.NoError(t, signCommand(context.Background(), &buf, client, urls, false))

	out := lines(buf.String())
	require.Len(t, out, 2)
	assert.Equal(t, client.BaseURL()+"/hosts/web-1/load/shortterm.png?sig=abc", out[0])
	assert.Equal(t, client.BaseURL()+"/hosts/web-1/load/longterm.png?sig=abc", out[1])
}

func TestSignCommand_JSONPairsInputs(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	require.NoError(t, signCommand(context.Background(), &buf, client, []string{"/a.png"}, true))

	var env struct {
		Data []SignedURL `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "/a.png", env.Data[0].URL)
	assert.Equal(t, client.BaseURL()+"/a.png?sig=abc", env.Data[0].Signed)
}

type shortSigner struct{}

func (shortSigner) Sign(context.Context, []string) ([]string, error) {
	return []string{"only-one"}, nil
}

func TestSignCommand_CountMismatch(t *testing.T) {
	var buf bytes.Buffer

	err := signCommand(context.Background(), &buf, shortSigner{}, []string{"/a.png", "/b.png"}, false)
	require.Error(t, err)
	assert.True(t, cwerrors.IsCode(err, cwerrors.ErrHTTP))
}

func TestGraphDefsCommand_Names(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	require.NoError(t, graphDefsCommand(context.Background(), &buf, client, "", false))
	assert.Equal(t, []string{"load", "memory"}, lines(buf.String()))
}

func TestGraphDefsCommand_OneDefinition(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	require.NoError(t, graphDefsCommand(context.Background(), &buf, client, "load", false))
	assert.Equal(t, []string{"DEF:s=shortterm", "LINE1:s#00ff00"}, lines(buf.String()))
}

func TestGraphDefsCommand_UnknownName(t *testing.T) {
	client := newTestServer(t)
	var buf bytes.Buffer

	err := graphDefsCommand(context.Background(), &buf, client, "disk", false)
	require.Error(t, err)
	assert.True(t, cwerrors.IsCode(err, cwerrors.ErrInput))
	assert.Equal(t, ErrCodeNotFound, ErrorToJSON(err).Code)
}
