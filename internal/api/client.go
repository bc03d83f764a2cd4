// Package api is the HTTP client for the collectd-web listing service.
//
// Every listing endpoint returns JSON. Hosts, plugins and graphs are plain
// arrays of resource URLs; URLs returned by the server are usually
// root-relative and resolve against the configured server address.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rileyhilliard/cw/internal/errors"
	"github.com/rileyhilliard/cw/internal/logger"
)

// Endpoint paths on the collectd-web server.
const (
	HostsPath     = "/hosts/"
	SignPath      = "/sign/"
	GraphDefsPath = "/graphdefs/"
)

// UngroupedParam is the plugin listing query that disables instance grouping.
const UngroupedParam = "-"

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is decoded.
const maxBodyBytes = 8 << 20

// Client talks to one collectd-web server.
type Client struct {
	base *url.URL
	http *http.Client
	log  logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.log = logger.OrNoop(l)
	}
}

// New creates a client for the server at baseURL. A zero timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		if err == nil {
			err = fmt.Errorf("missing scheme or host")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a usable server address", baseURL),
			"Use a full URL like http://localhost:8080")
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
		log:  logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server address the client was created with.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Resolve turns a server-returned reference into an absolute URL.
func (c *Client) Resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrHTTP,
			fmt.Sprintf("Server returned a malformed URL: %s", ref), "")
	}
	return c.base.ResolveReference(u).String(), nil
}

// Hosts lists the host resource URLs.
func (c *Client) Hosts(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, HostsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Plugins lists the plugin resource URLs of a host, ungrouped.
func (c *Client) Plugins(ctx context.Context, hostURL string) ([]string, error) {
	var out []string
	query := url.Values{"group": {UngroupedParam}}
	if err := c.getJSON(ctx, hostURL, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Graphs lists the graph resource URLs of a plugin, in server order.
func (c *Client) Graphs(ctx context.Context, pluginURL string) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, pluginURL, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Sign exchanges graph URLs for exportable signed URLs, one per input.
// The signed URLs are returned absolute.
func (c *Client) Sign(ctx context.Context, urls []string) ([]string, error) {
	form := url.Values{}
	for _, u := range urls {
		form.Add("url", u)
	}

	target, err := c.Resolve(SignPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build sign request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out []string
	if err := c.do(req, &out); err != nil {
		return nil, err
	}

	signed := make([]string, 0, len(out))
	for _, ref := range out {
		abs, err := c.Resolve(ref)
		if err != nil {
			return nil, err
		}
		signed = append(signed, abs)
	}
	return signed, nil
}

// GraphDefs fetches the graph definitions keyed by name.
func (c *Client) GraphDefs(ctx context.Context) (map[string][]string, error) {
	out := make(map[string][]string)
	if err := c.getJSON(ctx, GraphDefsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, ref string, query url.Values, out interface{}) error {
	target, err := c.Resolve(ref)
	if err != nil {
		return err
	}

	if len(query) > 0 {
		u, _ := url.Parse(target)
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
		target = u.String()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "Failed to build request for "+ref)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrHTTP,
			fmt.Sprintf("%s %s failed", req.Method, req.URL.Path),
			"Check that the collectd-web server is running and reachable")
	}
	defer resp.Body.Close()

	c.log.Debug("%s %s -> %d (%s)", req.Method, req.URL.String(), resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(errors.ErrHTTP,
			fmt.Sprintf("%s %s returned %s", req.Method, req.URL.Path, resp.Status),
			"Check the collectd-web server logs")
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.ErrHTTP,
			fmt.Sprintf("%s %s returned invalid JSON", req.Method, req.URL.Path),
			"Make sure --server points at a collectd-web instance")
	}
	return nil
}

// HostURL returns the listing URL of a host given its name.
// Values that already look like URLs are returned unchanged.
func HostURL(host string) string {
	if looksLikeURL(host) {
		return host
	}
	return HostsPath + url.PathEscape(host) + "/"
}

// PluginURL returns the listing URL of a plugin on a host.
func PluginURL(host, plugin string) string {
	return strings.TrimSuffix(HostURL(host), "/") + "/" + url.PathEscape(plugin) + "/"
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "/") || strings.Contains(s, "://")
}
