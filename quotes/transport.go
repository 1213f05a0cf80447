package quotes

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// contains http utils to get quote pages.

// HTTPTransport gets pages with an http.Client.
type HTTPTransport struct {
	Client *http.Client // defaults to http.DefaultClient
}

// Get performs an HTTP GET on addr and returns the response body.
// Any status other than 2xx is a *TransportError.
func (t *HTTPTransport) Get(ctx context.Context, addr string, header http.Header) (string, error) {
	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return "", &TransportError{URL: addr, Err: err}
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &TransportError{URL: addr, Err: err}
	}
	defer resp.Body.Close()
	log.Debug().Str("url", addr).Str("status", resp.Status).Msg("GET")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TransportError{URL: addr, Status: resp.Status}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{URL: addr, Err: fmt.Errorf("cannot read http body: %w", err)}
	}
	return string(body), nil
}

// TransportError reports a failure to get a page.
type TransportError struct {
	URL    string
	Status string // set when the server answered with an error status
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot http GET %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("cannot http GET %s: %s", e.URL, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base  http.RoundTripper
	dir   string
	today func() time.Time
}

// DailyCache returns a RoundTripper that keeps successful responses on disk
// in dir for the rest of the day. It is meant to work on the quote page
// without querying the server on every run.
func DailyCache(base http.RoundTripper, dir string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if dir == "" {
		dir = os.TempDir()
	}
	return &diskCache{base: base, dir: dir, today: time.Now}
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the key includes the day, so cached entries expire every day.
	key := fmt.Sprintf("%s %s %s", c.today().Format(time.DateOnly), req.Method, req.URL.String())
	key = fmt.Sprintf("stash-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil {
		log.Debug().Str("url", req.URL.String()).Msg("cache hit")
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Warn().Err(err).Msg("cache write err (ignored)")
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache.
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}
