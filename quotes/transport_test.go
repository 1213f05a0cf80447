package quotes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestHTTPTransport_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, "ua=%s accept=%s", r.Header.Get("User-Agent"), r.Header.Get("Accept"))
	}))
	defer srv.Close()

	header := make(http.Header)
	header.Set("User-Agent", "test-agent")
	header.Set("Accept", "text/html")

	tr := &HTTPTransport{Client: srv.Client()}
	got, err := tr.Get(context.Background(), srv.URL+"/page", header)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if want := "ua=test-agent accept=text/html"; got != want {
		t.Errorf("Get() = %q, want %q", got, want)
	}

	_, err = tr.Get(context.Background(), srv.URL+"/missing", header)
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("Get() error = %v, want a *TransportError", err)
	}
	if terr.Status != "404 Not Found" {
		t.Errorf("TransportError.Status = %q, want 404 Not Found", terr.Status)
	}
}

func TestHTTPTransport_Get_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := (&HTTPTransport{}).Get(context.Background(), addr, nil)
	var terr *TransportError
	if !errors.As(err, &terr) || terr.Err == nil {
		t.Errorf("Get() error = %v, want a *TransportError wrapping the network error", err)
	}
}

func TestDailyCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, "quotes")
	}))
	defer srv.Close()

	dir := t.TempDir()
	cache := DailyCache(srv.Client().Transport, dir).(*diskCache)
	day := time.Date(2024, 11, 17, 0, 0, 0, 0, time.UTC)
	cache.today = func() time.Time { return day }
	tr := &HTTPTransport{Client: &http.Client{Transport: cache}}

	for i := 0; i < 3; i++ {
		got, err := tr.Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got != "quotes" {
			t.Errorf("Get() = %q, want quotes", got)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}

	day = day.AddDate(0, 0, 1)
	if _, err := tr.Get(context.Background(), srv.URL, nil); err != nil {
		t.Fatal(err)
	}
	if n := hits.Load(); n != 2 {
		t.Errorf("server hit %d times on the next day, want 2", n)
	}
}
