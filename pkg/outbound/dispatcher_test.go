package outbound

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
)

// tlsEndpoint spins up a TLS test server with a self-signed certificate and
// returns its host and port. Requests succeeding against it also prove the
// dispatcher really skips peer verification.
func tlsEndpoint(t *testing.T, handler http.Handler) (string, int) {
	t.Helper()
	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse test server url: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("split test server host: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse test server port: %v", err)
	}
	return host, port
}

// closedEndpoint reserves a port and closes it again, guaranteeing a
// connection-refused target.
func closedEndpoint(t *testing.T) (string, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return "127.0.0.1", port
}

func TestGetReturnsBodyAndStatus(t *testing.T) {
	host, port := tlsEndpoint(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/ping" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "pong")
	}))

	d := NewDispatcher(nil)
	body, code, err := d.Get(host, port, "/v2/ping")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if body != "pong" {
		t.Errorf("body = %q, want %q", body, "pong")
	}
	if code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", code, http.StatusTeapot)
	}
}

func TestGetTransportFailure(t *testing.T) {
	host, port := closedEndpoint(t)

	d := NewDispatcher(nil)
	body, code, err := d.Get(host, port, "/")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if body != ErrorString {
		t.Errorf("body = %q, want sentinel %q", body, ErrorString)
	}
	if code != NoResponse {
		t.Errorf("status = %d, want %d", code, NoResponse)
	}
}

func TestPostEchoesBodyAndMergesHeaders(t *testing.T) {
	host, port := tlsEndpoint(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if key := r.Header.Get("X-Api-Key"); key != "sk-test" {
			t.Errorf("X-Api-Key = %q", key)
		}
		in, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write(in)
	}))

	d := NewDispatcher(nil)
	headers := http.Header{}
	headers.Set("X-Api-Key", "sk-test")
	body, code, err := d.Post(host, port, "/v2/register", `{"key":"abc"}`, "application/json", headers)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if body != `{"key":"abc"}` {
		t.Errorf("body = %q", body)
	}
	if code != http.StatusCreated {
		t.Errorf("status = %d, want %d", code, http.StatusCreated)
	}
}

func TestPostTransportFailure(t *testing.T) {
	host, port := closedEndpoint(t)

	d := NewDispatcher(nil)
	body, code, err := d.Post(host, port, "/v2/register", "{}", "application/json", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if body != ErrorString {
		t.Errorf("body = %q, want sentinel %q", body, ErrorString)
	}
	if code != NoResponse {
		t.Errorf("status = %d, want %d", code, NoResponse)
	}
}

func TestDispatcherReusesConnection(t *testing.T) {
	host, port := tlsEndpoint(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))

	d := NewDispatcher(nil)
	for i := 0; i < 3; i++ {
		if _, code, err := d.Get(host, port, "/"); err != nil || code != http.StatusOK {
			t.Fatalf("call %d: code=%d err=%v", i, code, err)
		}
	}
	// The cache must hold exactly one handle for the endpoint.
	if a, b := d.cache.Acquire(host, port), d.cache.Acquire(host, port); a != b {
		t.Fatal("dispatcher created more than one client for one endpoint")
	}
}
