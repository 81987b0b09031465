package roble

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	c, err := New("http://example.com", "proj", WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set: %v", c.http.Timeout)
	}

	if _, err := New("http://example.com", "proj", WithHTTPTimeout(0)); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}

func TestDefaultTimeoutApplied(t *testing.T) {
	c, err := New("http://example.com", "proj")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 30*time.Second {
		t.Fatalf("expected 30s default timeout, got %v", c.http.Timeout)
	}
}

func TestWithHTTPClient_KeepsOwnTimeout(t *testing.T) {
	hc := &http.Client{Timeout: 7 * time.Second}
	c, err := New("http://example.com", "proj", WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 7*time.Second {
		t.Fatalf("caller timeout overridden: %v", c.http.Timeout)
	}

	// An explicit timeout still wins over the supplied client's.
	c2, err := New("http://example.com", "proj", WithHTTPClient(&http.Client{Timeout: 7 * time.Second}), WithHTTPTimeout(3*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c2.http.Timeout != 3*time.Second {
		t.Fatalf("explicit timeout not applied: %v", c2.http.Timeout)
	}
}

func TestWithDebugLogging(t *testing.T) {
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New("http://example.com", "proj", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatal("expected debugTransport to be installed")
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatal("base transport not invoked")
	}
}

func TestWithKindHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/proj/login":
			if r.Header.Get("X-Auth-Extra") != "1" {
				t.Fatalf("auth header missing on auth request")
			}
			if r.Header.Get("X-Data-Extra") != "" {
				t.Fatalf("data header leaked onto auth request")
			}
		case "/database/proj/read":
			if r.Header.Get("X-Data-Extra") != "2" {
				t.Fatalf("data header missing on database request")
			}
			if r.Header.Get("X-Auth-Extra") != "" {
				t.Fatalf("auth header leaked onto database request")
			}
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL,
		WithAuthHeaders(map[string]string{"X-Auth-Extra": "1"}),
		WithDataHeaders(map[string]string{"X-Data-Extra": "2"}),
	)
	if _, err := c.Login(context.Background(), "u@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := c.Read(context.Background(), "t", nil); err != nil {
		t.Fatalf("Read: %v", err)
	}
}

func TestWithPathBuilder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/proj/db/read" {
			t.Fatalf("custom path not used: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	pb := func(kind Kind, endpoint, codeURL string) string {
		return "/v2/" + codeURL + "/db/" + endpoint
	}
	c := newTestClient(t, srv.URL, WithPathBuilder(pb))
	if _, err := c.Read(context.Background(), "t", nil); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if _, err := New("http://example.com", "proj", WithPathBuilder(nil)); err == nil {
		t.Fatal("expected error for nil path builder")
	}
}

func TestWithTokenObserver(t *testing.T) {
	var got []string
	c, err := New("http://example.com", "proj", WithTokenObserver(func(tok string) { got = append(got, tok) }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.SetTokens("a", "b")
	c.ClearTokens()
	if len(got) != 2 || got[0] != "a" || got[1] != "" {
		t.Fatalf("observer calls: %v", got)
	}
}
