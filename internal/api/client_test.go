package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokens string

func (s staticTokens) Token() (string, bool) { return string(s), s != "" }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	return New(cfg, staticTokens(token))
}

func TestMeAttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"email":"a@b.com"}`))
	}, "tok-1")

	u, err := c.Me(t.Context())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if u.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %q", u.Email)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestMeUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "expired")

	_, err := c.Me(t.Context())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLoginIsFormEncoded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/token" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("expected form encoding, got %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("username") != "a@b.com" || r.PostForm.Get("password") != "secret" {
			t.Errorf("unexpected form %v", r.PostForm)
		}
		w.Write([]byte(`{"access_token":"tok-2"}`))
	}, "")

	tok, err := c.Login(t.Context(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok != "tok-2" {
		t.Errorf("expected tok-2, got %q", tok)
	}
}

func TestLessonDecodesContentAndLatency(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"normal","content":"A noun is a naming word.","latency_ms":120}`))
	}, "tok")

	reply, err := c.Lesson(t.Context(), 7, "What is a noun?")
	if err != nil {
		t.Fatalf("Lesson: %v", err)
	}
	if reply.Content != "A noun is a naming word." {
		t.Errorf("unexpected content %q", reply.Content)
	}
	if reply.LatencyMs != 120 {
		t.Errorf("expected latency 120, got %d", reply.LatencyMs)
	}
}

func TestValidationErrorCarriesDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Email already registered"}`))
	}, "")

	_, err := c.Signup(t.Context(), Registration{Email: "a@b.com", Password: "secret", TenantName: "Smith"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Detail != "Email already registered" {
		t.Errorf("unexpected detail %q", verr.Detail)
	}
}

func TestServerErrorIsTransient(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "tok")

	err := c.Feedback(t.Context(), 7, 1, 120)
	var serr *ServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ServiceError, got %v", err)
	}
}

func TestNetworkErrorIsTransient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseURL = "http://127.0.0.1:1" // nothing listens here
	c := New(cfg, nil)

	_, err := c.Lesson(context.Background(), 1, "hello")
	var serr *ServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ServiceError, got %v", err)
	}
}

func TestSynthesizeReturnsBytes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("text"); got != "Hi Sam!" {
			t.Errorf("expected query text 'Hi Sam!', got %q", got)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte{0x01, 0x02, 0x03})
	}, "tok")

	data, err := c.Synthesize(t.Context(), "Hi Sam!")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(data) != 3 {
		t.Errorf("expected 3 audio bytes, got %d", len(data))
	}
}

func TestProgressDecodesConceptMap(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/progress/7" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"addition within 10":{"correct":4,"attempts":5}}`))
	}, "tok")

	rep, err := c.Progress(t.Context(), 7)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	stat, ok := rep["addition within 10"]
	if !ok || stat.Correct != 4 || stat.Attempts != 5 {
		t.Errorf("unexpected report %v", rep)
	}
}

func TestHealthReportsServiceDown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}, "")
	if err := c.Health(t.Context()); err != nil {
		t.Errorf("Health on healthy service: %v", err)
	}

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, "")
	if err := down.Health(t.Context()); err == nil {
		t.Error("expected error from unhealthy service")
	}
}
