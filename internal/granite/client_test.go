package granite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{Token: "hf_test", Model: "test-model", BaseURL: srv.URL})
}

func TestAskWithoutTokenMakesNoNetworkCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(Options{Token: "", BaseURL: srv.URL})
	got := c.Ask(context.Background(), "prompt")

	if !strings.Contains(got, "token not set") {
		t.Fatalf("Ask without token = %q, want token-not-set message", got)
	}
	if called {
		t.Fatal("server was contacted despite missing token")
	}
}

func TestAskArrayResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer hf_test" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Path; got != "/test-model" {
			t.Errorf("path = %q, want /test-model", got)
		}

		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Inputs != "prompt" {
			t.Errorf("inputs = %q", req.Inputs)
		}
		if req.Parameters.MaxNewTokens != DefaultMaxNewTokens {
			t.Errorf("max_new_tokens = %d", req.Parameters.MaxNewTokens)
		}
		if req.Options.UseCache {
			t.Error("use_cache = true, want false")
		}

		_, _ = w.Write([]byte(`[{"generated_text":"save 20% of your income"}]`))
	})

	got := c.Ask(context.Background(), "prompt")
	if got != "save 20% of your income" {
		t.Fatalf("Ask = %q, want generated_text verbatim", got)
	}
}

func TestAskObjectResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text":"answer"}`))
	})

	if got := c.Ask(context.Background(), "prompt"); got != "answer" {
		t.Fatalf("Ask = %q, want %q", got, "answer")
	}
}

func TestAskUnknownShapeReturnsRawBody(t *testing.T) {
	raw := `{"status":"model loading"}`
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(raw))
	})

	if got := c.Ask(context.Background(), "prompt"); got != raw {
		t.Fatalf("Ask = %q, want raw body %q", got, raw)
	}
}

func TestAskEmptyArrayReturnsRawBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	if got := c.Ask(context.Background(), "prompt"); got != "[]" {
		t.Fatalf("Ask = %q, want raw body []", got)
	}
}

func TestAskErrorStatusIsAbsorbed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	got := c.Ask(context.Background(), "prompt")
	if !strings.HasPrefix(got, "Exception calling Hugging Face Inference API:") {
		t.Fatalf("Ask = %q, want exception message", got)
	}
	if !strings.Contains(got, "503") {
		t.Fatalf("Ask = %q, want status code in message", got)
	}
}

func TestAskNetworkErrorIsAbsorbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close() // connection refused from here on

	c := NewClient(Options{Token: "hf_test", Model: "m", BaseURL: url})
	got := c.Ask(context.Background(), "prompt")

	if !strings.HasPrefix(got, "Exception calling") {
		t.Fatalf("Ask = %q, want Exception calling prefix", got)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Options{Token: "t"})
	if c.model == "" {
		t.Fatal("model default not applied")
	}
	if c.maxNewTokens != DefaultMaxNewTokens {
		t.Fatalf("maxNewTokens = %d, want %d", c.maxNewTokens, DefaultMaxNewTokens)
	}
	if c.temperature != DefaultTemperature {
		t.Fatalf("temperature = %v, want %v", c.temperature, DefaultTemperature)
	}
}
