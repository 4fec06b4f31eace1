package iqapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Get_JSONDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/metrics" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.RawQuery != "view=mostTraded7d" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ticker":"SOPHIA","trades":42}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	doc, err := client.Get(context.Background(), "/api/metrics", NewQuery().Set("view", "mostTraded7d"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if !doc.IsJSON() {
		t.Fatal("expected a JSON document")
	}
	obj, ok := doc.Value().(map[string]interface{})
	if !ok {
		t.Fatalf("expected object value, got %T", doc.Value())
	}
	if obj["ticker"] != "SOPHIA" {
		t.Errorf("ticker = %v, want SOPHIA", obj["ticker"])
	}
	if obj["trades"] != float64(42) {
		t.Errorf("trades = %v, want 42", obj["trades"])
	}
}

func TestClient_Get_NonJSONFallsBackToRawText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("service warming up"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	doc, err := client.Get(context.Background(), "/api/metrics", nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if doc.IsJSON() {
		t.Error("expected a non-JSON document")
	}
	if doc.Value() != "service warming up" {
		t.Errorf("Value() = %v, want raw text", doc.Value())
	}
}

func TestClient_Get_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Get(context.Background(), "/api/transactions", nil)
	if err == nil {
		t.Fatal("expected an error for HTTP 500")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want 500", statusErr.Code)
	}
	if statusErr.Error() != "500 Internal Server Error" {
		t.Errorf("Error() = %q, want %q", statusErr.Error(), "500 Internal Server Error")
	}
}

func TestClient_Get_TransportError(t *testing.T) {
	// Point at a closed server to force a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Get(context.Background(), "/api/transactions", nil)
	if err == nil {
		t.Fatal("expected a transport error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("transport failure must not be a *StatusError, got %v", err)
	}
}

func TestClient_Do_PostWithHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	doc, err := client.Do(context.Background(), "/all-transactions", nil, &RequestOptions{
		Method: http.MethodPost,
		Body:   []byte(`[0]`),
		Header: http.Header{"Content-Type": []string{"application/json"}},
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !doc.IsJSON() {
		t.Error("expected a JSON document")
	}
}

func TestDocument_Transactions(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{
			name:     "valid transactions array",
			body:     `{"transactions":[{"isBuy":true},{"isBuy":false}]}`,
			expected: 2,
		},
		{
			name:     "missing transactions field",
			body:     `{"data":[]}`,
			expected: 0,
		},
		{
			name:     "transactions is not an array",
			body:     `{"transactions":"nope"}`,
			expected: 0,
		},
		{
			name:     "document is not an object",
			body:     `[1,2,3]`,
			expected: 0,
		},
		{
			name:     "document is not JSON",
			body:     `oops`,
			expected: 0,
		},
		{
			name:     "non-object entries are skipped",
			body:     `{"transactions":[{"isBuy":true},"junk",42]}`,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseDocument([]byte(tt.body))
			if got := len(doc.Transactions()); got != tt.expected {
				t.Errorf("len(Transactions()) = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestDocument_MarshalJSONRoundTrip(t *testing.T) {
	body := `{"ticker":"SOPHIA","trades":42}`
	doc := ParseDocument([]byte(body))

	out, err := doc.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(out) != body {
		t.Errorf("MarshalJSON() = %s, want %s", out, body)
	}
}
