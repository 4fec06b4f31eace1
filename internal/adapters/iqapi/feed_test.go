package iqapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
)

func TestTransactionFeed_FetchPage(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"transactions":[{"isBuy":true,"usdAmount":"10"}]}`))
	}))
	defer srv.Close()

	feed := NewTransactionFeed(NewClient(srv.URL))
	txns, err := feed.FetchPage(context.Background(), domain.Filters{Ticker: "IQ", UserID: "u-1"}, 2)
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}

	if gotQuery != "page=2&ticker=IQ&userId=u-1" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if !txns[0].IsBuy() {
		t.Error("expected a buy record")
	}
}

func TestTransactionFeed_FetchPage_NoTransactionsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"maintenance"}`))
	}))
	defer srv.Close()

	feed := NewTransactionFeed(NewClient(srv.URL))
	txns, err := feed.FetchPage(context.Background(), domain.Filters{}, 1)
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("expected empty page, got %d records", len(txns))
	}
}
