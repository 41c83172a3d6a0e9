package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_ListErrors(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/data/v1/errors" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query()["timeframe[]"]; len(got) != 1 || got[0] != "7:days" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data":[
				{"id":42,"code":3,"percentage":1.5,"message":"MEDIA_ERR_DECODE","last_seen":"2025-01-01T12:00:00Z","count":118},
				{"id":43,"code":null,"percentage":0.2,"message":"Unknown","last_seen":"2025-01-01T13:00:00Z","count":9}
			],
			"total_row_count":2,
			"timeframe":[1735084800,1735776000]
		}`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	errs, err := c.ListErrors(context.Background(), &ErrorsParams{Timeframe: []string{"7:days"}})
	if err != nil {
		t.Fatalf("ListErrors returned error: %v", err)
	}
	if len(errs) != 2 || errs[0].Count != 118 {
		t.Fatalf("unexpected errors %+v", errs)
	}
	if errs[0].Code == nil || *errs[0].Code != 3 {
		t.Fatalf("unexpected code %v", errs[0].Code)
	}
	if errs[1].Code != nil {
		t.Fatalf("expected null code, got %v", *errs[1].Code)
	}
}
