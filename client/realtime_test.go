package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_ListRealTimeDimensions(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/data/v1/realtime/dimensions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":["asn","cdn","country"],"timeframe":[0,0]}`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	dims, err := c.ListRealTimeDimensions(context.Background())
	if err != nil {
		t.Fatalf("ListRealTimeDimensions returned error: %v", err)
	}
	if len(dims) != 3 || dims[0] != "asn" {
		t.Fatalf("unexpected dimensions %v", dims)
	}
}

func TestClient_RealTimeBreakdown(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/data/v1/realtime/metrics/current-concurrent-viewers/breakdown" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("dimension") != "country" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data":[{"value":"US","negative_impact":0,"metric_value":1523,"display_value":"1,523","concurrent_viewers":1523}],
			"total_row_count":1,
			"timeframe":[1735689600,1735689900]
		}`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	rows, err := c.RealTimeBreakdown(context.Background(), "current-concurrent-viewers", &RealTimeBreakdownParams{Dimension: "country"})
	if err != nil {
		t.Fatalf("RealTimeBreakdown returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Value != "US" || rows[0].ConcurrentViewers != 1523 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestClient_RealTimeBreakdown_RequiresMetricID(t *testing.T) {
	c := MustNew(WithTokens("id", "secret"))
	_, err := c.RealTimeBreakdown(context.Background(), "", nil)
	if err == nil || err.Error() != "metricId is required" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestClient_RealTimeTimeseries(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/v1/realtime/metrics/playback-failure-percentage/timeseries" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data":[
				{"value":0.5,"date":"2025-01-01T00:00:00Z","concurrent_viewers":900},
				{"value":0.7,"date":"2025-01-01T00:00:05Z","concurrent_viewers":905}
			],
			"timeframe":[1735689600,1735689900]
		}`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	points, err := c.RealTimeTimeseries(context.Background(), "playback-failure-percentage", nil)
	if err != nil {
		t.Fatalf("RealTimeTimeseries returned error: %v", err)
	}
	if len(points) != 2 || points[1].Value != 0.7 {
		t.Fatalf("unexpected points %+v", points)
	}
}

func TestClient_RealTimeHistogramTimeseries_RequiresMetricID(t *testing.T) {
	c := MustNew(WithTokens("id", "secret"))
	_, err := c.RealTimeHistogramTimeseries(context.Background(), "", nil)
	if err == nil || err.Error() != "metricId is required" {
		t.Fatalf("unexpected error %v", err)
	}
}
