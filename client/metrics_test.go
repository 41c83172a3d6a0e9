package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_MetricBreakdown(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/data/v1/metrics/video_startup_time/breakdown" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		if q.Get("group_by") != "browser" || q.Get("measurement") != "median" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data":[{"value":1.2,"total_watch_time":123456,"negative_impact":1,"field":"Chrome","views":4021}],
			"total_row_count":1,
			"timeframe":[1735689600,1735776000]
		}`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	rows, err := c.MetricBreakdown(context.Background(), "video_startup_time", &MetricsParams{
		GroupBy:     "browser",
		Measurement: "median",
	})
	if err != nil {
		t.Fatalf("MetricBreakdown returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Field != "Chrome" || rows[0].Views != 4021 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestClient_MetricBreakdown_RequiresMetricID(t *testing.T) {
	c := MustNew(WithTokens("id", "secret"))
	_, err := c.MetricBreakdown(context.Background(), "", nil)
	if err == nil || err.Error() != "metricId is required" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestClient_MetricComparison_RequiresValue(t *testing.T) {
	c := MustNew(WithTokens("id", "secret"))

	if _, err := c.MetricComparison(context.Background(), nil); err == nil || err.Error() != "value is required" {
		t.Fatalf("unexpected error for nil params: %v", err)
	}
	if _, err := c.MetricComparison(context.Background(), &MetricComparisonParams{Dimension: "browser"}); err == nil || err.Error() != "value is required" {
		t.Fatalf("unexpected error for empty value: %v", err)
	}
}

func TestClient_MetricComparison(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/v1/metrics/comparison" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("value") != "Chrome" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data":[{"value":98.2,"type":"score","name":"Overall Score","metric":"viewer_experience_score"}],
			"timeframe":[1735689600,1735776000]
		}`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	rows, err := c.MetricComparison(context.Background(), &MetricComparisonParams{Value: "Chrome", Dimension: "browser"})
	if err != nil {
		t.Fatalf("MetricComparison returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Metric != "viewer_experience_score" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestClient_MetricOverall(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/v1/metrics/playback_failure_percentage/overall" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data":{"value":0.3,"total_watch_time":987654321,"total_views":120345,"global_value":0.5},
			"timeframe":[1735689600,1735776000]
		}`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	overall, err := c.MetricOverall(context.Background(), "playback_failure_percentage", nil)
	if err != nil {
		t.Fatalf("MetricOverall returned error: %v", err)
	}
	if overall.TotalViews != 120345 || overall.GlobalValue != 0.5 {
		t.Fatalf("unexpected overall %+v", overall)
	}
}

func TestClient_MetricTimeseries(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/v1/metrics/video_startup_time/timeseries" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data":[["2025-01-01T00:00:00Z","1.187",342],["2025-01-01T01:00:00Z","1.202",398]],
			"timeframe":[1735689600,1735776000]
		}`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	points, err := c.MetricTimeseries(context.Background(), "video_startup_time", nil)
	if err != nil {
		t.Fatalf("MetricTimeseries returned error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("unexpected points %+v", points)
	}
	if string(points[0][0]) != `"2025-01-01T00:00:00Z"` || string(points[0][2]) != "342" {
		t.Fatalf("unexpected first datapoint %v", points[0])
	}
}
