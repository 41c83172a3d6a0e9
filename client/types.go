package client

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// ------------------------------
// Shared envelope
// ------------------------------

// Every Data API response wraps its payload in the same envelope:
// {"data": ..., "total_row_count": N|null, "timeframe": [start, end]}.
// Per-resource envelope structs below fix the type of "data".

// Timeframe is the [start, end] unix-second window the response covers.
type Timeframe []int64

// ------------------------------
// Video views
// ------------------------------

// VideoViewSummary is one row of the video view listing.
type VideoViewSummary struct {
	ID                string `json:"id"`
	ViewerOSFamily    string `json:"viewer_os_family"`
	ViewerApplication string `json:"viewer_application_name"`
	VideoTitle        string `json:"video_title"`
	ViewStart         string `json:"view_start"`
	ViewEnd           string `json:"view_end"`
	PlayerErrorCode   string `json:"player_error_code,omitempty"`
	ErrorTypeID       *int64 `json:"error_type_id,omitempty"`
	WatchTime         int64  `json:"watch_time"`
	CountryCode       string `json:"country_code,omitempty"`
	ViewerExperience  string `json:"viewer_experience_score,omitempty"`
}

// VideoViewEvent is one playback event on a single view's timeline.
type VideoViewEvent struct {
	ViewerTime   int64  `json:"viewer_time"`
	PlaybackTime int64  `json:"playback_time"`
	Name         string `json:"name"`
	EventTime    int64  `json:"event_time"`
}

// VideoView is the full detail record for a single view.
type VideoView struct {
	ID                string           `json:"id"`
	ViewerOSFamily    string           `json:"viewer_os_family"`
	ViewerApplication string           `json:"viewer_application_name"`
	VideoTitle        string           `json:"video_title"`
	ViewStart         string           `json:"view_start"`
	ViewEnd           string           `json:"view_end"`
	PlayerErrorCode   string           `json:"player_error_code,omitempty"`
	PlayerErrorMsg    string           `json:"player_error_message,omitempty"`
	WatchTime         int64            `json:"watch_time"`
	CountryCode       string           `json:"country_code,omitempty"`
	ASN               *int64           `json:"asn,omitempty"`
	Events            []VideoViewEvent `json:"events,omitempty"`
}

type listVideoViewsResponse struct {
	Data          []VideoViewSummary `json:"data"`
	TotalRowCount *int64             `json:"total_row_count"`
	Timeframe     Timeframe          `json:"timeframe"`
}

type getVideoViewResponse struct {
	Data      VideoView `json:"data"`
	Timeframe Timeframe `json:"timeframe"`
}

// ListVideoViewsParams filters and paginates the video view listing.
// Filters and Timeframe serialize as repeated filters[] / timeframe[]
// query parameters, verbatim.
type ListVideoViewsParams struct {
	Limit          int
	Page           int
	ViewerID       string
	ErrorID        int64
	OrderDirection string
	Filters        []string
	Timeframe      []string
}

func (p *ListVideoViewsParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	addInt(v, "limit", p.Limit)
	addInt(v, "page", p.Page)
	addString(v, "viewer_id", p.ViewerID)
	if p.ErrorID != 0 {
		v.Set("error_id", strconv.FormatInt(p.ErrorID, 10))
	}
	addString(v, "order_direction", p.OrderDirection)
	addStrings(v, "filters[]", p.Filters)
	addStrings(v, "timeframe[]", p.Timeframe)
	return v
}

// ------------------------------
// Errors
// ------------------------------

// ErrorItem is one aggregated playback error.
type ErrorItem struct {
	ID          int64   `json:"id"`
	Code        *int64  `json:"code"`
	Percentage  float64 `json:"percentage"`
	Notes       string  `json:"notes,omitempty"`
	Message     string  `json:"message"`
	LastSeen    string  `json:"last_seen"`
	Description string  `json:"description,omitempty"`
	Count       int64   `json:"count"`
}

type listErrorsResponse struct {
	Data          []ErrorItem `json:"data"`
	TotalRowCount *int64      `json:"total_row_count"`
	Timeframe     Timeframe   `json:"timeframe"`
}

// ErrorsParams filters the aggregated error listing.
type ErrorsParams struct {
	Filters   []string
	Timeframe []string
}

func (p *ErrorsParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	addStrings(v, "filters[]", p.Filters)
	addStrings(v, "timeframe[]", p.Timeframe)
	return v
}

// ------------------------------
// Real-time
// ------------------------------

// RealTimeBreakdownValue is one row of a real-time breakdown.
type RealTimeBreakdownValue struct {
	Value             string  `json:"value"`
	NegativeImpact    int64   `json:"negative_impact"`
	MetricValue       float64 `json:"metric_value"`
	DisplayValue      string  `json:"display_value"`
	ConcurrentViewers int64   `json:"concurrent_viewers"`
}

// RealTimeTimeseriesDatapoint is one real-time timeseries sample.
type RealTimeTimeseriesDatapoint struct {
	Value             float64 `json:"value"`
	Date              string  `json:"date"`
	ConcurrentViewers int64   `json:"concurrent_viewers"`
}

// RealTimeHistogramBucket is one bucket of a histogram timeseries sample.
type RealTimeHistogramBucket struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int64   `json:"count"`
}

// RealTimeHistogramDatapoint is one histogram timeseries sample.
type RealTimeHistogramDatapoint struct {
	Timestamp   string                    `json:"timestamp"`
	Sum         int64                     `json:"sum"`
	Average     float64                   `json:"average"`
	Median      float64                   `json:"median"`
	P95         float64                   `json:"p95"`
	MaxPercent  float64                   `json:"max_percentage"`
	BucketCount int64                     `json:"bucket_count"`
	Buckets     []RealTimeHistogramBucket `json:"buckets"`
}

type listRealTimeDimensionsResponse struct {
	Data      []string  `json:"data"`
	Timeframe Timeframe `json:"timeframe"`
}

type listRealTimeMetricsResponse struct {
	Data      []string  `json:"data"`
	Timeframe Timeframe `json:"timeframe"`
}

type realTimeBreakdownResponse struct {
	Data          []RealTimeBreakdownValue `json:"data"`
	TotalRowCount *int64                   `json:"total_row_count"`
	Timeframe     Timeframe                `json:"timeframe"`
}

type realTimeTimeseriesResponse struct {
	Data      []RealTimeTimeseriesDatapoint `json:"data"`
	Timeframe Timeframe                     `json:"timeframe"`
}

type realTimeHistogramResponse struct {
	Data      []RealTimeHistogramDatapoint `json:"data"`
	Timeframe Timeframe                    `json:"timeframe"`
}

// RealTimeBreakdownParams scopes a real-time breakdown query.
type RealTimeBreakdownParams struct {
	Dimension      string
	Timestamp      int64
	OrderBy        string
	OrderDirection string
	Filters        []string
}

func (p *RealTimeBreakdownParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	addString(v, "dimension", p.Dimension)
	if p.Timestamp != 0 {
		v.Set("timestamp", strconv.FormatInt(p.Timestamp, 10))
	}
	addString(v, "order_by", p.OrderBy)
	addString(v, "order_direction", p.OrderDirection)
	addStrings(v, "filters[]", p.Filters)
	return v
}

// RealTimeTimeseriesParams scopes a real-time timeseries query.
type RealTimeTimeseriesParams struct {
	Filters []string
}

func (p *RealTimeTimeseriesParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	addStrings(v, "filters[]", p.Filters)
	return v
}

// ------------------------------
// Metrics
// ------------------------------

// MetricBreakdownValue is one row of a metric breakdown.
type MetricBreakdownValue struct {
	Value          float64 `json:"value"`
	TotalWatchTime int64   `json:"total_watch_time"`
	NegativeImpact int64   `json:"negative_impact"`
	Field          string  `json:"field"`
	Views          int64   `json:"views"`
}

// MetricOverallValues is the aggregate value block for one metric.
type MetricOverallValues struct {
	Value          float64 `json:"value"`
	TotalWatchTime int64   `json:"total_watch_time"`
	TotalViews     int64   `json:"total_views"`
	GlobalValue    float64 `json:"global_value"`
}

// MetricInsight scores one filter's impact on a metric.
type MetricInsight struct {
	TotalWatchTime      int64   `json:"total_watch_time"`
	TotalViews          int64   `json:"total_views"`
	NegativeImpactScore float64 `json:"negative_impact_score"`
	Metric              float64 `json:"metric"`
	FilterValue         string  `json:"filter_value"`
	FilterColumn        string  `json:"filter_column"`
}

// MetricComparisonValue is one row of a cross-metric comparison. Items nest
// one level for grouped metrics.
type MetricComparisonValue struct {
	Value  float64                 `json:"value"`
	Type   string                  `json:"type"`
	Name   string                  `json:"name"`
	Metric string                  `json:"metric"`
	Items  []MetricComparisonValue `json:"items,omitempty"`
}

// MetricTimeseriesDatapoint is one [timestamp, value, views] triple. The
// service emits it as a mixed-type JSON array, hence the raw elements.
type MetricTimeseriesDatapoint [3]json.RawMessage

type metricBreakdownResponse struct {
	Data          []MetricBreakdownValue `json:"data"`
	TotalRowCount *int64                 `json:"total_row_count"`
	Timeframe     Timeframe              `json:"timeframe"`
}

type metricOverallResponse struct {
	Data      MetricOverallValues `json:"data"`
	Timeframe Timeframe           `json:"timeframe"`
}

type metricInsightsResponse struct {
	Data      []MetricInsight `json:"data"`
	Timeframe Timeframe       `json:"timeframe"`
}

type metricComparisonResponse struct {
	Data      []MetricComparisonValue `json:"data"`
	Timeframe Timeframe               `json:"timeframe"`
}

type metricTimeseriesResponse struct {
	Data      []MetricTimeseriesDatapoint `json:"data"`
	Timeframe Timeframe                   `json:"timeframe"`
}

// MetricsParams is the common query surface of the metric endpoints.
type MetricsParams struct {
	Measurement    string
	GroupBy        string
	OrderBy        string
	OrderDirection string
	Limit          int
	Page           int
	Filters        []string
	Timeframe      []string
}

func (p *MetricsParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	addString(v, "measurement", p.Measurement)
	addString(v, "group_by", p.GroupBy)
	addString(v, "order_by", p.OrderBy)
	addString(v, "order_direction", p.OrderDirection)
	addInt(v, "limit", p.Limit)
	addInt(v, "page", p.Page)
	addStrings(v, "filters[]", p.Filters)
	addStrings(v, "timeframe[]", p.Timeframe)
	return v
}

// MetricComparisonParams scopes a comparison query. Value names the dimension
// value being compared and is required.
type MetricComparisonParams struct {
	Value     string
	Dimension string
	Filters   []string
	Timeframe []string
}

func (p *MetricComparisonParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	addString(v, "value", p.Value)
	addString(v, "dimension", p.Dimension)
	addStrings(v, "filters[]", p.Filters)
	addStrings(v, "timeframe[]", p.Timeframe)
	return v
}

// ------------------------------
// Dimensions & filters
// ------------------------------

// DimensionsList splits queryable dimensions by plan tier.
type DimensionsList struct {
	Basic    []string `json:"basic"`
	Advanced []string `json:"advanced"`
}

// DimensionValue is one observed value of a dimension with its view count.
type DimensionValue struct {
	Value      string `json:"value"`
	TotalCount int64  `json:"total_count"`
}

type listDimensionsResponse struct {
	Data      DimensionsList `json:"data"`
	Timeframe Timeframe      `json:"timeframe"`
}

type listDimensionValuesResponse struct {
	Data          []DimensionValue `json:"data"`
	TotalRowCount *int64           `json:"total_row_count"`
	Timeframe     Timeframe        `json:"timeframe"`
}

// DimensionValuesParams paginates and filters a dimension-values listing.
type DimensionValuesParams struct {
	Limit     int
	Page      int
	Filters   []string
	Timeframe []string
}

func (p *DimensionValuesParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	addInt(v, "limit", p.Limit)
	addInt(v, "page", p.Page)
	addStrings(v, "filters[]", p.Filters)
	addStrings(v, "timeframe[]", p.Timeframe)
	return v
}

// FiltersList splits queryable filters by plan tier.
//
// Deprecated: the filters endpoints are superseded by dimensions.
type FiltersList struct {
	Basic    []string `json:"basic"`
	Advanced []string `json:"advanced"`
}

// FilterValue is one observed value of a filter.
//
// Deprecated: the filters endpoints are superseded by dimensions.
type FilterValue struct {
	Value      string `json:"value"`
	TotalCount int64  `json:"total_count"`
}

type listFiltersResponse struct {
	Data      FiltersList `json:"data"`
	Timeframe Timeframe   `json:"timeframe"`
}

type listFilterValuesResponse struct {
	Data          []FilterValue `json:"data"`
	TotalRowCount *int64        `json:"total_row_count"`
	Timeframe     Timeframe     `json:"timeframe"`
}

// ------------------------------
// Exports
// ------------------------------

// ExportFile is one downloadable file of a daily view export.
type ExportFile struct {
	Version int    `json:"version"`
	Type    string `json:"type"`
	Path    string `json:"path"`
}

// ViewExport groups the files exported for one day.
type ViewExport struct {
	ExportDate string       `json:"export_date"`
	Files      []ExportFile `json:"files"`
}

type listExportsResponse struct {
	Data      []string  `json:"data"`
	Timeframe Timeframe `json:"timeframe"`
}

type listViewExportsResponse struct {
	Data          []ViewExport `json:"data"`
	TotalRowCount *int64       `json:"total_row_count"`
	Timeframe     Timeframe    `json:"timeframe"`
}

// ------------------------------
// Incidents
// ------------------------------

// IncidentNotification records one alert delivery attempt for an incident.
type IncidentNotification struct {
	ID          int64  `json:"id"`
	AttemptedAt string `json:"attempted_at"`
	QueuedAt    string `json:"queued_at"`
}

// IncidentBreakdown names one dimension value implicated in an incident.
type IncidentBreakdown struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Incident is one alerting incident raised against the environment.
type Incident struct {
	ID                 string                 `json:"id"`
	Threshold          float64                `json:"threshold"`
	Status             string                 `json:"status"`
	StartedAt          string                 `json:"started_at"`
	ResolvedAt         string                 `json:"resolved_at,omitempty"`
	Measurement        string                 `json:"measurement"`
	ErrorDescription   string                 `json:"error_description,omitempty"`
	Severity           string                 `json:"severity"`
	AffectedViews      int64                  `json:"affected_views"`
	AffectedViewsPerHr int64                  `json:"affected_views_per_hour"`
	Impact             string                 `json:"impact,omitempty"`
	Notifications      []IncidentNotification `json:"notifications,omitempty"`
	Breakdowns         []IncidentBreakdown    `json:"breakdowns,omitempty"`
}

type listIncidentsResponse struct {
	Data          []Incident `json:"data"`
	TotalRowCount *int64     `json:"total_row_count"`
	Timeframe     Timeframe  `json:"timeframe"`
}

type getIncidentResponse struct {
	Data      Incident  `json:"data"`
	Timeframe Timeframe `json:"timeframe"`
}

// IncidentsParams filters and paginates the incident listing.
type IncidentsParams struct {
	Limit          int
	Page           int
	OrderBy        string
	OrderDirection string
	Status         string
	Severity       string
}

func (p *IncidentsParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	addInt(v, "limit", p.Limit)
	addInt(v, "page", p.Page)
	addString(v, "order_by", p.OrderBy)
	addString(v, "order_direction", p.OrderDirection)
	addString(v, "status", p.Status)
	addString(v, "severity", p.Severity)
	return v
}

// ------------------------------
// Annotations
// ------------------------------

// Annotation is one dashboard annotation.
type Annotation struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Note          string `json:"note"`
	SubPropertyID string `json:"sub_property_id,omitempty"`
}

// CreateAnnotationRequest is the payload for POST /data/v1/annotations.
type CreateAnnotationRequest struct {
	Note          string `json:"note"`
	Date          string `json:"date,omitempty"`
	SubPropertyID string `json:"sub_property_id,omitempty"`
}

type listAnnotationsResponse struct {
	Data          []Annotation `json:"data"`
	TotalRowCount *int64       `json:"total_row_count"`
	Timeframe     Timeframe    `json:"timeframe"`
}

type getAnnotationResponse struct {
	Data Annotation `json:"data"`
}

// AnnotationsParams paginates the annotation listing.
type AnnotationsParams struct {
	Limit     int
	Page      int
	Timeframe []string
}

func (p *AnnotationsParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	addInt(v, "limit", p.Limit)
	addInt(v, "page", p.Page)
	addStrings(v, "timeframe[]", p.Timeframe)
	return v
}

// ------------------------------
// Query helpers
// ------------------------------

func addString(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}

func addInt(v url.Values, key string, n int) {
	if n != 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

func addStrings(v url.Values, key string, ss []string) {
	for _, s := range ss {
		v.Add(key, s)
	}
}
