package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/muxmetrics/muxdata-go/client"
	"github.com/muxmetrics/muxdata-go/internal/config"
)

var (
	baseURL     string
	tokenID     string
	tokenSecret string
	debug       bool
)

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		// Env parsing only fails on malformed values; fall back to defaults.
		cfg = &config.Config{BaseURL: client.DefaultBaseURL}
	}

	rootCmd := &cobra.Command{
		Use:   "muxdata",
		Short: "CLI for querying the Mux Data API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()
			if debug {
				config.SetLogLevel(zerolog.DebugLevel)
				os.Setenv("MUX_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(cfg.Level())
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", cfg.BaseURL, "Base URL of the Mux API")
	rootCmd.PersistentFlags().StringVar(&tokenID, "token-id", cfg.TokenID, "Mux access token ID (defaults to MUX_TOKEN_ID)")
	rootCmd.PersistentFlags().StringVar(&tokenSecret, "token-secret", cfg.TokenSecret, "Mux access token secret (defaults to MUX_TOKEN_SECRET)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newListVideoViewsCmd())
	rootCmd.AddCommand(newGetVideoViewCmd())
	rootCmd.AddCommand(newListErrorsCmd())
	rootCmd.AddCommand(newRealTimeDimensionsCmd())
	rootCmd.AddCommand(newRealTimeMetricsCmd())
	rootCmd.AddCommand(newRealTimeBreakdownCmd())
	rootCmd.AddCommand(newRealTimeTimeseriesCmd())
	rootCmd.AddCommand(newMetricBreakdownCmd())
	rootCmd.AddCommand(newMetricOverallCmd())
	rootCmd.AddCommand(newMetricTimeseriesCmd())
	rootCmd.AddCommand(newMetricComparisonCmd())
	rootCmd.AddCommand(newListDimensionsCmd())
	rootCmd.AddCommand(newDimensionValuesCmd())
	rootCmd.AddCommand(newListExportsCmd())
	rootCmd.AddCommand(newListViewExportsCmd())
	rootCmd.AddCommand(newListIncidentsCmd())
	rootCmd.AddCommand(newGetIncidentCmd())
	rootCmd.AddCommand(newListAnnotationsCmd())
	rootCmd.AddCommand(newCreateAnnotationCmd())
	rootCmd.AddCommand(newDeleteAnnotationCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

func newClient() (*client.Client, error) {
	opts := []client.Option{
		client.WithBaseURL(baseURL),
		client.WithPlatform("muxdata-cli", "1.0.0"),
	}
	if tokenID != "" || tokenSecret != "" {
		opts = append(opts, client.WithTokens(tokenID, tokenSecret))
	}
	return client.New(opts...)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newListVideoViewsCmd() *cobra.Command {
	var limit, page int
	var viewerID, orderDirection string
	var filters, timeframe []string

	cmd := &cobra.Command{
		Use:   "video-views",
		Short: "List video views",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			views, err := c.ListVideoViews(ctx, &client.ListVideoViewsParams{
				Limit:          limit,
				Page:           page,
				ViewerID:       viewerID,
				OrderDirection: orderDirection,
				Filters:        filters,
				Timeframe:      timeframe,
			})
			if err != nil {
				return err
			}
			return printJSON(views)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "Number of views per page")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().StringVar(&viewerID, "viewer-id", "", "Filter by viewer ID")
	cmd.Flags().StringVar(&orderDirection, "order-direction", "", "asc or desc")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Dimension filter, e.g. country:US (repeatable)")
	cmd.Flags().StringArrayVar(&timeframe, "timeframe", nil, "Timeframe bound (repeatable)")
	return cmd
}

func newGetVideoViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "video-view <view-id>",
		Short: "Fetch a single video view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			view, err := c.GetVideoView(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(view)
		},
	}
	return cmd
}

func newListErrorsCmd() *cobra.Command {
	var filters, timeframe []string

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "List aggregated playback errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			errs, err := c.ListErrors(ctx, &client.ErrorsParams{Filters: filters, Timeframe: timeframe})
			if err != nil {
				return err
			}
			return printJSON(errs)
		},
	}
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Dimension filter (repeatable)")
	cmd.Flags().StringArrayVar(&timeframe, "timeframe", nil, "Timeframe bound (repeatable)")
	return cmd
}

func newRealTimeDimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "realtime-dimensions",
		Short: "List dimensions usable in real-time queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			dims, err := c.ListRealTimeDimensions(ctx)
			if err != nil {
				return err
			}
			return printJSON(dims)
		},
	}
}

func newRealTimeMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "realtime-metrics",
		Short: "List metrics usable in real-time queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			metrics, err := c.ListRealTimeMetrics(ctx)
			if err != nil {
				return err
			}
			return printJSON(metrics)
		},
	}
}

func newRealTimeBreakdownCmd() *cobra.Command {
	var dimension, orderBy, orderDirection string
	var timestamp int64
	var filters []string

	cmd := &cobra.Command{
		Use:   "realtime-breakdown <metric-id>",
		Short: "Break down a real-time metric by dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			rows, err := c.RealTimeBreakdown(ctx, args[0], &client.RealTimeBreakdownParams{
				Dimension:      dimension,
				Timestamp:      timestamp,
				OrderBy:        orderBy,
				OrderDirection: orderDirection,
				Filters:        filters,
			})
			if err != nil {
				return err
			}
			return printJSON(rows)
		},
	}
	cmd.Flags().StringVar(&dimension, "dimension", "", "Dimension to break down by")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "Unix timestamp to query at")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "Column to order by")
	cmd.Flags().StringVar(&orderDirection, "order-direction", "", "asc or desc")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Dimension filter (repeatable)")
	return cmd
}

func newRealTimeTimeseriesCmd() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "realtime-timeseries <metric-id>",
		Short: "Recent history of a real-time metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			points, err := c.RealTimeTimeseries(ctx, args[0], &client.RealTimeTimeseriesParams{Filters: filters})
			if err != nil {
				return err
			}
			return printJSON(points)
		},
	}
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Dimension filter (repeatable)")
	return cmd
}

func metricsParamsFlags(cmd *cobra.Command, p *client.MetricsParams) {
	cmd.Flags().StringVar(&p.Measurement, "measurement", "", "Measurement, e.g. median or avg")
	cmd.Flags().StringVar(&p.GroupBy, "group-by", "", "Time grouping, e.g. hour or day")
	cmd.Flags().StringVar(&p.OrderBy, "order-by", "", "Column to order by")
	cmd.Flags().StringVar(&p.OrderDirection, "order-direction", "", "asc or desc")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Rows per page")
	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().StringArrayVar(&p.Filters, "filter", nil, "Dimension filter (repeatable)")
	cmd.Flags().StringArrayVar(&p.Timeframe, "timeframe", nil, "Timeframe bound (repeatable)")
}

func newMetricBreakdownCmd() *cobra.Command {
	var params client.MetricsParams

	cmd := &cobra.Command{
		Use:   "metric-breakdown <metric-id>",
		Short: "Break down a metric by dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			rows, err := c.MetricBreakdown(ctx, args[0], &params)
			if err != nil {
				return err
			}
			return printJSON(rows)
		},
	}
	metricsParamsFlags(cmd, &params)
	return cmd
}

func newMetricOverallCmd() *cobra.Command {
	var params client.MetricsParams

	cmd := &cobra.Command{
		Use:   "metric-overall <metric-id>",
		Short: "Aggregate value of a metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			overall, err := c.MetricOverall(ctx, args[0], &params)
			if err != nil {
				return err
			}
			return printJSON(overall)
		},
	}
	metricsParamsFlags(cmd, &params)
	return cmd
}

func newMetricTimeseriesCmd() *cobra.Command {
	var params client.MetricsParams

	cmd := &cobra.Command{
		Use:   "metric-timeseries <metric-id>",
		Short: "Metric value over time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			points, err := c.MetricTimeseries(ctx, args[0], &params)
			if err != nil {
				return err
			}
			return printJSON(points)
		},
	}
	metricsParamsFlags(cmd, &params)
	return cmd
}

func newMetricComparisonCmd() *cobra.Command {
	var value, dimension string
	var filters, timeframe []string

	cmd := &cobra.Command{
		Use:   "metric-comparison",
		Short: "Compare all metrics for one dimension value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if value == "" {
				return fmt.Errorf("--value is required")
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			rows, err := c.MetricComparison(ctx, &client.MetricComparisonParams{
				Value:     value,
				Dimension: dimension,
				Filters:   filters,
				Timeframe: timeframe,
			})
			if err != nil {
				return err
			}
			return printJSON(rows)
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "Dimension value to compare (required)")
	cmd.Flags().StringVar(&dimension, "dimension", "", "Dimension the value belongs to")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Dimension filter (repeatable)")
	cmd.Flags().StringArrayVar(&timeframe, "timeframe", nil, "Timeframe bound (repeatable)")
	return cmd
}

func newListDimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions",
		Short: "List queryable dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			dims, err := c.ListDimensions(ctx)
			if err != nil {
				return err
			}
			return printJSON(dims)
		},
	}
}

func newDimensionValuesCmd() *cobra.Command {
	var limit, page int
	var filters, timeframe []string

	cmd := &cobra.Command{
		Use:   "dimension-values <dimension-id>",
		Short: "List observed values of a dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			values, err := c.ListDimensionValues(ctx, args[0], &client.DimensionValuesParams{
				Limit:     limit,
				Page:      page,
				Filters:   filters,
				Timeframe: timeframe,
			})
			if err != nil {
				return err
			}
			return printJSON(values)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Rows per page")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Dimension filter (repeatable)")
	cmd.Flags().StringArrayVar(&timeframe, "timeframe", nil, "Timeframe bound (repeatable)")
	return cmd
}

func newListExportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exports",
		Short: "List raw export file URLs",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			urls, err := c.ListExports(ctx)
			if err != nil {
				return err
			}
			return printJSON(urls)
		},
	}
}

func newListViewExportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view-exports",
		Short: "List daily video-view export bundles",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			exports, err := c.ListViewExports(ctx)
			if err != nil {
				return err
			}
			return printJSON(exports)
		},
	}
}

func newListIncidentsCmd() *cobra.Command {
	var limit, page int
	var status, severity string

	cmd := &cobra.Command{
		Use:   "incidents",
		Short: "List alerting incidents",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			incidents, err := c.ListIncidents(ctx, &client.IncidentsParams{
				Limit:    limit,
				Page:     page,
				Status:   status,
				Severity: severity,
			})
			if err != nil {
				return err
			}
			return printJSON(incidents)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Rows per page")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (open, closed, expired)")
	cmd.Flags().StringVar(&severity, "severity", "", "Filter by severity (warning, alert)")
	return cmd
}

func newGetIncidentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "incident <incident-id>",
		Short: "Fetch a single incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			incident, err := c.GetIncident(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(incident)
		},
	}
}

func newListAnnotationsCmd() *cobra.Command {
	var limit, page int

	cmd := &cobra.Command{
		Use:   "annotations",
		Short: "List annotations",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			annotations, err := c.ListAnnotations(ctx, &client.AnnotationsParams{Limit: limit, Page: page})
			if err != nil {
				return err
			}
			return printJSON(annotations)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Rows per page")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	return cmd
}

func newCreateAnnotationCmd() *cobra.Command {
	var note, date, subPropertyID string

	cmd := &cobra.Command{
		Use:   "create-annotation",
		Short: "Create a dashboard annotation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if note == "" {
				return fmt.Errorf("--note is required")
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			annotation, err := c.CreateAnnotation(ctx, client.CreateAnnotationRequest{
				Note:          note,
				Date:          date,
				SubPropertyID: subPropertyID,
			})
			if err != nil {
				return err
			}
			return printJSON(annotation)
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "Annotation text (required)")
	cmd.Flags().StringVar(&date, "date", "", "RFC-3339 timestamp; defaults to now")
	cmd.Flags().StringVar(&subPropertyID, "sub-property-id", "", "Scope to a sub-property")
	return cmd
}

func newDeleteAnnotationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-annotation <annotation-id>",
		Short: "Delete an annotation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := c.DeleteAnnotation(ctx, args[0]); err != nil {
				return err
			}
			log.Info().Str("annotation_id", args[0]).Msg("annotation deleted")
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	var maxRetries uint64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify credentials and connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			// Retry transient connectivity failures with exponential backoff.
			// API errors (bad credentials, 4xx) are permanent and fail at once.
			probe := func() error {
				_, err := c.ListDimensions(ctx)
				var apiErr *client.APIError
				if errors.As(err, &apiErr) {
					return backoff.Permanent(err)
				}
				return err
			}
			policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
			if err := backoff.Retry(probe, policy); err != nil {
				return err
			}
			log.Info().Str("base_url", baseURL).Msg("credentials verified")
			return nil
		},
	}
	cmd.Flags().Uint64Var(&maxRetries, "max-retries", 4, "Retry attempts for transient failures")
	return cmd
}
