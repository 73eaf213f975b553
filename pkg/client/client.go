// Package client provides a typed client for the CurseForge v1 REST API with
// schema-tolerant decoding and lazy pagination.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sternrassler/curseforge-client/pkg/decode"
	"github.com/Sternrassler/curseforge-client/pkg/pagination"
)

// DefaultBaseURL is the public CurseForge API.
const DefaultBaseURL = "https://api.curseforge.com/v1/"

const tracerName = "github.com/Sternrassler/curseforge-client/pkg/client"

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the CurseForge API client. It is safe for concurrent use; the
// iterators it returns are not.
type Client struct {
	http    Doer
	baseURL *url.URL
	decoder *decode.Decoder
	tracer  trace.Tracer
	config  Config
	logger  zerolog.Logger

	// root is the logger before the component field, handed to iterators.
	root zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL of the API, or of a proxy in front of it.
	BaseURL string

	// APIKey is sent as x-api-key. Proxies may not need one.
	APIKey string

	// User-Agent header (REQUIRED)
	UserAgent string

	// HTTPClient overrides the transport. Default: *http.Client with Timeout.
	HTTPClient Doer
	Timeout    time.Duration

	// DecodeMode selects how unknown fields and enum values are handled.
	// ModeStrict also makes pagination descriptor mismatches fatal.
	DecodeMode decode.Mode

	// Pagination
	PageSize   int // Records per page (1..50)
	MaxResults int // Records per query (1..10000)

	// Logger overrides the global logger.
	Logger *zerolog.Logger

	// TracerProvider overrides the global OpenTelemetry provider.
	TracerProvider trace.TracerProvider
}

// DefaultConfig returns a configuration for the public API.
func DefaultConfig(apiKey string) Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		UserAgent:  "curseforge-client/1.0",
		Timeout:    30 * time.Second,
		DecodeMode: decode.DefaultMode,
		PageSize:   pagination.DefaultPageSize,
		MaxResults: pagination.MaxResults,
	}
}

// New creates a new CurseForge client.
func New(cfg Config) (*Client, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}

	if cfg.PageSize < 1 || cfg.PageSize > pagination.DefaultPageSize {
		return nil, fmt.Errorf("page_size must be between 1 and %d (got %d)", pagination.DefaultPageSize, cfg.PageSize)
	}

	if cfg.MaxResults < 1 || cfg.MaxResults > pagination.MaxResults {
		return nil, fmt.Errorf("max_results must be between 1 and %d (got %d)", pagination.MaxResults, cfg.MaxResults)
	}

	decoder, err := decode.New(cfg.DecodeMode)
	if err != nil {
		return nil, err
	}

	root := log.Logger
	if cfg.Logger != nil {
		root = *cfg.Logger
	}
	logger := root.With().Str("component", "curseforge-client").Logger()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Client{
		http:    httpClient,
		baseURL: base,
		decoder: decoder,
		tracer:  tp.Tracer(tracerName),
		config:  cfg,
		logger:  logger,
		root:    root,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.Opaque != "" {
		return nil, fmt.Errorf("%w: %q", ErrBadBaseURL, raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// DecodeMode returns the compatibility mode of the client's decoder.
func (c *Client) DecodeMode() decode.Mode {
	return c.decoder.Mode()
}

// Close releases idle connections of the default transport.
func (c *Client) Close() error {
	if hc, ok := c.http.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
	return nil
}

// request describes one API call. route is the path template used for
// metrics, spans and errors; path is the concrete relative path.
type request struct {
	method string
	route  string
	path   string
	query  any
	body   any
}

// call performs one request-response cycle and decodes the body into T.
func call[T any](ctx context.Context, c *Client, r request) (T, error) {
	var zero T
	label := "/" + r.route

	ctx, span := c.tracer.Start(ctx, "curseforge.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", r.method),
			attribute.String("http.route", label),
		))
	defer span.End()

	body, err := c.send(ctx, span, label, r)
	if err != nil {
		return zero, err
	}

	v, err := decode.Into[T](c.decoder, body)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassDecode)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		c.logger.Warn().
			Err(err).
			Str("endpoint", label).
			Str("decode_mode", string(c.decoder.Mode())).
			Msg("CurseForge response did not match schema")
		return zero, &APIError{
			Class:      ErrorClassDecode,
			Endpoint:   label,
			StatusCode: http.StatusOK,
			Body:       body,
			Err:        err,
		}
	}
	return v, nil
}

func (c *Client) send(ctx context.Context, span trace.Span, label string, r request) ([]byte, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("endpoint", label).
		Str("method", r.method).
		Str("url", req.URL.String()).
		Msg("Executing CurseForge request")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.networkError(span, label, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	requestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, c.networkError(span, label, fmt.Errorf("read body: %w", err))
	}

	requestsTotal.WithLabelValues(label, strconv.Itoa(resp.StatusCode)).Inc()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		class := classifyStatus(resp.StatusCode)
		errorsTotal.WithLabelValues(string(class)).Inc()
		span.SetStatus(codes.Error, resp.Status)

		c.logger.Warn().
			Str("endpoint", label).
			Int("status_code", resp.StatusCode).
			Str("error_class", string(class)).
			Msg("CurseForge request error")

		return nil, &APIError{
			Class:      class,
			Endpoint:   label,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	c.logger.Debug().
		Str("endpoint", label).
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("CurseForge request complete")

	return body, nil
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	u := c.baseURL.ResolveReference(&url.URL{Path: r.path})

	if r.query != nil {
		values, err := query.Values(r.query)
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		u.RawQuery = values.Encode()
	}

	var reader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.APIKey != "" {
		req.Header.Set("x-api-key", c.config.APIKey)
	}
	return req, nil
}

func (c *Client) networkError(span trace.Span, label string, err error) error {
	errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
	requestsTotal.WithLabelValues(label, "network_error").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, "transport failed")

	c.logger.Error().Err(err).Str("endpoint", label).Msg("HTTP request failed")

	return &APIError{
		Class:    ErrorClassNetwork,
		Endpoint: label,
		Err:      err,
	}
}

// paginationConfig derives the engine configuration for one query.
// pageSize overrides the configured page size when positive.
func (c *Client) paginationConfig(pageSize int) pagination.Config {
	if pageSize <= 0 {
		pageSize = c.config.PageSize
	}
	logger := c.root
	return pagination.Config{
		PageSize:   pageSize,
		MaxResults: c.config.MaxResults,
		Strict:     c.decoder.Mode() == decode.ModeStrict,
		Logger:     &logger,
	}
}
