package pagination

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds pagination configuration shared by delegates and engines.
type Config struct {
	// PageSize is the number of records requested per page (1..DefaultPageSize).
	PageSize int

	// MaxResults caps the records retrievable from one query (1..MaxResults).
	MaxResults int

	// Strict turns descriptor/request mismatches into a ProtocolError.
	// Otherwise they are logged and counted, and iteration continues.
	Strict bool

	// Logger overrides the global logger.
	Logger *zerolog.Logger
}

// DefaultConfig returns the API limits as configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:   DefaultPageSize,
		MaxResults: MaxResults,
	}
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 || c.PageSize > DefaultPageSize {
		c.PageSize = DefaultPageSize
	}
	if c.MaxResults <= 0 || c.MaxResults > MaxResults {
		c.MaxResults = MaxResults
	}
	return c
}

func (c Config) logger() zerolog.Logger {
	if c.Logger != nil {
		return *c.Logger
	}
	return log.Logger
}

// PageFunc fetches one page of an endpoint. It must not keep state between
// calls; the delegate owns the cursor.
type PageFunc[P, T any] func(ctx context.Context, params P, offset, pageSize int) ([]T, Descriptor, error)

// Source is what an Engine drives. Delegate is the implementation used by
// the client; tests substitute their own.
type Source[T any] interface {
	// Name identifies the endpoint in logs and metrics.
	Name() string

	// FetchNext fetches the page at Offset. It does not move the offset.
	FetchNext(ctx context.Context) ([]T, error)

	// Offset returns the offset of the next page.
	Offset() int

	// SetOffset moves the cursor.
	SetOffset(offset int)

	// KnownTotal returns min(cap, totalCount) of the last page, false before
	// the first successful fetch.
	KnownTotal() (int, bool)

	// Descriptor returns the last descriptor received.
	Descriptor() (Descriptor, bool)
}

// Delegate binds a PageFunc to fixed parameters and tracks the cursor of
// one query.
type Delegate[P, T any] struct {
	name   string
	fetch  PageFunc[P, T]
	params P
	config Config
	logger zerolog.Logger

	offset int
	last   *Descriptor
}

// NewDelegate creates a delegate that starts at offset start (clamped to 0).
func NewDelegate[P, T any](name string, fetch PageFunc[P, T], params P, start int, cfg Config) *Delegate[P, T] {
	cfg = cfg.withDefaults()
	if start < 0 {
		start = 0
	}
	return &Delegate[P, T]{
		name:   name,
		fetch:  fetch,
		params: params,
		config: cfg,
		logger: cfg.logger().With().Str("component", "pagination").Str("endpoint", name).Logger(),
		offset: start,
	}
}

// Name returns the endpoint name.
func (d *Delegate[P, T]) Name() string {
	return d.name
}

// FetchNext fetches the page at the current offset. The requested page size
// is clipped so the query never reaches past the cap.
func (d *Delegate[P, T]) FetchNext(ctx context.Context) ([]T, error) {
	size := d.config.PageSize
	if remaining := d.config.MaxResults - d.offset; remaining < size {
		size = remaining
	}
	if size <= 0 {
		return nil, nil
	}

	d.logger.Debug().
		Int("offset", d.offset).
		Int("page_size", size).
		Msg("Fetching page")

	records, desc, err := d.fetch(ctx, d.params, d.offset, size)
	if err != nil {
		return nil, err
	}
	if err := d.check(desc, len(records)); err != nil {
		return nil, err
	}

	d.last = &desc
	pagesFetched.WithLabelValues(d.name).Inc()
	return records, nil
}

func (d *Delegate[P, T]) check(desc Descriptor, records int) error {
	var kind ViolationKind
	switch {
	case desc.Index != d.offset:
		kind = ViolationOffsetMismatch
	case desc.ResultCount != records:
		kind = ViolationCountMismatch
	default:
		return nil
	}

	perr := &ProtocolError{
		Endpoint:        d.name,
		Kind:            kind,
		RequestedOffset: d.offset,
		Descriptor:      desc,
		Records:         records,
	}
	protocolViolations.WithLabelValues(string(kind)).Inc()

	if d.config.Strict {
		return perr
	}
	d.logger.Warn().
		Err(perr).
		Str("kind", string(kind)).
		Int("requested_offset", d.offset).
		Int("records", records).
		Msg("Pagination descriptor disagrees with request")
	return nil
}

// Offset returns the offset of the next page.
func (d *Delegate[P, T]) Offset() int {
	return d.offset
}

// SetOffset moves the cursor. Negative offsets are clamped to 0.
func (d *Delegate[P, T]) SetOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	d.offset = offset
}

// KnownTotal returns min(cap, totalCount) of the last page.
func (d *Delegate[P, T]) KnownTotal() (int, bool) {
	if d.last == nil {
		return 0, false
	}
	return min(d.config.MaxResults, d.last.TotalCount), true
}

// Descriptor returns the last descriptor received.
func (d *Delegate[P, T]) Descriptor() (Descriptor, bool) {
	if d.last == nil {
		return Descriptor{}, false
	}
	return *d.last, true
}
