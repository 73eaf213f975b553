package pagination

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is the lifecycle state of an Engine.
type State int

const (
	// StateNotStarted means no page has been requested since creation or
	// the last Seek.
	StateNotStarted State = iota

	// StateFetching means a page fetch is in flight.
	StateFetching

	// StateBuffered means the last fetch succeeded and more records may follow.
	StateBuffered

	// StateExhausted is terminal: the cap or the total was reached, or the
	// server returned an empty page.
	StateExhausted

	// StateFailed is terminal: a fetch returned an error.
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateFetching:
		return "fetching"
	case StateBuffered:
		return "buffered"
	case StateExhausted:
		return "exhausted"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Progress reports how far an engine has come.
type Progress struct {
	Yielded  int
	Pages    int
	Buffered int
}

// Engine yields the records of a paginated query one at a time, fetching a
// page whenever its buffer runs dry.
type Engine[T any] struct {
	src        Source[T]
	maxResults int
	logger     zerolog.Logger

	buf   []T
	state State
	err   error

	yielded int
	pages   int
}

// NewEngine creates an engine over src.
func NewEngine[T any](src Source[T], cfg Config) *Engine[T] {
	cfg = cfg.withDefaults()
	return &Engine[T]{
		src:        src,
		maxResults: cfg.MaxResults,
		logger: cfg.logger().With().
			Str("component", "pagination").
			Str("endpoint", src.Name()).
			Str("iterator_id", uuid.NewString()).
			Logger(),
	}
}

// Iterate is shorthand for NewEngine(NewDelegate(...)).
func Iterate[P, T any](name string, fetch PageFunc[P, T], params P, start int, cfg Config) *Engine[T] {
	return NewEngine[T](NewDelegate(name, fetch, params, start, cfg), cfg)
}

// Next returns the next record. It returns Done once the sequence is
// exhausted, and keeps returning Done (or the failure) without fetching
// again.
func (e *Engine[T]) Next(ctx context.Context) (T, error) {
	var zero T

	if len(e.buf) > 0 {
		return e.pop(), nil
	}

	switch e.state {
	case StateExhausted:
		return zero, Done
	case StateFailed:
		return zero, e.err
	}

	offset := e.src.Offset()
	if offset >= e.Limit() {
		e.exhaust("limit reached")
		return zero, Done
	}

	e.state = StateFetching
	records, err := e.src.FetchNext(ctx)
	if err != nil {
		e.state = StateFailed
		e.err = err
		e.logger.Error().
			Err(err).
			Int("offset", offset).
			Int("yielded", e.yielded).
			Msg("Page fetch failed")
		return zero, err
	}
	e.pages++

	if room := e.maxResults - offset; len(records) > room {
		records = records[:room]
	}
	e.src.SetOffset(offset + len(records))
	itemsYielded.WithLabelValues(e.src.Name()).Add(float64(len(records)))

	if len(records) == 0 {
		e.exhaust("empty page")
		return zero, Done
	}

	// The buffer is cleared as it drains; keep the caller's page intact.
	e.buf = slices.Clone(records)
	e.state = StateBuffered
	return e.pop(), nil
}

func (e *Engine[T]) pop() T {
	var zero T
	item := e.buf[0]
	e.buf[0] = zero
	e.buf = e.buf[1:]
	e.yielded++
	return item
}

func (e *Engine[T]) exhaust(reason string) {
	e.state = StateExhausted
	e.buf = nil
	e.logger.Info().
		Str("reason", reason).
		Int("yielded", e.yielded).
		Int("pages", e.pages).
		Msg("Iteration complete")
}

// Limit returns min(cap, known total), or the cap before the first page.
func (e *Engine[T]) Limit() int {
	if total, ok := e.src.KnownTotal(); ok && total < e.maxResults {
		return total
	}
	return e.maxResults
}

// SizeHint returns bounds on the number of records in the whole query.
// The upper bound is known once a page has been fetched. Records already
// yielded are not subtracted.
func (e *Engine[T]) SizeHint() (lower, upper int, ok bool) {
	total, ok := e.src.KnownTotal()
	if !ok {
		return 0, 0, false
	}
	return 0, min(e.maxResults, total), true
}

// State returns the current lifecycle state.
func (e *Engine[T]) State() State {
	return e.state
}

// Err returns the error that failed the engine, if any.
func (e *Engine[T]) Err() error {
	return e.err
}

// Descriptor returns the last descriptor received.
func (e *Engine[T]) Descriptor() (Descriptor, bool) {
	return e.src.Descriptor()
}

// Progress returns counters for logging and CLIs.
func (e *Engine[T]) Progress() Progress {
	return Progress{
		Yielded:  e.yielded,
		Pages:    e.pages,
		Buffered: len(e.buf),
	}
}

// Cursor returns the position of the next record not yet returned by Next,
// so an engine built at Cursor().Offset continues without gaps.
func (e *Engine[T]) Cursor() Cursor {
	c := Cursor{Offset: e.src.Offset() - len(e.buf)}
	if desc, ok := e.src.Descriptor(); ok {
		c.Descriptor = &desc
	}
	return c
}

// Seek discards the buffer and moves the cursor to offset. The next call to
// Next fetches from there, even if the engine was exhausted.
func (e *Engine[T]) Seek(offset int) error {
	if e.state == StateFailed {
		return ErrSeekFailed
	}
	if offset < 0 {
		return fmt.Errorf("negative seek offset %d", offset)
	}
	e.buf = nil
	e.src.SetOffset(offset)
	e.state = StateNotStarted
	e.logger.Debug().Int("offset", offset).Msg("Seek")
	return nil
}

// All adapts the engine to a range-over-func sequence. Iteration stops
// after the first error, which is yielded with the zero value.
func (e *Engine[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := e.Next(ctx)
			if errors.Is(err, Done) {
				return
			}
			if err != nil {
				yield(item, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Collect drains the engine. On failure it returns the records gathered so
// far together with the error.
func (e *Engine[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for item, err := range e.All(ctx) {
		if err != nil {
			return out, err
		}
		out = append(out, item)
	}
	return out, nil
}
