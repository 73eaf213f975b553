package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sternrassler/curseforge-client/pkg/pagination"
)

var (
	// ErrNotFound indicates no checkpoint is stored for the key.
	ErrNotFound = errors.New("checkpoint not found")

	// ErrInvalidEntry indicates the stored checkpoint is corrupted.
	ErrInvalidEntry = errors.New("invalid checkpoint entry")
)

// Entry is a stored checkpoint.
type Entry struct {
	Cursor  pagination.Cursor `json:"cursor"`
	SavedAt time.Time         `json:"saved_at"`
}

// Store keeps checkpoints in Redis.
type Store struct {
	redis redis.Cmdable
}

// New creates a checkpoint store with a Redis backend.
func New(redisClient redis.Cmdable) *Store {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &Store{redis: redisClient}
}

// Save stores the cursor under key. A ttl of 0 keeps it until deleted.
func (s *Store) Save(ctx context.Context, key Key, cursor pagination.Cursor, ttl time.Duration) error {
	if cursor.Offset < 0 {
		operationsTotal.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("checkpoint offset must be non-negative (got %d)", cursor.Offset)
	}

	data, err := json.Marshal(Entry{Cursor: cursor, SavedAt: time.Now().UTC()})
	if err != nil {
		operationsTotal.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("marshal checkpoint: %w", err)
	}

	if err := s.redis.Set(ctx, key.String(), data, ttl).Err(); err != nil {
		operationsTotal.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	operationsTotal.WithLabelValues("save", "ok").Inc()
	return nil
}

// Load returns the checkpoint stored under key, or ErrNotFound.
func (s *Store) Load(ctx context.Context, key Key) (Entry, error) {
	data, err := s.redis.Get(ctx, key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			operationsTotal.WithLabelValues("load", "miss").Inc()
			return Entry{}, ErrNotFound
		}
		operationsTotal.WithLabelValues("load", "error").Inc()
		return Entry{}, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		operationsTotal.WithLabelValues("load", "error").Inc()
		return Entry{}, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	if entry.Cursor.Offset < 0 {
		operationsTotal.WithLabelValues("load", "error").Inc()
		return Entry{}, fmt.Errorf("%w: negative offset %d", ErrInvalidEntry, entry.Cursor.Offset)
	}

	operationsTotal.WithLabelValues("load", "ok").Inc()
	return entry, nil
}

// Delete removes the checkpoint stored under key. Deleting a missing
// checkpoint is not an error.
func (s *Store) Delete(ctx context.Context, key Key) error {
	if err := s.redis.Del(ctx, key.String()).Err(); err != nil {
		operationsTotal.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	operationsTotal.WithLabelValues("delete", "ok").Inc()
	return nil
}

// Restore seeks e to the checkpoint stored under key. It reports whether a
// checkpoint was found; a missing checkpoint leaves e untouched.
func Restore[T any](ctx context.Context, s *Store, key Key, e *pagination.Engine[T]) (bool, error) {
	entry, err := s.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := e.Seek(entry.Cursor.Offset); err != nil {
		return false, fmt.Errorf("restore checkpoint %s: %w", key, err)
	}
	return true, nil
}
