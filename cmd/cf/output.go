package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Sternrassler/curseforge-client/pkg/checkpoint"
	"github.com/Sternrassler/curseforge-client/pkg/decode"
	"github.com/Sternrassler/curseforge-client/pkg/pagination"
)

// writeRecord prints v as one JSON line. decode.Encode is used so that
// residual members captured in lenient mode are printed too.
func writeRecord(w io.Writer, v any) error {
	line, err := decode.Encode(v)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	line = append(line, '\n')
	_, err = w.Write(line)
	return err
}

// drain prints up to limit records of it (all when limit <= 0). With a
// checkpoint key the query starts from the stored cursor; the cursor is
// saved when the query stops early and deleted once it is exhausted.
func drain[T any](ctx context.Context, a *app, it *pagination.Engine[T], key *checkpoint.Key, limit int) error {
	if key != nil && a.store != nil {
		found, err := checkpoint.Restore(ctx, a.store, *key, it)
		if err != nil {
			return err
		}
		if found {
			a.logger.Info().Str("key", key.String()).Int("offset", it.Cursor().Offset).Msg("Resuming from checkpoint")
		}
	}

	printed := 0
	for limit <= 0 || printed < limit {
		rec, err := it.Next(ctx)
		if errors.Is(err, pagination.Done) {
			if key != nil && a.store != nil {
				return a.store.Delete(ctx, *key)
			}
			return nil
		}
		if err != nil {
			return errors.Join(err, a.save(ctx, it.Cursor(), key))
		}
		if err := writeRecord(a.out, rec); err != nil {
			// rec already left the engine; resume at it.
			cursor := it.Cursor()
			cursor.Offset--
			return errors.Join(err, a.save(ctx, cursor, key))
		}
		printed++
	}
	return a.save(ctx, it.Cursor(), key)
}

func (a *app) save(ctx context.Context, cursor pagination.Cursor, key *checkpoint.Key) error {
	if key == nil || a.store == nil {
		return nil
	}
	// The query context may already be canceled.
	if err := a.store.Save(context.WithoutCancel(ctx), *key, cursor, a.cfg.Redis.CheckpointTTL); err != nil {
		return err
	}
	a.logger.Info().Str("key", key.String()).Int("offset", cursor.Offset).Msg("Checkpoint saved")
	return nil
}
