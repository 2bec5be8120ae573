package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"time"

	"smartfit/internal/domain/entity"
	"smartfit/internal/domain/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

// applyTo mimics OrderRepository.ApplyStatusChange against an in-memory order.
func applyTo(current *entity.Order) func(context.Context, entity.OrderRef, repository.StatusChangeFunc) (*entity.Order, error) {
	return func(_ context.Context, _ entity.OrderRef, fn repository.StatusChangeFunc) (*entity.Order, error) {
		change, err := fn(current)
		if err != nil {
			return nil, err
		}

		updated := *current
		updated.Status = change.Update.Status
		updated.StatusUpdates = maps.Clone(current.StatusUpdates)
		if updated.StatusUpdates == nil {
			updated.StatusUpdates = map[string]entity.StatusUpdate{}
		}
		updated.StatusUpdates[change.Key] = change.Update
		if change.RejectionReason != "" {
			updated.RejectionReason = change.RejectionReason
		}

		return &updated, nil
	}
}
