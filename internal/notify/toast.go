// Package notify pushes user-facing toast messages and table change hints
// over Redis pub/sub. Delivery is best effort; nothing here returns an error
// to callers because a lost toast must never fail the operation behind it.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"agrilink-api/internal/cache"
)

// Toast levels.
const (
	LevelInfo  = "info"
	LevelError = "error"
)

type toastPayload struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Ts      int64  `json:"ts"`
}

// Toast publishes alerts on the shared notification channel. The zero value
// (nil Redis) is a usable no-op, so callers never need to branch on whether
// Redis is configured. Satisfies priceengine.Notifier and weather.Notifier.
type Toast struct {
	rds *redis.Redis
}

// NewToast wires a toast publisher. rds may be nil.
func NewToast(rds *redis.Redis) *Toast {
	return &Toast{rds: rds}
}

// Alert publishes an error-level toast.
func (t *Toast) Alert(ctx context.Context, message string) {
	t.publish(ctx, LevelError, message)
}

// Info publishes an info-level toast.
func (t *Toast) Info(ctx context.Context, message string) {
	t.publish(ctx, LevelInfo, message)
}

func (t *Toast) publish(ctx context.Context, level, message string) {
	if t == nil || t.rds == nil {
		return
	}
	payload, err := json.Marshal(toastPayload{
		Level:   level,
		Message: message,
		Ts:      time.Now().UnixMilli(),
	})
	if err != nil {
		return
	}
	if _, err := t.rds.PublishCtx(ctx, cache.ToastChannel(), string(payload)); err != nil {
		logx.WithContext(ctx).Errorf("notify: publish toast: %v", err)
	}
}

// ChangeFeed announces table-level writes so connected clients can refetch.
type ChangeFeed struct {
	rds *redis.Redis
}

// NewChangeFeed wires a change-feed publisher. rds may be nil.
func NewChangeFeed(rds *redis.Redis) *ChangeFeed {
	return &ChangeFeed{rds: rds}
}

// Changed publishes a change hint for the named table.
func (f *ChangeFeed) Changed(ctx context.Context, table string) {
	if f == nil || f.rds == nil {
		return
	}
	if _, err := f.rds.PublishCtx(ctx, cache.ChangeFeedChannel(table), table); err != nil {
		logx.WithContext(ctx).Errorf("notify: publish change for %s: %v", table, err)
	}
}
