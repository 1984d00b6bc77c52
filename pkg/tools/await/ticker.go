package await

import (
	"context"
	"time"
)

func Tick(interval time.Duration) Awaiter[struct{}] {
	return &tickerAwaiter{time.NewTicker(interval)}
}

type tickerAwaiter struct {
	*time.Ticker
}

func (t *tickerAwaiter) Await(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-t.Ticker.C:
		return true
	}
}

func (t *tickerAwaiter) Value() (struct{}, bool) {
	return struct{}{}, false
}
