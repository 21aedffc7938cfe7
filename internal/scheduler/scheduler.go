package scheduler

import (
	"context"
	"log"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on every tick until ctx is done.
// Task errors are logged, never fatal; the next tick retries from scratch.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	go func() {
		if err := task(ctx); err != nil {
			log.Printf("level=error msg=\"task failed\" task=%s err=%v", name, err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := task(ctx); err != nil {
				log.Printf("level=error msg=\"task failed\" task=%s err=%v", name, err)
			}
		}
	}
}
