package timer

import (
	"sync"
	"time"
)

// Handle is a cancellable interval callback. Stop is idempotent and
// guarantees no callback fires after it returns.
type Handle struct {
	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

// Every invokes fn at the given interval until the returned handle is
// stopped. The first invocation happens one interval after the call.
func Every(interval time.Duration, fn func()) *Handle {
	h := &Handle{done: make(chan struct{})}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				fn()
			case <-h.done:
				return
			}
		}
	}()

	return h
}

// Stop cancels the interval and waits for the in-flight callback, if any,
// to finish.
func (h *Handle) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
	h.wg.Wait()
}
