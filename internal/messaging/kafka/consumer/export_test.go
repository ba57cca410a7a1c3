package consumer

import "time"

var Backoff = backoff

// SetRetryDelays overrides the back-off bounds and restores them on cleanup.
func SetRetryDelays(cleanup func(func()), base, maxDelay time.Duration) {
	prevBase, prevMax := retryBaseDelay, maxRetryDelay
	retryBaseDelay, maxRetryDelay = base, maxDelay
	cleanup(func() {
		retryBaseDelay, maxRetryDelay = prevBase, prevMax
	})
}
