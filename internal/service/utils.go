package service

import (
	"math/rand/v2"
	"time"
)

// randomDelay возвращает случайную длительность в диапазоне [minDelay, maxDelay].
// Если maxDelay <= minDelay, возвращает minDelay.
func randomDelay(minDelay, maxDelay time.Duration) time.Duration {
	if maxDelay <= minDelay {
		return minDelay
	}
	return minDelay + time.Duration(rand.Int64N(int64(maxDelay-minDelay)+1)) // nolint:gosec
}
