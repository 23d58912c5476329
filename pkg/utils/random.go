package utils

import (
	"math/rand"
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// TimestampID возвращает время в миллисекундах, как Date.now() в браузерном клиенте,
// но строго возрастающее внутри процесса: два вызова в одну миллисекунду не совпадут.
func TimestampID() int64 {
	for {
		now := time.Now().UnixMilli()
		prev := lastID.Load()
		if now <= prev {
			now = prev + 1
		}
		if lastID.CompareAndSwap(prev, now) {
			return now
		}
	}
}

// RandomCoord возвращает случайное число из [lo, hi], кратное step.
// Если в отрезке нет кратных step, возвращается lo.
func RandomCoord(rng *rand.Rand, lo, hi, step int) int {
	if hi < lo {
		return lo
	}
	if step <= 0 {
		step = 1
	}
	v := lo + rng.Intn(hi-lo+1)
	v = v / step * step
	if v < lo {
		v += step
	}
	if v > hi {
		return lo
	}
	return v
}
