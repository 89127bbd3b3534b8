// Package jitter предоставляет утилиты для добавления случайности в интервалы
// отступления (backoff), чтобы предотвратить эффект «буйного стада» (thundering herd).
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает продолжительность с применённым джиттером.
// Результат находится в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	j := globalRand.Float64() * jitterFactor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(j)
}

// ExponentialBackoff вычисляет экспоненциальное отступление с джиттером.
// base — начальная длительность, max — потолок, attempt — номер попытки (с нуля).
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, jitterFactor)
}
