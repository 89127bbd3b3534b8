// Package closer обеспечивает упорядоченное освобождение ресурсов при остановке приложения.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer закрывает зарегистрированные ресурсы в порядке LIFO.
// Если контекст истекает до завершения, оставшиеся ресурсы
// закрываются принудительно с собственным таймаутом.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	funcs         []Func
	forcedTimeout time.Duration
}

func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует функцию закрытия. Безопасен для конкурентного вызова.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	c.funcs = append(c.funcs, f)
	c.mu.Unlock()
}

// Close запускает закрытие всех ресурсов. Повторные вызовы — no-op.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var msgs []string
		for i := len(funcs) - 1; i >= 0; i-- {
			done := make(chan error, 1)
			go func(f Func) { done <- f(ctx) }(funcs[i])

			select {
			case ferr := <-done:
				if ferr != nil {
					msgs = append(msgs, fmt.Sprintf("[!] %v", ferr))
				}
			case <-ctx.Done():
				// Таймаут graceful-фазы: добиваем остаток принудительно.
				msgs = append(msgs, c.forcedClose(funcs[:i+1])...)
				err = fmt.Errorf("shutdown interrupted after %d/%d funcs:\n%s",
					len(funcs)-1-i, len(funcs), strings.Join(msgs, "\n"))
				return
			}
		}

		if len(msgs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(msgs, "\n"))
		}
	})

	return err
}

// forcedClose параллельно запускает оставшиеся функции закрытия.
func (c *Closer) forcedClose(funcs []Func) []string {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		msgs []string
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, f := range funcs {
		wg.Add(1)
		go func(f Func) {
			defer wg.Done()
			if err := f(ctx); err != nil {
				mu.Lock()
				msgs = append(msgs, fmt.Sprintf("[FORCED] %v", err))
				mu.Unlock()
			}
		}(f)
	}

	wg.Wait()
	return msgs
}
