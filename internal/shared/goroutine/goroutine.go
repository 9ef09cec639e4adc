// Package goroutine starts background goroutines that log panics instead of
// taking the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"dialpool/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic is logged with its stack under
// name and the goroutine exits.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
