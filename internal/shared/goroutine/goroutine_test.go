package goroutine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dialpool/internal/shared/logger"
)

func TestSafeGo_RecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	SafeGo(logger.NewNop(), "panicker", func() {
		defer wg.Done()
		panic("boom")
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}
}

func TestSafeGo_RunsFunction(t *testing.T) {
	ran := make(chan bool, 1)
	SafeGo(logger.NewNop(), "worker", func() { ran <- true })

	select {
	case v := <-ran:
		assert.True(t, v)
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}
}
