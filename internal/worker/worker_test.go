package worker

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsTasks(t *testing.T) {
	p := NewPool(3)
	var ran int64
	for i := 0; i < 10; i++ {
		p.Submit(func() { atomic.AddInt64(&ran, 1) })
	}
	p.Submit(nil) // ignored
	p.Stop()
	require.EqualValues(t, 10, atomic.LoadInt64(&ran))
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0)
	done := make(chan struct{})
	p.Submit(func() { close(done) })
	<-done
	p.Stop()
}
