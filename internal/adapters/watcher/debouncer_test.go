package watcher_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rescheduler/internal/adapters/watcher"
)

// recorder collects debouncer callbacks.
type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/w/world.yaml")
		d.Add("/w/world.yaml")
		d.Add("/w/other.yaml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.snapshot(), 1)
		assert.Equal(t, []string{"/w/other.yaml", "/w/world.yaml"}, rec.snapshot()[0])
	})
}

func TestDebouncer_QuietPeriodRestarts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/w/world.yaml")
		time.Sleep(60 * time.Millisecond)
		d.Add("/w/world.yaml")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.snapshot())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/w/world.yaml")
		time.Sleep(100 * time.Millisecond)
		d.Add("/w/world.yaml")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, rec.snapshot(), 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Flush()
		assert.Empty(t, rec.snapshot(), "nothing pending")

		d.Add("/w/world.yaml")
		d.Flush()
		require.Len(t, rec.snapshot(), 1)

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1, "the stopped timer does not fire again")
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/w/world.yaml")
		d.Stop()
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot())
	})
}

func TestDebouncer_StopWaitsForRunningCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var (
			started = make(chan struct{})
			done    atomic.Bool
		)
		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			close(started)
			time.Sleep(time.Second)
			done.Store(true)
		})

		d.Add("/w/world.yaml")
		<-started
		d.Stop()
		assert.True(t, done.Load(), "Stop returned while the callback was still running")

		d.Add("/w/world.yaml")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)
		d.Add("/w/world.yaml")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
