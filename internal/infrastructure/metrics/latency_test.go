package metrics_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/autotienda-api/internal/infrastructure/metrics"
)

func TestLatencyRecorder_Vacio(t *testing.T) {
	r := metrics.NewLatencyRecorder()
	assert.Zero(t, r.Snapshot().Count)
}

func TestLatencyRecorder_Percentiles(t *testing.T) {
	r := metrics.NewLatencyRecorder()
	for i := 1; i <= 100; i++ {
		r.Record(time.Duration(i) * time.Millisecond)
	}
	s := r.Snapshot()
	assert.Equal(t, int64(100), s.Count)
	assert.InDelta(t, 50, s.P50, 0.5)
	assert.InDelta(t, 90, s.P90, 0.5)
	assert.InDelta(t, 99, s.P99, 0.5)
	assert.InDelta(t, 100, s.Max, 0.5)
	assert.InDelta(t, 50.5, s.Mean, 0.5)

	r.Reset()
	assert.Zero(t, r.Snapshot().Count)
}

func TestLatencyRecorder_Concurrente(t *testing.T) {
	r := metrics.NewLatencyRecorder()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				r.Record(time.Millisecond)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(2000), r.Snapshot().Count)
}

func TestLatencyRecorder_RecortaExtremos(t *testing.T) {
	r := metrics.NewLatencyRecorder()
	r.Record(0)
	r.Record(5 * time.Minute)
	s := r.Snapshot()
	assert.Equal(t, int64(2), s.Count)
	assert.InDelta(t, 60000, s.Max, 60)
}
