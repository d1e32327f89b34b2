// Package metrics instrumenta las peticiones HTTP: histograma HDR para el panel admin
// y contadores Prometheus para /metrics.
package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
)

const (
	minLatencyMicros = 1
	maxLatencyMicros = int64(60 * time.Second / time.Microsecond)
	sigFigs          = 3
)

// LatencyRecorder histograma en microsegundos, seguro para uso concurrente.
// Valores por encima de 60s se registran como 60s.
type LatencyRecorder struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

// NewLatencyRecorder crea un recorder vacío.
func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{hist: hdrhistogram.New(minLatencyMicros, maxLatencyMicros, sigFigs)}
}

// Record agrega una muestra.
func (r *LatencyRecorder) Record(d time.Duration) {
	v := d.Microseconds()
	if v < minLatencyMicros {
		v = minLatencyMicros
	}
	if v > maxLatencyMicros {
		v = maxLatencyMicros
	}
	r.mu.Lock()
	_ = r.hist.RecordValue(v)
	r.mu.Unlock()
}

// Snapshot devuelve los percentiles actuales en milisegundos.
func (r *LatencyRecorder) Snapshot() dto.LatencyStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hist.TotalCount() == 0 {
		return dto.LatencyStats{}
	}
	return dto.LatencyStats{
		Count: r.hist.TotalCount(),
		P50:   toMillis(r.hist.ValueAtQuantile(50)),
		P90:   toMillis(r.hist.ValueAtQuantile(90)),
		P99:   toMillis(r.hist.ValueAtQuantile(99)),
		Max:   toMillis(r.hist.Max()),
		Mean:  r.hist.Mean() / 1000,
	}
}

// Reset descarta todas las muestras.
func (r *LatencyRecorder) Reset() {
	r.mu.Lock()
	r.hist.Reset()
	r.mu.Unlock()
}

func toMillis(micros int64) float64 {
	return float64(micros) / 1000
}
