// Package metrics expone métricas Prometheus del inventario (cache de imágenes y taxonomía).
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados posibles en los labels "result".
const (
	ResultOK          = "ok"
	ResultHTTPError   = "http_error"
	ResultTransport   = "transport_error"
	ResultUnsupported = "unsupported"
	ResultNoMatch     = "no_match"
	ResultCached      = "cached"
)

type Metrics struct {
	PictureCacheHits   prometheus.Counter
	PictureCacheMisses prometheus.Counter
	PictureDownloads   *prometheus.CounterVec
	PictureBytes       prometheus.Histogram
	TaxonomyLookups    *prometheus.CounterVec
}

// New registra las métricas en reg. reg nil => métricas sin registrar (tests).
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		PictureCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petstore_picture_cache_hits_total",
			Help: "Picture requests served from the URL cache without downloading",
		}),
		PictureCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petstore_picture_cache_misses_total",
			Help: "Picture requests that required a download",
		}),
		PictureDownloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petstore_picture_downloads_total",
			Help: "Picture downloads by result",
		}, []string{"result"}),
		PictureBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "petstore_picture_size_bytes",
			Help:    "Size of downloaded pictures in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		}),
		TaxonomyLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petstore_taxonomy_lookups_total",
			Help: "Taxonomy lookups by result",
		}, []string{"result"}),
	}

	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{
		m.PictureCacheHits,
		m.PictureCacheMisses,
		m.PictureDownloads,
		m.PictureBytes,
		m.TaxonomyLookups,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// Discard devuelve métricas no registradas; nunca falla.
func Discard() *Metrics {
	m, _ := New(nil)
	return m
}

func OrDiscard(m *Metrics) *Metrics {
	if m == nil {
		return Discard()
	}
	return m
}
