package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "pet-store-inventory/docs"
	mem "pet-store-inventory/internal/adapters/storage/memory"
	"pet-store-inventory/internal/adapters/taxonomy/ninjas"
	"pet-store-inventory/internal/domain/pets"
	"pet-store-inventory/internal/domain/pettypes"
	"pet-store-inventory/internal/domain/pictures"
	"pet-store-inventory/internal/middleware"
	"pet-store-inventory/internal/platform/httpclient"
	"pet-store-inventory/internal/platform/ids"
	"pet-store-inventory/internal/platform/logger"
	"pet-store-inventory/internal/platform/metrics"
	"pet-store-inventory/internal/platform/respond"
)

const RootMessage = "Pet Store Inventory API"

type Options struct {
	Logger *zap.Logger // nil => no-op

	// Registry recibe las métricas y se expone en /metrics. nil => registry nuevo.
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	// Taxonomy nil => cliente api-ninjas con config por defecto (sin API key).
	Taxonomy pettypes.TaxonomyLookup
	// PictureFetcher nil => httpclient con PictureTimeout.
	PictureFetcher pictures.Fetcher
	PictureTimeout time.Duration

	IDs   ids.Generator // nil => secuencial
	Store *mem.Store    // nil => store vacío
}

func NewRouter(opts Options) http.Handler {
	log := logger.OrNop(opts.Logger)

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := opts.Metrics
	if m == nil {
		var err error
		if m, err = metrics.New(reg); err != nil {
			log.Warn("metrics disabled", zap.Error(err))
			m = metrics.Discard()
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"message": RootMessage})
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	taxonomy := opts.Taxonomy
	if taxonomy == nil {
		taxonomy = ninjas.NewClient(ninjas.Config{}, nil, log, m)
	}
	fetcher := opts.PictureFetcher
	if fetcher == nil {
		fetcher = httpclient.New(opts.PictureTimeout)
	}

	// Services por módulo
	petTypesSvc := pettypes.NewService(store, taxonomy, opts.IDs, log)
	picturesSvc := pictures.NewService(store, fetcher, pictures.Options{
		Timeout: opts.PictureTimeout,
		Logger:  log,
		Metrics: m,
	})
	petsSvc := pets.NewService(store, store, picturesSvc, log)

	// Rutas por módulo
	pettypes.RegisterRoutes(r, petTypesSvc)
	pets.RegisterRoutes(r, petsSvc)
	pictures.RegisterRoutes(r, picturesSvc)

	return r
}
