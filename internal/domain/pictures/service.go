package pictures

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"pet-store-inventory/internal/platform/apperr"
	"pet-store-inventory/internal/platform/httpclient"
	"pet-store-inventory/internal/platform/logger"
	"pet-store-inventory/internal/platform/metrics"
)

const DefaultFetchTimeout = 10 * time.Second

// Fetcher descarga una URL; *httpclient.Client lo implementa.
type Fetcher interface {
	Get(ctx context.Context, rawURL string) (*httpclient.Download, error)
}

// Resolved es el resultado de resolver una URL de imagen.
// Data == nil => cache hit: el archivo ya está en el store, no hay que re-guardarlo.
type Resolved struct {
	Filename string
	Data     []byte
}

func (r Resolved) Cached() bool { return r.Data == nil }

type Service struct {
	repo    Repository
	fetcher Fetcher
	timeout time.Duration
	log     *zap.Logger
	metrics *metrics.Metrics

	inflight singleflight.Group
}

type Options struct {
	Timeout time.Duration
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

func NewService(repo Repository, fetcher Fetcher, opts Options) *Service {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Service{
		repo:    repo,
		fetcher: fetcher,
		timeout: timeout,
		log:     logger.OrNop(opts.Logger).Named("pictures"),
		metrics: metrics.OrDiscard(opts.Metrics),
	}
}

// Resolve devuelve un filename local estable para rawURL.
//  1. hit si la URL ya tiene filename, el archivo sigue existiendo y pertenece al mismo (nombre, especie)
//  2. si no, descarga (timeout acotado) y clasifica por Content-Type
//  3. registra URL -> filename
//
// Errores: status no-200 o fallo de transporte => malformed; sin Content-Type o desconocido => unsupported.
func (s *Service) Resolve(ctx context.Context, rawURL, petName, petType string) (Resolved, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Resolved{}, apperr.Malformedf("picture url required")
	}
	stem := Stem(petName, petType)

	if fn, ok := s.repo.FilenameForURL(rawURL); ok && stemOf(fn) == stem && s.repo.PictureExists(fn) {
		s.metrics.PictureCacheHits.Inc()
		s.log.Debug("picture cache hit", zap.String("url", rawURL), zap.String("filename", fn))
		return Resolved{Filename: fn}, nil
	}
	s.metrics.PictureCacheMisses.Inc()

	// Dos requests simultáneos por la misma (url, stem) comparten una sola descarga.
	v, err, _ := s.inflight.Do(rawURL+"\x00"+stem, func() (any, error) {
		return s.download(ctx, rawURL, petName, petType)
	})
	if err != nil {
		return Resolved{}, err
	}
	res := v.(Resolved)

	s.repo.SaveURLMapping(rawURL, res.Filename)
	return res, nil
}

func (s *Service) download(ctx context.Context, rawURL, petName, petType string) (Resolved, error) {
	// Sin cancel del request original: la descarga puede estar compartida.
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	d, err := s.fetcher.Get(fetchCtx, rawURL)
	if err != nil {
		result := metrics.ResultTransport
		if _, ok := httpclient.StatusCode(err); ok {
			result = metrics.ResultHTTPError
		}
		s.metrics.PictureDownloads.WithLabelValues(result).Inc()
		s.log.Warn("picture download failed", zap.String("url", rawURL), zap.Error(err))
		return Resolved{}, apperr.Malformed(err)
	}

	ext, err := ExtensionFor(d.ContentType)
	if err != nil {
		s.metrics.PictureDownloads.WithLabelValues(metrics.ResultUnsupported).Inc()
		s.log.Warn("picture has unsupported content type",
			zap.String("url", rawURL),
			zap.String("content_type", d.ContentType),
		)
		return Resolved{}, err
	}

	data := d.Body
	if data == nil {
		data = []byte{}
	}

	s.metrics.PictureDownloads.WithLabelValues(metrics.ResultOK).Inc()
	s.metrics.PictureBytes.Observe(float64(len(data)))

	fn := Filename(petName, petType, ext)
	s.log.Info("picture downloaded",
		zap.String("url", rawURL),
		zap.String("filename", fn),
		zap.Int("bytes", len(data)),
	)
	return Resolved{Filename: fn, Data: data}, nil
}

// Get devuelve bytes + content type para servir /pictures/{filename}.
// La extensión se valida primero: una extensión desconocida es 415 aunque no exista.
func (s *Service) Get(_ context.Context, filename string) ([]byte, string, error) {
	ct, err := ContentTypeFor(filename)
	if err != nil {
		return nil, "", err
	}
	data, ok := s.repo.GetPicture(filename)
	if !ok || len(data) == 0 {
		return nil, "", apperr.NotFound()
	}
	return data, ct, nil
}
