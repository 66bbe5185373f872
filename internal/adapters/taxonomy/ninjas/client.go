package ninjas

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"pet-store-inventory/internal/domain/pettypes"
	"pet-store-inventory/internal/platform/apperr"
	"pet-store-inventory/internal/platform/httpclient"
	"pet-store-inventory/internal/platform/logger"
	"pet-store-inventory/internal/platform/metrics"
)

const (
	DefaultBaseURL      = "https://api.api-ninjas.com/v1/animals"
	DefaultAPIKeyHeader = "X-Api-Key"
)

type Config struct {
	BaseURL string
	APIKey  string

	APIKeyHeader string
	Timeout      time.Duration
	// CacheTTL <= 0 desactiva el cache de respuestas.
	CacheTTL time.Duration
}

// Client consulta la API de animales de API Ninjas y la traduce a pettypes.Taxonomy.
type Client struct {
	baseURL      string
	apiKey       string
	apiKeyHeader string

	http    *httpclient.Client
	cache   *cache.Cache
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewClient: hc nil => httpclient.New(cfg.Timeout).
func NewClient(cfg Config, hc *httpclient.Client, log *zap.Logger, m *metrics.Metrics) *Client {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = DefaultAPIKeyHeader
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	if hc == nil {
		hc = httpclient.New(cfg.Timeout)
	}

	c := &Client{
		baseURL:      base,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		http:         hc,
		log:          logger.OrNop(log).Named("taxonomy"),
		metrics:      metrics.OrDiscard(m),
	}
	if cfg.CacheTTL > 0 {
		c.cache = cache.New(cfg.CacheTTL, cfg.CacheTTL*2)
	}
	return c
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

type animal struct {
	Name     string `json:"name"`
	Taxonomy struct {
		Family string `json:"family"`
		Genus  string `json:"genus"`
	} `json:"taxonomy"`
	Characteristics struct {
		Temperament   string `json:"temperament"`
		GroupBehavior string `json:"group_behavior"`
		Lifespan      string `json:"lifespan"`
	} `json:"characteristics"`
}

// Lookup busca species y elige el resultado cuyo name coincide sin mayúsculas.
//   - upstream no-2xx o fallo de red => server error
//   - sin resultados o sin coincidencia exacta => malformed
//
// Solo se cachean los éxitos.
func (c *Client) Lookup(ctx context.Context, species string) (pettypes.Taxonomy, error) {
	species = strings.TrimSpace(species)
	if species == "" {
		return pettypes.Taxonomy{}, apperr.Malformedf("species required")
	}
	key := strings.ToLower(species)

	if c.cache != nil {
		if v, found := c.cache.Get(key); found {
			c.metrics.TaxonomyLookups.WithLabelValues(metrics.ResultCached).Inc()
			return cloneTaxonomy(v.(pettypes.Taxonomy)), nil
		}
	}

	q := url.Values{}
	q.Set("name", species)
	rawURL := c.baseURL + "?" + q.Encode()

	var out []animal
	err := c.http.DoJSON(ctx, http.MethodGet, rawURL, map[string]string{c.apiKeyHeader: c.apiKey}, nil, &out)
	if err != nil {
		if status, ok := httpclient.StatusCode(err); ok {
			c.metrics.TaxonomyLookups.WithLabelValues(metrics.ResultHTTPError).Inc()
			c.log.Warn("taxonomy upstream error", zap.String("species", species), zap.Int("status", status))
			return pettypes.Taxonomy{}, apperr.Server("API response code "+strconv.Itoa(status), err)
		}
		c.metrics.TaxonomyLookups.WithLabelValues(metrics.ResultTransport).Inc()
		c.log.Warn("taxonomy request failed", zap.String("species", species), zap.Error(err))
		return pettypes.Taxonomy{}, apperr.Server("Request failed: "+err.Error(), err)
	}

	match, ok := findByName(out, species)
	if !ok {
		c.metrics.TaxonomyLookups.WithLabelValues(metrics.ResultNoMatch).Inc()
		c.log.Info("taxonomy has no exact match",
			zap.String("species", species),
			zap.Int("results", len(out)),
		)
		return pettypes.Taxonomy{}, apperr.Malformedf("no animal named %q", species)
	}

	tax := toTaxonomy(match)
	if c.cache != nil {
		c.cache.Set(key, cloneTaxonomy(tax), cache.DefaultExpiration)
	}
	c.metrics.TaxonomyLookups.WithLabelValues(metrics.ResultOK).Inc()
	return tax, nil
}

func findByName(items []animal, species string) (animal, bool) {
	for _, a := range items {
		if strings.EqualFold(a.Name, species) {
			return a, true
		}
	}
	return animal{}, false
}

func toTaxonomy(a animal) pettypes.Taxonomy {
	src := a.Characteristics.Temperament
	if strings.TrimSpace(src) == "" {
		src = a.Characteristics.GroupBehavior
	}
	return pettypes.Taxonomy{
		Family:     a.Taxonomy.Family,
		Genus:      a.Taxonomy.Genus,
		Attributes: ExtractAttributes(src),
		Lifespan:   ParseLifespan(a.Characteristics.Lifespan),
	}
}

var (
	nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	digits  = regexp.MustCompile(`\d+`)
)

// ExtractAttributes: puntuación => espacio, después split por whitespace.
// "Playful, loyal & smart" => [Playful loyal smart]
func ExtractAttributes(s string) []string {
	words := strings.Fields(nonWord.ReplaceAllString(s, " "))
	if words == nil {
		return []string{}
	}
	return words
}

// ParseLifespan toma el menor número del texto ("10 - 15 years" => 10).
func ParseLifespan(s string) *int {
	var best *int
	for _, m := range digits.FindAllString(s, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if best == nil || n < *best {
			v := n
			best = &v
		}
	}
	return best
}

func cloneTaxonomy(t pettypes.Taxonomy) pettypes.Taxonomy {
	out := t
	out.Attributes = append([]string{}, t.Attributes...)
	if t.Lifespan != nil {
		v := *t.Lifespan
		out.Lifespan = &v
	}
	return out
}
