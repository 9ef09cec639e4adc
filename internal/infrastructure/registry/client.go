// Package registry looks companies up in the public registry API, caching
// payloads and pacing outbound calls.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"dialpool/internal/domain/record"
	"dialpool/internal/infrastructure/metrics"
	"dialpool/internal/shared/biztime"
	"dialpool/internal/shared/config"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/utils/logutil"
)

const (
	defaultBaseURL   = "https://publica.cnpj.ws/cnpj"
	defaultUserAgent = "dialpool/1.0"
	defaultTimeout   = 10 * time.Second
	defaultCacheTTL  = time.Hour
	defaultDelay     = time.Second

	// Maximum response body size accepted from the registry (1MB)
	maxPayloadSize = 1 << 20
)

// Client performs at most one HTTP call per cache miss. Concurrent lookups of
// the same identifier share that call.
type Client struct {
	baseURL    string
	userAgent  string
	cacheTTL   time.Duration
	httpClient *http.Client
	cache      PayloadCache
	pacer      *Pacer
	clock      biztime.Clock
	metrics    *metrics.Metrics
	group      singleflight.Group
	logger     logger.Interface
}

// NewClient builds a client from configuration. Zero values fall back to
// the registry defaults. m may be nil.
func NewClient(
	cfg config.RegistryConfig,
	cache PayloadCache,
	clock biztime.Clock,
	m *metrics.Metrics,
	log logger.Interface,
) *Client {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	if cache == nil {
		cache = NewMemoryCache(clock)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ttl := cfg.CacheTTL()
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	delay := cfg.RequestDelay()
	if delay < 0 {
		delay = defaultDelay
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		cacheTTL:   ttl,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		pacer:      NewPacer(clock, delay),
		clock:      clock,
		metrics:    m,
		logger:     log,
	}
}

// Lookup returns the raw registry payload for an identifier in any
// formatting.
func (c *Client) Lookup(ctx context.Context, rawIdentifier string) ([]byte, error) {
	id, err := record.NormalizeIdentifier(rawIdentifier)
	if err != nil {
		return nil, err
	}
	key := id.String()

	if payload, ok := c.cached(ctx, key); ok {
		return payload, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		if payload, ok := c.cached(ctx, key); ok {
			return payload, nil
		}
		return c.fetch(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (c *Client) cached(ctx context.Context, key string) ([]byte, bool) {
	payload, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warnw("registry cache read failed, treating as miss", "identifier", key, "error", err)
		return nil, false
	}
	if ok {
		c.metrics.IncrementRegistryCacheHits()
		c.logger.Debugw("registry cache hit", "identifier", key)
	}
	return payload, ok
}

func (c *Client) fetch(ctx context.Context, key string) ([]byte, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	url := c.baseURL + "/" + key
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.metrics.ObserveRegistryLookup(metrics.OutcomeRegistryError)
		c.logger.Warnw("registry request failed", "identifier", key, "error", err)
		return nil, errors.NewRegistryError("registry request failed", err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.metrics.ObserveRegistryLookup(metrics.OutcomeNotFound)
		return nil, errors.NewNotFoundError(fmt.Sprintf("identifier %s not found in registry", key))
	case resp.StatusCode == http.StatusTooManyRequests:
		c.metrics.ObserveRegistryLookup(metrics.OutcomeRateLimited)
		c.logger.Warnw("registry rate limit hit", "identifier", key)
		return nil, errors.NewRateLimitedError("registry rate limit exceeded")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.metrics.ObserveRegistryLookup(metrics.OutcomeRegistryError)
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warnw("registry returned unexpected status",
			"identifier", key,
			"status", resp.StatusCode,
			"body", logutil.TruncateForLog(string(snippet), 200),
		)
		return nil, errors.NewRegistryError(fmt.Sprintf("registry returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		c.metrics.ObserveRegistryLookup(metrics.OutcomeRegistryError)
		return nil, errors.NewRegistryError("failed to read registry response", err.Error())
	}
	if !json.Valid(body) || !hasRoot(body) {
		c.metrics.ObserveRegistryLookup(metrics.OutcomeInvalidPayload)
		return nil, errors.NewInvalidPayloadError("registry returned an invalid payload", key)
	}

	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		c.logger.Warnw("failed to cache registry payload", "identifier", key, "error", err)
	}
	c.metrics.ObserveRegistryLookup(metrics.OutcomeSuccess)
	c.logger.Debugw("fetched registry payload", "identifier", key, "bytes", len(body))

	return body, nil
}

// EnrichBatch looks identifiers up one after another and projects each
// payload. It returns exactly one outcome per input, in input order. Once
// ctx is done every remaining identifier fails with the context error.
func (c *Client) EnrichBatch(ctx context.Context, identifiers []record.Identifier) []record.EnrichmentOutcome {
	outcomes := make([]record.EnrichmentOutcome, len(identifiers))

	for i, id := range identifiers {
		outcomes[i].Identifier = id

		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		raw, err := c.Lookup(ctx, id.String())
		if err != nil {
			outcomes[i].Err = err
			continue
		}

		enrichment, err := Project(raw, id.String())
		if err != nil {
			c.logger.Warnw("failed to project registry payload", "identifier", id.String(), "error", err)
			outcomes[i].Err = err
			continue
		}
		enrichment.EnrichedAt = c.clock.Now()
		outcomes[i].Enrichment = enrichment
	}

	return outcomes
}

func (c *Client) CacheStats(ctx context.Context) (CacheStats, error) {
	return c.cache.Stats(ctx)
}

func (c *Client) ClearCache(ctx context.Context) error {
	if err := c.cache.Clear(ctx); err != nil {
		return err
	}
	c.logger.Infow("registry cache cleared")
	return nil
}
