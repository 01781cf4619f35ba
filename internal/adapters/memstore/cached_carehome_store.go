package memstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/carewise/carehome-directory/internal/domain/entities"
	"github.com/carewise/carehome-directory/internal/domain/providers"
	"github.com/carewise/carehome-directory/internal/domain/repositories"
	"github.com/carewise/carehome-directory/internal/infrastructure/observability"
)

// careHomeByIDTTL is the cache lifetime for a single record, in seconds.
const careHomeByIDTTL = 300

// CachedCareHomeStore wraps a CareHomeRepository with a read-through cache
// for get-by-id lookups. List is deliberately uncached: the search pipeline
// recomputes over the full collection on every call.
type CachedCareHomeStore struct {
	store   repositories.CareHomeRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedCareHomeStore creates a cached store wrapper.
func NewCachedCareHomeStore(store repositories.CareHomeRepository, cache providers.CacheProvider, metrics *observability.Metrics) repositories.CareHomeRepository {
	return &CachedCareHomeStore{
		store:   store,
		cache:   cache,
		metrics: metrics,
	}
}

func careHomeCacheKey(id int) string {
	return fmt.Sprintf("carehome:%d", id)
}

// Create delegates to the underlying store.
func (s *CachedCareHomeStore) Create(ctx context.Context, careHome *entities.CareHome) error {
	return s.store.Create(ctx, careHome)
}

// GetByID serves from cache when possible, falling back to the store.
// Not-found outcomes are never cached.
func (s *CachedCareHomeStore) GetByID(ctx context.Context, id int) (*entities.CareHome, error) {
	key := careHomeCacheKey(id)

	if data, err := s.cache.Get(ctx, key); err == nil {
		var careHome entities.CareHome
		if decodeErr := json.Unmarshal(data, &careHome); decodeErr == nil {
			observability.RecordCacheHit(ctx, s.metrics, key)
			return &careHome, nil
		} else {
			log.Warn().Int("id", id).Err(decodeErr).Msg("discarding undecodable cached care home")
		}
	}
	observability.RecordCacheMiss(ctx, s.metrics, key)

	careHome, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(careHome); err == nil {
		if err := s.cache.Set(ctx, key, data, careHomeByIDTTL); err != nil {
			log.Warn().Int("id", id).Err(err).Msg("failed to cache care home")
		}
	}
	return careHome, nil
}

// List delegates to the underlying store.
func (s *CachedCareHomeStore) List(ctx context.Context) ([]*entities.CareHome, error) {
	return s.store.List(ctx)
}
