package categoryRepo

import (
	"context"
	"encoding/json"
	"time"

	"vango/models"
	"vango/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	rateTableKeyPrefix = "ratetable:"
	rateTableTTL       = 10 * time.Minute
)

// CachedCategoryRepo wraps a CategoryRepository with a Redis cache for rate
// tables, which are read on every priced turn but change rarely. Writes
// invalidate the cached entry.
type CachedCategoryRepo struct {
	inner CategoryRepository
	cache *redis.Client
}

func NewCachedCategoryRepo(inner CategoryRepository, cache *redis.Client) *CachedCategoryRepo {
	return &CachedCategoryRepo{inner: inner, cache: cache}
}

func (r *CachedCategoryRepo) GetByID(id string) (*models.Category, error) { return r.inner.GetByID(id) }
func (r *CachedCategoryRepo) GetAll() ([]models.Category, error)          { return r.inner.GetAll() }

// GetRateTable serves from Redis when possible. Cache failures fall through
// to Mongo; a stale or missing cache must never fail a quote.
func (r *CachedCategoryRepo) GetRateTable(id string) ([]models.PricingTier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := rateTableKeyPrefix + id
	if raw, err := r.cache.Get(ctx, key).Result(); err == nil {
		var tiers []models.PricingTier
		if err := json.Unmarshal([]byte(raw), &tiers); err == nil {
			return tiers, nil
		}
	}

	tiers, err := r.inner.GetRateTable(id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(tiers); err == nil {
		if err := r.cache.Set(ctx, key, raw, rateTableTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache rate table",
				zap.String("categoryID", id), zap.Error(err))
		}
	}
	return tiers, nil
}

func (r *CachedCategoryRepo) Create(category *models.Category) error {
	return r.inner.Create(category)
}

func (r *CachedCategoryRepo) Update(category *models.Category) error {
	if err := r.inner.Update(category); err != nil {
		return err
	}
	r.invalidate(category.ID)
	return nil
}

func (r *CachedCategoryRepo) Delete(id string) error {
	if err := r.inner.Delete(id); err != nil {
		return err
	}
	r.invalidate(id)
	return nil
}

func (r *CachedCategoryRepo) invalidate(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.cache.Del(ctx, rateTableKeyPrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate cached rate table",
			zap.String("categoryID", id), zap.Error(err))
	}
}

var _ CategoryRepository = (*CachedCategoryRepo)(nil)
