package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "connectplatform/database/repository/catalog"
	"connectplatform/models"
	"connectplatform/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "catalog:services"
	catalogCacheTTL = 60 * time.Second
)

// CatalogService manages the append-only service catalog.
type CatalogService interface {
	Create(ctx context.Context, offering models.ServiceOffering) (*models.ServiceOffering, error)
	List(ctx context.Context) ([]models.ServiceOffering, error)
}

// DefaultCatalogService is the production CatalogService. List results are
// cached briefly in Redis since the catalog is read far more than written.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Cache *redis.Client
}

// Create appends an offering under the derived "{expert_id}-{timestamp}" key
// and drops the cached scan.
func (s *DefaultCatalogService) Create(ctx context.Context, offering models.ServiceOffering) (*models.ServiceOffering, error) {
	if err := utils.ValidateStruct(offering); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	offering.ServiceID = fmt.Sprintf("%s-%d", offering.ExpertID, now.Unix())
	offering.CreatedAt = now

	if err := s.Repo.Insert(ctx, &offering); err != nil {
		return nil, utils.InternalError("Error creating service", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, catalogCacheKey).Err(); err != nil {
			utils.GetLogger().Warn("Failed to invalidate catalog cache", zap.Error(err))
		}
	}
	return &offering, nil
}

// List returns the catalog, serving from cache when possible.
func (s *DefaultCatalogService) List(ctx context.Context) ([]models.ServiceOffering, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var offerings []models.ServiceOffering
			if err := json.Unmarshal([]byte(cached), &offerings); err == nil {
				return offerings, nil
			}
			logger.Warn("Discarding unreadable catalog cache entry")
		}
	}

	offerings, err := s.Repo.List(ctx)
	if err != nil {
		return nil, utils.InternalError("Error fetching services", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(offerings); err == nil {
			if err := s.Cache.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache catalog scan", zap.Error(err))
			}
		}
	}
	return offerings, nil
}
