package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "storefront/database/repository/catalog"
	"storefront/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// collections maps the public catalog kinds onto their store collections.
var collections = map[string]string{
	"mobile":     "Mobile",
	"laptops":    "Laptop",
	"tv":         "Tv",
	"categories": "All-Category",
	"services":   "Service",
}

// CatalogService exposes the catalog read passthroughs and the admin
// service-offering write path.
type CatalogService interface {
	List(ctx context.Context, kind string) ([]bson.M, error)
	AddService(ctx context.Context, name, description string, image []byte) (*models.ServiceOffering, error)
}

// DefaultCatalogService reads catalog collections through a Redis cache.
// Cache failures degrade to direct store reads.
type DefaultCatalogService struct {
	Repo     catalogRepo.CatalogRepository
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func (s *DefaultCatalogService) List(ctx context.Context, kind string) ([]bson.M, error) {
	coll, ok := collections[kind]
	if !ok {
		return nil, fmt.Errorf("unknown catalog kind: %s", kind)
	}

	cacheKey := "catalog:" + coll
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var docs []bson.M
			if err := json.Unmarshal([]byte(cached), &docs); err == nil {
				return docs, nil
			}
		}
	}

	docs, err := s.Repo.ListCollection(ctx, coll)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(docs); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, s.CacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache catalog listing", zap.String("kind", kind), zap.Error(err))
			}
		}
	}
	return docs, nil
}

// AddService persists a new service offering with its image stored as raw
// binary, and drops the stale cached listing.
func (s *DefaultCatalogService) AddService(ctx context.Context, name, description string, image []byte) (*models.ServiceOffering, error) {
	if name == "" {
		return nil, fmt.Errorf("service name must not be empty")
	}

	svc := &models.ServiceOffering{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Image:       image,
	}
	if err := s.Repo.InsertService(ctx, svc); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, "catalog:Service").Err(); err != nil {
			s.Logger.Warn("failed to invalidate service cache", zap.Error(err))
		}
	}
	return svc, nil
}
