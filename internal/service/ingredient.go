package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/ascend-community/backend/internal/model"
	"github.com/ascend-community/backend/internal/nutrition"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	ingredientFactsCacheKey = "ingredient_facts"
	ingredientFactsCacheTTL = 10 * time.Minute
)

// IngredientService serves the read-only ingredient fact table. It holds an
// in-memory snapshot for the plan engine's synchronous lookups and caches
// the table in Redis so parallel instances don't hammer the database.
type IngredientService struct {
	db    *gorm.DB
	cache *redis.Client

	mu    sync.RWMutex
	table nutrition.FactTable
}

// Ensure IngredientService implements IIngredientService and acts as the
// resolver's fact source.
var (
	_ IIngredientService   = (*IngredientService)(nil)
	_ nutrition.FactSource = (*IngredientService)(nil)
)

// NewIngredientService creates a new IngredientService instance. The Redis
// client is optional; pass nil to skip caching.
func NewIngredientService(db *gorm.DB, cache *redis.Client) *IngredientService {
	return &IngredientService{db: db, cache: cache}
}

// Reload refreshes the in-memory fact snapshot from Redis or the database.
func (s *IngredientService) Reload(ctx context.Context) error {
	facts, err := s.loadFacts(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.table = nutrition.NewFactTable(facts)
	s.mu.Unlock()
	return nil
}

func (s *IngredientService) loadFacts(ctx context.Context) ([]model.IngredientFact, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, ingredientFactsCacheKey).Bytes(); err == nil {
			var facts []model.IngredientFact
			if err := json.Unmarshal(data, &facts); err == nil {
				return facts, nil
			}
			log.Printf("[ingredients] discarding unreadable cache entry")
		}
	}

	var facts []model.IngredientFact
	if err := s.db.WithContext(ctx).Order("name").Find(&facts).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(facts); err == nil {
			if err := s.cache.Set(ctx, ingredientFactsCacheKey, data, ingredientFactsCacheTTL).Err(); err != nil {
				log.Printf("[ingredients] failed to cache fact table: %v", err)
			}
		}
	}
	return facts, nil
}

// Fact looks up one ingredient in the in-memory snapshot. It implements
// nutrition.FactSource and must stay non-blocking; call Reload to pick up
// content changes.
func (s *IngredientService) Fact(name string) (model.IngredientFact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Fact(name)
}

// ListFacts returns the full fact table.
func (s *IngredientService) ListFacts(ctx context.Context) ([]model.IngredientFact, error) {
	return s.loadFacts(ctx)
}

// GetFact retrieves a single fact by ingredient name.
func (s *IngredientService) GetFact(ctx context.Context, name string) (*model.IngredientFact, error) {
	var fact model.IngredientFact
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&fact).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}
