package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"

	"github.com/google/uuid"
)

type MenuRepo interface {
	ListMenuItems(ctx context.Context, filter entities.MenuFilter) ([]entities.MenuItem, error)
	SaveMenuItem(ctx context.Context, item entities.MenuItem) error
	UpdateMenuItem(ctx context.Context, item entities.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
	CountMenuItems(ctx context.Context) (int, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Unfiltered listings dominate menu traffic, so only they are cached.
const menuCacheKey = "menu:all"

type MenuService struct {
	logger *slog.Logger
	repo   MenuRepo
	cache  Cache
}

func NewMenuService(logger *slog.Logger, repo MenuRepo, cache Cache) *MenuService {
	return &MenuService{
		logger: logger.With(slog.String("service", "menu")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *MenuService) ListMenu(ctx context.Context, filter entities.MenuFilter) ([]entities.MenuItem, error) {
	cacheable := filter == entities.MenuFilter{}

	if cacheable {
		if data, ok := s.cache.Get(menuCacheKey); ok {
			var items []entities.MenuItem
			if err := json.Unmarshal(data, &items); err == nil {
				return items, nil
			}
			s.cache.Delete(menuCacheKey)
		}
	}

	items, err := s.repo.ListMenuItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if data, err := json.Marshal(items); err == nil {
			s.cache.Set(menuCacheKey, data)
		}
	}
	return items, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error) {
	item.ID = uuid.NewString()
	if err := s.repo.SaveMenuItem(ctx, item); err != nil {
		return entities.MenuItem{}, err
	}
	s.cache.Delete(menuCacheKey)
	return item, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error) {
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return entities.MenuItem{}, err
	}
	s.cache.Delete(menuCacheKey)
	return item, nil
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, id string) error {
	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(menuCacheKey)
	return nil
}

// SeedMenu populates the catalog on first start. A non-empty catalog is left
// untouched.
func (s *MenuService) SeedMenu(ctx context.Context, items []entities.MenuItem) error {
	count, err := s.repo.CountMenuItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to check menu size: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, item := range items {
		item.ID = uuid.NewString()
		if err := s.repo.SaveMenuItem(ctx, item); err != nil {
			return fmt.Errorf("failed to seed menu: %w", err)
		}
	}

	s.logger.Info("menu seeded", slog.Int("items", len(items)))
	return nil
}
