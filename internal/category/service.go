package category

import (
	"context"
	"fmt"
	"time"

	"github.com/mayurihegde/evently-backend/utils"
)

type Service struct {
	Repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if utils.CacheGetJSON(ctx, "categories:all", &categories) {
		return categories, nil
	}

	categories, err := s.Repo.ListCategories()
	if err != nil {
		return nil, err
	}
	utils.CacheSetJSON(ctx, "categories:all", categories, 10*time.Minute)
	return categories, nil
}

func (s *Service) ListSubcategories(ctx context.Context, categoryID uint) ([]Subcategory, error) {
	key := fmt.Sprintf("subcategories:%d", categoryID)

	var subs []Subcategory
	if utils.CacheGetJSON(ctx, key, &subs) {
		return subs, nil
	}

	subs, err := s.Repo.ListSubcategories(categoryID)
	if err != nil {
		return nil, err
	}
	utils.CacheSetJSON(ctx, key, subs, 10*time.Minute)
	return subs, nil
}
