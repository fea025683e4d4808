package venue

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mayurihegde/evently-backend/internal/eventform"
	"github.com/mayurihegde/evently-backend/utils"
)

const cacheKey = "venues:all"

type Service struct {
	Repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{Repo: repo}
}

// Seed guarantees the virtual venue exists with its well-known ID so
// online events always have a valid venue reference.
func Seed(db *gorm.DB) error {
	online := Venue{
		ID:        eventform.OnlineVenueID,
		Name:      "Online",
		IsVirtual: true,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&online).Error
}

// List returns all venues, served from cache when warm.
func (s *Service) List(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	if utils.CacheGetJSON(ctx, cacheKey, &venues) {
		return venues, nil
	}

	venues, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	utils.CacheSetJSON(ctx, cacheKey, venues, 10*time.Minute)
	return venues, nil
}
