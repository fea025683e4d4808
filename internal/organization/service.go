package organization

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("organization not found")

type Service struct {
	Repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Get(id uint) (*Organization, error) {
	org, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

// Update edits the caller's own organisation profile.
func (s *Service) Update(id uint, req UpdateOrganizationRequest) (*Organization, error) {
	org, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	org.Name = req.Name
	org.Description = req.Description
	org.Website = req.Website
	if err := s.Repo.Update(org); err != nil {
		return nil, err
	}
	return org, nil
}
