package tag

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("tag name cannot be empty")

type Service struct {
	Repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) List(orgID uint) ([]Tag, error) {
	return s.Repo.ListByOrganization(orgID)
}

// Create stores a new tag for the organisation, lowercased.
func (s *Service) Create(orgID uint, name string) (*Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrEmptyName
	}

	t := &Tag{OrganizationID: orgID, Name: name}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}
