package tag

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListByOrganization(orgID uint) ([]Tag, error) {
	var tags []Tag
	err := r.DB.Where("organization_id = ?", orgID).Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *Repository) Create(t *Tag) error {
	return r.DB.Create(t).Error
}
