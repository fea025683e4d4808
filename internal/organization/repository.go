package organization

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(org *Organization) error {
	return r.DB.Create(org).Error
}

func (r *Repository) GetByID(id uint) (*Organization, error) {
	var org Organization
	if err := r.DB.First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *Repository) Update(org *Organization) error {
	return r.DB.Save(org).Error
}
