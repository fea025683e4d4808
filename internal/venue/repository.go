package venue

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) List() ([]Venue, error) {
	var venues []Venue
	err := r.DB.Order("name asc").Find(&venues).Error
	return venues, err
}

func (r *Repository) GetByID(id uint) (*Venue, error) {
	var v Venue
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}
