package category

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListCategories() ([]Category, error) {
	var categories []Category
	err := r.DB.Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *Repository) ListSubcategories(categoryID uint) ([]Subcategory, error) {
	var subs []Subcategory
	err := r.DB.Where("category_id = ?", categoryID).Order("name asc").Find(&subs).Error
	return subs, err
}
