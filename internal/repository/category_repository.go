package repository

import (
	"tryout_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) FindByID(id string) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, "id = ?", id).Error
	return &category, err
}

// FindByNameFold does a case-insensitive name lookup, optionally ignoring
// one id (the row being updated).
func (r *CategoryRepository) FindByNameFold(name, excludeID string) (*model.Category, error) {
	var category model.Category
	query := r.DB.Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&category).Error
	return &category, err
}

func (r *CategoryRepository) List() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("`order` asc, created_at desc").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(id string) error {
	return r.DB.Delete(&model.Category{}, "id = ?", id).Error
}

func (r *CategoryRepository) CountSubCategories(categoryID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.SubCategory{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
