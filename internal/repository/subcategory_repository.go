package repository

import (
	"tryout_backend/internal/model"

	"gorm.io/gorm"
)

type SubCategoryRepository struct {
	DB *gorm.DB
}

func NewSubCategoryRepository(db *gorm.DB) *SubCategoryRepository {
	return &SubCategoryRepository{DB: db}
}

func (r *SubCategoryRepository) Create(subCategory *model.SubCategory) error {
	return r.DB.Create(subCategory).Error
}

func (r *SubCategoryRepository) FindByID(id string) (*model.SubCategory, error) {
	var subCategory model.SubCategory
	err := r.DB.Preload("Category").First(&subCategory, "id = ?", id).Error
	return &subCategory, err
}

// List returns active subcategories in display order, optionally filtered
// by parent category.
func (r *SubCategoryRepository) List(categoryID string) ([]model.SubCategory, error) {
	var subCategories []model.SubCategory
	query := r.DB.Preload("Category").Where("is_active = ?", true)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Order("`order` asc").Find(&subCategories).Error
	return subCategories, err
}

func (r *SubCategoryRepository) Update(subCategory *model.SubCategory) error {
	return r.DB.Save(subCategory).Error
}

func (r *SubCategoryRepository) Delete(id string) error {
	return r.DB.Delete(&model.SubCategory{}, "id = ?", id).Error
}

func (r *SubCategoryRepository) CountQuestions(subCategoryID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("sub_category_id = ?", subCategoryID).Count(&count).Error
	return count, err
}
