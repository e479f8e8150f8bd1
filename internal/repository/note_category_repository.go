package repository

import (
	"tryout_backend/internal/model"

	"gorm.io/gorm"
)

type NoteCategoryRepository struct {
	DB *gorm.DB
}

func NewNoteCategoryRepository(db *gorm.DB) *NoteCategoryRepository {
	return &NoteCategoryRepository{DB: db}
}

func (r *NoteCategoryRepository) Create(category *model.NoteCategory) error {
	return r.DB.Create(category).Error
}

func (r *NoteCategoryRepository) FindByID(id string) (*model.NoteCategory, error) {
	var category model.NoteCategory
	err := r.DB.First(&category, "id = ?", id).Error
	return &category, err
}

func (r *NoteCategoryRepository) FindByNameFold(name, excludeID string) (*model.NoteCategory, error) {
	var category model.NoteCategory
	query := r.DB.Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&category).Error
	return &category, err
}

func (r *NoteCategoryRepository) List() ([]model.NoteCategory, error) {
	var categories []model.NoteCategory
	err := r.DB.Order("created_at desc").Find(&categories).Error
	return categories, err
}

func (r *NoteCategoryRepository) Update(category *model.NoteCategory) error {
	return r.DB.Save(category).Error
}

func (r *NoteCategoryRepository) Delete(tx *gorm.DB, id string) error {
	return tx.Delete(&model.NoteCategory{}, "id = ?", id).Error
}

// StoreNoteCount writes a freshly recounted value back, guarded by a
// compare-and-swap on the stale value so concurrent recounts never fight
// each other with lost updates.
func (r *NoteCategoryRepository) StoreNoteCount(id string, stale, fresh int) error {
	return r.DB.Model(&model.NoteCategory{}).
		Where("id = ? AND note_count = ?", id, stale).
		UpdateColumn("note_count", fresh).Error
}
