package repository

import (
	"tryout_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id string) (*model.Note, error) {
	var note model.Note
	err := r.DB.Preload("Category").First(&note, "id = ?", id).Error
	return &note, err
}

func (r *NoteRepository) List() ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Preload("Category").Order("created_at desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) ListByCategory(categoryID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("category_id = ?", categoryID).Order("created_at desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) ListUncategorized() ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("category_id IS NULL").Order("created_at desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Update(note *model.Note) error {
	// Save skips nil fields on updates, so clearing the category needs an
	// explicit column write.
	return r.DB.Model(note).
		Select("title", "content", "category_id").
		Updates(map[string]interface{}{
			"title":       note.Title,
			"content":     note.Content,
			"category_id": note.CategoryID,
		}).Error
}

func (r *NoteRepository) Delete(id string) error {
	return r.DB.Delete(&model.Note{}, "id = ?", id).Error
}

func (r *NoteRepository) CountByCategory(categoryID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Note{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// ClearCategory detaches every note of a category, returning how many
// notes were touched. Used by the notes-app cascade delete.
func (r *NoteRepository) ClearCategory(tx *gorm.DB, categoryID string) (int64, error) {
	res := tx.Model(&model.Note{}).
		Where("category_id = ?", categoryID).
		UpdateColumn("category_id", nil)
	return res.RowsAffected, res.Error
}
