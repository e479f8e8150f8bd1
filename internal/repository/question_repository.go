package repository

import (
	"tryout_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("SubCategory").First(&question, "id = ?", id).Error
	return &question, err
}

func (r *QuestionRepository) List(subCategoryID string) ([]model.Question, error) {
	var questions []model.Question
	query := r.DB.Preload("SubCategory").Where("is_active = ?", true)
	if subCategoryID != "" {
		query = query.Where("sub_category_id = ?", subCategoryID)
	}
	err := query.Order("`order` asc").Find(&questions).Error
	return questions, err
}

// ListActive returns the active questions of one subcategory in display
// order. This is the set a test session is built from.
func (r *QuestionRepository) ListActive(subCategoryID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Where("sub_category_id = ? AND is_active = ?", subCategoryID, true).
		Order("`order` asc").
		Find(&questions).Error
	return questions, err
}

// CreateWithCount inserts the question and bumps the parent's
// questionCount in the same transaction.
func (r *QuestionRepository) CreateWithCount(question *model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		return adjustQuestionCount(tx, question.SubCategoryID, 1)
	})
}

// UpdateWithCount saves the question; when it moved between
// subcategories both counters are adjusted in the same transaction.
func (r *QuestionRepository) UpdateWithCount(question *model.Question, oldSubCategoryID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(question).Error; err != nil {
			return err
		}
		if oldSubCategoryID != question.SubCategoryID {
			if err := adjustQuestionCount(tx, oldSubCategoryID, -1); err != nil {
				return err
			}
			if err := adjustQuestionCount(tx, question.SubCategoryID, 1); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteWithCount removes the question and decrements the parent's
// questionCount in the same transaction.
func (r *QuestionRepository) DeleteWithCount(question *model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Question{}, "id = ?", question.ID).Error; err != nil {
			return err
		}
		return adjustQuestionCount(tx, question.SubCategoryID, -1)
	})
}

// BulkCreateWithCounts inserts a batch and applies one counter adjustment
// per affected subcategory, all inside one transaction.
func (r *QuestionRepository) BulkCreateWithCounts(questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}

		perSubCategory := make(map[string]int)
		for _, q := range questions {
			perSubCategory[q.SubCategoryID]++
		}
		for subCategoryID, n := range perSubCategory {
			if err := adjustQuestionCount(tx, subCategoryID, n); err != nil {
				return err
			}
		}
		return nil
	})
}

func adjustQuestionCount(tx *gorm.DB, subCategoryID string, delta int) error {
	return tx.Model(&model.SubCategory{}).
		Where("id = ?", subCategoryID).
		UpdateColumn("question_count", gorm.Expr("question_count + ?", delta)).Error
}
