package repository

import (
	"tryout_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) FindByID(id string) (*model.Student, error) {
	var student model.Student
	err := r.DB.First(&student, "id = ?", id).Error
	return &student, err
}

func (r *StudentRepository) List() ([]model.Student, error) {
	var students []model.Student
	err := r.DB.Order("created_at desc").Find(&students).Error
	return students, err
}

func (r *StudentRepository) Update(student *model.Student) error {
	return r.DB.Save(student).Error
}

func (r *StudentRepository) Delete(id string) error {
	return r.DB.Delete(&model.Student{}, "id = ?", id).Error
}

func (r *StudentRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Student{}).Count(&count).Error
	return count, err
}

// GroupCount is one bucket of a grouped aggregate, e.g. students per
// school.
type GroupCount struct {
	Key   string `gorm:"column:group_key" json:"key"`
	Count int64  `json:"count"`
}

func (r *StudentRepository) CountBySchool() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.DB.Model(&model.Student{}).
		Select("school as group_key, COUNT(*) as count").
		Group("school").
		Order("count desc").
		Scan(&rows).Error
	return rows, err
}

func (r *StudentRepository) CountByTargetUniversity() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.DB.Model(&model.Student{}).
		Select("target_university as group_key, COUNT(*) as count").
		Group("target_university").
		Order("count desc").
		Scan(&rows).Error
	return rows, err
}
