package repository

import (
	"time"

	"tryout_backend/internal/model"

	"gorm.io/gorm"
)

type TestSessionRepository struct {
	DB *gorm.DB
}

func NewTestSessionRepository(db *gorm.DB) *TestSessionRepository {
	return &TestSessionRepository{DB: db}
}

// CreateWithAnswers creates the session and its per-question answer rows
// as one unit. A failure rolls back everything, so a session never exists
// without its full answer set.
func (r *TestSessionRepository) CreateWithAnswers(session *model.TestSession, answers []model.Answer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].TestSessionID = session.ID
		}
		return tx.Create(&answers).Error
	})
}

func (r *TestSessionRepository) FindByID(id string) (*model.TestSession, error) {
	var session model.TestSession
	err := r.DB.Preload("Student").Preload("SubCategory").First(&session, "id = ?", id).Error
	return &session, err
}

func (r *TestSessionRepository) FindAnswer(sessionID, questionID string) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.
		Where("test_session_id = ? AND question_id = ?", sessionID, questionID).
		First(&answer).Error
	return &answer, err
}

func (r *TestSessionRepository) UpdateAnswer(answer *model.Answer) error {
	return r.DB.Save(answer).Error
}

// ListAnswers returns the session's answers with full question detail.
// Callers that talk to test takers must strip the question themselves.
func (r *TestSessionRepository) ListAnswers(sessionID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Preload("Question").
		Where("test_session_id = ?", sessionID).
		Find(&answers).Error
	return answers, err
}

// Claim atomically moves an in_progress session to a terminal status.
// Returns gorm.ErrRecordNotFound when another request already claimed it,
// which is the double-submit guard.
func (r *TestSessionRepository) Claim(tx *gorm.DB, sessionID string, status model.TestSessionStatus, endTime time.Time) error {
	res := tx.Model(&model.TestSession{}).
		Where("id = ? AND status = ?", sessionID, model.SessionInProgress).
		Updates(map[string]interface{}{
			"status":   status,
			"end_time": endTime,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Finalize runs fn inside one transaction after claiming the session.
func (r *TestSessionRepository) Finalize(sessionID string, status model.TestSessionStatus, endTime time.Time, fn func(tx *gorm.DB) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.Claim(tx, sessionID, status, endTime); err != nil {
			return err
		}
		return fn(tx)
	})
}

type SessionFilter struct {
	Status        string
	StudentID     string
	SubCategoryID string
}

func (r *TestSessionRepository) List(filter SessionFilter) ([]model.TestSession, error) {
	var sessions []model.TestSession
	query := r.DB.Preload("Student").Preload("SubCategory")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StudentID != "" {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.SubCategoryID != "" {
		query = query.Where("sub_category_id = ?", filter.SubCategoryID)
	}
	err := query.Order("created_at desc").Find(&sessions).Error
	return sessions, err
}

func (r *TestSessionRepository) ListByStudent(studentID string) ([]model.TestSession, error) {
	var sessions []model.TestSession
	err := r.DB.Preload("SubCategory").
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&sessions).Error
	return sessions, err
}

func (r *TestSessionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.TestSession{}).Count(&count).Error
	return count, err
}

func (r *TestSessionRepository) CountByStatus(status model.TestSessionStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.TestSession{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// AverageScore is computed over finished (completed or expired) sessions.
func (r *TestSessionRepository) AverageScore() (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.TestSession{}).
		Select("AVG(score)").
		Where("status IN ?", []model.TestSessionStatus{model.SessionCompleted, model.SessionExpired}).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *TestSessionRepository) TopPerformers(limit int) ([]model.TestSession, error) {
	var sessions []model.TestSession
	err := r.DB.Preload("Student").Preload("SubCategory").
		Where("status = ?", model.SessionCompleted).
		Order("score desc").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
