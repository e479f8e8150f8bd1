package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/util"
	"tryout_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const testStatsCacheKey = "tryout:stats:test-sessions"
const statsCacheTTL = time.Minute

type TestSessionService struct {
	Repo            *repository.TestSessionRepository
	StudentRepo     *repository.StudentRepository
	SubCategoryRepo *repository.SubCategoryRepository
	QuestionRepo    *repository.QuestionRepository
	Redis           *redis.Client
}

func NewTestSessionService(
	repo *repository.TestSessionRepository,
	studentRepo *repository.StudentRepository,
	subCategoryRepo *repository.SubCategoryRepository,
	questionRepo *repository.QuestionRepository,
	rdb *redis.Client,
) *TestSessionService {
	return &TestSessionService{
		Repo:            repo,
		StudentRepo:     studentRepo,
		SubCategoryRepo: subCategoryRepo,
		QuestionRepo:    questionRepo,
		Redis:           rdb,
	}
}

// TestQuestion is the question view handed to a student taking a test:
// never carries the correct answer or the explanation.
type TestQuestion struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	OptionE       string `json:"optionE"`
	SubCategoryID string `json:"subCategoryId"`
	Order         int    `json:"order"`
}

func stripQuestion(q *model.Question) TestQuestion {
	return TestQuestion{
		ID:            q.ID,
		Text:          q.Text,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		OptionE:       q.OptionE,
		SubCategoryID: q.SubCategoryID,
		Order:         q.Order,
	}
}

type StartTestResult struct {
	TestSession *model.TestSession `json:"testSession"`
	Questions   []TestQuestion     `json:"questions"`
	TimeLimit   int                `json:"timeLimit"`
}

// AnswerView pairs the answer state with the stripped question, for
// clients still inside a running test.
type AnswerView struct {
	ID              string        `json:"id"`
	TestSessionID   string        `json:"testSessionId"`
	QuestionID      string        `json:"questionId"`
	SelectedAnswer  *string       `json:"selectedAnswer"`
	MarkedForReview bool          `json:"markedForReview"`
	TimeSpent       int           `json:"timeSpent"`
	Question        *TestQuestion `json:"question,omitempty"`
}

type SessionDetail struct {
	TestSession *model.TestSession `json:"testSession"`
	Answers     []AnswerView       `json:"answers"`
}

// ResultsSummary formats the score to two decimals; the persisted value
// keeps full float precision.
type ResultsSummary struct {
	TotalQuestions int    `json:"totalQuestions"`
	CorrectAnswers int    `json:"correctAnswers"`
	WrongAnswers   int    `json:"wrongAnswers"`
	Unanswered     int    `json:"unanswered"`
	Score          string `json:"score"`
	TotalTime      int    `json:"totalTime"`
}

type SubmitResult struct {
	TestSession *model.TestSession `json:"testSession"`
	Results     ResultsSummary     `json:"results"`
	Answers     []model.Answer     `json:"answers"`
}

// Start validates the student and subcategory, then creates the session
// together with one answer row per active question in one transaction.
// The subcategory's time limit is frozen onto the session.
func (s *TestSessionService) Start(studentID, subCategoryID string) (*StartTestResult, error) {
	if _, err := s.StudentRepo.FindByID(studentID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	subCategory, err := s.SubCategoryRepo.FindByID(subCategoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSubCategoryNotFound
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.ListActive(subCategoryID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}

	session := &model.TestSession{
		StudentID:     studentID,
		SubCategoryID: subCategoryID,
		StartTime:     time.Now(),
		Status:        model.SessionInProgress,
		TimeLimit:     subCategory.TimeLimit,
	}

	answers := make([]model.Answer, 0, len(questions))
	stripped := make([]TestQuestion, 0, len(questions))
	for i := range questions {
		answers = append(answers, model.Answer{
			QuestionID:      questions[i].ID,
			SelectedAnswer:  nil,
			IsCorrect:       false,
			MarkedForReview: false,
		})
		stripped = append(stripped, stripQuestion(&questions[i]))
	}

	if err := s.Repo.CreateWithAnswers(session, answers); err != nil {
		return nil, err
	}

	monitoring.SessionsStarted.Inc()

	return &StartTestResult{
		TestSession: session,
		Questions:   stripped,
		TimeLimit:   subCategory.TimeLimit,
	}, nil
}

// SaveAnswer upserts the student's pick for one question. Writes are
// refused once the session left in_progress, and a write past the
// deadline expires the session first (scoring whatever was saved).
func (s *TestSessionService) SaveAnswer(sessionID, questionID string, selectedAnswer *string, markedForReview bool, timeSpent int) (*model.Answer, error) {
	session, err := s.Repo.FindByID(sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	if session.Status != model.SessionInProgress {
		return nil, util.ErrAlreadySubmitted
	}

	if session.DeadlinePassed(time.Now()) {
		if err := s.finalize(session, model.SessionExpired, session.Deadline()); err != nil && err != util.ErrAlreadySubmitted {
			return nil, err
		}
		return nil, util.ErrTimeLimitExceeded
	}

	if selectedAnswer != nil && *selectedAnswer != "" && !model.IsValidAnswerKey(*selectedAnswer) {
		return nil, util.ErrInvalidAnswerKey
	}

	answer, err := s.Repo.FindAnswer(sessionID, questionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAnswerNotFound
		}
		return nil, err
	}

	answer.SelectedAnswer = selectedAnswer
	answer.MarkedForReview = markedForReview
	if timeSpent > 0 {
		answer.TimeSpent = timeSpent
	}
	// Correctness is computed only at finalization.

	if err := s.Repo.UpdateAnswer(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// Submit finalizes the session. Past the deadline the terminal status is
// expired instead of completed and the elapsed time is clamped to the
// limit.
func (s *TestSessionService) Submit(sessionID string) (*SubmitResult, error) {
	session, err := s.Repo.FindByID(sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	if session.Status != model.SessionInProgress {
		return nil, util.ErrAlreadySubmitted
	}

	now := time.Now()
	status := model.SessionCompleted
	endTime := now
	if session.DeadlinePassed(now) {
		status = model.SessionExpired
		endTime = session.Deadline()
	}

	if err := s.finalize(session, status, endTime); err != nil {
		return nil, err
	}

	return s.Results(sessionID)
}

// finalize claims the in_progress session with a conditional update (the
// double-submit guard), then grades every answer and stamps the tallies,
// all in one transaction.
func (s *TestSessionService) finalize(session *model.TestSession, status model.TestSessionStatus, endTime time.Time) error {
	err := s.Repo.Finalize(session.ID, status, endTime, func(tx *gorm.DB) error {
		var answers []model.Answer
		if err := tx.Preload("Question").
			Where("test_session_id = ?", session.ID).
			Find(&answers).Error; err != nil {
			return err
		}

		correct, wrong, unanswered := 0, 0, 0
		for i := range answers {
			a := &answers[i]
			if !a.Answered() {
				unanswered++
				continue
			}
			isCorrect := a.Question != nil && *a.SelectedAnswer == a.Question.CorrectAnswer
			if isCorrect {
				correct++
			} else {
				wrong++
			}
			if err := tx.Model(&model.Answer{}).
				Where("id = ?", a.ID).
				UpdateColumn("is_correct", isCorrect).Error; err != nil {
				return err
			}
		}

		total := len(answers)
		score := 0.0
		if total > 0 {
			score = float64(correct) / float64(total) * 100
		}
		totalTime := int(endTime.Sub(session.StartTime).Seconds())

		return tx.Model(&model.TestSession{}).
			Where("id = ?", session.ID).
			Updates(map[string]interface{}{
				"correct_answers": correct,
				"wrong_answers":   wrong,
				"unanswered":      unanswered,
				"score":           score,
				"total_time":      totalTime,
			}).Error
	})
	if err == gorm.ErrRecordNotFound {
		// Lost the claim race: someone else finalized first.
		return util.ErrAlreadySubmitted
	}
	if err == nil {
		monitoring.SessionsFinalized.WithLabelValues(string(status)).Inc()
		s.invalidateStats()
	}
	return err
}

// Get returns the running (or finished) session with answers and
// stripped questions, for clients resuming a test.
func (s *TestSessionService) Get(sessionID string) (*SessionDetail, error) {
	session, err := s.Repo.FindByID(sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	answers, err := s.Repo.ListAnswers(sessionID)
	if err != nil {
		return nil, err
	}

	views := make([]AnswerView, 0, len(answers))
	for i := range answers {
		a := &answers[i]
		view := AnswerView{
			ID:              a.ID,
			TestSessionID:   a.TestSessionID,
			QuestionID:      a.QuestionID,
			SelectedAnswer:  a.SelectedAnswer,
			MarkedForReview: a.MarkedForReview,
			TimeSpent:       a.TimeSpent,
		}
		if a.Question != nil {
			q := stripQuestion(a.Question)
			view.Question = &q
		}
		views = append(views, view)
	}

	return &SessionDetail{TestSession: session, Answers: views}, nil
}

// Results returns the full detail (explanations included) of a finished
// session. A session still in progress is a 400 for the caller.
func (s *TestSessionService) Results(sessionID string) (*SubmitResult, error) {
	session, err := s.Repo.FindByID(sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	if session.Status == model.SessionInProgress {
		return nil, util.ErrTestNotCompleted
	}

	answers, err := s.Repo.ListAnswers(sessionID)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		TestSession: session,
		Results: ResultsSummary{
			TotalQuestions: len(answers),
			CorrectAnswers: session.CorrectAnswers,
			WrongAnswers:   session.WrongAnswers,
			Unanswered:     session.Unanswered,
			Score:          fmt.Sprintf("%.2f", session.Score),
			TotalTime:      session.TotalTime,
		},
		Answers: answers,
	}, nil
}

func (s *TestSessionService) List(filter repository.SessionFilter) ([]model.TestSession, error) {
	return s.Repo.List(filter)
}

type TestStatsOverview struct {
	TotalTests      int64               `json:"totalTests"`
	CompletedTests  int64               `json:"completedTests"`
	InProgressTests int64               `json:"inProgressTests"`
	ExpiredTests    int64               `json:"expiredTests"`
	AverageScore    string              `json:"averageScore"`
	TopPerformers   []model.TestSession `json:"topPerformers"`
}

// Stats aggregates the admin overview, cached in redis for a minute.
func (s *TestSessionService) Stats() (*TestStatsOverview, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(context.Background(), testStatsCacheKey).Result(); err == nil {
			var overview TestStatsOverview
			if json.Unmarshal([]byte(cached), &overview) == nil {
				return &overview, nil
			}
		}
	}

	total, err := s.Repo.Count()
	if err != nil {
		return nil, err
	}
	completed, err := s.Repo.CountByStatus(model.SessionCompleted)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.Repo.CountByStatus(model.SessionInProgress)
	if err != nil {
		return nil, err
	}
	expired, err := s.Repo.CountByStatus(model.SessionExpired)
	if err != nil {
		return nil, err
	}
	avg, err := s.Repo.AverageScore()
	if err != nil {
		return nil, err
	}
	top, err := s.Repo.TopPerformers(10)
	if err != nil {
		return nil, err
	}

	overview := &TestStatsOverview{
		TotalTests:      total,
		CompletedTests:  completed,
		InProgressTests: inProgress,
		ExpiredTests:    expired,
		AverageScore:    fmt.Sprintf("%.2f", avg),
		TopPerformers:   top,
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(overview); err == nil {
			s.Redis.Set(context.Background(), testStatsCacheKey, payload, statsCacheTTL)
		}
	}

	return overview, nil
}

func (s *TestSessionService) invalidateStats() {
	if s.Redis != nil {
		s.Redis.Del(context.Background(), testStatsCacheKey)
	}
}
