package service

import (
	"context"
	"encoding/json"
	"strings"

	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const studentStatsCacheKey = "tryout:stats:students"

type StudentService struct {
	Repo        *repository.StudentRepository
	SessionRepo *repository.TestSessionRepository
	Redis       *redis.Client
}

func NewStudentService(repo *repository.StudentRepository, sessionRepo *repository.TestSessionRepository, rdb *redis.Client) *StudentService {
	return &StudentService{Repo: repo, SessionRepo: sessionRepo, Redis: rdb}
}

type StudentReq struct {
	Name             string `json:"name"`
	Class            string `json:"class"`
	School           string `json:"school"`
	TargetUniversity string `json:"targetUniversity"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
}

// Register is the public self-registration endpoint's backing logic:
// every identity field is mandatory.
func (s *StudentService) Register(req StudentReq) (*model.Student, error) {
	if req.Name == "" || req.Class == "" || req.School == "" ||
		req.TargetUniversity == "" || req.Phone == "" || req.Email == "" {
		return nil, util.ErrFieldsRequired
	}

	student := &model.Student{
		Name:             strings.TrimSpace(req.Name),
		Class:            req.Class,
		School:           req.School,
		TargetUniversity: req.TargetUniversity,
		Phone:            req.Phone,
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := s.Repo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) List() ([]model.Student, error) {
	return s.Repo.List()
}

type StudentDetail struct {
	model.Student
	TestSessions []model.TestSession `json:"testSessions"`
}

// Get returns the student together with their session history.
func (s *StudentService) Get(id string) (*StudentDetail, error) {
	student, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	sessions, err := s.SessionRepo.ListByStudent(id)
	if err != nil {
		return nil, err
	}

	return &StudentDetail{Student: *student, TestSessions: sessions}, nil
}

func (s *StudentService) Update(id string, req StudentReq) (*model.Student, error) {
	student, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		student.Name = strings.TrimSpace(req.Name)
	}
	if req.Class != "" {
		student.Class = req.Class
	}
	if req.School != "" {
		student.School = req.School
	}
	if req.TargetUniversity != "" {
		student.TargetUniversity = req.TargetUniversity
	}
	if req.Phone != "" {
		student.Phone = req.Phone
	}
	if req.Email != "" {
		student.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}

	if err := s.Repo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(id string) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrStudentNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}

type StudentStatsOverview struct {
	TotalStudents     int64                   `json:"totalStudents"`
	TotalSessions     int64                   `json:"totalSessions"`
	CompletedSessions int64                   `json:"completedSessions"`
	BySchool          []repository.GroupCount `json:"bySchool"`
	ByUniversity      []repository.GroupCount `json:"byUniversity"`
}

// Stats aggregates the admin overview, cached in redis for a minute.
func (s *StudentService) Stats() (*StudentStatsOverview, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(context.Background(), studentStatsCacheKey).Result(); err == nil {
			var overview StudentStatsOverview
			if json.Unmarshal([]byte(cached), &overview) == nil {
				return &overview, nil
			}
		}
	}

	totalStudents, err := s.Repo.Count()
	if err != nil {
		return nil, err
	}
	totalSessions, err := s.SessionRepo.Count()
	if err != nil {
		return nil, err
	}
	completedSessions, err := s.SessionRepo.CountByStatus(model.SessionCompleted)
	if err != nil {
		return nil, err
	}
	bySchool, err := s.Repo.CountBySchool()
	if err != nil {
		return nil, err
	}
	byUniversity, err := s.Repo.CountByTargetUniversity()
	if err != nil {
		return nil, err
	}

	overview := &StudentStatsOverview{
		TotalStudents:     totalStudents,
		TotalSessions:     totalSessions,
		CompletedSessions: completedSessions,
		BySchool:          bySchool,
		ByUniversity:      byUniversity,
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(overview); err == nil {
			s.Redis.Set(context.Background(), studentStatsCacheKey, payload, statsCacheTTL)
		}
	}

	return overview, nil
}
