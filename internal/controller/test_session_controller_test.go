package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/service"
	"tryout_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sessionRig struct {
	router      *gin.Engine
	db          *gorm.DB
	student     *model.Student
	subCategory *model.SubCategory
	question    *model.Question
}

func newSessionRig(t *testing.T) *sessionRig {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	category := &model.Category{Name: "TPS"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	subCategory := &model.SubCategory{Name: "Penalaran Umum", CategoryID: category.ID, TimeLimit: 60, IsActive: true}
	if err := db.Create(subCategory).Error; err != nil {
		t.Fatalf("seed subcategory: %v", err)
	}
	question := &model.Question{
		Text: "2+2?", OptionA: "4", OptionB: "5", OptionC: "6", OptionD: "7", OptionE: "8",
		CorrectAnswer: "A", SubCategoryID: subCategory.ID, IsActive: true,
	}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	student := &model.Student{
		Name: "Budi", Class: "12", School: "SMAN 1", TargetUniversity: "ITB",
		Phone: "08", Email: "budi@example.com",
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}

	sessionRepo := repository.NewTestSessionRepository(db)
	svc := service.NewTestSessionService(
		sessionRepo,
		repository.NewStudentRepository(db),
		repository.NewSubCategoryRepository(db),
		repository.NewQuestionRepository(db),
		nil,
	)
	ctrl := NewTestSessionController(svc)

	router := gin.New()
	api := router.Group("/api/test-sessions")
	api.POST("/start", ctrl.Start)
	api.GET("/:id", ctrl.Get)
	api.PUT("/:id/answer", ctrl.SaveAnswer)
	api.POST("/:id/submit", ctrl.Submit)
	api.GET("/:id/results", ctrl.Results)

	return &sessionRig{
		router:      router,
		db:          db,
		student:     student,
		subCategory: subCategory,
		question:    question,
	}
}

func (rig *sessionRig) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	rig.router.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, envelope
}

func (rig *sessionRig) startSession(t *testing.T) string {
	t.Helper()
	rec, envelope := rig.do(t, http.MethodPost, "/api/test-sessions/start", gin.H{
		"studentId":     rig.student.ID,
		"subCategoryId": rig.subCategory.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("start status = %d body = %s", rec.Code, rec.Body.String())
	}
	data := envelope["data"].(map[string]interface{})
	session := data["testSession"].(map[string]interface{})
	return session["id"].(string)
}

func TestStartEndpoint(t *testing.T) {
	rig := newSessionRig(t)

	sessionID := rig.startSession(t)
	if sessionID == "" {
		t.Fatal("empty session id")
	}

	// Unknown student maps to 404 with the contract message.
	rec, envelope := rig.do(t, http.MethodPost, "/api/test-sessions/start", gin.H{
		"studentId":     "missing",
		"subCategoryId": rig.subCategory.ID,
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if envelope["message"] != "Student not found" {
		t.Fatalf("message = %q", envelope["message"])
	}

	// Missing body fields are a binding 400.
	rec, _ = rig.do(t, http.MethodPost, "/api/test-sessions/start", gin.H{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnswerAndSubmitEndpoints(t *testing.T) {
	rig := newSessionRig(t)
	sessionID := rig.startSession(t)

	answerPath := fmt.Sprintf("/api/test-sessions/%s/answer", sessionID)
	rec, _ := rig.do(t, http.MethodPut, answerPath, gin.H{
		"questionId":     rig.question.ID,
		"selectedAnswer": "A",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("save answer status = %d body = %s", rec.Code, rec.Body.String())
	}

	// Results are refused while in progress.
	rec, envelope := rig.do(t, http.MethodGet, fmt.Sprintf("/api/test-sessions/%s/results", sessionID), nil)
	if rec.Code != http.StatusBadRequest || envelope["message"] != "Test not yet completed" {
		t.Fatalf("premature results: status = %d message = %q", rec.Code, envelope["message"])
	}

	submitPath := fmt.Sprintf("/api/test-sessions/%s/submit", sessionID)
	rec, envelope = rig.do(t, http.MethodPost, submitPath, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d body = %s", rec.Code, rec.Body.String())
	}
	data := envelope["data"].(map[string]interface{})
	results := data["results"].(map[string]interface{})
	if results["score"] != "100.00" {
		t.Fatalf("score = %v, want 100.00", results["score"])
	}

	// The double-submit guard is a 400 with the contract message.
	rec, envelope = rig.do(t, http.MethodPost, submitPath, nil)
	if rec.Code != http.StatusBadRequest || envelope["message"] != "Test already submitted" {
		t.Fatalf("double submit: status = %d message = %q", rec.Code, envelope["message"])
	}

	// So are post-submit answer writes.
	rec, envelope = rig.do(t, http.MethodPut, answerPath, gin.H{
		"questionId":     rig.question.ID,
		"selectedAnswer": "B",
	})
	if rec.Code != http.StatusBadRequest || envelope["message"] != "Test already submitted" {
		t.Fatalf("late answer: status = %d message = %q", rec.Code, envelope["message"])
	}
}

func TestSessionNotFoundEndpoints(t *testing.T) {
	rig := newSessionRig(t)

	rec, envelope := rig.do(t, http.MethodGet, "/api/test-sessions/missing", nil)
	if rec.Code != http.StatusNotFound || envelope["message"] != "Test session not found" {
		t.Fatalf("status = %d message = %q", rec.Code, envelope["message"])
	}

	rec, envelope = rig.do(t, http.MethodPost, "/api/test-sessions/missing/submit", nil)
	if rec.Code != http.StatusNotFound || envelope["message"] != "Test session not found" {
		t.Fatalf("status = %d message = %q", rec.Code, envelope["message"])
	}
}
