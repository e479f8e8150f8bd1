package service

import (
	"testing"

	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/pkg/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// Connections are capped at one so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// tryoutFixture wires the full tryout service stack over one test
// database and seeds a category, a 60-minute subcategory with two
// questions (correct answers A and B), and one student.
type tryoutFixture struct {
	db *gorm.DB

	categories    *CategoryService
	subCategories *SubCategoryService
	questions     *QuestionService
	students      *StudentService
	sessions      *TestSessionService

	category    *model.Category
	subCategory *model.SubCategory
	q1          *model.Question
	q2          *model.Question
	student     *model.Student
}

func newTryoutFixture(t *testing.T) *tryoutFixture {
	t.Helper()
	db := newTestDB(t)

	categoryRepo := repository.NewCategoryRepository(db)
	subCategoryRepo := repository.NewSubCategoryRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	sessionRepo := repository.NewTestSessionRepository(db)

	f := &tryoutFixture{
		db:            db,
		categories:    NewCategoryService(categoryRepo),
		subCategories: NewSubCategoryService(subCategoryRepo, categoryRepo),
		questions:     NewQuestionService(questionRepo, subCategoryRepo),
		students:      NewStudentService(studentRepo, sessionRepo, nil),
		sessions:      NewTestSessionService(sessionRepo, studentRepo, subCategoryRepo, questionRepo, nil),
	}

	category, err := f.categories.Create(CategoryReq{Name: strPtr("Tes Potensi Skolastik")})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	f.category = category

	subCategory, err := f.subCategories.Create(SubCategoryReq{
		Name:       strPtr("Penalaran Umum"),
		CategoryID: strPtr(category.ID),
		TimeLimit:  intPtr(60),
	})
	if err != nil {
		t.Fatalf("seed subcategory: %v", err)
	}
	f.subCategory = subCategory

	f.q1 = f.mustCreateQuestion(t, subCategory.ID, "A")
	f.q2 = f.mustCreateQuestion(t, subCategory.ID, "B")

	student, err := f.students.Register(StudentReq{
		Name:             "Budi Santoso",
		Class:            "12 IPA 1",
		School:           "SMAN 1 Bandung",
		TargetUniversity: "ITB",
		Phone:            "081234567890",
		Email:            "budi@example.com",
	})
	if err != nil {
		t.Fatalf("seed student: %v", err)
	}
	f.student = student

	return f
}

func (f *tryoutFixture) mustCreateQuestion(t *testing.T, subCategoryID, correct string) *model.Question {
	t.Helper()
	question, err := f.questions.Create(QuestionReq{
		Text:          "Berapakah hasil dari 2 + 2?",
		OptionA:       "4",
		OptionB:       "5",
		OptionC:       "6",
		OptionD:       "7",
		OptionE:       "8",
		CorrectAnswer: correct,
		Explanation:   "Penjumlahan dasar.",
		SubCategoryID: subCategoryID,
	})
	if err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return question
}

// noteFixture wires the notes service pair over one test database.
type noteFixture struct {
	db             *gorm.DB
	notes          *NoteService
	noteCategories *NoteCategoryService
}

func newNoteFixture(t *testing.T) *noteFixture {
	t.Helper()
	db := newTestDB(t)

	noteRepo := repository.NewNoteRepository(db)
	noteCategoryRepo := repository.NewNoteCategoryRepository(db)

	return &noteFixture{
		db:             db,
		notes:          NewNoteService(noteRepo, noteCategoryRepo),
		noteCategories: NewNoteCategoryService(noteCategoryRepo, noteRepo),
	}
}
