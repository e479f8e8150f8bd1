package util

import "errors"

// Sentinel errors mapped to HTTP statuses at the controller boundary.
// The client matches on the literal message, so these strings are part of
// the API surface.
var (
	ErrStudentNotFound      = errors.New("Student not found")
	ErrSubCategoryNotFound  = errors.New("SubCategory not found")
	ErrCategoryNotFound     = errors.New("Category not found")
	ErrQuestionNotFound     = errors.New("Question not found")
	ErrSessionNotFound      = errors.New("Test session not found")
	ErrAnswerNotFound       = errors.New("Answer record not found")
	ErrNoteNotFound         = errors.New("Note not found")
	ErrAdminNotFound        = errors.New("Admin not found")
	ErrNoQuestions          = errors.New("No questions available for this test")
	ErrAlreadySubmitted     = errors.New("Test already submitted")
	ErrTestNotCompleted     = errors.New("Test not yet completed")
	ErrTimeLimitExceeded    = errors.New("Time limit exceeded")
	ErrCategoryNameExists   = errors.New("Category name already exists")
	ErrCategoryHasChildren  = errors.New("Cannot delete category with existing subcategories. Delete subcategories first.")
	ErrSubCategoryHasChilds = errors.New("Cannot delete subcategory with existing questions. Delete questions first.")
	ErrInvalidAnswerKey     = errors.New("Invalid answer option")
	ErrInvalidCategory      = errors.New("Invalid category")
	ErrInvalidCredentials   = errors.New("Invalid username or password")
	ErrAdminExists          = errors.New("Admin already exists")
	ErrFieldsRequired       = errors.New("All fields are required")
)
