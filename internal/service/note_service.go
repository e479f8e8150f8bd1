package service

import (
	"strings"

	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/util"

	"gorm.io/gorm"
)

type NoteService struct {
	Repo         *repository.NoteRepository
	CategoryRepo *repository.NoteCategoryRepository
}

func NewNoteService(repo *repository.NoteRepository, categoryRepo *repository.NoteCategoryRepository) *NoteService {
	return &NoteService{Repo: repo, CategoryRepo: categoryRepo}
}

type NoteReq struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CategoryID *string `json:"categoryId"`
}

func (s *NoteService) List() ([]model.Note, error) {
	return s.Repo.List()
}

func (s *NoteService) Get(id string) (*model.Note, error) {
	note, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Create(req NoteReq) (*model.Note, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" ||
		req.Content == nil || strings.TrimSpace(*req.Content) == "" {
		return nil, util.ErrFieldsRequired
	}

	note := &model.Note{
		Title:   strings.TrimSpace(*req.Title),
		Content: *req.Content,
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		if err := s.checkCategory(*req.CategoryID); err != nil {
			return nil, err
		}
		note.CategoryID = req.CategoryID
	}

	if err := s.Repo.Create(note); err != nil {
		return nil, err
	}
	return s.Get(note.ID)
}

// Update can move the note between categories or detach it with an empty
// categoryId. The category counters follow at the next read (recount is
// the source of truth).
func (s *NoteService) Update(id string, req NoteReq) (*model.Note, error) {
	note, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		note.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			note.CategoryID = nil
		} else {
			if err := s.checkCategory(*req.CategoryID); err != nil {
				return nil, err
			}
			note.CategoryID = req.CategoryID
		}
		note.Category = nil
	}

	if err := s.Repo.Update(note); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *NoteService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *NoteService) checkCategory(categoryID string) error {
	if _, err := s.CategoryRepo.FindByID(categoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrInvalidCategory
		}
		return err
	}
	return nil
}
