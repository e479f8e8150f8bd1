package service

import (
	"strings"

	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/util"

	"gorm.io/gorm"
)

// The notes product keeps its counters with a single strategy: the
// read-time recount is the source of truth and is written back under a
// compare-and-swap. Note writes never touch the counter directly.

type NoteCategoryService struct {
	Repo     *repository.NoteCategoryRepository
	NoteRepo *repository.NoteRepository
}

func NewNoteCategoryService(repo *repository.NoteCategoryRepository, noteRepo *repository.NoteRepository) *NoteCategoryService {
	return &NoteCategoryService{Repo: repo, NoteRepo: noteRepo}
}

type NoteCategoryReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
}

func (s *NoteCategoryService) List() ([]model.NoteCategory, error) {
	categories, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	for i := range categories {
		if err := s.refreshNoteCount(&categories[i]); err != nil {
			return nil, err
		}
	}
	return categories, nil
}

func (s *NoteCategoryService) Get(id string) (*model.NoteCategory, error) {
	category, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	if err := s.refreshNoteCount(category); err != nil {
		return nil, err
	}
	return category, nil
}

// refreshNoteCount recounts the category's notes and persists the fresh
// value when stale. The CAS keeps concurrent recounts from clobbering
// each other; a lost swap just means another reader already fixed it.
func (s *NoteCategoryService) refreshNoteCount(category *model.NoteCategory) error {
	count, err := s.NoteRepo.CountByCategory(category.ID)
	if err != nil {
		return err
	}
	if int(count) == category.NoteCount {
		return nil
	}

	if err := s.Repo.StoreNoteCount(category.ID, category.NoteCount, int(count)); err != nil {
		return err
	}
	category.NoteCount = int(count)
	return nil
}

func (s *NoteCategoryService) Create(req NoteCategoryReq) (*model.NoteCategory, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, util.ErrFieldsRequired
	}
	name := strings.TrimSpace(*req.Name)

	if _, err := s.Repo.FindByNameFold(name, ""); err == nil {
		return nil, util.ErrCategoryNameExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	category := &model.NoteCategory{
		Name:  name,
		Color: "primary",
		Icon:  "Folder",
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.Color != nil && *req.Color != "" {
		category.Color = *req.Color
	}
	if req.Icon != nil && *req.Icon != "" {
		category.Icon = *req.Icon
	}

	if err := s.Repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *NoteCategoryService) Update(id string, req NoteCategoryReq) (*model.NoteCategory, error) {
	category, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name := strings.TrimSpace(*req.Name)
		if _, err := s.Repo.FindByNameFold(name, id); err == nil {
			return nil, util.ErrCategoryNameExists
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.Color != nil && *req.Color != "" {
		category.Color = *req.Color
	}
	if req.Icon != nil && *req.Icon != "" {
		category.Icon = *req.Icon
	}

	if err := s.Repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

type NoteCategoryDeleteResult struct {
	NotesUpdated int64 `json:"notesUpdated"`
}

// Delete cascades by detaching the category's notes instead of blocking.
// This intentionally differs from the tryout category guard; the two
// products diverge here on purpose.
func (s *NoteCategoryService) Delete(id string) (*NoteCategoryDeleteResult, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	var detached int64
	err := s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.NoteRepo.ClearCategory(tx, id)
		if err != nil {
			return err
		}
		detached = n
		return s.Repo.Delete(tx, id)
	})
	if err != nil {
		return nil, err
	}

	return &NoteCategoryDeleteResult{NotesUpdated: detached}, nil
}

// NotesIn lists the notes of one category; the pseudo-id
// "uncategorized" selects notes without a category.
func (s *NoteCategoryService) NotesIn(id string) ([]model.Note, error) {
	if id == "uncategorized" {
		return s.NoteRepo.ListUncategorized()
	}

	if _, err := s.Repo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	return s.NoteRepo.ListByCategory(id)
}
