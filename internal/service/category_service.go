package service

import (
	"strings"

	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/util"

	"gorm.io/gorm"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Get(id string) (*model.Category, error) {
	category, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Create(req CategoryReq) (*model.Category, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, util.ErrFieldsRequired
	}
	name := strings.TrimSpace(*req.Name)

	if err := s.checkNameFree(name, ""); err != nil {
		return nil, err
	}

	category := &model.Category{Name: name}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.Order != nil {
		category.Order = *req.Order
	}

	if err := s.Repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id string, req CategoryReq) (*model.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name := strings.TrimSpace(*req.Name)
		if err := s.checkNameFree(name, id); err != nil {
			return nil, err
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.Order != nil {
		category.Order = *req.Order
	}

	if err := s.Repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete fails closed while subcategories still reference the category.
func (s *CategoryService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	count, err := s.Repo.CountSubCategories(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrCategoryHasChildren
	}

	return s.Repo.Delete(id)
}

// Name uniqueness is case-insensitive: "Math" blocks "math".
func (s *CategoryService) checkNameFree(name, excludeID string) error {
	_, err := s.Repo.FindByNameFold(name, excludeID)
	if err == nil {
		return util.ErrCategoryNameExists
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}
