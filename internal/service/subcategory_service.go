package service

import (
	"strings"

	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/util"

	"gorm.io/gorm"
)

type SubCategoryService struct {
	Repo         *repository.SubCategoryRepository
	CategoryRepo *repository.CategoryRepository
}

func NewSubCategoryService(repo *repository.SubCategoryRepository, categoryRepo *repository.CategoryRepository) *SubCategoryService {
	return &SubCategoryService{Repo: repo, CategoryRepo: categoryRepo}
}

type SubCategoryReq struct {
	Name          *string `json:"name"`
	CategoryID    *string `json:"categoryId"`
	QuestionCount *int    `json:"questionCount"`
	TimeLimit     *int    `json:"timeLimit"`
	Order         *int    `json:"order"`
	IsActive      *bool   `json:"isActive"`
}

func (s *SubCategoryService) List(categoryID string) ([]model.SubCategory, error) {
	return s.Repo.List(categoryID)
}

func (s *SubCategoryService) Get(id string) (*model.SubCategory, error) {
	subCategory, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSubCategoryNotFound
		}
		return nil, err
	}
	return subCategory, nil
}

func (s *SubCategoryService) Create(req SubCategoryReq) (*model.SubCategory, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" || req.CategoryID == nil {
		return nil, util.ErrFieldsRequired
	}

	if _, err := s.CategoryRepo.FindByID(*req.CategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	subCategory := &model.SubCategory{
		Name:       strings.TrimSpace(*req.Name),
		CategoryID: *req.CategoryID,
		TimeLimit:  60,
		IsActive:   true,
	}
	if req.QuestionCount != nil {
		subCategory.QuestionCount = *req.QuestionCount
	}
	if req.TimeLimit != nil {
		subCategory.TimeLimit = *req.TimeLimit
	}
	if req.Order != nil {
		subCategory.Order = *req.Order
	}

	if err := s.Repo.Create(subCategory); err != nil {
		return nil, err
	}
	return s.Get(subCategory.ID)
}

func (s *SubCategoryService) Update(id string, req SubCategoryReq) (*model.SubCategory, error) {
	subCategory, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		subCategory.Name = strings.TrimSpace(*req.Name)
	}
	if req.CategoryID != nil && *req.CategoryID != subCategory.CategoryID {
		if _, err := s.CategoryRepo.FindByID(*req.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrCategoryNotFound
			}
			return nil, err
		}
		subCategory.CategoryID = *req.CategoryID
		subCategory.Category = nil
	}
	if req.QuestionCount != nil {
		subCategory.QuestionCount = *req.QuestionCount
	}
	if req.TimeLimit != nil {
		subCategory.TimeLimit = *req.TimeLimit
	}
	if req.Order != nil {
		subCategory.Order = *req.Order
	}
	if req.IsActive != nil {
		subCategory.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(subCategory); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete fails closed while questions still reference the subcategory.
func (s *SubCategoryService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	count, err := s.Repo.CountQuestions(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrSubCategoryHasChilds
	}

	return s.Repo.Delete(id)
}
