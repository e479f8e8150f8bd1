package service

import (
	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	Repo            *repository.QuestionRepository
	SubCategoryRepo *repository.SubCategoryRepository
}

func NewQuestionService(repo *repository.QuestionRepository, subCategoryRepo *repository.SubCategoryRepository) *QuestionService {
	return &QuestionService{Repo: repo, SubCategoryRepo: subCategoryRepo}
}

type QuestionReq struct {
	Text          string `json:"text" binding:"required"`
	OptionA       string `json:"optionA" binding:"required"`
	OptionB       string `json:"optionB" binding:"required"`
	OptionC       string `json:"optionC" binding:"required"`
	OptionD       string `json:"optionD" binding:"required"`
	OptionE       string `json:"optionE" binding:"required"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
	Explanation   string `json:"explanation"`
	SubCategoryID string `json:"subCategoryId" binding:"required"`
	Order         int    `json:"order"`
}

type QuestionUpdateReq struct {
	Text          *string `json:"text"`
	OptionA       *string `json:"optionA"`
	OptionB       *string `json:"optionB"`
	OptionC       *string `json:"optionC"`
	OptionD       *string `json:"optionD"`
	OptionE       *string `json:"optionE"`
	CorrectAnswer *string `json:"correctAnswer"`
	Explanation   *string `json:"explanation"`
	SubCategoryID *string `json:"subCategoryId"`
	Order         *int    `json:"order"`
	IsActive      *bool   `json:"isActive"`
}

// List is the admin view: full questions including correct answers.
func (s *QuestionService) List(subCategoryID string) ([]model.Question, error) {
	return s.Repo.List(subCategoryID)
}

func (s *QuestionService) Get(id string) (*model.Question, error) {
	question, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

// ListForTest is the student view: active questions with the correct
// answer and explanation stripped. 404 when the set is empty.
func (s *QuestionService) ListForTest(subCategoryID string) ([]TestQuestion, error) {
	questions, err := s.Repo.ListActive(subCategoryID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}

	stripped := make([]TestQuestion, 0, len(questions))
	for i := range questions {
		stripped = append(stripped, stripQuestion(&questions[i]))
	}
	return stripped, nil
}

func (s *QuestionService) Create(req QuestionReq) (*model.Question, error) {
	if !model.IsValidAnswerKey(req.CorrectAnswer) {
		return nil, util.ErrInvalidAnswerKey
	}
	if _, err := s.SubCategoryRepo.FindByID(req.SubCategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSubCategoryNotFound
		}
		return nil, err
	}

	question := &model.Question{
		Text:          req.Text,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		OptionE:       req.OptionE,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		SubCategoryID: req.SubCategoryID,
		Order:         req.Order,
		IsActive:      true,
	}

	if err := s.Repo.CreateWithCount(question); err != nil {
		return nil, err
	}
	return s.Get(question.ID)
}

// BulkCreate inserts a batch, adjusting every affected subcategory's
// question count in the same transaction.
func (s *QuestionService) BulkCreate(reqs []QuestionReq) ([]model.Question, error) {
	if len(reqs) == 0 {
		return nil, util.ErrFieldsRequired
	}

	questions := make([]model.Question, 0, len(reqs))
	for _, req := range reqs {
		if !model.IsValidAnswerKey(req.CorrectAnswer) {
			return nil, util.ErrInvalidAnswerKey
		}
		questions = append(questions, model.Question{
			Text:          req.Text,
			OptionA:       req.OptionA,
			OptionB:       req.OptionB,
			OptionC:       req.OptionC,
			OptionD:       req.OptionD,
			OptionE:       req.OptionE,
			CorrectAnswer: req.CorrectAnswer,
			Explanation:   req.Explanation,
			SubCategoryID: req.SubCategoryID,
			Order:         req.Order,
			IsActive:      true,
		})
	}

	if err := s.Repo.BulkCreateWithCounts(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) Update(id string, req QuestionUpdateReq) (*model.Question, error) {
	question, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	oldSubCategoryID := question.SubCategoryID

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.OptionA != nil {
		question.OptionA = *req.OptionA
	}
	if req.OptionB != nil {
		question.OptionB = *req.OptionB
	}
	if req.OptionC != nil {
		question.OptionC = *req.OptionC
	}
	if req.OptionD != nil {
		question.OptionD = *req.OptionD
	}
	if req.OptionE != nil {
		question.OptionE = *req.OptionE
	}
	if req.CorrectAnswer != nil {
		if !model.IsValidAnswerKey(*req.CorrectAnswer) {
			return nil, util.ErrInvalidAnswerKey
		}
		question.CorrectAnswer = *req.CorrectAnswer
	}
	if req.Explanation != nil {
		question.Explanation = *req.Explanation
	}
	if req.SubCategoryID != nil && *req.SubCategoryID != oldSubCategoryID {
		if _, err := s.SubCategoryRepo.FindByID(*req.SubCategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrSubCategoryNotFound
			}
			return nil, err
		}
		question.SubCategoryID = *req.SubCategoryID
		question.SubCategory = nil
	}
	if req.Order != nil {
		question.Order = *req.Order
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := s.Repo.UpdateWithCount(question, oldSubCategoryID); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *QuestionService) Delete(id string) error {
	question, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.Repo.DeleteWithCount(question)
}
