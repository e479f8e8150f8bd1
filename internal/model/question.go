package model

// Valid answer keys for a five-option multiple choice question.
const (
	AnswerA = "A"
	AnswerB = "B"
	AnswerC = "C"
	AnswerD = "D"
	AnswerE = "E"
)

func IsValidAnswerKey(key string) bool {
	switch key {
	case AnswerA, AnswerB, AnswerC, AnswerD, AnswerE:
		return true
	}
	return false
}

// Question carries the full content including the correct answer and
// explanation. Only admin endpoints serialize it directly; test takers
// get the stripped service.TestQuestion view instead.
//
// swagger:model Question
type Question struct {
	UUIDBase
	Text          string       `gorm:"type:text;not null" json:"text"`
	OptionA       string       `gorm:"type:text;not null" json:"optionA"`
	OptionB       string       `gorm:"type:text;not null" json:"optionB"`
	OptionC       string       `gorm:"type:text;not null" json:"optionC"`
	OptionD       string       `gorm:"type:text;not null" json:"optionD"`
	OptionE       string       `gorm:"type:text;not null" json:"optionE"`
	CorrectAnswer string       `gorm:"size:1;not null" json:"correctAnswer"`
	Explanation   string       `gorm:"type:text" json:"explanation"`
	SubCategoryID string       `gorm:"index;type:varchar(36);not null" json:"subCategoryId"`
	Order         int          `gorm:"default:0" json:"order"`
	IsActive      bool         `gorm:"default:true;index" json:"isActive"`
	SubCategory   *SubCategory `gorm:"foreignKey:SubCategoryID" json:"subCategory,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
