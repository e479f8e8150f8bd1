package model

// Answer is the mutable record of one student's response to one Question
// within one TestSession. One row is created per active question at
// session start; SelectedAnswer stays nil until the student picks an
// option and IsCorrect is computed only at finalization.
//
// swagger:model Answer
type Answer struct {
	UUIDBase
	TestSessionID   string    `gorm:"index;type:varchar(36);not null" json:"testSessionId"`
	QuestionID      string    `gorm:"index;type:varchar(36);not null" json:"questionId"`
	SelectedAnswer  *string   `gorm:"size:1" json:"selectedAnswer"`
	IsCorrect       bool      `gorm:"default:false" json:"isCorrect"`
	MarkedForReview bool      `gorm:"default:false" json:"markedForReview"`
	TimeSpent       int       `gorm:"default:0" json:"timeSpent"` // Seconds
	Question        *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}

// Answered reports whether the student actually picked an option.
func (a *Answer) Answered() bool {
	return a.SelectedAnswer != nil && *a.SelectedAnswer != ""
}
