package model

import "time"

type TestSessionStatus string

const (
	SessionInProgress TestSessionStatus = "in_progress"
	SessionCompleted  TestSessionStatus = "completed"
	SessionExpired    TestSessionStatus = "expired"
)

// TestSession is one student's single attempt at one SubCategory's
// question set. TimeLimit is frozen from the SubCategory at start time so
// later edits never move the deadline of a running attempt. The session
// is terminal once the status leaves in_progress.
//
// swagger:model TestSession
type TestSession struct {
	UUIDBase
	StudentID      string            `gorm:"index;type:varchar(36);not null" json:"studentId"`
	SubCategoryID  string            `gorm:"index;type:varchar(36);not null" json:"subCategoryId"`
	StartTime      time.Time         `json:"startTime"`
	EndTime        *time.Time        `json:"endTime,omitempty"`
	Status         TestSessionStatus `gorm:"size:20;default:'in_progress';index" json:"status"`
	TimeLimit      int               `gorm:"default:0" json:"timeLimit"` // Minutes, copied from the SubCategory
	TotalTime      int               `gorm:"default:0" json:"totalTime"` // Seconds
	CorrectAnswers int               `gorm:"default:0" json:"correctAnswers"`
	WrongAnswers   int               `gorm:"default:0" json:"wrongAnswers"`
	Unanswered     int               `gorm:"default:0" json:"unanswered"`
	Score          float64           `gorm:"default:0" json:"score"`
	Student        *Student          `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	SubCategory    *SubCategory      `gorm:"foreignKey:SubCategoryID" json:"subCategory,omitempty"`
}

func (TestSession) TableName() string {
	return "test_sessions"
}

// Deadline is the server-enforced cut-off for answer writes and regular
// submission. A zero TimeLimit means no deadline.
func (s *TestSession) Deadline() time.Time {
	return s.StartTime.Add(time.Duration(s.TimeLimit) * time.Minute)
}

func (s *TestSession) DeadlinePassed(now time.Time) bool {
	return s.TimeLimit > 0 && now.After(s.Deadline())
}
