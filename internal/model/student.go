package model

// Student self-registers before taking a tryout. Identity fields are
// immutable for the lifetime of a TestSession.
//
// swagger:model Student
type Student struct {
	UUIDBase
	Name             string `gorm:"size:100;not null" json:"name"`
	Class            string `gorm:"size:50;not null" json:"class"`
	School           string `gorm:"size:100;not null;index" json:"school"`
	TargetUniversity string `gorm:"size:100;not null" json:"targetUniversity"`
	Phone            string `gorm:"size:30;not null" json:"phone"`
	Email            string `gorm:"size:100;not null;index" json:"email"`
}

func (Student) TableName() string {
	return "students"
}
