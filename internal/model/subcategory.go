package model

// SubCategory is a named, timed quiz definition under a Category.
// QuestionCount is maintained transactionally with question writes.
//
// swagger:model SubCategory
type SubCategory struct {
	UUIDBase
	Name          string    `gorm:"size:100;not null" json:"name"`
	CategoryID    string    `gorm:"index;type:varchar(36);not null" json:"categoryId"`
	QuestionCount int       `gorm:"default:0" json:"questionCount"`
	TimeLimit     int       `gorm:"default:60" json:"timeLimit"` // Minutes
	Order         int       `gorm:"default:0" json:"order"`
	IsActive      bool      `gorm:"default:true;index" json:"isActive"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (SubCategory) TableName() string {
	return "sub_categories"
}
