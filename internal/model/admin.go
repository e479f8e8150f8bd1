package model

// swagger:model Admin
type Admin struct {
	BaseModel
	Username string `gorm:"size:50;unique;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;not null" json:"email"`
}

func (Admin) TableName() string {
	return "admins"
}
