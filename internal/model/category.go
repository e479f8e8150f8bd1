package model

// Category is a top-level exam group, e.g. "TPS" or "Literasi".
// Name uniqueness is case-insensitive and enforced in the service layer.
//
// swagger:model Category
type Category struct {
	UUIDBase
	Name        string `gorm:"size:100;not null;index" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`
}

func (Category) TableName() string {
	return "categories"
}
