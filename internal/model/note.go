package model

// The notes product shares this module but keeps its own category type:
// deleting a NoteCategory cascades by clearing the reference on its notes,
// unlike the tryout Category which refuses deletion while children exist.

// swagger:model NoteCategory
type NoteCategory struct {
	UUIDBase
	Name        string `gorm:"size:50;not null;index" json:"name"`
	Description string `gorm:"size:200" json:"description"`
	Color       string `gorm:"size:20;default:'primary'" json:"color"`
	Icon        string `gorm:"size:50;default:'Folder'" json:"icon"`
	NoteCount   int    `gorm:"default:0" json:"noteCount"`
}

func (NoteCategory) TableName() string {
	return "note_categories"
}

// swagger:model Note
type Note struct {
	UUIDBase
	Title      string        `gorm:"size:255;not null" json:"title"`
	Content    string        `gorm:"type:text;not null" json:"content"`
	CategoryID *string       `gorm:"index;type:varchar(36)" json:"categoryId"`
	Category   *NoteCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Note) TableName() string {
	return "notes"
}
