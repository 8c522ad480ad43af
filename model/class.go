package model

// Class is a preparation class (IELTS, PTE, language courses, ...).
type Class struct {
	Base
	Name        string `gorm:"not null" json:"name" validate:"required"`
	Type        string `json:"type"` // e.g. "online", "offline"
	Instructor  string `json:"instructor"`
	Schedule    string `json:"schedule"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"imageUrl"`
	Capacity    *int   `json:"capacity"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	IsActive    bool   `gorm:"not null;index" json:"isActive"`
}
