package model

// Destination is a study-abroad country page.
type Destination struct {
	Base
	Name            string `gorm:"not null" json:"name" validate:"required"`
	Country         string `gorm:"not null" json:"country" validate:"required"`
	Description     string `gorm:"type:text" json:"description"`
	ImageURL        string `json:"imageUrl"`
	UniversityCount int    `gorm:"not null" json:"universityCount" validate:"gte=0"`
	IsActive        bool   `gorm:"not null;index" json:"isActive"`
}
