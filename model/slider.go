package model

// Slider is a hero banner on the home page.
type Slider struct {
	Base
	Title       string `gorm:"not null" json:"title" validate:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"imageUrl"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
	Order       int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool   `gorm:"not null;index" json:"isActive"`
}
