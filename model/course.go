package model

// Course is a study program offered through partner universities
type Course struct {
	Base
	Name string `gorm:"not null" json:"name" validate:"required"`

	// Level is the legacy name for Category
	Level    string `json:"level"`
	Category string `json:"category"`

	Duration    string `json:"duration"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `gorm:"not null;index" json:"isActive"`
}

// Normalize keeps Level and Category in step.
func (c *Course) Normalize() {
	c.Category, c.Level = mirror(c.Category, c.Level)
}
