package model

// Team is a staff bio on the About page
type Team struct {
	Base
	Name     string `gorm:"not null" json:"name" validate:"required"`
	Position string `gorm:"not null" json:"position" validate:"required"` // aka role/title
	ImageURL string `json:"imageUrl"`
	Order    int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive bool   `gorm:"not null;index" json:"isActive"`
}

// TableName specifies the table name for Team
func (Team) TableName() string {
	return "team_members"
}
