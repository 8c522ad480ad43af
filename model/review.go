package model

// Review is a student testimonial; IsActive decides whether it is shown publicly.
type Review struct {
	Base
	StudentName string `gorm:"not null" json:"studentName" validate:"required"`
	Testimonial string `gorm:"type:text" json:"testimonial"`
	Rating      int    `gorm:"not null" json:"rating" validate:"min=1,max=5"`
	University  string `json:"university"`
	Country     string `json:"country"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `gorm:"not null;index" json:"isActive"`
}
