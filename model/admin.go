package model

// Admin is a back-office account allowed to manage site content.
type Admin struct {
	Base
	Username     string `gorm:"type:varchar(100);unique;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"` // Never expose password in JSON
}

// TableName specifies the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
