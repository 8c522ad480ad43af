package model

// University is a partner institution listed on the site
type University struct {
	Base
	Name    string `gorm:"not null" json:"name" validate:"required"`
	Country string `gorm:"not null" json:"country" validate:"required"`
	City    string `json:"city"`

	// Legacy and current names for the same values; Normalize keeps them in step
	ImageURL string `json:"imageUrl"`
	LogoURL  string `json:"logoUrl"`

	Description string `gorm:"type:text" json:"description"`
	Ranking     string `json:"ranking"`

	Website    string `json:"website"`
	WebsiteURL string `json:"websiteUrl"`

	IsActive bool `gorm:"not null;index" json:"isActive"`
}

// Normalize fills whichever side of a mirrored pair is empty from the other.
// When both sides are set they are left as given.
func (u *University) Normalize() {
	u.LogoURL, u.ImageURL = mirror(u.LogoURL, u.ImageURL)
	u.WebsiteURL, u.Website = mirror(u.WebsiteURL, u.Website)
}

// mirror returns the (current, legacy) pair with empty sides filled in.
func mirror(current, legacy string) (string, string) {
	if current == "" && legacy != "" {
		current = legacy
	}
	if legacy == "" && current != "" {
		legacy = current
	}
	return current, legacy
}
