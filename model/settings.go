package model

// SettingsID is the fixed identifier of the site settings singleton.
const SettingsID = "site-settings"

// Settings holds company-wide contact details shown in the site header and footer.
type Settings struct {
	Base
	CompanyName       string `json:"companyName"`
	FooterDescription string `gorm:"type:text" json:"footerDescription"`
	LogoURL           string `json:"logoUrl"`

	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Telephone string `json:"telephone"`
	Address   string `gorm:"type:text" json:"address"`

	FacebookURL  string `json:"facebookUrl"`
	WhatsappURL  string `json:"whatsappUrl"`
	TiktokURL    string `json:"tiktokUrl"`
	InstagramURL string `json:"instagramUrl"`

	// Older field names still read by parts of the frontend
	Tagline   string `json:"tagline"`
	Phone     string `json:"phone"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Linkedin  string `json:"linkedin"`
	Whatsapp  string `json:"whatsapp"`
}

// TableName specifies the table name for Settings
func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings is served while no settings document has been saved.
func DefaultSettings() Settings {
	return Settings{
		Base:        Base{ID: SettingsID},
		CompanyName: "Everest Worldwide Consultancy Pvt. Ltd.",
		Tagline:     "Your Gateway to Global Education",
	}
}
