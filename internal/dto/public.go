package dto

// PublicSalonResponse is the salon profile served to the public site.
// It exposes a trimmed view; settings and lifecycle fields stay private.
type PublicSalonResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

// PublicSiteResponse bundles everything the public salon page needs in one call
type PublicSiteResponse struct {
	Salon            PublicSalonResponse       `json:"salon"`
	Hero             *HeroResponse             `json:"hero,omitempty"`
	Services         []ServiceResponse         `json:"services"`
	Specialists      []SpecialistResponse      `json:"specialists"`
	ConsentTemplates []ConsentTemplateResponse `json:"consent_templates"`
}
