package onboarding

// RegisterInput is the merchant registration form payload.
type RegisterInput struct {
	BusinessName     string `json:"business_name" validate:"required,max=150"`
	LegalIdentity    string `json:"legal_identity" validate:"required,oneof=sole_proprietorship partnership private_limited public_limited educational_institution ngo"`
	BusinessCategory string `json:"business_category" validate:"required,max=80"`
	ServiceType      string `json:"service_type" validate:"omitempty,max=80"`
	MonthlyVolume    string `json:"monthly_volume" validate:"required,max=40"`
	Website          string `json:"website" validate:"omitempty,url"`
	ContactName      string `json:"contact_name" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,bdphone"`
}
