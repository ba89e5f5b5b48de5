package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RequestCodeRequest struct {
	Phone string `json:"phone" validate:"required,min=8,max=20"`
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" validate:"required,min=8,max=20"`
	Code  string `json:"code"  validate:"required,len=4,numeric"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RequestCodeResponse hands back a wa.me link the owner opens to read the
// one-time code on WhatsApp.
type RequestCodeResponse struct {
	WhatsAppLink string `json:"whatsAppLink"`
	ExpiresIn    int    `json:"expiresIn"` // seconds
}

type OwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	TokenType    string        `json:"tokenType"`
	ExpiresIn    int           `json:"expiresIn"` // seconds
	Owner        OwnerResponse `json:"owner"`
}
