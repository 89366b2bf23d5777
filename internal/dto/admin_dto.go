package dto

type AdminLoginResponse struct {
	Token       string `json:"token,omitempty"`
	MFARequired bool   `json:"mfaRequired,omitempty"`
	MFAToken    string `json:"mfaToken,omitempty"`
}

type MFALoginRequest struct {
	MFAToken string `json:"mfaToken" validate:"required"`
	Code     string `json:"code" validate:"required"`
}

type MFAVerifyRequest struct {
	Code string `json:"code" validate:"required"`
}

type MFAEnableResponse struct {
	OTPAuthURL string `json:"otpauthUrl"`
}
