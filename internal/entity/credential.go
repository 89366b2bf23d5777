package entity

import "time"

// Credential is the verifiable-account state shared by every account kind
// that signs up through email verification. Code fields hold bcrypt hashes,
// never plaintext; a nil code hash means nothing is pending.
type Credential struct {
	PasswordHash string `gorm:"type:text;not null" json:"-"`

	Verified            bool       `gorm:"default:false" json:"verified"`
	VerifyCodeHash      *string    `gorm:"type:text" json:"-"`
	VerifyCodeExpiresAt *time.Time `json:"-"`
	LastCodeSentAt      *time.Time `json:"-"`

	ResetCodeHash      *string    `gorm:"type:text" json:"-"`
	ResetCodeExpiresAt *time.Time `json:"-"`
}

// ClearVerification drops the pending verification code. The last-sent
// timestamp is kept so the resend cooldown still applies.
func (c *Credential) ClearVerification() {
	c.VerifyCodeHash = nil
	c.VerifyCodeExpiresAt = nil
}

func (c *Credential) ClearReset() {
	c.ResetCodeHash = nil
	c.ResetCodeExpiresAt = nil
}
