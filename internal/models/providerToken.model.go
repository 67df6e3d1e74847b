package models

import (
	"time"

	"github.com/google/uuid"
)

// ProviderToken is the token-broker row: one access token per (provider, user).
type ProviderToken struct {
	BaseUUIDModel
	Provider    string     `gorm:"type:text;uniqueIndex:idx_provider_tokens_provider_user" json:"provider"`
	UserID      uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_provider_tokens_provider_user" json:"userId"`
	AccessToken string     `gorm:"type:text"                                               json:"-"`
	ExpiresAt   *time.Time `gorm:"type:timestamp"                                          json:"expiresAt,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// IsExpired reports whether the token has an expiry in the past. Tokens without
// an expiry never expire from the broker's point of view.
func (t *ProviderToken) IsExpired() bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(time.Now())
}
