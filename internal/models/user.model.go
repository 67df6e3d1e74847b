package models

import "time"

type User struct {
	BaseUUIDModel
	DisplayName string     `gorm:"type:text"                                 json:"displayName"`
	Email       *string    `gorm:"type:text;uniqueIndex"                     json:"email"`
	IsActive    bool       `gorm:"type:bool;default:true"                    json:"isActive"`
	OIDCUserID  string     `gorm:"column:oidc_user_id;type:text;uniqueIndex" json:"-"`
	LastLoginAt *time.Time `gorm:"type:timestamp"                            json:"lastLoginAt,omitempty"`
}

// UserProfile is the public projection returned by the API.
type UserProfile struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Email       *string    `json:"email,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func (u *User) ToProfile() UserProfile {
	return UserProfile{
		ID:          u.ID.String(),
		DisplayName: u.DisplayName,
		Email:       u.Email,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
	}
}
