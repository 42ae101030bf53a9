package models

import "time"

type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`

	// Locale/status fields, only surfaced by variants that collect them.
	OriginCountry     string `json:"origin_country,omitempty"`
	CurrentLocation   string `json:"current_location,omitempty"`
	ImmigrationStatus string `json:"immigration_status,omitempty"`

	Reputation int       `gorm:"not null;default:0" json:"reputation"`
	CreatedAt  time.Time `json:"created_at"`
}

// Profile holds the optional display fields supplied at registration.
type Profile struct {
	FullName          string
	Bio               string
	OriginCountry     string
	CurrentLocation   string
	ImmigrationStatus string
}

type RegisterRequest struct {
	Username          string `json:"username" binding:"required"`
	Email             string `json:"email" binding:"required"`
	Password          string `json:"password" binding:"required"`
	FullName          string `json:"full_name"`
	Bio               string `json:"bio"`
	OriginCountry     string `json:"origin_country"`
	CurrentLocation   string `json:"current_location"`
	ImmigrationStatus string `json:"immigration_status"`
}

func (r RegisterRequest) Profile() Profile {
	return Profile{
		FullName:          r.FullName,
		Bio:               r.Bio,
		OriginCountry:     r.OriginCountry,
		CurrentLocation:   r.CurrentLocation,
		ImmigrationStatus: r.ImmigrationStatus,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
