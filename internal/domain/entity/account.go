// Package entity contains the core business objects of the application.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MediaRef points at an object held by the blob store.
type MediaRef struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// IsZero reports whether the reference is empty.
func (m MediaRef) IsZero() bool {
	return m.URL == "" && m.PublicID == ""
}

// Account represents a registered user. A channel is an account seen by other users.
type Account struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	FullName     string      `json:"fullName"`
	Avatar       MediaRef    `json:"avatar"`
	CoverImage   *MediaRef   `json:"coverImage,omitempty"`
	PasswordHash string      `json:"-"`
	RefreshToken string      `json:"-"`
	WatchHistory []uuid.UUID `json:"watchHistory"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Sanitized returns a copy of the account without the password hash and refresh token.
func (a *Account) Sanitized() *Account {
	if a == nil {
		return nil
	}

	clone := *a
	clone.PasswordHash = ""
	clone.RefreshToken = ""
	if a.WatchHistory != nil {
		clone.WatchHistory = append([]uuid.UUID(nil), a.WatchHistory...)
	}

	return &clone
}

// CoverImagePublicID returns the blob id of the cover image, or "" when there is none.
func (a *Account) CoverImagePublicID() string {
	if a == nil || a.CoverImage == nil {
		return ""
	}

	return a.CoverImage.PublicID
}

// Identity is the authenticated caller resolved from an access token.
type Identity struct {
	AccountID uuid.UUID
	Username  string
	Email     string
	FullName  string
	Profile   *Account
}

// NewIdentity builds an identity from a sanitized account projection.
func NewIdentity(account *Account) *Identity {
	profile := account.Sanitized()

	return &Identity{
		AccountID: profile.ID,
		Username:  profile.Username,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Profile:   profile,
	}
}
