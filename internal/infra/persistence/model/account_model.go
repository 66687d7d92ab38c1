// Package model holds the BSON documents stored in the document database and
// their mapping to domain entities. Identifiers are stored as UUID strings.
package model

import (
	"time"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// MediaDocument is an embedded blob store reference.
type MediaDocument struct {
	URL      string `bson:"url"`
	PublicID string `bson:"publicId"`
}

// AccountDocument mirrors the 'accounts' collection.
type AccountDocument struct {
	ID           string         `bson:"_id"`
	Username     string         `bson:"username"`
	Email        string         `bson:"email"`
	FullName     string         `bson:"fullName"`
	Avatar       MediaDocument  `bson:"avatar"`
	CoverImage   *MediaDocument `bson:"coverImage,omitempty"`
	Password     string         `bson:"password,omitempty"`
	RefreshToken string         `bson:"refreshToken,omitempty"`
	WatchHistory []string       `bson:"watchHistory"`
	CreatedAt    time.Time      `bson:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt"`
}

func FromMedia(m entity.MediaRef) MediaDocument {
	return MediaDocument{URL: m.URL, PublicID: m.PublicID}
}

func (m MediaDocument) ToDomain() entity.MediaRef {
	return entity.MediaRef{URL: m.URL, PublicID: m.PublicID}
}

func fromMediaPtr(m *entity.MediaRef) *MediaDocument {
	if m == nil {
		return nil
	}
	doc := FromMedia(*m)

	return &doc
}

func (m *MediaDocument) toDomainPtr() *entity.MediaRef {
	if m == nil {
		return nil
	}
	ref := m.ToDomain()

	return &ref
}

// FromAccount maps a domain account to its document. WatchHistory is never nil so
// that $addToSet always operates on an array.
func FromAccount(a *entity.Account) *AccountDocument {
	history := make([]string, 0, len(a.WatchHistory))
	for _, id := range a.WatchHistory {
		history = append(history, id.String())
	}

	return &AccountDocument{
		ID:           a.ID.String(),
		Username:     a.Username,
		Email:        a.Email,
		FullName:     a.FullName,
		Avatar:       FromMedia(a.Avatar),
		CoverImage:   fromMediaPtr(a.CoverImage),
		Password:     a.PasswordHash,
		RefreshToken: a.RefreshToken,
		WatchHistory: history,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ToDomain maps the document back to a domain account.
func (d *AccountDocument) ToDomain() *entity.Account {
	history := make([]uuid.UUID, 0, len(d.WatchHistory))
	for _, raw := range d.WatchHistory {
		if id, err := uuid.Parse(raw); err == nil {
			history = append(history, id)
		}
	}

	return &entity.Account{
		ID:           ParseID(d.ID),
		Username:     d.Username,
		Email:        d.Email,
		FullName:     d.FullName,
		Avatar:       d.Avatar.ToDomain(),
		CoverImage:   d.CoverImage.toDomainPtr(),
		PasswordHash: d.Password,
		RefreshToken: d.RefreshToken,
		WatchHistory: history,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ParseID converts a stored identifier, yielding uuid.Nil for malformed values.
func ParseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}
