package entity

import "github.com/google/uuid"

// SortField is a video attribute a catalog listing can be ordered by.
type SortField string

const (
	SortByViews     SortField = "views"
	SortByCreatedAt SortField = "createdAt"
	SortByDuration  SortField = "duration"
)

// Valid reports whether f is a recognized sort field.
func (f SortField) Valid() bool {
	switch f {
	case SortByViews, SortByCreatedAt, SortByDuration:
		return true
	}

	return false
}

// SortDirection is either ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Valid reports whether d is a recognized direction.
func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// CatalogQuery is a normalized catalog request. Page and Limit are always >= 1.
type CatalogQuery struct {
	Page     int
	Limit    int
	Search   string
	SortBy   SortField
	SortType SortDirection
	OwnerID  *uuid.UUID
}

// Skip is the number of results before the requested window.
func (q CatalogQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// VideoPage is one window of a catalog listing plus paging metadata.
type VideoPage struct {
	Items       []*VideoSummary `json:"docs"`
	TotalDocs   int64           `json:"totalDocs"`
	Limit       int             `json:"limit"`
	Page        int             `json:"page"`
	TotalPages  int             `json:"totalPages"`
	HasPrevPage bool            `json:"hasPrevPage"`
	HasNextPage bool            `json:"hasNextPage"`
	PrevPage    *int            `json:"prevPage"`
	NextPage    *int            `json:"nextPage"`
}

// NewVideoPage computes the paging metadata for a window of items.
func NewVideoPage(items []*VideoSummary, total int64, page, limit int) *VideoPage {
	if items == nil {
		items = []*VideoSummary{}
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	p := &VideoPage{
		Items:       items,
		TotalDocs:   total,
		Limit:       limit,
		Page:        page,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
	}
	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}

	return p
}
