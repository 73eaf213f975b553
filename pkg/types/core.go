package types

import (
	"github.com/Sternrassler/curseforge-client/pkg/decode"
	"github.com/Sternrassler/curseforge-client/pkg/pagination"
)

// Pagination is the pagination block of a paginated response.
type Pagination = pagination.Descriptor

// DataResponse is the envelope of non-paginated responses: {"data": ...}.
type DataResponse[T any] struct {
	Data  T            `json:"data"`
	Extra decode.Extra `json:"-"`
}

// PageResponse is the envelope of paginated responses.
type PageResponse[T any] struct {
	Data       []T          `json:"data"`
	Pagination Pagination   `json:"pagination"`
	Extra      decode.Extra `json:"-"`
}

// CoreStatus is the review status of a game.
type CoreStatus uint8

const (
	CoreStatusDraft         CoreStatus = 1
	CoreStatusTest          CoreStatus = 2
	CoreStatusPendingReview CoreStatus = 3
	CoreStatusRejected      CoreStatus = 4
	CoreStatusApproved      CoreStatus = 5
	CoreStatusLive          CoreStatus = 6
)

// Known implements decode.Enum.
func (s CoreStatus) Known() bool {
	return s >= CoreStatusDraft && s <= CoreStatusLive
}

// CoreAPIStatus is the API visibility of a game.
type CoreAPIStatus uint8

const (
	CoreAPIStatusPrivate CoreAPIStatus = 1
	CoreAPIStatusPublic  CoreAPIStatus = 2
)

// Known implements decode.Enum.
func (s CoreAPIStatus) Known() bool {
	return s == CoreAPIStatusPrivate || s == CoreAPIStatusPublic
}
