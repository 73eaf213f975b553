package pagination

import "fmt"

const (
	// MaxResults is the service-wide ceiling on records retrievable from a
	// single paginated query.
	MaxResults = 10000

	// DefaultPageSize is the largest page size the API accepts.
	DefaultPageSize = 50
)

// Descriptor is the pagination block the server returns with every page.
type Descriptor struct {
	Index       int `json:"index"`
	PageSize    int `json:"pageSize"`
	ResultCount int `json:"resultCount"`
	TotalCount  int `json:"totalCount"`
}

// String implements fmt.Stringer.
func (d Descriptor) String() string {
	return fmt.Sprintf("index=%d pageSize=%d resultCount=%d totalCount=%d",
		d.Index, d.PageSize, d.ResultCount, d.TotalCount)
}

// Cursor is a resumable position in a paginated query.
type Cursor struct {
	// Offset is the index of the next record not yet handed to the caller.
	Offset int `json:"offset"`

	// Descriptor is the last descriptor received, nil before the first page.
	Descriptor *Descriptor `json:"descriptor,omitempty"`
}
