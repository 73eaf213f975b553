package pagination

import (
	"errors"
	"fmt"
)

// Done is returned by Engine.Next when the sequence has no more records.
var Done = errors.New("no more items in iterator")

// ErrSeekFailed is returned when seeking an engine that has failed.
var ErrSeekFailed = errors.New("cannot seek a failed iterator")

// ViolationKind names the way a descriptor disagreed with its request.
type ViolationKind string

const (
	// ViolationOffsetMismatch means the descriptor index differs from the
	// requested offset.
	ViolationOffsetMismatch ViolationKind = "offset_mismatch"

	// ViolationCountMismatch means resultCount differs from the number of
	// records in the page.
	ViolationCountMismatch ViolationKind = "count_mismatch"
)

// ProtocolError reports a page whose descriptor contradicts the request
// that produced it.
type ProtocolError struct {
	Endpoint        string
	Kind            ViolationKind
	RequestedOffset int
	Descriptor      Descriptor
	Records         int
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	switch e.Kind {
	case ViolationOffsetMismatch:
		return fmt.Sprintf("pagination protocol violation on %s: requested offset %d, server reported index %d",
			e.Endpoint, e.RequestedOffset, e.Descriptor.Index)
	case ViolationCountMismatch:
		return fmt.Sprintf("pagination protocol violation on %s: server reported resultCount %d, page holds %d records",
			e.Endpoint, e.Descriptor.ResultCount, e.Records)
	default:
		return fmt.Sprintf("pagination protocol violation on %s: %s", e.Endpoint, e.Kind)
	}
}
