//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrKind - the closed set of domain failures; handlers convert these to HTTP
// responses at a single boundary in web/responses.go
type ErrKind int

const (
	ErrBadCodepoint ErrKind = iota
	ErrNotInRange
	ErrBadEnumValue
	ErrBothCursors
	ErrCursorOutOfRange
	ErrPageOutOfRange
	ErrNoFilterSettings
	ErrBlockNameUnknown
	ErrRateLimited
	ErrLockError
	ErrInternal
)

// APIError - a domain error plus whatever detail the client should see; Detail
// carries e.g. the full list of unresolvable enum values or fuzzy suggestions
type APIError struct {
	Kind    ErrKind
	Message string
	Detail  []string
}

func (e *APIError) Error() string {
	if len(e.Detail) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Detail, ", "))
}

// Status - the HTTP status for this kind of failure
func (e *APIError) Status() int {
	switch e.Kind {
	case ErrBlockNameUnknown:
		return http.StatusNotFound
	case ErrRateLimited:
		return http.StatusTooManyRequests
	case ErrLockError:
		return http.StatusServiceUnavailable
	case ErrInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func NewAPIError(k ErrKind, msg string, detail ...string) *APIError {
	return &APIError{Kind: k, Message: msg, Detail: detail}
}
