package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the client.
var (
	// ErrBadBaseURL is returned by New when the base URL cannot be used to
	// resolve endpoint paths.
	ErrBadBaseURL = errors.New("bad base url")

	// ErrNotFound matches a 404 APIError and lookups that returned no record.
	ErrNotFound = errors.New("not found")
)

// ErrorClass represents a classification of request failures.
type ErrorClass string

const (
	// ErrorClassNetwork represents transport failures (connection, timeout, body read).
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassClient represents 4xx and other non-success, non-5xx statuses.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassDecode represents a success response that did not match the schema.
	ErrorClassDecode ErrorClass = "decode"
)

// APIError is returned for every failed request.
type APIError struct {
	Class ErrorClass

	// Endpoint is the route template, e.g. /mods/{modId}/files.
	Endpoint string

	// StatusCode is 0 for network errors.
	StatusCode int

	// Body is the raw response body, if one was read.
	Body []byte

	// Err is the transport error or the *decode.Error.
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("curseforge %s error", e.Class)
	if e.StatusCode != 0 && e.Class != ErrorClassDecode {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Endpoint != "" {
		msg += " on " + e.Endpoint
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is reports a 404 as ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// classifyStatus categorizes a non-success HTTP status.
func classifyStatus(status int) ErrorClass {
	if status >= 500 {
		return ErrorClassServer
	}
	return ErrorClassClient
}
