package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   ErrorClass
	}{
		{name: "bad request", statusCode: 400, expected: ErrorClassClient},
		{name: "forbidden", statusCode: 403, expected: ErrorClassClient},
		{name: "not found", statusCode: 404, expected: ErrorClassClient},
		{name: "redirect", statusCode: 302, expected: ErrorClassClient},
		{name: "internal server error", statusCode: 500, expected: ErrorClassServer},
		{name: "service unavailable", statusCode: 503, expected: ErrorClassServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyStatus(tt.statusCode); got != tt.expected {
				t.Errorf("classifyStatus(%d) = %q, want %q", tt.statusCode, got, tt.expected)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		apiError *APIError
		expected string
	}{
		{
			name: "network error",
			apiError: &APIError{
				Class:    ErrorClassNetwork,
				Endpoint: "/mods/search",
				Err:      errors.New("connection refused"),
			},
			expected: "curseforge network error on /mods/search: connection refused",
		},
		{
			name: "status error",
			apiError: &APIError{
				Class:      ErrorClassClient,
				Endpoint:   "/mods/{modId}",
				StatusCode: 404,
				Body:       []byte(`{"errorCode":404}`),
			},
			expected: "curseforge client error (status 404) on /mods/{modId}",
		},
		{
			name: "decode error",
			apiError: &APIError{
				Class:      ErrorClassDecode,
				Endpoint:   "/games",
				StatusCode: 200,
				Err:        errors.New("decode data[0].id: missing required field"),
			},
			expected: "curseforge decode error on /games: decode data[0].id: missing required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.apiError.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	apiError := &APIError{
		Class: ErrorClassNetwork,
		Err:   wrappedErr,
	}

	if unwrapped := apiError.Unwrap(); unwrapped != wrappedErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, wrappedErr)
	}

	if !errors.Is(fmt.Errorf("outer: %w", apiError), wrappedErr) {
		t.Error("errors.Is should work with wrapped error")
	}
}

func TestAPIError_IsNotFound(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   bool
	}{
		{name: "404", statusCode: 404, expected: true},
		{name: "403", statusCode: 403, expected: false},
		{name: "500", statusCode: 500, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := error(&APIError{Class: classifyStatus(tt.statusCode), StatusCode: tt.statusCode})
			if got := errors.Is(err, ErrNotFound); got != tt.expected {
				t.Errorf("errors.Is(%d, ErrNotFound) = %v, want %v", tt.statusCode, got, tt.expected)
			}
		})
	}
}
