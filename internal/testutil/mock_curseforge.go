// Package testutil provides testing utilities for the CurseForge client.
package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// APIPrefix is the path the mock serves the API under, matching the
// public base URL layout.
const APIPrefix = "/v1/"

// MockResponse defines the behavior for a mock endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// Request is a request the mock received.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

// PageOptions tweak the pagination descriptors served by SetPages.
type PageOptions struct {
	// TotalCount overrides the reported total (default: number of records).
	TotalCount int

	// ResultCountDelta is added to the reported resultCount.
	ResultCountDelta int

	// IndexShift is added to the reported index.
	IndexShift int

	// Limit rejects index+pageSize beyond it with 400 (default 10000).
	Limit int
}

// MockCurseForge is a configurable mock CurseForge API server for testing.
type MockCurseForge struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc
	requests []Request
}

// NewMockCurseForge creates a new mock CurseForge server.
func NewMockCurseForge() *MockCurseForge {
	mock := &MockCurseForge{
		handlers: make(map[string]http.HandlerFunc),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		mock.mu.Lock()
		mock.requests = append(mock.requests, Request{
			Method: r.Method,
			Path:   strings.TrimPrefix(r.URL.Path, APIPrefix),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		handler, exists := mock.handlers[r.Method+" "+r.URL.Path]
		if !exists {
			handler, exists = mock.handlers[r.URL.Path]
		}
		mock.mu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if exists {
			handler(w, r)
			return
		}
		writeError(w, http.StatusNotFound, "Not found")
	}))

	return mock
}

// URL returns the API base URL of the mock, ending in /v1/.
func (m *MockCurseForge) URL() string {
	return m.server.URL + APIPrefix
}

// Close shuts down the mock server.
func (m *MockCurseForge) Close() {
	m.server.Close()
}

// Reset clears the request log.
func (m *MockCurseForge) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
}

// SetHandler sets a custom handler for a path relative to the API base,
// e.g. "mods/search". Prefix the path with a method ("POST mods") to
// match only that method.
func (m *MockCurseForge) SetHandler(path string, handler http.HandlerFunc) {
	key := APIPrefix + path
	if method, rest, ok := strings.Cut(path, " "); ok {
		key = method + " " + APIPrefix + rest
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[key] = handler
}

// SetResponse configures a fixed response for a path.
func (m *MockCurseForge) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetData serves {"data": data} with 200 OK.
func (m *MockCurseForge) SetData(path, data string) {
	m.SetResponse(path, MockResponse{StatusCode: http.StatusOK, Body: `{"data":` + data + `}`})
}

// SetPages serves records as a paginated collection, honouring the index
// and pageSize query parameters the way the API does.
func (m *MockCurseForge) SetPages(path string, records []string, opts PageOptions) {
	if opts.TotalCount == 0 {
		opts.TotalCount = len(records)
	}
	if opts.Limit == 0 {
		opts.Limit = 10000
	}

	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		index := queryInt(q, "index", 0)
		pageSize := queryInt(q, "pageSize", 50)

		if index < 0 || pageSize < 1 || pageSize > 50 {
			writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}
		if index+pageSize > opts.Limit {
			writeError(w, http.StatusBadRequest, "Requested index + pageSize exceeds limit")
			return
		}

		var page []string
		if index < len(records) {
			page = records[index:min(index+pageSize, len(records))]
		}

		fmt.Fprintf(w, `{"data":[%s],"pagination":{"index":%d,"pageSize":%d,"resultCount":%d,"totalCount":%d}}`,
			strings.Join(page, ","), index+opts.IndexShift, pageSize, len(page)+opts.ResultCountDelta, opts.TotalCount)
	})
}

// Requests returns a copy of the request log.
func (m *MockCurseForge) Requests() []Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Request(nil), m.requests...)
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockCurseForge) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

// LastRequest returns the most recent request.
func (m *MockCurseForge) LastRequest() Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.requests) == 0 {
		return Request{}
	}
	return m.requests[len(m.requests)-1]
}

func queryInt(q url.Values, key string, def int) int {
	v := q.Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"errorCode":%d,"errorMessage":%q}`, status, message)
}

// NewErrorResponse creates a CurseForge style error response.
func NewErrorResponse(status int) MockResponse {
	return MockResponse{
		StatusCode: status,
		Body:       fmt.Sprintf(`{"errorCode":%d,"errorMessage":%q}`, status, http.StatusText(status)),
	}
}
