package checkpoint

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"
)

// positional query parameters never take part in a key.
var positional = map[string]bool{
	"index":    true,
	"pageSize": true,
}

// Key identifies one paginated query.
type Key struct {
	// Endpoint is the route template (e.g., "mods/{modId}/files")
	Endpoint string

	// PathParams are the path parameters (e.g., {"modId": "238222"})
	PathParams map[string]string

	// QueryParams are the query parameters of the query.
	QueryParams url.Values
}

// NewKey builds a key from a route template and a params struct with url
// tags, such as types.SearchModsParams.
func NewKey(endpoint string, pathParams map[string]string, params any) (Key, error) {
	key := Key{Endpoint: endpoint, PathParams: pathParams}
	if params == nil {
		return key, nil
	}

	values, err := query.Values(params)
	if err != nil {
		return Key{}, fmt.Errorf("encode checkpoint key: %w", err)
	}
	key.QueryParams = values
	return key, nil
}

// String generates a deterministic key string.
// Format: cf:endpoint:param1=val1:query1=val1
//
// Example:
//
//	cf:mods/{modId}/files:modId=238222:gameVersion=1.20.1
func (k Key) String() string {
	parts := []string{"cf"}

	if endpoint := strings.Trim(k.Endpoint, "/"); endpoint != "" {
		parts = append(parts, endpoint)
	}

	pathKeys := make([]string, 0, len(k.PathParams))
	for key := range k.PathParams {
		pathKeys = append(pathKeys, key)
	}
	sort.Strings(pathKeys)
	for _, key := range pathKeys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, k.PathParams[key]))
	}

	queryKeys := make([]string, 0, len(k.QueryParams))
	for key := range k.QueryParams {
		if !positional[key] {
			queryKeys = append(queryKeys, key)
		}
	}
	sort.Strings(queryKeys)
	for _, key := range queryKeys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, strings.Join(k.QueryParams[key], ",")))
	}

	return strings.Join(parts, ":")
}
