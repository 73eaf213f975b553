package types

// GamesParams are the query parameters of GET /games.
type GamesParams struct {
	Index    int `url:"index,omitempty"`
	PageSize int `url:"pageSize,omitempty"`
}

// CategoriesParams are the query parameters of GET /categories.
type CategoriesParams struct {
	GameID      int  `url:"gameId"`
	ClassID     *int `url:"classId,omitempty"`
	ClassesOnly bool `url:"classesOnly,omitempty"`
}

// SortField orders mod search results.
type SortField uint8

const (
	SortFeatured       SortField = 1
	SortPopularity     SortField = 2
	SortLastUpdated    SortField = 3
	SortName           SortField = 4
	SortAuthor         SortField = 5
	SortTotalDownloads SortField = 6
	SortCategory       SortField = 7
	SortGameVersion    SortField = 8
)

var sortFieldNames = map[string]SortField{
	"featured":        SortFeatured,
	"popularity":      SortPopularity,
	"last-updated":    SortLastUpdated,
	"name":            SortName,
	"author":          SortAuthor,
	"total-downloads": SortTotalDownloads,
	"category":        SortCategory,
	"game-version":    SortGameVersion,
}

// ParseSortField converts a CLI sort name such as "popularity".
func ParseSortField(s string) (SortField, bool) {
	f, ok := sortFieldNames[s]
	return f, ok
}

// SortOrder is the direction of a sorted search.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// SearchModsParams are the query parameters of GET /mods/search.
type SearchModsParams struct {
	GameID            int            `url:"gameId"`
	ClassID           *int           `url:"classId,omitempty"`
	CategoryID        *int           `url:"categoryId,omitempty"`
	GameVersion       string         `url:"gameVersion,omitempty"`
	SearchFilter      string         `url:"searchFilter,omitempty"`
	SortField         SortField      `url:"sortField,omitempty"`
	SortOrder         SortOrder      `url:"sortOrder,omitempty"`
	ModLoaderType     *ModLoaderType `url:"modLoaderType,omitempty"`
	GameVersionTypeID *int           `url:"gameVersionTypeId,omitempty"`
	Slug              string         `url:"slug,omitempty"`
	Index             int            `url:"index,omitempty"`
	PageSize          int            `url:"pageSize,omitempty"`
}

// ModFilesParams are the query parameters of GET /mods/{modId}/files.
type ModFilesParams struct {
	GameVersion       string         `url:"gameVersion,omitempty"`
	ModLoaderType     *ModLoaderType `url:"modLoaderType,omitempty"`
	GameVersionTypeID *int           `url:"gameVersionTypeId,omitempty"`
	Index             int            `url:"index,omitempty"`
	PageSize          int            `url:"pageSize,omitempty"`
}

// ModsBody is the request body of POST /mods.
type ModsBody struct {
	ModIDs []int `json:"modIds"`
}

// FilesBody is the request body of POST /mods/files.
type FilesBody struct {
	FileIDs []int `json:"fileIds"`
}

// FeaturedModsBody is the request body of POST /mods/featured.
type FeaturedModsBody struct {
	GameID            int   `json:"gameId"`
	ExcludedModIDs    []int `json:"excludedModIds"`
	GameVersionTypeID *int  `json:"gameVersionTypeId,omitempty"`
}
