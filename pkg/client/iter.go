package client

import (
	"context"

	"github.com/Sternrassler/curseforge-client/pkg/pagination"
	"github.com/Sternrassler/curseforge-client/pkg/types"
)

// modFilesQuery is the fixed part of a mod files query.
type modFilesQuery struct {
	modID  int
	params types.ModFilesParams
}

// GamesIter returns a lazy iterator over all games. params.Index is the
// starting offset and params.PageSize, if set, the page size.
func (c *Client) GamesIter(params types.GamesParams) *pagination.Engine[types.Game] {
	return pagination.Iterate("/"+RouteGames, c.gamesPage, params, params.Index, c.paginationConfig(params.PageSize))
}

// SearchModsIter returns a lazy iterator over all search results, capped at
// the API's result limit.
func (c *Client) SearchModsIter(params types.SearchModsParams) *pagination.Engine[types.Mod] {
	return pagination.Iterate("/"+RouteSearchMods, c.searchModsPage, params, params.Index, c.paginationConfig(params.PageSize))
}

// ModFilesIter returns a lazy iterator over all files of a mod.
func (c *Client) ModFilesIter(modID int, params types.ModFilesParams) *pagination.Engine[types.File] {
	q := modFilesQuery{modID: modID, params: params}
	return pagination.Iterate("/"+RouteModFiles, c.modFilesPage, q, params.Index, c.paginationConfig(params.PageSize))
}

func (c *Client) gamesPage(ctx context.Context, params types.GamesParams, offset, pageSize int) ([]types.Game, pagination.Descriptor, error) {
	params.Index, params.PageSize = offset, pageSize
	page, err := c.Games(ctx, params)
	if err != nil {
		return nil, pagination.Descriptor{}, err
	}
	return page.Data, page.Pagination, nil
}

func (c *Client) searchModsPage(ctx context.Context, params types.SearchModsParams, offset, pageSize int) ([]types.Mod, pagination.Descriptor, error) {
	params.Index, params.PageSize = offset, pageSize
	page, err := c.SearchMods(ctx, params)
	if err != nil {
		return nil, pagination.Descriptor{}, err
	}
	return page.Data, page.Pagination, nil
}

func (c *Client) modFilesPage(ctx context.Context, q modFilesQuery, offset, pageSize int) ([]types.File, pagination.Descriptor, error) {
	q.params.Index, q.params.PageSize = offset, pageSize
	page, err := c.ModFiles(ctx, q.modID, q.params)
	if err != nil {
		return nil, pagination.Descriptor{}, err
	}
	return page.Data, page.Pagination, nil
}
