package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Sternrassler/curseforge-client/pkg/types"
)

// Route templates, used as endpoint labels and checkpoint keys.
const (
	RouteGame             = "games/{gameId}"
	RouteGames            = "games"
	RouteGameVersions     = "games/{gameId}/versions"
	RouteGameVersionTypes = "games/{gameId}/version-types"
	RouteCategories       = "categories"
	RouteSearchMods       = "mods/search"
	RouteMod              = "mods/{modId}"
	RouteMods             = "mods"
	RouteFeaturedMods     = "mods/featured"
	RouteModDescription   = "mods/{modId}/description"
	RouteModFile          = "mods/{modId}/files/{fileId}"
	RouteModFiles         = "mods/{modId}/files"
	RouteFiles            = "mods/files"
	RouteFileChangelog    = "mods/{modId}/files/{fileId}/changelog"
	RouteFileDownloadURL  = "mods/{modId}/files/{fileId}/download-url"
)

func getData[T any](ctx context.Context, c *Client, route, path string, params any) (T, error) {
	resp, err := call[types.DataResponse[T]](ctx, c, request{
		method: http.MethodGet,
		route:  route,
		path:   path,
		query:  params,
	})
	return resp.Data, err
}

func postData[T any](ctx context.Context, c *Client, route string, body any) (T, error) {
	resp, err := call[types.DataResponse[T]](ctx, c, request{
		method: http.MethodPost,
		route:  route,
		path:   route,
		body:   body,
	})
	return resp.Data, err
}

func getPage[T any](ctx context.Context, c *Client, route, path string, params any) (types.PageResponse[T], error) {
	return call[types.PageResponse[T]](ctx, c, request{
		method: http.MethodGet,
		route:  route,
		path:   path,
		query:  params,
	})
}

// Game returns a single game.
func (c *Client) Game(ctx context.Context, gameID int) (types.Game, error) {
	return getData[types.Game](ctx, c, RouteGame, fmt.Sprintf("games/%d", gameID), nil)
}

// Games returns one page of the games available to the API key.
func (c *Client) Games(ctx context.Context, params types.GamesParams) (types.PageResponse[types.Game], error) {
	return getPage[types.Game](ctx, c, RouteGames, RouteGames, params)
}

// GameVersions returns the versions of a game grouped by version type.
func (c *Client) GameVersions(ctx context.Context, gameID int) ([]types.GameVersions, error) {
	return getData[[]types.GameVersions](ctx, c, RouteGameVersions, fmt.Sprintf("games/%d/versions", gameID), nil)
}

// GameVersionTypes returns the version types of a game.
func (c *Client) GameVersionTypes(ctx context.Context, gameID int) ([]types.GameVersionType, error) {
	return getData[[]types.GameVersionType](ctx, c, RouteGameVersionTypes, fmt.Sprintf("games/%d/version-types", gameID), nil)
}

// Categories returns the categories of a game.
func (c *Client) Categories(ctx context.Context, params types.CategoriesParams) ([]types.Category, error) {
	return getData[[]types.Category](ctx, c, RouteCategories, RouteCategories, params)
}

// SearchMods returns one page of mod search results.
func (c *Client) SearchMods(ctx context.Context, params types.SearchModsParams) (types.PageResponse[types.Mod], error) {
	return getPage[types.Mod](ctx, c, RouteSearchMods, RouteSearchMods, params)
}

// Mod returns a single mod.
func (c *Client) Mod(ctx context.Context, modID int) (types.Mod, error) {
	return getData[types.Mod](ctx, c, RouteMod, fmt.Sprintf("mods/%d", modID), nil)
}

// Mods returns several mods by id.
func (c *Client) Mods(ctx context.Context, modIDs []int) ([]types.Mod, error) {
	return postData[[]types.Mod](ctx, c, RouteMods, types.ModsBody{ModIDs: modIDs})
}

// FeaturedMods returns the featured, popular and recently updated mods of a game.
func (c *Client) FeaturedMods(ctx context.Context, body types.FeaturedModsBody) (types.FeaturedMods, error) {
	if body.ExcludedModIDs == nil {
		body.ExcludedModIDs = []int{}
	}
	return postData[types.FeaturedMods](ctx, c, RouteFeaturedMods, body)
}

// ModDescription returns the HTML description of a mod.
func (c *Client) ModDescription(ctx context.Context, modID int) (string, error) {
	return getData[string](ctx, c, RouteModDescription, fmt.Sprintf("mods/%d/description", modID), nil)
}

// ModFile returns a single file of a mod.
func (c *Client) ModFile(ctx context.Context, modID, fileID int) (types.File, error) {
	return getData[types.File](ctx, c, RouteModFile, fmt.Sprintf("mods/%d/files/%d", modID, fileID), nil)
}

// ModFiles returns one page of the files of a mod.
func (c *Client) ModFiles(ctx context.Context, modID int, params types.ModFilesParams) (types.PageResponse[types.File], error) {
	return getPage[types.File](ctx, c, RouteModFiles, fmt.Sprintf("mods/%d/files", modID), params)
}

// Files returns several files by id, in the order the server lists them.
func (c *Client) Files(ctx context.Context, fileIDs []int) ([]types.File, error) {
	return postData[[]types.File](ctx, c, RouteFiles, types.FilesBody{FileIDs: fileIDs})
}

// FileByID returns a file without knowing its mod. It returns an error
// matching ErrNotFound when the server has no such file.
func (c *Client) FileByID(ctx context.Context, fileID int) (types.File, error) {
	files, err := c.Files(ctx, []int{fileID})
	if err != nil {
		return types.File{}, err
	}
	if len(files) == 0 {
		return types.File{}, fmt.Errorf("file %d: %w", fileID, ErrNotFound)
	}
	return files[0], nil
}

// FileChangelog returns the HTML changelog of a file.
func (c *Client) FileChangelog(ctx context.Context, modID, fileID int) (string, error) {
	return getData[string](ctx, c, RouteFileChangelog, fmt.Sprintf("mods/%d/files/%d/changelog", modID, fileID), nil)
}

// FileDownloadURL returns the CDN download URL of a file.
func (c *Client) FileDownloadURL(ctx context.Context, modID, fileID int) (string, error) {
	return getData[string](ctx, c, RouteFileDownloadURL, fmt.Sprintf("mods/%d/files/%d/download-url", modID, fileID), nil)
}
