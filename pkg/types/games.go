package types

import (
	"time"

	"github.com/Sternrassler/curseforge-client/pkg/decode"
)

// Game is a game supported by CurseForge.
type Game struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	DateModified time.Time     `json:"dateModified"`
	Assets       GameAssets    `json:"assets"`
	Status       CoreStatus    `json:"status"`
	APIStatus    CoreAPIStatus `json:"apiStatus"`
	Extra        decode.Extra  `json:"-"`
}

// GameAssets holds the artwork URLs of a game.
type GameAssets struct {
	IconURL  *string      `json:"iconUrl" decode:"emptynull"`
	TileURL  *string      `json:"tileUrl" decode:"emptynull"`
	CoverURL *string      `json:"coverUrl" decode:"emptynull"`
	Extra    decode.Extra `json:"-"`
}

// GameVersions lists the versions of one version type.
type GameVersions struct {
	Type     int          `json:"type"`
	Versions []string     `json:"versions"`
	Extra    decode.Extra `json:"-"`
}

// GameVersionType is a version family of a game, e.g. a Minecraft major line.
type GameVersionType struct {
	ID     int          `json:"id"`
	GameID int          `json:"gameId"`
	Name   string       `json:"name"`
	Slug   string       `json:"slug"`
	Extra  decode.Extra `json:"-"`
}

// Category is a mod category or class.
type Category struct {
	ID               int          `json:"id"`
	GameID           int          `json:"gameId"`
	Name             string       `json:"name"`
	Slug             *string      `json:"slug"`
	URL              *string      `json:"url"`
	IconURL          string       `json:"iconUrl"`
	DateModified     time.Time    `json:"dateModified"`
	IsClass          *bool        `json:"isClass"`
	ClassID          *int         `json:"classId"`
	ParentCategoryID *int         `json:"parentCategoryId"`
	DisplayIndex     *int         `json:"displayIndex"`
	Extra            decode.Extra `json:"-"`
}
