package types

import (
	"time"

	"github.com/Sternrassler/curseforge-client/pkg/decode"
)

// Mod is a CurseForge project (mod, modpack, resource pack, ...).
type Mod struct {
	ID                   int          `json:"id"`
	GameID               int          `json:"gameId"`
	Name                 string       `json:"name"`
	Slug                 string       `json:"slug"`
	Links                ModLinks     `json:"links"`
	Summary              string       `json:"summary"`
	Status               ModStatus    `json:"status"`
	DownloadCount        float64      `json:"downloadCount"`
	IsFeatured           bool         `json:"isFeatured"`
	PrimaryCategoryID    int          `json:"primaryCategoryId"`
	Categories           []Category   `json:"categories"`
	ClassID              *int         `json:"classId"`
	Authors              []ModAuthor  `json:"authors"`
	Logo                 *ModAsset    `json:"logo"`
	Screenshots          []ModAsset   `json:"screenshots"`
	MainFileID           int          `json:"mainFileId"`
	LatestFiles          []File       `json:"latestFiles"`
	LatestFilesIndexes   []FileIndex  `json:"latestFilesIndexes"`
	DateCreated          time.Time    `json:"dateCreated"`
	DateModified         time.Time    `json:"dateModified"`
	DateReleased         time.Time    `json:"dateReleased"`
	AllowModDistribution *bool        `json:"allowModDistribution"`
	GamePopularityRank   int          `json:"gamePopularityRank"`
	IsAvailable          bool         `json:"isAvailable"`
	ThumbsUpCount        int          `json:"thumbsUpCount,omitempty"`
	Extra                decode.Extra `json:"-"`
}

// ModLinks holds the external links of a mod. The API sends "" for links
// that are not set.
type ModLinks struct {
	WebsiteURL string       `json:"websiteUrl"`
	WikiURL    *string      `json:"wikiUrl" decode:"emptynull"`
	IssuesURL  *string      `json:"issuesUrl" decode:"emptynull"`
	SourceURL  *string      `json:"sourceUrl" decode:"emptynull"`
	Extra      decode.Extra `json:"-"`
}

// ModAuthor is a member of a mod's team.
type ModAuthor struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	URL   string       `json:"url"`
	Extra decode.Extra `json:"-"`
}

// ModAsset is a logo or screenshot.
type ModAsset struct {
	ID           int          `json:"id"`
	ModID        int          `json:"modId"`
	Title        string       `json:"title"`
	Description  *string      `json:"description" decode:"emptynull"`
	ThumbnailURL string       `json:"thumbnailUrl"`
	URL          string       `json:"url"`
	Extra        decode.Extra `json:"-"`
}

// FeaturedMods is the response of the featured mods endpoint.
type FeaturedMods struct {
	Featured        []Mod        `json:"featured"`
	Popular         []Mod        `json:"popular"`
	RecentlyUpdated []Mod        `json:"recentlyUpdated"`
	Extra           decode.Extra `json:"-"`
}

// ModStatus is the moderation status of a mod.
type ModStatus uint8

const (
	ModStatusNew             ModStatus = 1
	ModStatusChangesRequired ModStatus = 2
	ModStatusUnderSoftReview ModStatus = 3
	ModStatusApproved        ModStatus = 4
	ModStatusRejected        ModStatus = 5
	ModStatusChangesMade     ModStatus = 6
	ModStatusInactive        ModStatus = 7
	ModStatusAbandoned       ModStatus = 8
	ModStatusDeleted         ModStatus = 9
	ModStatusUnderReview     ModStatus = 10
)

// Known implements decode.Enum.
func (s ModStatus) Known() bool {
	return s >= ModStatusNew && s <= ModStatusUnderReview
}

// ModLoaderType identifies a mod loader. ModLoaderAny is a valid value.
type ModLoaderType uint8

const (
	ModLoaderAny        ModLoaderType = 0
	ModLoaderForge      ModLoaderType = 1
	ModLoaderCauldron   ModLoaderType = 2
	ModLoaderLiteLoader ModLoaderType = 3
	ModLoaderFabric     ModLoaderType = 4
	ModLoaderQuilt      ModLoaderType = 5
	ModLoaderNeoForge   ModLoaderType = 6
)

// Known implements decode.Enum.
func (t ModLoaderType) Known() bool {
	return t <= ModLoaderNeoForge
}

var modLoaderNames = map[string]ModLoaderType{
	"any":        ModLoaderAny,
	"forge":      ModLoaderForge,
	"cauldron":   ModLoaderCauldron,
	"liteloader": ModLoaderLiteLoader,
	"fabric":     ModLoaderFabric,
	"quilt":      ModLoaderQuilt,
	"neoforge":   ModLoaderNeoForge,
}

// ParseModLoaderType converts a loader name such as "fabric".
func ParseModLoaderType(s string) (ModLoaderType, bool) {
	t, ok := modLoaderNames[s]
	return t, ok
}
