package types

import (
	"time"

	"github.com/Sternrassler/curseforge-client/pkg/decode"
)

// File is one uploaded file of a mod.
type File struct {
	ID                   int                   `json:"id"`
	GameID               int                   `json:"gameId"`
	ModID                int                   `json:"modId"`
	IsAvailable          bool                  `json:"isAvailable"`
	DisplayName          string                `json:"displayName"`
	FileName             string                `json:"fileName"`
	ReleaseType          FileReleaseType       `json:"releaseType"`
	FileStatus           FileStatus            `json:"fileStatus"`
	Hashes               []FileHash            `json:"hashes"`
	FileDate             time.Time             `json:"fileDate"`
	FileLength           int64                 `json:"fileLength"`
	DownloadCount        int64                 `json:"downloadCount"`
	DownloadURL          *string               `json:"downloadUrl" decode:"emptynull"`
	GameVersions         []string              `json:"gameVersions"`
	SortableGameVersions []SortableGameVersion `json:"sortableGameVersions"`
	Dependencies         []FileDependency      `json:"dependencies"`
	ExposeAsAlternative  *bool                 `json:"exposeAsAlternative"`
	ParentProjectFileID  *int                  `json:"parentProjectFileId"`
	AlternateFileID      *int                  `json:"alternateFileId"`
	IsServerPack         *bool                 `json:"isServerPack"`
	ServerPackFileID     *int                  `json:"serverPackFileId"`
	IsEarlyAccessContent *bool                 `json:"isEarlyAccessContent"`
	EarlyAccessEndDate   decode.NullTime       `json:"earlyAccessEndDate"`
	FileFingerprint      int64                 `json:"fileFingerprint"`
	Modules              []FileModule          `json:"modules"`
	Extra                decode.Extra          `json:"-"`
}

// FileIndex is the short form of a file listed on a mod.
type FileIndex struct {
	GameVersion       string          `json:"gameVersion"`
	FileID            int             `json:"fileId"`
	Filename          string          `json:"filename"`
	ReleaseType       FileReleaseType `json:"releaseType"`
	GameVersionTypeID *int            `json:"gameVersionTypeId"`
	ModLoader         *ModLoaderType  `json:"modLoader"`
	Extra             decode.Extra    `json:"-"`
}

// FileHash is a checksum of a file.
type FileHash struct {
	Value string        `json:"value"`
	Algo  HashAlgorithm `json:"algo"`
	Extra decode.Extra  `json:"-"`
}

// SortableGameVersion is a game version a file supports. The API sends
// the null timestamp sentinel for versions without a release date.
type SortableGameVersion struct {
	GameVersionName        string          `json:"gameVersionName"`
	GameVersionPadded      *string         `json:"gameVersionPadded" decode:"emptynull"`
	GameVersion            *string         `json:"gameVersion" decode:"emptynull"`
	GameVersionReleaseDate decode.NullTime `json:"gameVersionReleaseDate"`
	GameVersionTypeID      *int            `json:"gameVersionTypeId"`
	Extra                  decode.Extra    `json:"-"`
}

// FileDependency links a file to another mod.
type FileDependency struct {
	ModID        int              `json:"modId"`
	RelationType FileRelationType `json:"relationType"`
	Extra        decode.Extra     `json:"-"`
}

// FileModule is a top-level entry of a file's archive.
type FileModule struct {
	Name        string       `json:"name"`
	Fingerprint int64        `json:"fingerprint"`
	Extra       decode.Extra `json:"-"`
}

// FileReleaseType is the release channel of a file.
type FileReleaseType uint8

const (
	FileReleaseTypeRelease FileReleaseType = 1
	FileReleaseTypeBeta    FileReleaseType = 2
	FileReleaseTypeAlpha   FileReleaseType = 3
)

// Known implements decode.Enum.
func (t FileReleaseType) Known() bool {
	return t >= FileReleaseTypeRelease && t <= FileReleaseTypeAlpha
}

// String implements fmt.Stringer.
func (t FileReleaseType) String() string {
	switch t {
	case FileReleaseTypeRelease:
		return "release"
	case FileReleaseTypeBeta:
		return "beta"
	case FileReleaseTypeAlpha:
		return "alpha"
	case decode.UnknownVariant:
		return "unknown"
	default:
		return "invalid"
	}
}

// FileStatus is the processing status of a file.
type FileStatus uint8

const (
	FileStatusProcessing         FileStatus = 1
	FileStatusChangesRequired    FileStatus = 2
	FileStatusUnderReview        FileStatus = 3
	FileStatusApproved           FileStatus = 4
	FileStatusRejected           FileStatus = 5
	FileStatusMalwareDetected    FileStatus = 6
	FileStatusDeleted            FileStatus = 7
	FileStatusArchived           FileStatus = 8
	FileStatusTesting            FileStatus = 9
	FileStatusReleased           FileStatus = 10
	FileStatusReadyForReview     FileStatus = 11
	FileStatusDeprecated         FileStatus = 12
	FileStatusBaking             FileStatus = 13
	FileStatusAwaitingPublishing FileStatus = 14
	FileStatusFailedPublishing   FileStatus = 15
)

// Known implements decode.Enum.
func (s FileStatus) Known() bool {
	return s >= FileStatusProcessing && s <= FileStatusFailedPublishing
}

// HashAlgorithm is the algorithm of a FileHash.
type HashAlgorithm uint8

const (
	HashAlgorithmSha1 HashAlgorithm = 1
	HashAlgorithmMd5  HashAlgorithm = 2
)

// Known implements decode.Enum.
func (a HashAlgorithm) Known() bool {
	return a == HashAlgorithmSha1 || a == HashAlgorithmMd5
}

// FileRelationType is the kind of a FileDependency.
type FileRelationType uint8

const (
	FileRelationEmbeddedLibrary    FileRelationType = 1
	FileRelationOptionalDependency FileRelationType = 2
	FileRelationRequiredDependency FileRelationType = 3
	FileRelationTool               FileRelationType = 4
	FileRelationIncompatible       FileRelationType = 5
	FileRelationInclude            FileRelationType = 6
)

// Known implements decode.Enum.
func (t FileRelationType) Known() bool {
	return t >= FileRelationEmbeddedLibrary && t <= FileRelationInclude
}
