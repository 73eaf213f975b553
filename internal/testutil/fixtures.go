package testutil

import "fmt"

// Records builds n fixtures with ids first, first+1, ...
func Records(n, first int, fixture func(id int) string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fixture(first + i)
	}
	return out
}

// GameJSON returns a complete game record.
func GameJSON(id int) string {
	return fmt.Sprintf(`{"id":%d,"name":"Game %d","slug":"game-%d","dateModified":"2023-04-20T18:14:56.17Z",`+
		`"assets":{"iconUrl":"https://media.forgecdn.net/%d/icon.png","tileUrl":"","coverUrl":null},"status":6,"apiStatus":2}`,
		id, id, id, id)
}

// ModJSON returns a complete mod record of game 432.
func ModJSON(id int) string {
	return fmt.Sprintf(`{"id":%d,"gameId":432,"name":"Mod %d","slug":"mod-%d",`+
		`"links":{"websiteUrl":"https://www.curseforge.com/minecraft/mc-mods/mod-%d","wikiUrl":"","issuesUrl":"","sourceUrl":""},`+
		`"summary":"Fixture mod","status":4,"downloadCount":1234.0,"isFeatured":false,"primaryCategoryId":423,`+
		`"categories":[],"classId":6,"authors":[{"id":1,"name":"author","url":"https://www.curseforge.com/members/author"}],`+
		`"logo":null,"screenshots":[],"mainFileId":%d,"latestFiles":[],"latestFilesIndexes":[],`+
		`"dateCreated":"2020-01-01T00:00:00Z","dateModified":"2023-01-01T00:00:00Z","dateReleased":"2023-01-01T00:00:00Z",`+
		`"allowModDistribution":true,"gamePopularityRank":%d,"isAvailable":true,"thumbsUpCount":0}`,
		id, id, id, id, id*10, id)
}

// FileJSON returns a complete file record.
func FileJSON(id, modID int) string {
	return fmt.Sprintf(`{"id":%d,"gameId":432,"modId":%d,"isAvailable":true,"displayName":"file-%d.jar","fileName":"file-%d.jar",`+
		`"releaseType":1,"fileStatus":4,"hashes":[{"value":"da39a3ee5e6b4b0d3255bfef95601890afd80709","algo":1}],`+
		`"fileDate":"2023-06-11T02:35:47.61Z","fileLength":1024,"downloadCount":10,"downloadUrl":"https://edge.forgecdn.net/files/%d/file-%d.jar",`+
		`"gameVersions":["1.20.1"],"sortableGameVersions":[{"gameVersionName":"1.20.1","gameVersionPadded":"0000000001.0000000020.0000000001",`+
		`"gameVersion":"1.20.1","gameVersionReleaseDate":"0001-01-01T00:00:00","gameVersionTypeId":75125}],`+
		`"dependencies":[],"alternateFileId":0,"isServerPack":false,"fileFingerprint":3125689875,"modules":[]}`,
		id, modID, id, id, id, id)
}
