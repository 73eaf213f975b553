// Package types mirrors the CurseForge v1 API schema.
//
// Record structs carry `json` tags for the remote camelCase names and an
// Extra field that pkg/decode fills with unknown members in lenient mode.
// Enumerations are uint8 based and implement decode.Enum; in lenient mode an
// unknown value decodes to decode.UnknownVariant.
//
// Request parameter structs carry `url` tags for github.com/google/go-querystring;
// request bodies carry `json` tags.
package types
