// Package decode converts CurseForge response bodies into typed records
// under a configurable compatibility mode.
//
// The remote schema drifts between releases of this client, so the decoder
// supports three modes that differ only in how they treat data the local
// record shapes do not describe:
//
//   - ModeStrict: unknown object members and unknown enumeration values are
//     errors. Intended for tests that verify the record shapes are complete.
//   - ModeLenient: unknown members are captured into the record's Extra
//     field, unknown enumeration values decode to UnknownVariant.
//   - ModeIgnore: unknown members are dropped, unknown enumeration values
//     are still errors. This is the historical default.
//
// Every failure is reported as an *Error carrying the raw payload and the
// exact path of the offending member:
//
//	data[3].latestFiles[0].hashes[1].algo
//
// # Record shapes
//
// Records are plain structs with json tags. The decoder honours:
//
//   - `json:"name"` and `json:"name,omitempty"` (omitempty marks the member
//     optional; pointers, NullTime and json.RawMessage are always optional)
//   - `decode:"emptynull"` on *string fields, decoding "" to nil
//   - a field of type Extra, which receives unknown members in ModeLenient
//   - types implementing Enum, which are checked against their known set
//
// # Basic Usage
//
//	dec, err := decode.New(decode.ModeLenient)
//	if err != nil {
//		return err
//	}
//
//	var resp types.PageResponse[types.Mod]
//	if err := dec.Decode(body, &resp); err != nil {
//		var de *decode.Error
//		if errors.As(err, &de) {
//			log.Error().Str("path", de.Path.String()).Msg("schema drift")
//		}
//		return err
//	}
package decode
