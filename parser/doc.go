// Package parser reads the two MovingAI benchmark text formats.
//
// A .map file carries a small `key value` header followed by the map body:
//
//	type octile
//	height 4
//	width 4
//	map
//	....
//	.@@.
//	.@@.
//	....
//
// Every body line contributes its bytes, row-major, to one flat cell
// sequence; grid.NewMap performs the single dimension-consistency check, so
// a body that disagrees with the declared width×height fails construction
// rather than being truncated or padded.
//
// A .scen file is a `version` line followed by tab-separated records:
//
//	bucket  map-file  map-width  map-height  start-x  start-y  goal-x  goal-y  optimal-length
//
// Records come back as plain SceneRecord data. The parser does not
// cross-check a record's declared dimensions against any live map; that is
// the caller's concern.
//
// Errors:
//
//   - ErrMalformedHeader: a height/width header value is not an integer.
//   - ErrMissingMapBody: the contents end before a `map` marker line.
//   - ErrMalformedRecord: a scenario line has the wrong field count or a
//     non-numeric field (wrapped with the offending line number).
package parser
