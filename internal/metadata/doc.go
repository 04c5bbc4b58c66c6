// Package metadata reads per-file tag metadata for the rename pipeline.
//
// A Source turns a file path into a format.Record, the optional-valued
// lookup the template engine renders against:
//
//	source := metadata.NewID3Source()
//	rec, err := source.ReadFile("07 roygbiv.mp3")
//	if err != nil {
//	    // *metadata.ReadError: the file could not be read or parsed
//	}
//
// ID3Source is backed by the id3v2 library and understands the frames
// this tool cares about: TPE1 (artist), TALB (album), TIT2 (title),
// TRCK (track number) and TYER/TDRC (year). Absent or unparseable
// frames read as absent values, which is what makes a template render
// fail with a missing-field error rather than producing a half-named
// file.
//
// StaticRecord is an in-memory record for tests and for the TUI's
// sample preview.
package metadata
