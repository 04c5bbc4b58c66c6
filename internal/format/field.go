package format

import "strconv"

// Field identifies one of the recognized metadata fields. The set is
// closed: templates cannot reference anything outside it.
type Field int

const (
	// FieldAlbum resolves to the record's album title.
	FieldAlbum Field = iota

	// FieldArtist resolves to the record's artist, verbatim.
	FieldArtist

	// FieldTitle resolves to the record's track title, verbatim.
	FieldTitle

	// FieldTrack resolves to the record's track number in decimal,
	// without zero-padding or a total-tracks suffix.
	FieldTrack

	// FieldYear resolves to the record's release year in decimal.
	FieldYear
)

// Record is the metadata lookup a Format is rendered against.
//
// Each accessor reports whether the underlying file carries a value for
// that field. A false second return is what makes Render fail with a
// MissingFieldError; implementations must not substitute defaults.
//
// The metadata package provides the real ID3-backed implementation as
// well as a literal StaticRecord for tests and previews.
type Record interface {
	// AlbumTitle returns the album title, not any larger album object.
	AlbumTitle() (string, bool)

	// Artist returns the track artist.
	Artist() (string, bool)

	// Title returns the track title.
	Title() (string, bool)

	// TrackNumber returns the track number within the album.
	TrackNumber() (int, bool)

	// Year returns the release year as a non-negative integer.
	Year() (int, bool)
}

// Key returns the lowercase name used to reference the field in a
// template, without the leading '%'.
func (f Field) Key() string {
	switch f {
	case FieldAlbum:
		return "album"
	case FieldArtist:
		return "artist"
	case FieldTitle:
		return "title"
	case FieldTrack:
		return "track"
	case FieldYear:
		return "year"
	default:
		return ""
	}
}

// String returns the display name used in error messages.
func (f Field) String() string {
	switch f {
	case FieldAlbum:
		return "Album"
	case FieldArtist:
		return "Artist"
	case FieldTitle:
		return "Title"
	case FieldTrack:
		return "Track"
	case FieldYear:
		return "Year"
	default:
		return ""
	}
}

// fieldFromKey maps a template key to its Field. Matching is
// case-sensitive: only the exact lowercase keys are recognized.
func fieldFromKey(key string) (Field, bool) {
	switch key {
	case "album":
		return FieldAlbum, true
	case "artist":
		return FieldArtist, true
	case "title":
		return FieldTitle, true
	case "track":
		return FieldTrack, true
	case "year":
		return FieldYear, true
	default:
		return 0, false
	}
}

// resolve returns the string representation of the field's value in
// rec, or a MissingFieldError if the record has no value for it.
func (f Field) resolve(rec Record) (string, error) {
	switch f {
	case FieldAlbum:
		if v, ok := rec.AlbumTitle(); ok {
			return v, nil
		}
	case FieldArtist:
		if v, ok := rec.Artist(); ok {
			return v, nil
		}
	case FieldTitle:
		if v, ok := rec.Title(); ok {
			return v, nil
		}
	case FieldTrack:
		if n, ok := rec.TrackNumber(); ok {
			return strconv.Itoa(n), nil
		}
	case FieldYear:
		if y, ok := rec.Year(); ok {
			return strconv.Itoa(y), nil
		}
	}
	return "", &MissingFieldError{Field: f}
}
