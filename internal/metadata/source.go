package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/handiism/tagrename/internal/format"
)

// Source reads the metadata record of a single file.
type Source interface {
	ReadFile(path string) (format.Record, error)
}

// ReadError wraps any failure to read or parse a file's metadata. The
// cause is opaque to the rest of the tool and is forwarded unchanged;
// Unwrap exposes it for errors.Is/As.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ID3Source reads metadata from MP3 files using the id3v2 library.
//
// The source is stateless: each ReadFile opens, parses and closes one
// file, so a single ID3Source may be shared across goroutines.
type ID3Source struct{}

// NewID3Source creates a new ID3Source.
func NewID3Source() *ID3Source {
	return &ID3Source{}
}

// ReadFile opens the file's ID3 tag and extracts the fields templates
// can reference. Any open or parse failure is returned as a *ReadError.
func (s *ID3Source) ReadFile(path string) (format.Record, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer tag.Close()

	rec := &id3Record{}

	if v := strings.TrimSpace(tag.Album()); v != "" {
		rec.album, rec.hasAlbum = v, true
	}
	if v := strings.TrimSpace(tag.Artist()); v != "" {
		rec.artist, rec.hasArtist = v, true
	}
	if v := strings.TrimSpace(tag.Title()); v != "" {
		rec.title, rec.hasTitle = v, true
	}
	if n, ok := parseTrackNumber(tag.GetTextFrame("TRCK").Text); ok {
		rec.track, rec.hasTrack = n, true
	}
	if y, ok := parseYear(tag.GetTextFrame("TYER").Text, tag.GetTextFrame("TDRC").Text); ok {
		rec.year, rec.hasYear = y, true
	}

	return rec, nil
}

// parseTrackNumber extracts the track number from a TRCK frame value.
// The frame may carry a total ("3/12"); only the part before the slash
// counts. Non-numeric values read as absent.
func parseTrackNumber(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '/'); i >= 0 {
		text = text[:i]
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseYear extracts the release year, preferring the ID3v2.3 TYER
// frame and falling back to the leading year of an ID3v2.4 TDRC
// timestamp ("1998-06-23T12:00:00").
func parseYear(tyer, tdrc string) (int, bool) {
	if y, ok := parseYearValue(tyer); ok {
		return y, ok
	}
	return parseYearValue(tdrc)
}

func parseYearValue(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if len(text) > 4 {
		text = text[:4]
	}
	y, err := strconv.Atoi(text)
	if err != nil || y < 0 {
		return 0, false
	}
	return y, true
}
