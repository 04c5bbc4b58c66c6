package metadata

// StaticRecord is a literal metadata record. Zero values read as
// absent: an empty string or a zero number means the field has no
// value, the same way an empty ID3 frame does.
//
// It backs the TUI's live template preview and keeps tests independent
// of real MP3 fixtures:
//
//	rec := metadata.StaticRecord{
//	    ArtistValue: "Boards of Canada",
//	    TitleValue:  "Roygbiv",
//	    TrackValue:  7,
//	}
type StaticRecord struct {
	AlbumValue  string
	ArtistValue string
	TitleValue  string
	TrackValue  int
	YearValue   int
}

func (r StaticRecord) AlbumTitle() (string, bool) {
	return r.AlbumValue, r.AlbumValue != ""
}

func (r StaticRecord) Artist() (string, bool) {
	return r.ArtistValue, r.ArtistValue != ""
}

func (r StaticRecord) Title() (string, bool) {
	return r.TitleValue, r.TitleValue != ""
}

func (r StaticRecord) TrackNumber() (int, bool) {
	return r.TrackValue, r.TrackValue != 0
}

func (r StaticRecord) Year() (int, bool) {
	return r.YearValue, r.YearValue != 0
}

// id3Record holds the values extracted from one file's ID3 tag. Each
// presence flag is set only when the frame existed and parsed.
type id3Record struct {
	album, artist, title        string
	track, year                 int
	hasAlbum, hasArtist         bool
	hasTitle, hasTrack, hasYear bool
}

func (r *id3Record) AlbumTitle() (string, bool) { return r.album, r.hasAlbum }
func (r *id3Record) Artist() (string, bool)     { return r.artist, r.hasArtist }
func (r *id3Record) Title() (string, bool)      { return r.title, r.hasTitle }
func (r *id3Record) TrackNumber() (int, bool)   { return r.track, r.hasTrack }
func (r *id3Record) Year() (int, bool)          { return r.year, r.hasYear }
