package rename

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/tagrename/internal/config"
	"github.com/handiism/tagrename/internal/format"
	"github.com/handiism/tagrename/internal/metadata"
)

// fakeSource serves canned records keyed by path.
type fakeSource struct {
	records map[string]metadata.StaticRecord
}

func (s *fakeSource) ReadFile(path string) (format.Record, error) {
	rec, ok := s.records[path]
	if !ok {
		return nil, &metadata.ReadError{Path: path, Err: errors.New("no tag data")}
	}
	return rec, nil
}

func testSettings() *config.Settings {
	s := config.DefaultSettings()
	s.MaxConcurrentReads = 1 // deterministic ordering in tests
	return s
}

func TestPlanAll(t *testing.T) {
	source := &fakeSource{records: map[string]metadata.StaticRecord{
		"/music/a.mp3": {ArtistValue: "Boards of Canada", TitleValue: "Roygbiv", TrackValue: 7},
		"/music/b.mp3": {ArtistValue: "Aphex Twin", TitleValue: "Xtal", TrackValue: 1},
	}}
	planner := NewPlanner(testSettings(), source, nil)

	plans, err := planner.PlanAll(context.Background(), "%track %artist - %title", []string{
		"/music/a.mp3",
		"/music/b.mp3",
	})
	if err != nil {
		t.Fatalf("PlanAll error: %v", err)
	}

	want := []Plan{
		{Path: "/music/a.mp3", NewPath: "/music/7 Boards of Canada - Roygbiv.mp3"},
		{Path: "/music/b.mp3", NewPath: "/music/1 Aphex Twin - Xtal.mp3"},
	}
	if len(plans) != len(want) {
		t.Fatalf("got %d plans, want %d", len(plans), len(want))
	}
	for i := range want {
		if plans[i] != want[i] {
			t.Errorf("plans[%d] = %+v, want %+v", i, plans[i], want[i])
		}
	}
}

func TestPlanAll_PreservesExtension(t *testing.T) {
	source := &fakeSource{records: map[string]metadata.StaticRecord{
		"/m/song.MP3":      {TitleValue: "One"},
		"/m/bare":          {TitleValue: "Two"},
		"/m/dots.tag.flac": {TitleValue: "Three"},
	}}
	planner := NewPlanner(testSettings(), source, nil)

	plans, err := planner.PlanAll(context.Background(), "%title", []string{
		"/m/song.MP3", "/m/bare", "/m/dots.tag.flac",
	})
	if err != nil {
		t.Fatalf("PlanAll error: %v", err)
	}

	wantPaths := []string{"/m/One.MP3", "/m/Two", "/m/Three.flac"}
	for i, want := range wantPaths {
		if plans[i].NewPath != want {
			t.Errorf("plans[%d].NewPath = %q, want %q", i, plans[i].NewPath, want)
		}
	}
}

func TestPlanAll_Sanitize(t *testing.T) {
	source := &fakeSource{records: map[string]metadata.StaticRecord{
		"/m/a.mp3": {ArtistValue: "AC/DC", TitleValue: "T.N.T."},
	}}

	settings := testSettings()
	planner := NewPlanner(settings, source, nil)

	plans, err := planner.PlanAll(context.Background(), "%artist - %title", []string{"/m/a.mp3"})
	if err != nil {
		t.Fatal(err)
	}
	// Sanitizing replaces the slash and strips the trailing dot.
	if got, want := plans[0].NewPath, "/m/AC_DC - T.N.T.mp3"; got != want {
		t.Errorf("sanitized NewPath = %q, want %q", got, want)
	}

	settings.SanitizeFileNames = false
	plans, err = planner.PlanAll(context.Background(), "%title", []string{"/m/a.mp3"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := plans[0].NewPath, "/m/T.N.T..mp3"; got != want {
		t.Errorf("unsanitized NewPath = %q, want %q", got, want)
	}
}

func TestPlanAll_BadTemplateFailsBeforeReading(t *testing.T) {
	source := &fakeSource{records: map[string]metadata.StaticRecord{}}
	planner := NewPlanner(testSettings(), source, nil)

	_, err := planner.PlanAll(context.Background(), "%bogus", []string{"/m/a.mp3"})

	var ufe *format.UnknownFieldError
	if !errors.As(err, &ufe) {
		t.Fatalf("PlanAll error = %v, want UnknownFieldError", err)
	}
}

func TestPlanAll_MissingFieldAbortsBatch(t *testing.T) {
	source := &fakeSource{records: map[string]metadata.StaticRecord{
		"/m/a.mp3": {ArtistValue: "Someone"}, // no album
		"/m/b.mp3": {ArtistValue: "Someone", AlbumValue: "Somewhere"},
	}}
	planner := NewPlanner(testSettings(), source, nil)

	plans, err := planner.PlanAll(context.Background(), "%album %artist", []string{
		"/m/a.mp3", "/m/b.mp3",
	})
	if plans != nil {
		t.Error("no plans should be returned when any file fails")
	}

	var mfe *format.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("PlanAll error = %v, want MissingFieldError", err)
	}
	if mfe.Field != format.FieldAlbum {
		t.Errorf("missing field = %v, want Album", mfe.Field)
	}
}

func TestPlanAll_ReadErrorPassesThrough(t *testing.T) {
	source := &fakeSource{records: map[string]metadata.StaticRecord{}}
	planner := NewPlanner(testSettings(), source, nil)

	_, err := planner.PlanAll(context.Background(), "%title", []string{"/m/corrupt.mp3"})

	var re *metadata.ReadError
	if !errors.As(err, &re) {
		t.Fatalf("PlanAll error = %v, want *metadata.ReadError", err)
	}
	if re.Path != "/m/corrupt.mp3" {
		t.Errorf("ReadError.Path = %q, want %q", re.Path, "/m/corrupt.mp3")
	}
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "untitled.mp3")
	if err := os.WriteFile(old, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	source := &fakeSource{records: map[string]metadata.StaticRecord{
		old: {ArtistValue: "Artist", TitleValue: "Song"},
	}}
	planner := NewPlanner(testSettings(), source, nil)

	plans, err := planner.PlanAll(context.Background(), "%artist - %title", []string{old})
	if err != nil {
		t.Fatal(err)
	}
	if err := planner.Apply(context.Background(), plans); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	renamed := filepath.Join(dir, "Artist - Song.mp3")
	if _, err := os.Stat(renamed); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("original file should be gone after rename")
	}
}

func TestApply_ExistingDestination(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "untitled.mp3")
	existing := filepath.Join(dir, "Song.mp3")
	for _, p := range []string{old, existing} {
		if err := os.WriteFile(p, []byte("audio"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	source := &fakeSource{records: map[string]metadata.StaticRecord{
		old: {TitleValue: "Song"},
	}}

	settings := testSettings()
	planner := NewPlanner(settings, source, nil)

	plans, err := planner.PlanAll(context.Background(), "%title", []string{old})
	if err != nil {
		t.Fatal(err)
	}

	// Default policy refuses to clobber.
	if err := planner.Apply(context.Background(), plans); err == nil {
		t.Error("Apply should fail when the destination exists")
	}
	if _, err := os.Stat(old); err != nil {
		t.Errorf("original should be untouched after refused apply: %v", err)
	}

	// Skip policy leaves both files alone and succeeds.
	settings.OnExisting = config.OnExistingSkip
	if err := planner.Apply(context.Background(), plans); err != nil {
		t.Errorf("Apply with skip policy error: %v", err)
	}
	if _, err := os.Stat(old); err != nil {
		t.Errorf("original should remain after skip: %v", err)
	}
}

func TestApply_NoOpPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Song.mp3")
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	planner := NewPlanner(testSettings(), &fakeSource{}, nil)
	if err := planner.Apply(context.Background(), []Plan{{Path: path, NewPath: path}}); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file should still exist: %v", err)
	}
}
