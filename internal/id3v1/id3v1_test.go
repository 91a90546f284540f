package id3v1

import (
	"testing"
)

// buildTag assembles a 128-byte ID3v1 block from fixed-width fields.
func buildTag(title, artist, album, year, comment string, track, genre byte) []byte {
	buf := make([]byte, TagSize)
	copy(buf[0:3], "TAG")
	copy(buf[3:33], title)
	copy(buf[33:63], artist)
	copy(buf[63:93], album)
	copy(buf[93:97], year)
	copy(buf[97:127], comment)
	if track != 0 {
		buf[125] = 0
		buf[126] = track
	}
	buf[127] = genre
	return buf
}

func TestDecode(t *testing.T) {
	buf := buildTag("Night Drive", "The Commuters", "Rush Hour", "1994", "bootleg rip", 0, 17)

	tags, err := Decode(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"title":   "Night Drive",
		"artist":  "The Commuters",
		"album":   "Rush Hour",
		"date":    "1994",
		"comment": "bootleg rip",
		"genre":   "Rock",
	}
	for key, value := range want {
		if got := tags.GetFirst(key); got != value {
			t.Errorf("%s: expected %q, got %q", key, value, got)
		}
	}
	if tags.Has("tracknumber") {
		t.Error("plain v1.0 tag must not have a track number")
	}
}

func TestDecode_V11Track(t *testing.T) {
	buf := buildTag("Song", "Artist", "Album", "2001", "", 7, 255)

	tags, err := Decode(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tags.GetFirst("tracknumber"); got != "7" {
		t.Errorf("expected track 7, got %q", got)
	}
	if tags.Has("genre") {
		t.Error("genre byte 255 maps to no known genre")
	}
}

func TestDecode_SpacePadding(t *testing.T) {
	// Some writers pad with spaces instead of NULs.
	buf := buildTag("Padded   ", "", "", "", "", 0, 255)
	for i := 12; i < 33; i++ {
		buf[i] = ' '
	}

	tags, err := Decode(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tags.GetFirst("title"); got != "Padded" {
		t.Errorf("expected trimmed title, got %q", got)
	}
}

func TestDecode_WrongSize(t *testing.T) {
	if _, err := Decode(make([]byte, 64)); err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestDecode_MissingMarker(t *testing.T) {
	buf := make([]byte, TagSize)
	copy(buf, "XXX")

	if _, err := Decode(buf); err == nil {
		t.Fatal("expected error for missing TAG marker")
	}
}

func TestGenreName(t *testing.T) {
	tests := []struct {
		index int
		want  string
		ok    bool
	}{
		{0, "Blues", true},
		{17, "Rock", true},
		{79, "Hard Rock", true},
		{255, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := GenreName(tt.index)
		if got != tt.want || ok != tt.ok {
			t.Errorf("GenreName(%d): got (%q, %v), want (%q, %v)", tt.index, got, ok, tt.want, tt.ok)
		}
	}
}
