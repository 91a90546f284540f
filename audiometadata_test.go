package audiometadata

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// synchsafe4 encodes v into 4 synchsafe bytes.
func synchsafe4(v int) []byte {
	return []byte{
		byte(v >> 21 & 0x7F),
		byte(v >> 14 & 0x7F),
		byte(v >> 7 & 0x7F),
		byte(v & 0x7F),
	}
}

// v23Frame assembles one ID3v2.3 text-style frame.
func v23Frame(id string, body []byte) []byte {
	buf := []byte(id)
	size := len(body)
	buf = append(buf, byte(size>>24), byte(size>>16), byte(size>>8), byte(size))
	buf = append(buf, 0, 0)
	return append(buf, body...)
}

// v23Tag wraps frames in an ID3v2.3 tag block.
func v23Tag(frames ...[]byte) []byte {
	var body []byte
	for _, f := range frames {
		body = append(body, f...)
	}
	buf := []byte("ID3\x03\x00\x00")
	buf = append(buf, synchsafe4(len(body))...)
	return append(buf, body...)
}

// cbrFrames builds n 417-byte MPEG-1 Layer III frames (128 kbps,
// 44.1 kHz, stereo).
func cbrFrames(n int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		frame := make([]byte, 417)
		copy(frame, []byte{0xFF, 0xFB, 0x90, 0x00})
		buf.Write(frame)
	}
	return buf.Bytes()
}

func latin1Text(s string) []byte {
	return append([]byte{0}, s...)
}

// writeTempMP3 writes data to a temp file and returns its path.
func writeTempMP3(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	data := v23Tag(
		v23Frame("TIT2", latin1Text("Night Drive")),
		v23Frame("TPE1", latin1Text("The Commuters")),
		v23Frame("TCON", latin1Text("17")),
	)
	data = append(data, cbrFrames(5)...)
	path := writeTempMP3(t, data)

	file, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer file.Close()

	if file.Format != FormatMP3 {
		t.Errorf("format: got %s", file.Format)
	}
	if file.Size != int64(len(data)) {
		t.Errorf("size: got %d", file.Size)
	}
	if got := file.Tags.Title(); got != "Night Drive" {
		t.Errorf("title: got %q", got)
	}
	if got := file.Tags.Artist(); got != "The Commuters" {
		t.Errorf("artist: got %q", got)
	}
	if got := file.Tags.Genre(); got != "Rock" {
		t.Errorf("genre: got %q", got)
	}

	if file.Audio.Codec != "MP3" {
		t.Errorf("codec: got %s", file.Audio.Codec)
	}
	if file.Audio.Bitrate != 128000 || file.Audio.BitrateMode != BitrateModeCBR {
		t.Errorf("bitrate: got %d %s", file.Audio.Bitrate, file.Audio.BitrateMode)
	}
	if file.Audio.SampleRate != 44100 || file.Audio.Channels != 2 {
		t.Errorf("stream: %d Hz, %d channels", file.Audio.SampleRate, file.Audio.Channels)
	}
	if file.Audio.Duration <= 0 {
		t.Errorf("duration: got %s", file.Audio.Duration)
	}

	if len(file.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", file.Warnings)
	}
}

func TestOpen_NoTag(t *testing.T) {
	path := writeTempMP3(t, cbrFrames(5))

	file, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer file.Close()

	if file.Tags.Len() != 0 {
		t.Errorf("expected empty tags, got %d keys", file.Tags.Len())
	}
	if file.Audio.Bitrate != 128000 {
		t.Errorf("bitrate: got %d", file.Audio.Bitrate)
	}
}

func TestOpen_ID3v1Fallback(t *testing.T) {
	v1 := make([]byte, 128)
	copy(v1, "TAG")
	copy(v1[3:], "Fallback Title")
	copy(v1[33:], "Fallback Artist")
	v1[127] = 255

	audio := cbrFrames(5)
	path := writeTempMP3(t, append(append([]byte{}, audio...), v1...))

	file, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer file.Close()

	if got := file.Tags.Title(); got != "Fallback Title" {
		t.Errorf("title: got %q", got)
	}
	if got := file.Tags.Artist(); got != "Fallback Artist" {
		t.Errorf("artist: got %q", got)
	}
}

func TestOpen_BrokenTagWarns(t *testing.T) {
	// "ID3" marker with an unsupported major version: detection still
	// sees an MP3, the tag decode fails, the stream decodes anyway.
	broken := append([]byte("ID3\x09\x00\x00"), synchsafe4(0)...)
	data := append(broken, cbrFrames(5)...)
	path := writeTempMP3(t, data)

	file, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer file.Close()

	if len(file.Warnings) == 0 {
		t.Error("expected a warning for the broken tag")
	}
	if file.Audio.Bitrate != 128000 {
		t.Errorf("stream must still decode, bitrate %d", file.Audio.Bitrate)
	}

	// Strict mode promotes the warning to an error.
	if _, err := Open(path, WithStrictParsing()); err == nil {
		t.Error("strict parsing must fail on the broken tag")
	}

	// Ignore-warnings mode suppresses it.
	quiet, err := Open(path, WithIgnoreWarnings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer quiet.Close()
	if len(quiet.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", quiet.Warnings)
	}
}

func TestOpen_NotAudio(t *testing.T) {
	path := writeTempMP3(t, []byte("this is just some text, not audio"))

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestOpen_Missing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.mp3")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := OpenContext(ctx, "irrelevant.mp3")
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestOpenMany(t *testing.T) {
	paths := []string{
		writeTempMP3(t, append(v23Tag(v23Frame("TIT2", latin1Text("One"))), cbrFrames(5)...)),
		writeTempMP3(t, append(v23Tag(v23Frame("TIT2", latin1Text("Two"))), cbrFrames(5)...)),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	files, err := OpenMany(ctx, paths...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	// Order must match the input paths.
	if files[0].Tags.Title() != "One" || files[1].Tags.Title() != "Two" {
		t.Errorf("results out of order: %q, %q", files[0].Tags.Title(), files[1].Tags.Title())
	}
}

func TestOpenMany_FailureClosesAll(t *testing.T) {
	paths := []string{
		writeTempMP3(t, cbrFrames(5)),
		filepath.Join(t.TempDir(), "missing.mp3"),
	}

	if _, err := OpenMany(context.Background(), paths...); err == nil {
		t.Fatal("expected error when one file is missing")
	}
}

func TestDetectFormat(t *testing.T) {
	tagged := v23Tag(v23Frame("TIT2", latin1Text("x")))
	if format, err := DetectFormat(bytes.NewReader(tagged), int64(len(tagged)), "a.mp3"); err != nil || format != FormatMP3 {
		t.Errorf("ID3 magic: got %s, %v", format, err)
	}

	bare := cbrFrames(1)
	if format, err := DetectFormat(bytes.NewReader(bare), int64(len(bare)), "b.mp3"); err != nil || format != FormatMP3 {
		t.Errorf("frame sync magic: got %s, %v", format, err)
	}

	junk := []byte("RIFFxxxx")
	if _, err := DetectFormat(bytes.NewReader(junk), int64(len(junk)), "c.wav"); err == nil {
		t.Error("expected error for non-MPEG data")
	}

	if _, err := DetectFormat(bytes.NewReader(nil), 0, "empty"); err == nil {
		t.Error("expected error for empty input")
	}
}
