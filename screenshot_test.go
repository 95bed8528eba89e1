package lightsource

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"home", "home"},
		{"after-right", "after-right"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	st := newTestStage()
	st.Screenshot("a")
	st.Screenshot("b")
	st.Screenshot("c")
	if len(st.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(st.screenshotQueue))
	}
	if st.screenshotQueue[0] != "a" || st.screenshotQueue[1] != "b" || st.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", st.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	st := NewStage()
	if st.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", st.ScreenshotDir, "screenshots")
	}
}

func TestToNRGBAUnpremultiplies(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-transparent, premultiplied
		0, 0, 0, 0, // fully transparent
	}
	img := toNRGBA(pixels, 3, 1)

	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := toNRGBA([]byte{10, 20, 30, 255}, 1, 1)

	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1 || cfg.Height != 1 {
		t.Errorf("size = %dx%d, want 1x1", cfg.Width, cfg.Height)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	img := toNRGBA(nil, 1, 1)
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "shot.png"), img); err == nil {
		t.Error("expected error for a missing directory")
	}
}
