package wallpaper

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	w, h, err := Dimensions(path)
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != 3 || h != 2 {
		t.Errorf("got %dx%d, want 3x2", w, h)
	}
}

func TestDimensions_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	os.WriteFile(path, []byte("not an image"), 0644)
	if _, _, err := Dimensions(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestDimensions_MissingFile(t *testing.T) {
	if _, _, err := Dimensions(filepath.Join(t.TempDir(), "gone.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProbeEntries_SkipsUndecodable(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	f, err := os.Create(good)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 5))); err != nil {
		t.Fatal(err)
	}
	f.Close()
	bad := filepath.Join(dir, "bad.png")
	os.WriteFile(bad, []byte("junk"), 0644)

	entries := []Entry{
		{Name: "good.png", Path: good},
		{Name: "bad.png", Path: bad},
	}
	ProbeEntries(entries)

	if entries[0].Width != 4 || entries[0].Height != 5 {
		t.Errorf("good entry = %dx%d, want 4x5", entries[0].Width, entries[0].Height)
	}
	if entries[1].Width != 0 || entries[1].Height != 0 {
		t.Errorf("bad entry should keep zero dimensions, got %dx%d", entries[1].Width, entries[1].Height)
	}
}
