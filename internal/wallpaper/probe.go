package wallpaper

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"
)

// Dimensions reads the pixel size from an image header without
// decoding the whole file.
func Dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// ProbeEntries fills Width and Height on each entry. Files whose header
// cannot be decoded keep zero dimensions.
func ProbeEntries(entries []Entry) {
	for i := range entries {
		w, h, err := Dimensions(entries[i].Path)
		if err != nil {
			continue
		}
		entries[i].Width = w
		entries[i].Height = h
	}
}
