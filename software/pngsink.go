package software

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// DirSink writes pages as PNG files named <prefix>-<page>.png in a
// directory.
type DirSink struct {
	Dir    string
	Prefix string
}

func (s *DirSink) WritePage(pageNumber int, img image.Image) error {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "page"
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("%s-%03d.png", prefix, pageNumber))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("software: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("software: encode %s: %w", path, err)
	}
	return f.Close()
}
