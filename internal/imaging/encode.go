package imaging

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// JPEGQuality is the quality used when annotated images are written as JPEG.
const JPEGQuality = 95

// Encode writes img to w in the format implied by the extension of path.
// Only the name is inspected; nothing is written to path itself.
func Encode(w io.Writer, img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("failed to determine output format for %s: %w", path, err)
	}
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return nil
}
