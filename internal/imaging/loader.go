package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Load decodes an image file into memory.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP, and TIFF.
//
// Returns:
//   - image.Image: The decoded image. EXIF orientation is not applied, so pixel
//     coordinates match what an OCR engine sees when reading the same file.
//   - error: Non-nil if the file cannot be opened or decoded, or if the decoded
//     image has no pixels.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a valid image
//   - Returns error if the image has zero width or height
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("image has no pixels: %dx%d", bounds.Dx(), bounds.Dy())
	}

	return img, nil
}

// ImageInfo contains the geometry of a loaded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension: "png", "jpeg", "gif",
	// or "unknown".
	Format string `json:"format"`
}

// Info returns the dimensions of img and the format implied by path.
func Info(img image.Image, path string) ImageInfo {
	bounds := img.Bounds()
	return ImageInfo{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: FormatFromPath(path),
	}
}

// FormatFromPath determines an image format from a file extension.
//
// The comparison is case-insensitive:
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif" -> "gif"
//   - Other extensions -> "unknown"
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	}
	return "unknown"
}
