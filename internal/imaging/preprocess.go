package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// ThresholdLevel is the fixed intensity cutoff used by Binarize.
const ThresholdLevel uint8 = 150

// ITU-R BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale converts img to BT.601 luma, rounded to the nearest integer.
// Every channel of the result carries the same value; alpha is preserved.
func Grayscale(img image.Image) *image.RGBA {
	return effect.GrayscaleWithWeights(img, lumaR, lumaG, lumaB)
}

// Binarize prepares an image for character-box OCR.
//
// The image is converted to grayscale and thresholded at ThresholdLevel with
// inverted output: pixels darker than the level become white foreground (255)
// and pixels at or above it become black background (0).
//
// The level and the inversion are fixed; dark glyphs on a light plate end up
// as white strokes on black, which is what the box extractor is tuned for.
func Binarize(img image.Image) image.Image {
	gray := Grayscale(img)
	thresholded := segment.Threshold(gray, ThresholdLevel)
	return effect.Invert(thresholded)
}
