// Package imaging provides the image operations used by the character annotator.
//
// It covers decoding source images, preparing them for OCR, drawing detection
// outlines, and encoding results. All operations work with standard Go
// image.Image types and use a coordinate system where (0,0) is at the top-left
// corner, X increases rightward, and Y increases downward.
//
// # Preprocessing
//
// Binarize converts an image to grayscale and applies a fixed inverted binary
// threshold at ThresholdLevel (150). The level is not configurable.
//
// # Drawing
//
// DrawBoxes always works on a copy. Rectangle corners are inclusive and
// outlines are clipped to the image bounds, so boxes reported partly outside
// the image by an OCR engine are still safe to draw.
//
// # Error Handling
//
// Functions return errors for:
//   - Missing files or undecodable image data
//   - Images with zero width or height
//   - Output paths with an extension that has no known encoder
//   - Malformed colour strings
//
// # Thread Safety
//
// Every function is stateless and safe to call concurrently on different
// images.
package imaging
