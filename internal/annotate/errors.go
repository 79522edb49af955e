package annotate

import "errors"

// Error categories for per-image failures. Errors returned by ProcessImage wrap
// exactly one of these, so callers can classify them with errors.Is.
var (
	// ErrDecode means the source image could not be read or decoded.
	ErrDecode = errors.New("decode error")

	// ErrOCREngine means the OCR engine failed or produced unusable output.
	ErrOCREngine = errors.New("OCR engine error")

	// ErrFilesystem means a directory could not be listed or created, or an
	// output file could not be written.
	ErrFilesystem = errors.New("filesystem error")
)
