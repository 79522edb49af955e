// Package ocr provides character-level box detection using Tesseract.
//
// An Engine takes a preprocessed image and returns one CharBox per glyph. Boxes
// use Tesseract's box-file convention: the origin is the bottom-left corner of
// the image and Y grows upward. Callers convert to top-left coordinates
// themselves.
//
// # Engines
//
// Engines are looked up by name with New:
//
//   - "gosseract" (default): links libtesseract through gosseract/v2
//     (GosseractEngine).
//   - "tesseract": runs the tesseract executable in makebox mode (CLIEngine).
//     The executable path comes from Options.Command, so a tesseract build
//     other than the linked one can be used without recompiling.
//
// Tests and callers with their own recognizer can wrap a function with
// EngineFunc.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// The gosseract engine additionally needs the development headers
// (libtesseract-dev, libleptonica-dev). Both engines accept
// Options.TessdataDir for training data kept outside Tesseract's default
// location.
//
// # Temporary Files
//
// CLIEngine writes each input to a temporary PNG which is removed after the
// tesseract process exits.
//
// # Error Handling
//
// Functions return errors for:
//   - A missing or failing tesseract executable (stderr is included)
//   - Missing language data
//   - Malformed box output
//   - Temporary file I/O errors
package ocr
