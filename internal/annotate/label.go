package annotate

import (
	"fmt"
	"image"
	"math"
	"unicode/utf8"

	"github.com/ironsheep/char-annotate/internal/ocr"
)

// NumClasses is the number of label classes: ten digits and 26 letters.
const NumClasses = 36

// Geometry selects how OCR boxes are turned into pixel rectangles.
type Geometry string

const (
	// GeometryCorners treats (X1, Y1) and (X2, Y2) as opposite corners of the
	// glyph.
	GeometryCorners Geometry = "corners"

	// GeometryLegacy reproduces the earlier annotator's arithmetic, which
	// flips only the lower edge and uses X2/Y2 directly as the width and
	// height. Its labels and rectangles are wrong whenever a glyph does not
	// touch the origin; it exists only to regenerate old datasets.
	GeometryLegacy Geometry = "legacy"
)

// ParseGeometry validates a geometry name.
func ParseGeometry(s string) (Geometry, error) {
	switch g := Geometry(s); g {
	case GeometryCorners, GeometryLegacy:
		return g, nil
	}
	return "", fmt.Errorf("unknown geometry %q: want %q or %q", s, GeometryCorners, GeometryLegacy)
}

// DetectedCharacter is a recognized glyph with its box in top-left based
// pixel coordinates.
type DetectedCharacter struct {
	Char   rune
	X      int
	Y      int
	Width  int
	Height int
}

// Allowed reports whether an OCR token is a single character in 0-9 or A-Z,
// and returns that character. Multi-character tokens are rejected.
func Allowed(token string) (rune, bool) {
	if utf8.RuneCountInString(token) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(token)
	if _, ok := ClassIndex(r); !ok {
		return 0, false
	}
	return r, true
}

// ClassIndex maps '0'..'9' to 0..9 and 'A'..'Z' to 10..35.
func ClassIndex(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// FromBox converts an OCR box into a DetectedCharacter and the rectangle to
// outline on the annotated image. imageHeight is needed to flip the
// bottom-left origin. ok is false when the character is not allowed.
func FromBox(box ocr.CharBox, imageHeight int, g Geometry) (dc DetectedCharacter, outline image.Rectangle, ok bool) {
	c, ok := Allowed(box.Char)
	if !ok {
		return DetectedCharacter{}, image.Rectangle{}, false
	}

	if g == GeometryLegacy {
		dc = DetectedCharacter{
			Char:   c,
			X:      box.X1,
			Y:      imageHeight - box.Y1,
			Width:  box.X2,
			Height: box.Y2,
		}
		outline = image.Rect(box.X1, imageHeight-box.Y1, box.X2, imageHeight-box.Y2)
		return dc, outline, true
	}

	dc = DetectedCharacter{
		Char:   c,
		X:      box.X1,
		Y:      imageHeight - box.Y2,
		Width:  box.X2 - box.X1,
		Height: box.Y2 - box.Y1,
	}
	outline = image.Rect(dc.X, dc.Y, dc.X+dc.Width, dc.Y+dc.Height)
	return dc, outline, true
}

// Label is one line of a detection label file. Geometry values are fractions
// of the image size.
type Label struct {
	Class   int
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64
}

// Label normalizes the character's box against the image dimensions. Every
// value is clamped to [0, 1].
func (d DetectedCharacter) Label(imageWidth, imageHeight int) Label {
	class, _ := ClassIndex(d.Char)
	w, h := float64(imageWidth), float64(imageHeight)

	return Label{
		Class:   class,
		CenterX: unit((float64(d.X) + float64(d.Width)/2) / w),
		CenterY: unit((float64(d.Y) + float64(d.Height)/2) / h),
		Width:   unit(float64(d.Width) / w),
		Height:  unit(float64(d.Height) / h),
	}
}

// String formats the label as "class cx cy w h" with six decimals.
func (l Label) String() string {
	return fmt.Sprintf("%d %.6f %.6f %.6f %.6f", l.Class, l.CenterX, l.CenterY, l.Width, l.Height)
}

// unit clamps v to [0, 1]. NaN and negative zero become 0.
func unit(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
