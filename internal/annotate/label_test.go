package annotate

import (
	"image"
	"math"
	"testing"

	"github.com/ironsheep/char-annotate/internal/ocr"
)

func TestClassIndex(t *testing.T) {
	for i, c := range "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		got, ok := ClassIndex(c)
		if !ok {
			t.Errorf("ClassIndex(%q) not ok", c)
			continue
		}
		if got != i {
			t.Errorf("ClassIndex(%q) = %d, want %d", c, got, i)
		}
	}

	for _, c := range "az#-. Ä" {
		if _, ok := ClassIndex(c); ok {
			t.Errorf("ClassIndex(%q) should not be ok", c)
		}
	}

	if NumClasses != 36 {
		t.Errorf("NumClasses = %d, want 36", NumClasses)
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		token string
		want  rune
		ok    bool
	}{
		{"A", 'A', true},
		{"7", '7', true},
		{"Z", 'Z', true},
		{"a", 0, false},
		{"#", 0, false},
		{"", 0, false},
		{"AB", 0, false},
		{"12", 0, false},
		{"É", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := Allowed(tt.token)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Allowed(%q) = %q, %v; want %q, %v", tt.token, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseGeometry(t *testing.T) {
	for _, s := range []string{"corners", "legacy"} {
		g, err := ParseGeometry(s)
		if err != nil {
			t.Errorf("ParseGeometry(%q) failed: %v", s, err)
		}
		if string(g) != s {
			t.Errorf("ParseGeometry(%q) = %q", s, g)
		}
	}

	if _, err := ParseGeometry("diagonal"); err == nil {
		t.Error("ParseGeometry should reject unknown names")
	}
	if _, err := ParseGeometry(""); err == nil {
		t.Error("ParseGeometry should reject an empty name")
	}
}

func TestFromBox_Corners(t *testing.T) {
	box := ocr.CharBox{Char: "A", X1: 10, Y1: 20, X2: 30, Y2: 40}

	dc, outline, ok := FromBox(box, 50, GeometryCorners)
	if !ok {
		t.Fatal("FromBox rejected an allowed character")
	}

	want := DetectedCharacter{Char: 'A', X: 10, Y: 10, Width: 20, Height: 20}
	if dc != want {
		t.Errorf("DetectedCharacter = %+v, want %+v", dc, want)
	}
	if outline != image.Rect(10, 10, 30, 30) {
		t.Errorf("outline = %v, want (10,10)-(30,30)", outline)
	}
}

func TestFromBox_Legacy(t *testing.T) {
	box := ocr.CharBox{Char: "A", X1: 10, Y1: 20, X2: 30, Y2: 40}

	dc, outline, ok := FromBox(box, 50, GeometryLegacy)
	if !ok {
		t.Fatal("FromBox rejected an allowed character")
	}

	want := DetectedCharacter{Char: 'A', X: 10, Y: 30, Width: 30, Height: 40}
	if dc != want {
		t.Errorf("DetectedCharacter = %+v, want %+v", dc, want)
	}
	// Rect canonicalizes the flipped Y values.
	if outline != image.Rect(10, 10, 30, 30) {
		t.Errorf("outline = %v, want (10,10)-(30,30)", outline)
	}
}

func TestFromBox_Rejected(t *testing.T) {
	for _, char := range []string{"a", "#", "AB", ""} {
		_, _, ok := FromBox(ocr.CharBox{Char: char, X1: 1, Y1: 1, X2: 5, Y2: 5}, 10, GeometryCorners)
		if ok {
			t.Errorf("FromBox(%q) should be rejected", char)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		box      ocr.CharBox
		geometry Geometry
		want     string
	}{
		{
			name:     "corners",
			box:      ocr.CharBox{Char: "A", X1: 10, Y1: 20, X2: 30, Y2: 40},
			geometry: GeometryCorners,
			want:     "10 0.200000 0.400000 0.200000 0.400000",
		},
		{
			name:     "legacy",
			box:      ocr.CharBox{Char: "A", X1: 10, Y1: 20, X2: 30, Y2: 40},
			geometry: GeometryLegacy,
			want:     "10 0.250000 1.000000 0.300000 0.800000",
		},
		{
			name:     "digit",
			box:      ocr.CharBox{Char: "7", X1: 0, Y1: 0, X2: 50, Y2: 25},
			geometry: GeometryCorners,
			want:     "7 0.250000 0.750000 0.500000 0.500000",
		},
		{
			name:     "negative coordinates clamp to zero",
			box:      ocr.CharBox{Char: "Z", X1: -10, Y1: -5, X2: 5, Y2: 10},
			geometry: GeometryCorners,
			want:     "35 0.000000 0.950000 0.150000 0.300000",
		},
		{
			name:     "oversized box clamps to one",
			box:      ocr.CharBox{Char: "B", X1: 90, Y1: 0, X2: 130, Y2: 60},
			geometry: GeometryCorners,
			want:     "11 1.000000 0.400000 0.400000 1.000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, _, ok := FromBox(tt.box, 50, tt.geometry)
			if !ok {
				t.Fatal("FromBox rejected the box")
			}
			got := dc.Label(100, 50).String()
			if got != tt.want {
				t.Errorf("label = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabel_ValuesInUnitRange(t *testing.T) {
	boxes := []DetectedCharacter{
		{Char: 'A', X: -100, Y: -100, Width: 10, Height: 10},
		{Char: 'A', X: 1000, Y: 1000, Width: 10, Height: 10},
		{Char: 'A', X: 0, Y: 0, Width: -20, Height: -20},
		{Char: 'A', X: 0, Y: 0, Width: 0, Height: 0},
	}

	for _, dc := range boxes {
		l := dc.Label(100, 50)
		for _, v := range []float64{l.CenterX, l.CenterY, l.Width, l.Height} {
			if v < 0 || v > 1 {
				t.Errorf("%+v: value %v outside [0, 1]", dc, v)
			}
		}
	}
}

func TestUnit(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := unit(tt.in); got != tt.want {
			t.Errorf("unit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// A negative zero must print as "0.000000", not "-0.000000".
	l := Label{Class: 0, CenterX: unit(math.Copysign(0, -1))}
	if got := l.String(); got != "0 0.000000 0.000000 0.000000 0.000000" {
		t.Errorf("String() = %q", got)
	}
}
