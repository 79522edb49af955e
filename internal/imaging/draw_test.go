package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#00FF00", color.NRGBA{0, 255, 0, 255}, false},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"FF0000", color.NRGBA{255, 0, 0, 255}, false},
		{"#0F0", color.NRGBA{0, 255, 0, 255}, false},
		{" #0000FF ", color.NRGBA{0, 0, 255, 255}, false},
		{"", color.NRGBA{}, true},
		{"#GG0000", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
		{"#00FF0080", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDrawBoxes(t *testing.T) {
	img := createInMemoryImage(100, 50, color.White)
	green := color.NRGBA{0, 255, 0, 255}

	result := DrawBoxes(img, []image.Rectangle{image.Rect(10, 10, 30, 30)}, green)

	onOutline := []image.Point{
		{10, 10}, {30, 10}, {10, 30}, {30, 30}, // corners
		{20, 10}, {20, 30}, {10, 20}, {30, 20}, // edge midpoints
	}
	for _, p := range onOutline {
		if got := result.NRGBAAt(p.X, p.Y); got != green {
			t.Errorf("pixel %v: got %v, want green", p, got)
		}
	}

	offOutline := []image.Point{{20, 20}, {9, 10}, {31, 30}, {10, 31}, {0, 0}}
	for _, p := range offOutline {
		if got := result.NRGBAAt(p.X, p.Y); got == green {
			t.Errorf("pixel %v should not be drawn", p)
		}
	}
}

func TestDrawBoxes_DoesNotModifySource(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)

	DrawBoxes(img, []image.Rectangle{image.Rect(2, 2, 10, 10)}, DefaultBoxColor)

	r, g, b, _ := img.At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("source image was modified: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestDrawBoxes_Clipping(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)

	tests := []struct {
		name string
		rect image.Rectangle
	}{
		{"partly outside", image.Rect(-5, -5, 10, 10)},
		{"beyond max", image.Rect(15, 15, 40, 40)},
		{"fully outside", image.Rect(100, 100, 120, 120)},
		{"negative", image.Rect(-50, -50, -10, -10)},
		{"inverted corners", image.Rect(30, 30, 5, 5)},
		{"huge", image.Rect(-1_000_000, -1_000_000, 1_000_000, 1_000_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must not panic.
			result := DrawBoxes(img, []image.Rectangle{tt.rect}, DefaultBoxColor)
			if result.Bounds() != img.Bounds() {
				t.Errorf("bounds: got %v, want %v", result.Bounds(), img.Bounds())
			}
		})
	}
}

func TestDrawBoxes_PartlyOutsideDrawsVisibleEdges(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)

	result := DrawBoxes(img, []image.Rectangle{image.Rect(-5, -5, 10, 10)}, DefaultBoxColor)

	if got := result.NRGBAAt(10, 5); got != DefaultBoxColor {
		t.Errorf("right edge: got %v, want %v", got, DefaultBoxColor)
	}
	if got := result.NRGBAAt(5, 10); got != DefaultBoxColor {
		t.Errorf("bottom edge: got %v, want %v", got, DefaultBoxColor)
	}
	if got := result.NRGBAAt(0, 0); got == DefaultBoxColor {
		t.Error("pixel (0,0) lies inside the box and should not be drawn")
	}
}

func TestDrawBoxes_OffsetBounds(t *testing.T) {
	base := createInMemoryImage(40, 40, color.White)
	sub := base.SubImage(image.Rect(10, 10, 30, 30))

	result := DrawBoxes(sub, []image.Rectangle{image.Rect(12, 12, 15, 15)}, DefaultBoxColor)

	// (12,12) in source coordinates is (2,2) in the rebased copy.
	if got := result.NRGBAAt(2, 2); got != DefaultBoxColor {
		t.Errorf("rebased corner: got %v, want %v", got, DefaultBoxColor)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},   // within range
		{-1, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tt := range tests {
		got := clamp(tt.val, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%d, %d, %d): got %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}
