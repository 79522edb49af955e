package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

func init() {
	Register("gosseract", func(opts Options) (Engine, error) {
		e := NewGosseractEngine(opts.Language)
		e.tessdataDir = opts.TessdataDir
		return e, nil
	})
}

// GosseractEngine links Tesseract through gosseract. It is the default
// engine; building it needs cgo with the libtesseract and leptonica headers
// installed.
type GosseractEngine struct {
	language      string
	tessdataDir   string
	clientFactory func() *gosseract.Client
}

// NewGosseractEngine creates a linked Tesseract engine for language.
func NewGosseractEngine(language string) *GosseractEngine {
	if language == "" {
		language = DefaultLanguage
	}
	return &GosseractEngine{language: language, clientFactory: gosseract.NewClient}
}

// Name returns "gosseract".
func (e *GosseractEngine) Name() string { return "gosseract" }

// DetectCharacterBoxes recognizes img at symbol level. gosseract reports
// top-left based rectangles; they are flipped into box-file convention so
// callers see the same coordinates as from CLIEngine.
//
// ctx is checked before and after recognition. Tesseract itself cannot be
// interrupted, so a cancellation during the call takes effect once it
// returns.
func (e *GosseractEngine) DetectCharacterBoxes(ctx context.Context, img image.Image) ([]CharBox, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode OCR input: %w", err)
	}

	client := e.clientFactory()
	defer client.Close()

	if e.tessdataDir != "" {
		if err := client.SetTessdataPrefix(e.tessdataDir); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := client.SetLanguage(e.language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_SYMBOL)
	if err != nil {
		return nil, fmt.Errorf("failed to get symbol boxes: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	height := img.Bounds().Dy()
	result := make([]CharBox, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		result = append(result, fromTopLeft(box.Word, box.Box, height))
	}
	return result, nil
}

// Version returns the linked Tesseract version.
func (e *GosseractEngine) Version(ctx context.Context) (string, error) {
	return gosseract.Version(), nil
}

// fromTopLeft converts a top-left based rectangle in an image of the given
// height into a bottom-left based CharBox.
func fromTopLeft(char string, r image.Rectangle, height int) CharBox {
	return CharBox{
		Char: char,
		X1:   r.Min.X,
		Y1:   height - r.Max.Y,
		X2:   r.Max.X,
		Y2:   height - r.Min.Y,
	}
}
