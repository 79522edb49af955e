package annotate

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/char-annotate/internal/imaging"
	"github.com/ironsheep/char-annotate/internal/ocr"
)

// AnnotatedPrefix is prepended to the source file name of annotated images.
const AnnotatedPrefix = "annotated_"

// Pipeline turns one source image into an annotated image and a label file.
//
// A Pipeline holds no per-image state and may be reused for any number of
// images.
type Pipeline struct {
	engine   ocr.Engine
	boxColor color.Color
	geometry Geometry
	out      io.Writer
	debug    bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBoxColor sets the outline colour. The default is imaging.DefaultBoxColor.
func WithBoxColor(c color.Color) Option {
	return func(p *Pipeline) { p.boxColor = c }
}

// WithGeometry selects box conversion. The default is GeometryCorners.
func WithGeometry(g Geometry) Option {
	return func(p *Pipeline) { p.geometry = g }
}

// WithOutput sets where confirmation messages are written. The default is
// os.Stdout; nil discards them.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		if w == nil {
			w = io.Discard
		}
		p.out = w
	}
}

// WithDebug enables per-image debug logging.
func WithDebug(enabled bool) Option {
	return func(p *Pipeline) { p.debug = enabled }
}

// NewPipeline creates a pipeline that uses engine for character detection.
func NewPipeline(engine ocr.Engine, opts ...Option) *Pipeline {
	p := &Pipeline{
		engine:   engine,
		boxColor: imaging.DefaultBoxColor,
		geometry: GeometryCorners,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result describes the artifacts written for one image.
type Result struct {
	ImagePath     string   `json:"image_path"`
	AnnotatedPath string   `json:"annotated_path"`
	LabelPath     string   `json:"label_path"`
	Labels        []string `json:"labels"`

	// Discarded counts OCR boxes dropped because their character is not
	// in 0-9 or A-Z.
	Discarded int `json:"discarded"`
}

// ProcessImage runs the full pipeline for imagePath and writes
// annotated_<name> and <stem>.txt into outputDir, creating it if needed.
//
// Errors wrap ErrDecode, ErrOCREngine, or ErrFilesystem.
func (p *Pipeline) ProcessImage(ctx context.Context, imagePath, outputDir string) (*Result, error) {
	return p.process(ctx, imagePath, outputDir, LabelFileName(imagePath))
}

func (p *Pipeline) process(ctx context.Context, imagePath, outputDir, labelName string) (*Result, error) {
	img, err := imaging.Load(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, imagePath, err)
	}
	info := imaging.Info(img, imagePath)

	boxes, err := p.engine.DetectCharacterBoxes(ctx, imaging.Binarize(img))
	if err != nil {
		return nil, fmt.Errorf("%w: %s on %s: %w", ErrOCREngine, p.engine.Name(), imagePath, err)
	}

	result := &Result{
		ImagePath:     imagePath,
		AnnotatedPath: filepath.Join(outputDir, AnnotatedPrefix+filepath.Base(imagePath)),
		LabelPath:     filepath.Join(outputDir, labelName),
		Labels:        make([]string, 0, len(boxes)),
	}

	outlines := make([]image.Rectangle, 0, len(boxes))
	for _, box := range boxes {
		dc, outline, ok := FromBox(box, info.Height, p.geometry)
		if !ok {
			result.Discarded++
			continue
		}
		outlines = append(outlines, outline)
		result.Labels = append(result.Labels, dc.Label(info.Width, info.Height).String())
	}

	if p.debug {
		log.Printf("%s: %s %dx%d, %d boxes from %s, %d kept",
			imagePath, info.Format, info.Width, info.Height, len(boxes), p.engine.Name(), len(result.Labels))
	}

	annotated := imaging.DrawBoxes(img, outlines, p.boxColor)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create output directory: %w", ErrFilesystem, err)
	}

	err = writeFileAtomic(result.AnnotatedPath, func(w io.Writer) error {
		return imaging.Encode(w, annotated, result.AnnotatedPath)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to write annotated image: %w", ErrFilesystem, err)
	}

	err = writeFileAtomic(result.LabelPath, func(w io.Writer) error {
		_, err := io.WriteString(w, formatLabels(result.Labels))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to write labels: %w", ErrFilesystem, err)
	}

	fmt.Fprintf(p.out, "Annotations saved in '%s' and image saved in '%s'.\n", result.LabelPath, result.AnnotatedPath)
	return result, nil
}

// formatLabels joins label lines, each terminated by a newline.
func formatLabels(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// LabelFileName returns "<stem>.txt" for a source image path.
func LabelFileName(imagePath string) string {
	base := filepath.Base(imagePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
}
