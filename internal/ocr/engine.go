package ocr

import (
	"context"
	"fmt"
	"image"
	"sort"
	"sync"
)

// CharBox is one glyph reported by an OCR engine.
//
// Coordinates use the box-file convention: the origin is the bottom-left
// corner of the image and Y increases upward. (X1, Y1) is the lower-left
// corner of the glyph and (X2, Y2) the upper-right.
type CharBox struct {
	Char string `json:"char"`
	X1   int    `json:"x1"`
	Y1   int    `json:"y1"`
	X2   int    `json:"x2"`
	Y2   int    `json:"y2"`
}

// Engine detects individual characters in an image.
type Engine interface {
	// Name identifies the engine in logs.
	Name() string

	// DetectCharacterBoxes returns one CharBox per recognized glyph, in the
	// engine's detection order.
	DetectCharacterBoxes(ctx context.Context, img image.Image) ([]CharBox, error)
}

// EngineFunc adapts an ordinary function to the Engine interface.
type EngineFunc func(ctx context.Context, img image.Image) ([]CharBox, error)

// Name returns "func".
func (f EngineFunc) Name() string { return "func" }

// DetectCharacterBoxes calls f(ctx, img).
func (f EngineFunc) DetectCharacterBoxes(ctx context.Context, img image.Image) ([]CharBox, error) {
	return f(ctx, img)
}

// Options configures engine construction.
type Options struct {
	// Command is the path or name of the tesseract executable. Engines that
	// link Tesseract directly ignore it.
	Command string

	// Language is the Tesseract language code, e.g. "eng".
	Language string

	// TessdataDir overrides where Tesseract looks for *.traineddata files.
	// Empty means Tesseract's built-in default.
	TessdataDir string
}

// Factory builds an Engine from Options.
type Factory func(opts Options) (Engine, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes an engine available by name. It panics if name is empty or
// already registered, since both indicate a programming error.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" {
		panic("ocr: Register with empty name")
	}
	if _, dup := registry[name]; dup {
		panic("ocr: Register called twice for engine " + name)
	}
	registry[name] = factory
}

// New constructs the engine registered under name.
func New(name string, opts Options) (Engine, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown OCR engine %q (available: %v)", name, Engines())
	}
	return factory(opts)
}

// Engines returns the sorted names of all registered engines.
func Engines() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
