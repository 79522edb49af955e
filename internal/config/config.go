// Package config loads runtime settings for char-annotate from the environment.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/ironsheep/char-annotate/internal/annotate"
	"github.com/ironsheep/char-annotate/internal/imaging"
	"github.com/ironsheep/char-annotate/internal/ocr"
)

// Environment variable names.
const (
	EnvInputDir     = "CHARBOX_INPUT_DIR"
	EnvOutputDir    = "CHARBOX_OUTPUT_DIR"
	EnvEngine       = "CHARBOX_ENGINE"
	EnvTesseractCmd = "CHARBOX_TESSERACT_CMD"
	EnvLanguage     = "CHARBOX_LANGUAGE"
	EnvTessdataDir  = "CHARBOX_TESSDATA_DIR"
	EnvBoxColor     = "CHARBOX_BOX_COLOR"
	EnvGeometry     = "CHARBOX_GEOMETRY"
	EnvLogLevel     = "CHARBOX_LOG_LEVEL"
)

// Defaults used when the environment leaves a setting empty.
const (
	DefaultInputDir  = "images/test"
	DefaultOutputDir = "results/test"
	DefaultEngine    = "gosseract"
	DefaultBoxColor  = "#00FF00"
)

// Config holds everything the entry point needs to build a pipeline.
type Config struct {
	InputDir     string
	OutputDir    string
	Engine       string
	TesseractCmd string
	Language     string
	TessdataDir  string
	BoxColor     color.NRGBA
	Geometry     annotate.Geometry
	Debug        bool
}

// Load reads the configuration from the environment. Positional arguments,
// when given, override the input and output directories in that order.
func Load(args []string) (*Config, error) {
	cfg := &Config{
		InputDir:     getEnv(EnvInputDir, DefaultInputDir),
		OutputDir:    getEnv(EnvOutputDir, DefaultOutputDir),
		Engine:       getEnv(EnvEngine, DefaultEngine),
		TesseractCmd: getEnv(EnvTesseractCmd, ocr.DefaultCommand),
		Language:     getEnv(EnvLanguage, ocr.DefaultLanguage),
		TessdataDir:  os.Getenv(EnvTessdataDir),
		Debug:        strings.EqualFold(os.Getenv(EnvLogLevel), "debug"),
	}

	if len(args) > 2 {
		return nil, fmt.Errorf("too many arguments: expected [input_dir [output_dir]], got %d", len(args))
	}
	if len(args) > 0 {
		cfg.InputDir = args[0]
	}
	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}

	boxColor, err := imaging.ParseColor(getEnv(EnvBoxColor, DefaultBoxColor))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvBoxColor, err)
	}
	cfg.BoxColor = boxColor

	geometry, err := annotate.ParseGeometry(getEnv(EnvGeometry, string(annotate.GeometryCorners)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvGeometry, err)
	}
	cfg.Geometry = geometry

	return cfg, nil
}

// EngineOptions returns the options for ocr.New.
func (c *Config) EngineOptions() ocr.Options {
	return ocr.Options{
		Command:     c.TesseractCmd,
		Language:    c.Language,
		TessdataDir: c.TessdataDir,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
