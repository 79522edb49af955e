package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"
)

// DefaultLanguage is used when Options.Language is empty.
const DefaultLanguage = "eng"

// DefaultCommand is used when Options.Command is empty. It is resolved
// through PATH.
const DefaultCommand = "tesseract"

func init() {
	Register("tesseract", func(opts Options) (Engine, error) {
		e := NewCLIEngine(opts.Command, opts.Language)
		e.SetTessdataDir(opts.TessdataDir)
		return e, nil
	})
}

// CLIEngine runs the tesseract executable in box-file mode.
//
// Each call writes the image to a temporary PNG, runs
//
//	<command> <png> stdout [--tessdata-dir <dir>] -l <language> batch.nochop makebox
//
// and parses the box lines printed on stdout. The temporary file is removed
// before the call returns.
type CLIEngine struct {
	command     string
	language    string
	tessdataDir string
}

// NewCLIEngine creates an engine that invokes command. Empty arguments fall
// back to DefaultCommand and DefaultLanguage.
func NewCLIEngine(command, language string) *CLIEngine {
	if command == "" {
		command = DefaultCommand
	}
	if language == "" {
		language = DefaultLanguage
	}
	return &CLIEngine{command: command, language: language}
}

// Name returns "tesseract".
func (e *CLIEngine) Name() string { return "tesseract" }

// Command returns the executable the engine invokes.
func (e *CLIEngine) Command() string { return e.command }

// SetTessdataDir points tesseract at a directory of training data. An empty
// dir restores the default lookup.
func (e *CLIEngine) SetTessdataDir(dir string) { e.tessdataDir = dir }

// DetectCharacterBoxes runs tesseract on img and returns the parsed boxes.
func (e *CLIEngine) DetectCharacterBoxes(ctx context.Context, img image.Image) ([]CharBox, error) {
	tmpPath, err := SaveImageToTemp(img, "char-annotate-ocr")
	if err != nil {
		return nil, fmt.Errorf("failed to write OCR input: %w", err)
	}
	defer os.Remove(tmpPath)

	args := []string{tmpPath, "stdout"}
	if e.tessdataDir != "" {
		args = append(args, "--tessdata-dir", e.tessdataDir)
	}
	args = append(args, "-l", e.language, "batch.nochop", "makebox")

	stdout, err := e.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	boxes, err := ParseBoxes(bytes.NewReader(stdout))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s output: %w", e.command, err)
	}
	return boxes, nil
}

// Version returns the first line of `<command> --version`.
func (e *CLIEngine) Version(ctx context.Context) (string, error) {
	out, err := e.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	first, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(first), nil
}

func (e *CLIEngine) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("failed to run %s: %w: %s", e.command, err, msg)
		}
		return nil, fmt.Errorf("failed to run %s: %w", e.command, err)
	}
	return stdout.Bytes(), nil
}

// SaveImageToTemp saves an image to a temporary PNG file and returns its path.
//
// Parameters:
//   - img: The image to save.
//   - prefix: Filename prefix for identification (e.g., "char-annotate-ocr").
//
// Returns:
//   - string: Absolute path to the temporary file.
//   - error: Non-nil if file creation or encoding fails. No file is left
//     behind on error.
//
// IMPORTANT: The caller is responsible for deleting the temporary file
// after use with os.Remove().
func SaveImageToTemp(img image.Image, prefix string) (string, error) {
	tmpFile, err := os.CreateTemp("", prefix+"-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := png.Encode(tmpFile, img); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close temp image: %w", err)
	}

	return tmpPath, nil
}
