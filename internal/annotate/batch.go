package annotate

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ironsheep/char-annotate/internal/imaging"
)

// IsImageFile reports whether name has a .jpg, .jpeg, or .png extension,
// ignoring case.
func IsImageFile(name string) bool {
	switch imaging.FormatFromPath(name) {
	case "jpeg", "png":
		return true
	}
	return false
}

// ListImages returns the supported image files directly inside dir, sorted
// by name. Subdirectories are not descended into.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list %s: %w", ErrFilesystem, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Failure records an image that could not be processed.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Summary is the outcome of a batch run.
type Summary struct {
	Processed []*Result
	Failures  []Failure
}

// OK reports whether every image was processed.
func (s *Summary) OK() bool { return len(s.Failures) == 0 }

// RunBatch processes every supported image in inputDir in name order and
// writes the artifacts to outputDir. A failing image is logged and recorded
// in the summary; the remaining images are still processed.
//
// The returned error is non-nil only when the batch could not run at all
// (inputDir unreadable) or ctx was cancelled between images. In the latter
// case the summary covers the images finished so far.
func RunBatch(ctx context.Context, p *Pipeline, inputDir, outputDir string) (*Summary, error) {
	paths, err := ListImages(inputDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	labelNames := labelNamesFor(paths)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := p.process(ctx, path, outputDir, labelNames[path])
		if err != nil {
			log.Printf("Error processing %s: %v", path, err)
			summary.Failures = append(summary.Failures, Failure{Path: path, Err: err})
			continue
		}
		summary.Processed = append(summary.Processed, result)
	}

	return summary, nil
}

// labelNamesFor assigns each path a label file name. When several images
// share a stem (plate.jpg and plate.png) the first in order keeps
// "<stem>.txt" and later ones get "<stem>_<ext>.txt", so no label file is
// overwritten.
func labelNamesFor(paths []string) map[string]string {
	names := make(map[string]string, len(paths))
	taken := make(map[string]bool, len(paths))

	for _, path := range paths {
		name := LabelFileName(path)
		if taken[name] {
			base := filepath.Base(path)
			ext := filepath.Ext(base)
			alt := strings.TrimSuffix(base, ext) + "_" + strings.TrimPrefix(ext, ".") + ".txt"
			log.Printf("Warning: label %s already used, writing %s labels to %s", name, base, alt)
			name = alt
		}
		taken[name] = true
		names[path] = name
	}
	return names
}
