package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/char-annotate/internal/annotate"
	"github.com/ironsheep/char-annotate/internal/config"
	"github.com/ironsheep/char-annotate/internal/ocr"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// versioner is implemented by engines that can report the OCR version.
type versioner interface {
	Version(ctx context.Context) (string, error)
}

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("char-annotate %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		log.Printf("Configuration error: %v", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := ocr.New(cfg.Engine, cfg.EngineOptions())
	if err != nil {
		log.Printf("OCR engine error: %v", err)
		return 1
	}

	if cfg.Debug {
		log.Printf("char-annotate v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		if v, ok := engine.(versioner); ok {
			if version, err := v.Version(ctx); err != nil {
				log.Printf("Could not query %s version: %v", engine.Name(), err)
			} else {
				log.Printf("Using %s engine: %s", engine.Name(), version)
			}
		}
		log.Printf("Input: %s, output: %s", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.Geometry == annotate.GeometryLegacy {
		log.Printf("Warning: legacy geometry selected; labels reproduce the old box arithmetic and are not accurate")
	}

	pipeline := annotate.NewPipeline(engine,
		annotate.WithBoxColor(cfg.BoxColor),
		annotate.WithGeometry(cfg.Geometry),
		annotate.WithDebug(cfg.Debug),
	)

	summary, err := annotate.RunBatch(ctx, pipeline, cfg.InputDir, cfg.OutputDir)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("Interrupted after %d images", len(summary.Processed))
			return 130
		}
		log.Printf("Batch error: %v", err)
		return 1
	}

	if len(summary.Processed) == 0 && summary.OK() {
		log.Printf("No images found in %s", cfg.InputDir)
		return 0
	}

	if !summary.OK() {
		log.Printf("Processed %d images, %d failed", len(summary.Processed), len(summary.Failures))
		for _, f := range summary.Failures {
			log.Printf("  %v", f)
		}
		return 1
	}

	if cfg.Debug {
		log.Printf("Processed %d images", len(summary.Processed))
	}
	return 0
}

func printHelp() {
	fmt.Println("char-annotate - draw character boxes and write detection labels for plate images")
	fmt.Println()
	fmt.Println("Usage: char-annotate [options] [input_dir [output_dir]]")
	fmt.Println()
	fmt.Printf("  input_dir     Directory of .jpg/.jpeg/.png images (default %s)\n", config.DefaultInputDir)
	fmt.Printf("  output_dir    Directory for annotated images and labels (default %s)\n", config.DefaultOutputDir)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Printf("  %s, %s    Directory defaults\n", config.EnvInputDir, config.EnvOutputDir)
	fmt.Printf("  %s=%s    OCR engine (available: %v)\n", config.EnvEngine, config.DefaultEngine, ocr.Engines())
	fmt.Printf("  %s=tesseract    Path to the tesseract executable (tesseract engine)\n", config.EnvTesseractCmd)
	fmt.Printf("  %s=eng    Tesseract language\n", config.EnvLanguage)
	fmt.Printf("  %s    Directory of *.traineddata files\n", config.EnvTessdataDir)
	fmt.Printf("  %s=#00FF00    Outline colour\n", config.EnvBoxColor)
	fmt.Printf("  %s=corners    Box conversion (corners or legacy)\n", config.EnvGeometry)
	fmt.Printf("  %s=debug    Enable debug logging\n", config.EnvLogLevel)
}
