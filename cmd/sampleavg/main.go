package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/vearutop/sampleavg"
	"github.com/vearutop/sampleavg/internal/config"
)

var errShapeMismatch = errors.New("source shapes differ")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "merge":
		if err := runMerge(os.Args[2:], os.Stdout); err != nil {
			fail(err)
		}
	case "check":
		if err := runCheck(os.Args[2:], os.Stdout); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: sampleavg <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  merge [-config merge.json] [-w 400] [-h 400] [-max 255] [-out merged.ppm] [-preview p.png|p.tiff|p.ppm] [-preview-w 800] [-preview-h 0] [-interp bilinear] [-v] sample1.ppm sample2.ppm ...")
	fmt.Fprintln(os.Stderr, "  check sample1.ppm sample2.ppm ...")
}

func runMerge(args []string, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config with input_files, width, height, max_value")
	defaults := config.Default()
	width := fs.Int("w", defaults.Width, "header width")
	height := fs.Int("h", defaults.Height, "header height")
	maxValue := fs.Int("max", defaults.MaxValue, "maximum channel value")
	outPath := fs.String("out", "", "write merged PPM to file instead of stdout")
	previewPath := fs.String("preview", "", "write PNG, TIFF or binary PPM preview")
	previewW := fs.Uint("preview-w", 0, "preview width, 0 keeps aspect ratio")
	previewH := fs.Uint("preview-h", 0, "preview height, 0 keeps aspect ratio")
	interpName := fs.String("interp", "bilinear", "preview interpolation: nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3")
	verbose := fs.Bool("v", false, "log progress to stderr")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "sampleavg: ", log.LstdFlags)
	}

	cfg := defaults
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
		logger.Printf("loaded config %s", *configPath)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			cfg.Width = *width
		case "h":
			cfg.Height = *height
		case "max":
			cfg.MaxValue = *maxValue
		}
	})
	if fs.NArg() > 0 {
		cfg.InputFiles = fs.Args()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	interp, err := sampleavg.ParseInterpolation(*interpName)
	if err != nil {
		return err
	}

	start := time.Now()
	opts := append(cfg.Options(), func(o *sampleavg.Options) {
		o.OnSource = func(index int, src *sampleavg.SourceImage) {
			logger.Printf("source %d: %s, %d lines", index, src.Path, len(src.Lines))
		}
	})
	merged, err := sampleavg.MergeFiles(cfg.InputFiles, opts...)
	if err != nil {
		return err
	}
	logger.Printf("merged %d sources into %d lines (%d pixels) in %s",
		len(cfg.InputFiles), len(merged.Lines), merged.PixelCount(), time.Since(start))

	if *outPath == "" {
		if _, err := merged.WriteTo(stdout); err != nil {
			return err
		}
	} else {
		if err := writeFile(*outPath, merged); err != nil {
			return err
		}
		logger.Printf("wrote %s", *outPath)
	}

	if *previewPath != "" {
		if err := sampleavg.WritePreviewFile(*previewPath, merged, func(o *sampleavg.PreviewOptions) {
			o.Width = *previewW
			o.Height = *previewH
			o.Interpolation = interp
		}); err != nil {
			return err
		}
		logger.Printf("wrote preview %s", *previewPath)
	}

	return nil
}

func runCheck(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("missing required arguments")
	}

	sources := make([]*sampleavg.SourceImage, 0, fs.NArg())
	for _, p := range fs.Args() {
		src, err := sampleavg.ReadSourceFile(p)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		sources = append(sources, src)
		fmt.Fprintf(stdout, "%s: %d lines\n", p, len(src.Lines))
	}

	mismatches := sampleavg.CheckShapes(sources)
	for _, m := range mismatches {
		fmt.Fprintln(stdout, m)
	}
	if len(mismatches) > 0 {
		return errShapeMismatch
	}
	fmt.Fprintln(stdout, "ok")
	return nil
}

func writeFile(path string, m *sampleavg.Merged) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = m.WriteTo(f)
	return err
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
