package sampleavg

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	pnm "github.com/jbuchbinder/gopnm"
)

// PreviewFormat is the raster format of a preview file.
type PreviewFormat int

const (
	PreviewPNG PreviewFormat = iota
	PreviewTIFF
	PreviewPNM // binary P6
)

// PreviewOptions controls preview export.
type PreviewOptions struct {
	Width         uint // target width, 0 keeps aspect ratio
	Height        uint // target height, 0 keeps aspect ratio
	Interpolation Interpolation
}

// PreviewFormatFromPath picks the format from the file extension.
func PreviewFormatFromPath(path string) (PreviewFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PreviewPNG, nil
	case ".tif", ".tiff":
		return PreviewTIFF, nil
	case ".ppm", ".pnm":
		return PreviewPNM, nil
	default:
		return 0, fmt.Errorf("unsupported preview extension %q", filepath.Ext(path))
	}
}

// EncodePreview writes img in the given format.
func EncodePreview(w io.Writer, img image.Image, format PreviewFormat) error {
	switch format {
	case PreviewPNG:
		return png.Encode(w, img)
	case PreviewTIFF:
		return encodeTIFF(w, img)
	case PreviewPNM:
		return pnm.Encode(w, img, pnm.PPM)
	default:
		return errors.New("unknown preview format")
	}
}

// WritePreviewFile renders m as a raster image, resizes it if requested and
// writes it to path.
func WritePreviewFile(path string, m *Merged, opts ...func(o *PreviewOptions)) (err error) {
	format, err := PreviewFormatFromPath(path)
	if err != nil {
		return err
	}

	opt := PreviewOptions{Interpolation: InterpolationBilinear}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	src, err := m.Image()
	if err != nil {
		return err
	}
	if err := checkPixels(previewSize(src.Bounds().Dx(), src.Bounds().Dy(), opt.Width, opt.Height)); err != nil {
		return err
	}
	img := ResizePreview(src, opt.Width, opt.Height, opt.Interpolation)

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := EncodePreview(f, img, format); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}
