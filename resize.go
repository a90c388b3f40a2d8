package sampleavg

import (
	"fmt"
	"image"
	"strings"

	"github.com/nfnt/resize"
)

// Interpolation selects the resampling filter used for previews.
type Interpolation int

const (
	// InterpolationNearest is nearest-neighbor sampling.
	InterpolationNearest Interpolation = iota
	// InterpolationBilinear is linear sampling.
	InterpolationBilinear
	// InterpolationBicubic is cubic sampling.
	InterpolationBicubic
	// InterpolationMitchellNetravali is Mitchell-Netravali sampling.
	InterpolationMitchellNetravali
	// InterpolationLanczos2 is Lanczos sampling with a=2.
	InterpolationLanczos2
	// InterpolationLanczos3 is Lanczos sampling with a=3.
	InterpolationLanczos3
)

var interpolationNames = map[string]Interpolation{
	"nearest":  InterpolationNearest,
	"bilinear": InterpolationBilinear,
	"bicubic":  InterpolationBicubic,
	"mitchell": InterpolationMitchellNetravali,
	"lanczos2": InterpolationLanczos2,
	"lanczos3": InterpolationLanczos3,
}

// ParseInterpolation resolves a filter name such as "bilinear" or "lanczos3".
func ParseInterpolation(name string) (Interpolation, error) {
	interp, ok := interpolationNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown interpolation %q", name)
	}
	return interp, nil
}

func (i Interpolation) filter() resize.InterpolationFunction {
	switch i {
	case InterpolationBilinear:
		return resize.Bilinear
	case InterpolationBicubic:
		return resize.Bicubic
	case InterpolationMitchellNetravali:
		return resize.MitchellNetravali
	case InterpolationLanczos2:
		return resize.Lanczos2
	case InterpolationLanczos3:
		return resize.Lanczos3
	default:
		return resize.NearestNeighbor
	}
}

// ResizePreview scales img to width x height. A zero width or height keeps
// the aspect ratio, both zero returns img unchanged.
func ResizePreview(img image.Image, width, height uint, interp Interpolation) image.Image {
	if width == 0 && height == 0 {
		return img
	}
	return resize.Resize(width, height, img, interp.filter())
}

// previewSize returns the dimensions ResizePreview produces for a srcW x srcH
// image, rounding the derived side the same way nfnt/resize does.
func previewSize(srcW, srcH int, width, height uint) (uint64, uint64) {
	switch {
	case width == 0 && height == 0:
		return uint64(srcW), uint64(srcH)
	case width == 0:
		scale := float64(srcH) / float64(height)
		return uint64(0.7 + float64(srcW)/scale), uint64(height)
	case height == 0:
		scale := float64(srcW) / float64(width)
		return uint64(width), uint64(0.7 + float64(srcH)/scale)
	default:
		return uint64(width), uint64(height)
	}
}
