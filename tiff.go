package sampleavg

import (
	"image"
	"io"

	"golang.org/x/image/tiff"
)

// encodeTIFF writes img as a Deflate-compressed TIFF.
func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}
