package sampleavg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrImageTooLarge is returned when a raster would exceed MaxPreviewPixels.
var ErrImageTooLarge = errors.New("image too large")

func checkPixels(w, h uint64) error {
	if w == 0 || h == 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", w, h)
	}
	if w > MaxPreviewPixels || h > MaxPreviewPixels/w {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, w, h, MaxPreviewPixels)
	}
	return nil
}

// Image lays the merged pixels out row-major over Header.Width x
// Header.Height. Row separators are skipped, pixels past the last row are
// dropped and missing pixels stay black. Channels are rescaled to 8 bits and
// invalid channels become 0.
func (m *Merged) Image() (*image.RGBA, error) {
	w, h := m.Header.Width, m.Header.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", w, h)
	}
	if err := checkPixels(uint64(w), uint64(h)); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	i := 0
	for _, l := range m.Lines {
		if l.Blank {
			continue
		}
		if i >= w*h {
			break
		}
		img.SetRGBA(i%w, i/w, color.RGBA{
			R: to8(l.RGB[0], m.Header.MaxValue),
			G: to8(l.RGB[1], m.Header.MaxValue),
			B: to8(l.RGB[2], m.Header.MaxValue),
			A: 0xff,
		})
		i++
	}
	return img, nil
}

func to8(c Channel, maxValue int) uint8 {
	if c < 0 || maxValue <= 0 {
		return 0
	}
	if maxValue == 0xff {
		return uint8(c)
	}
	v := int(c) * 0xff / maxValue
	if v > 0xff {
		v = 0xff
	}
	return uint8(v)
}
