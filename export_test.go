package sampleavg

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

func testMerged() *Merged {
	m := &Merged{Header: Header{Magic: ppmMagic, Width: 4, Height: 2, MaxValue: 255}}
	for i := 0; i < 8; i++ {
		m.Lines = append(m.Lines, Line{RGB: [3]Channel{Channel(i * 30), 0, 0}})
	}
	return m
}

func TestPreviewFormatFromPath(t *testing.T) {
	for path, want := range map[string]PreviewFormat{
		"a.png":     PreviewPNG,
		"a.PNG":     PreviewPNG,
		"dir/b.tif": PreviewTIFF,
		"b.tiff":    PreviewTIFF,
		"c.ppm":     PreviewPNM,
		"c.PNM":     PreviewPNM,
	} {
		got, err := PreviewFormatFromPath(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if got != want {
			t.Fatalf("%s: got %d want %d", path, got, want)
		}
	}

	if _, err := PreviewFormatFromPath("a.jpg"); err == nil {
		t.Fatal("expected error for jpg")
	}
}

func TestEncodePreviewPNG(t *testing.T) {
	src, err := testMerged().Image()
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodePreview(&buf, src, PreviewPNG); err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, _, _, _ := img.At(3, 1).RGBA()
	if r>>8 != 210 {
		t.Fatalf("unexpected red %d", r>>8)
	}
}

func TestWritePreviewFile(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "preview.png")
	if err := WritePreviewFile(pngPath, testMerged()); err != nil {
		t.Fatalf("write png: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode png config: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 2 {
		t.Fatalf("unexpected png size %dx%d", cfg.Width, cfg.Height)
	}

	tiffPath := filepath.Join(dir, "preview.tiff")
	err = WritePreviewFile(tiffPath, testMerged(), func(o *PreviewOptions) {
		o.Width = 8
		o.Interpolation = InterpolationBicubic
	})
	if err != nil {
		t.Fatalf("write tiff: %v", err)
	}
	data, err := os.ReadFile(tiffPath)
	if err != nil {
		t.Fatal(err)
	}
	img, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode tiff: %v", err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 8, 4) {
		t.Fatalf("unexpected tiff bounds %v", b)
	}

	if err := WritePreviewFile(filepath.Join(dir, "preview.bmp"), testMerged()); err == nil {
		t.Fatal("expected error for bmp")
	}
}

func TestWritePreviewFilePNM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.ppm")
	if err := WritePreviewFile(path, testMerged()); err != nil {
		t.Fatalf("write ppm: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("P6")) {
		t.Fatalf("expected binary PPM, got %q", data[:2])
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode ppm: %v", err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 4, 2) {
		t.Fatalf("unexpected bounds %v", b)
	}
	r, _, _, _ := img.At(3, 1).RGBA()
	if r>>8 != 210 {
		t.Fatalf("unexpected red %d", r>>8)
	}
}

func TestWritePreviewFileTooLarge(t *testing.T) {
	dir := t.TempDir()

	huge := &Merged{Header: Header{Magic: ppmMagic, Width: 3037000500, Height: 3037000500, MaxValue: 255}}
	err := WritePreviewFile(filepath.Join(dir, "huge.png"), huge)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}

	// The merged raster fits, the resized one does not.
	err = WritePreviewFile(filepath.Join(dir, "upscaled.png"), testMerged(), func(o *PreviewOptions) {
		o.Width = MaxPreviewPixels
	})
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "huge.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("preview file should not be created, stat: %v", err)
	}
}
