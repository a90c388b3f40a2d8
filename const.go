package sampleavg

// Header defaults used when no dimensions or max value are configured.
const (
	DefaultWidth    = 400
	DefaultHeight   = 400
	DefaultMaxValue = 255
)

// MaxPreviewPixels bounds the raster allocated for previews.
const MaxPreviewPixels = 1 << 25

const (
	ppmMagic    = "P3"
	headerLines = 3
)

const (
	displayGamma = 2.2
	// Added to maxValue before truncation so that 1.0 maps to maxValue.
	encodeSlack = 0.999
)
