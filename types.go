package sampleavg

import "strconv"

// Pixel stores one linear-light RGB triple as read from a sample file.
type Pixel struct {
	R, G, B float64
}

// Channel is a display-encoded channel value in [0, MaxValue].
type Channel int

// InvalidChannel marks a channel whose linear input was not a number.
const InvalidChannel Channel = -1

func (c Channel) String() string {
	if c < 0 {
		return "NaN"
	}
	return strconv.Itoa(int(c))
}

// Line is one data line of the merged image: either a row separator or an
// encoded pixel.
type Line struct {
	Blank bool
	RGB   [3]Channel
}

// Header describes the plain PPM header emitted before the data lines.
type Header struct {
	Magic    string
	Width    int
	Height   int
	MaxValue int
}

// Options controls merging and the emitted header.
type Options struct {
	Width    int // header width, default DefaultWidth
	Height   int // header height, default DefaultHeight
	MaxValue int // maximum channel value, default DefaultMaxValue
	// OnSource is called once for every source, in order, before any line
	// is accumulated. May be nil.
	OnSource func(index int, src *SourceImage)
}

// WithDimensions sets the header dimensions.
func WithDimensions(width, height int) func(o *Options) {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithMaxValue sets the maximum channel value.
func WithMaxValue(maxValue int) func(o *Options) {
	return func(o *Options) {
		o.MaxValue = maxValue
	}
}
