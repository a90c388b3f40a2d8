package sampleavg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ErrNoSources is returned when there is nothing to merge.
var ErrNoSources = errors.New("no source images")

// Merged is the averaged, display-encoded image.
type Merged struct {
	Header Header
	Lines  []Line
}

// Merge averages corresponding data lines of all sources and encodes them.
//
// Iteration starts after the header and is bounded by the first source. A
// line that is blank in the first source is emitted as a row separator. Every
// source takes part in the average and the divisor is the number of sources.
// Shape mismatches are not reported here, see CheckShapes.
func Merge(sources []*SourceImage, opts ...func(o *Options)) (*Merged, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for i, src := range sources {
		if src == nil {
			return nil, fmt.Errorf("source %d is nil", i)
		}
	}

	opt := Options{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxValue: DefaultMaxValue,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", opt.Width, opt.Height)
	}
	if opt.MaxValue <= 0 {
		return nil, fmt.Errorf("invalid max value %d", opt.MaxValue)
	}

	if opt.OnSource != nil {
		for i, src := range sources {
			opt.OnSource(i, src)
		}
	}

	first := sources[0]
	n := len(first.Lines) - headerLines
	if n < 0 {
		n = 0
	}

	m := &Merged{
		Header: Header{
			Magic:    ppmMagic,
			Width:    opt.Width,
			Height:   opt.Height,
			MaxValue: opt.MaxValue,
		},
		Lines: make([]Line, 0, n),
	}
	divisor := float64(len(sources))

	for i := headerLines; i < len(first.Lines); i++ {
		if IsBlankLine(first.Lines[i]) {
			m.Lines = append(m.Lines, Line{Blank: true})
			continue
		}

		var sum Pixel
		for _, src := range sources {
			l, ok := src.line(i)
			if !ok {
				sum.R, sum.G, sum.B = math.NaN(), math.NaN(), math.NaN()
				break
			}
			p := ParsePixelLine(l)
			sum.R += p.R
			sum.G += p.G
			sum.B += p.B
		}

		avg := Pixel{R: sum.R / divisor, G: sum.G / divisor, B: sum.B / divisor}
		m.Lines = append(m.Lines, Line{RGB: encodePixel(avg, opt.MaxValue)})
	}

	return m, nil
}

// MergeFiles loads every path with ReadSourceFile and merges the result.
func MergeFiles(paths []string, opts ...func(o *Options)) (*Merged, error) {
	if len(paths) == 0 {
		return nil, ErrNoSources
	}
	sources := make([]*SourceImage, 0, len(paths))
	for _, p := range paths {
		src, err := ReadSourceFile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		sources = append(sources, src)
	}
	return Merge(sources, opts...)
}

// WriteTo writes the merged image as plain PPM text: three header lines, then
// one line per data line. Blank lines are written empty.
func (m *Merged) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	bw.WriteString(m.Header.Magic)
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(m.Header.Width))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(m.Header.Height))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(m.Header.MaxValue))
	bw.WriteByte('\n')

	for _, l := range m.Lines {
		if !l.Blank {
			bw.WriteString(l.RGB[0].String())
			bw.WriteByte(' ')
			bw.WriteString(l.RGB[1].String())
			bw.WriteByte(' ')
			bw.WriteString(l.RGB[2].String())
		}
		if err := bw.WriteByte('\n'); err != nil {
			return cw.n, err
		}
	}

	err := bw.Flush()
	return cw.n, err
}

// PixelCount returns the number of non-blank lines.
func (m *Merged) PixelCount() int {
	n := 0
	for _, l := range m.Lines {
		if !l.Blank {
			n++
		}
	}
	return n
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
