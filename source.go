package sampleavg

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SourceImage is one sample file held in memory as newline-delimited lines.
type SourceImage struct {
	Path  string
	Lines []string
}

// ReadSourceFile reads a sample file and splits it into lines.
func ReadSourceFile(path string) (*SourceImage, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return ParseSource(path, data), nil
}

// ParseSource splits data on '\n'. A trailing newline leaves a final empty
// line, which is kept.
func ParseSource(path string, data []byte) *SourceImage {
	return &SourceImage{
		Path:  path,
		Lines: strings.Split(string(data), "\n"),
	}
}

// Header returns the header lines (at most three).
func (s *SourceImage) Header() []string {
	if len(s.Lines) < headerLines {
		return s.Lines
	}
	return s.Lines[:headerLines]
}

// Pixels returns the lines following the header.
func (s *SourceImage) Pixels() []string {
	if len(s.Lines) <= headerLines {
		return nil
	}
	return s.Lines[headerLines:]
}

// line returns the line at i, and false if the source is too short.
func (s *SourceImage) line(i int) (string, bool) {
	if i < 0 || i >= len(s.Lines) {
		return "", false
	}
	return s.Lines[i], true
}

// IsBlankLine reports whether a data line is a row separator.
func IsBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ParsePixelLine parses "r g b" separated by single spaces. Tokens that are
// missing or not numbers become NaN.
func ParsePixelLine(line string) Pixel {
	tokens := strings.Split(strings.TrimRight(line, "\r"), " ")
	return Pixel{
		R: parseToken(tokens, 0),
		G: parseToken(tokens, 1),
		B: parseToken(tokens, 2),
	}
}

func parseToken(tokens []string, i int) float64 {
	if i >= len(tokens) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(tokens[i]), 64)
	// Out of range values come back as ±Inf with ErrRange.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}
