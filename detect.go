package sampleavg

import "fmt"

// ShapeMismatch describes how a source differs from the first source.
type ShapeMismatch struct {
	Index int    // position of the source in the merge list
	Path  string // source path
	// Line is the first line index whose blankness differs, or -1 when only
	// the line counts differ.
	Line      int
	LineCount int
	WantCount int
}

func (s ShapeMismatch) String() string {
	if s.Line < 0 {
		return fmt.Sprintf("source %d (%s): %d lines, want %d", s.Index, s.Path, s.LineCount, s.WantCount)
	}
	return fmt.Sprintf("source %d (%s): blank line mismatch at line %d", s.Index, s.Path, s.Line)
}

// CheckShapes reports sources whose line count or blank-line positions
// differ from the first source. Merge does not call it; mismatched sets still
// merge, bounded by the first source.
func CheckShapes(sources []*SourceImage) []ShapeMismatch {
	if len(sources) < 2 {
		return nil
	}
	first := sources[0]
	var res []ShapeMismatch
	for i, src := range sources[1:] {
		index := i + 1
		if len(src.Lines) != len(first.Lines) {
			res = append(res, ShapeMismatch{
				Index:     index,
				Path:      src.Path,
				Line:      -1,
				LineCount: len(src.Lines),
				WantCount: len(first.Lines),
			})
			continue
		}
		for j := headerLines; j < len(first.Lines); j++ {
			if IsBlankLine(first.Lines[j]) != IsBlankLine(src.Lines[j]) {
				res = append(res, ShapeMismatch{
					Index:     index,
					Path:      src.Path,
					Line:      j,
					LineCount: len(src.Lines),
					WantCount: len(first.Lines),
				})
				break
			}
		}
	}
	return res
}
