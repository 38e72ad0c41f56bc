package header

import "strings"

// Marker is the two-character prefix of a metadata line. The first line
// without it ends the header section.
const Marker = "##"

// The five structured tag names. Matching is exact and case-sensitive.
const (
	TagInfo   = "INFO"
	TagFilter = "FILTER"
	TagAlt    = "ALT"
	TagFormat = "FORMAT"
	TagContig = "contig"
)

// LineKind is the routing decision for one metadata line.
type LineKind uint8

const (
	LineGeneric LineKind = iota
	LineInfo
	LineFilter
	LineAlt
	LineFormat
	LineContig
)

// Classify inspects the text between the marker and the first "=" and routes
// the line to its structured grammar, or to the generic fallback when the
// tag is not one of the five known names. Pure; the caller guarantees the
// line starts with Marker.
func Classify(line string) LineKind {
	rest := strings.TrimPrefix(line, Marker)
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return LineGeneric
	}
	switch rest[:eq] {
	case TagInfo:
		return LineInfo
	case TagFilter:
		return LineFilter
	case TagAlt:
		return LineAlt
	case TagFormat:
		return LineFormat
	case TagContig:
		return LineContig
	}
	return LineGeneric
}

func (k LineKind) String() string {
	switch k {
	case LineInfo:
		return TagInfo
	case LineFilter:
		return TagFilter
	case LineAlt:
		return TagAlt
	case LineFormat:
		return TagFormat
	case LineContig:
		return TagContig
	}
	return "generic"
}
