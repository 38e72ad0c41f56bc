package header

import "strings"

// NoValue is the placeholder stored for a metadata line with no "=" at all,
// e.g. "##custom".
const NoValue = "none"

// Info is a ##INFO declaration.
type Info struct {
	ID          string
	Number      FieldCount
	Type        ValueType
	Description string
	Source      string // "" if not present
	Version     string // "" if not present
}

// Filter is a ##FILTER declaration.
type Filter struct {
	ID          string
	Description string
}

// Alt is a ##ALT declaration.
type Alt struct {
	ID          string
	Description string
}

// Format is a ##FORMAT declaration.
type Format struct {
	ID          string
	Number      FieldCount
	Type        ValueType
	Description string
}

// Contig is a ##contig declaration. The grammar keeps only ID and length;
// anything else on the line is discarded.
type Contig struct {
	ID     string
	Length int64 // -1 if not declared
}

// HasLength reports whether the declaration carried a usable length.
func (c Contig) HasLength() bool {
	return c.Length >= 0
}

// Generic is any metadata line outside the five structured tags. A bracketed
// line keeps its ordered attribute sequence in Attributes with Value empty;
// a scalar line carries Value with Attributes nil.
type Generic struct {
	Key        string
	Value      string
	Attributes Attributes
}

// Text flattens the record to a single string. A bracketed record is
// re-rendered from its attribute sequence so the bracketed shape survives
// the round trip.
func (g Generic) Text() string {
	if g.Attributes == nil {
		return g.Value
	}
	parts := make([]string, 0, len(g.Attributes))
	for _, a := range g.Attributes {
		parts = append(parts, a.Key+"="+a.Value)
	}
	return "<" + strings.Join(parts, ",") + ">"
}
