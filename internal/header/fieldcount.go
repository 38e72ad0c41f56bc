package header

import "strconv"

// FieldCount describes how many values an INFO or FORMAT field carries per
// record, as declared by the Number attribute. Non-negative values are
// literal fixed counts; the record-relative codes are negative sentinels.
type FieldCount int

// Record-relative cardinality codes, one per special Number token.
const (
	PerAltAllele          FieldCount = -1 * (1 + iota) // Number=A
	PerGenotype                                        // Number=G
	PerAlleleIncludingRef                              // Number=R
	UnknownCount                                       // Number=.
)

// ParseFieldCount converts a Number attribute token into a FieldCount.
// Besides the four special tokens the token may be a signed integer literal;
// anything else yields an *InvalidFieldCountError carrying the token.
func ParseFieldCount(token string) (FieldCount, error) {
	switch token {
	case "A":
		return PerAltAllele, nil
	case "G":
		return PerGenotype, nil
	case "R":
		return PerAlleleIncludingRef, nil
	case ".":
		return UnknownCount, nil
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &InvalidFieldCountError{Token: token}
	}
	return FieldCount(n), nil
}

// IsFixed reports whether c is a literal per-record count rather than one of
// the record-relative codes.
func (c FieldCount) IsFixed() bool {
	return c >= 0
}

// String renders the count the way it appears in a header line.
func (c FieldCount) String() string {
	switch c {
	case PerAltAllele:
		return "A"
	case PerGenotype:
		return "G"
	case PerAlleleIncludingRef:
		return "R"
	case UnknownCount:
		return "."
	}
	return strconv.Itoa(int(c))
}
