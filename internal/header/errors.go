package header

import "fmt"

// MalformedLineError reports a line that matched one of the five structured
// tags but failed that tag's grammar. It carries the raw line so callers can
// surface it unchanged.
type MalformedLineError struct {
	Tag  string // INFO, FILTER, ALT, FORMAT or contig
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed %s line: %s", e.Tag, e.Line)
}

// InvalidFieldCountError reports a Number attribute whose token is neither a
// special code nor an integer literal.
type InvalidFieldCountError struct {
	Token string
}

func (e *InvalidFieldCountError) Error() string {
	return fmt.Sprintf("invalid Number token %q", e.Token)
}
