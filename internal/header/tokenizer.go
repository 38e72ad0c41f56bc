package header

// Attribute is a single key/value pair from a bracketed attribute body.
type Attribute struct {
	Key   string
	Value string
}

// Attributes holds a line's attributes in first-seen order.
type Attributes []Attribute

// Get returns the value of the first attribute with the given key.
func (as Attributes) Get(key string) (string, bool) {
	for _, a := range as {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Tokenizer states. Only three transitions matter: "=" ends a key, an
// unquoted "," commits a pair, and a quote opening an empty value buffer
// suspends comma splitting until the quote closes.
const (
	readingKey = iota
	readingValue
	readingQuotedValue
)

// SplitAttributes splits the body of a bracketed header line (the text
// between the outer delimiters) into ordered key/value pairs. Commas split
// pairs only outside double quotes, and the quote characters stay part of
// the value, so a quoted literal round-trips unchanged. At end of input a
// pending pair is committed as long as its key is non-empty, which tolerates
// bodies without a trailing comma.
func SplitAttributes(body string) Attributes {
	var (
		attrs Attributes
		key   []byte
		value []byte
		state = readingKey
	)
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch state {
		case readingKey:
			if c == '=' {
				state = readingValue
				continue
			}
			key = append(key, c)
		case readingValue:
			switch {
			case c == '"' && len(value) == 0:
				value = append(value, c)
				state = readingQuotedValue
			case c == ',':
				attrs = append(attrs, Attribute{Key: string(key), Value: string(value)})
				key = key[:0]
				value = value[:0]
				state = readingKey
			default:
				value = append(value, c)
			}
		case readingQuotedValue:
			value = append(value, c)
			if c == '"' {
				state = readingValue
			}
		}
	}
	if len(key) > 0 {
		attrs = append(attrs, Attribute{Key: string(key), Value: string(value)})
	}
	return attrs
}
