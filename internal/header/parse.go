package header

import (
	"fmt"
	"strconv"
	"strings"
)

// Field lists per structured tag. Lookup is order-independent; an attribute
// outside the tag's list makes the line malformed, except for contig where
// extras are discarded.
var (
	infoFields   = []string{"ID", "Number", "Type", "Description", "Source", "Version"}
	filterFields = []string{"ID", "Description"}
	formatFields = []string{"ID", "Number", "Type", "Description"}
)

// structuredBody strips the ##TAG=<...> shell and returns the attribute body.
func structuredBody(line, tag string) (string, bool) {
	prefix := Marker + tag + "=<"
	if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, ">") {
		return "", false
	}
	return line[len(prefix) : len(line)-1], true
}

// fieldValue finds the first attribute with the given key, tolerating
// whitespace between the separating comma and the key.
func fieldValue(attrs Attributes, key string) (string, bool) {
	for _, a := range attrs {
		if strings.TrimLeft(a.Key, " \t") == key {
			return a.Value, true
		}
	}
	return "", false
}

// onlyFields reports whether every attribute key is in the tag's field list.
func onlyFields(attrs Attributes, fields []string) bool {
	for _, a := range attrs {
		key := strings.TrimLeft(a.Key, " \t")
		known := false
		for _, f := range fields {
			if key == f {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}

// unquote strips the surrounding double quotes of an attribute value. ok is
// false when the value is not a complete quoted literal.
func unquote(v string) (string, bool) {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return "", false
	}
	return v[1 : len(v)-1], true
}

// trimQuotes strips surrounding quotes when present and otherwise returns the
// value untouched. The Version attribute may be quoted or bare.
func trimQuotes(v string) string {
	if s, ok := unquote(v); ok {
		return s
	}
	return v
}

// ParseInfo parses a ##INFO declaration. ID, Number, Type and Description
// are required; Source and Version are optional.
func ParseInfo(line string) (Info, error) {
	malformed := &MalformedLineError{Tag: TagInfo, Line: line}
	body, ok := structuredBody(line, TagInfo)
	if !ok {
		return Info{}, malformed
	}
	attrs := SplitAttributes(body)
	if !onlyFields(attrs, infoFields) {
		return Info{}, malformed
	}
	id, ok := fieldValue(attrs, "ID")
	if !ok || id == "" {
		return Info{}, malformed
	}
	token, ok := fieldValue(attrs, "Number")
	if !ok {
		return Info{}, malformed
	}
	number, err := ParseFieldCount(token)
	if err != nil {
		return Info{}, fmt.Errorf("INFO %s: %w", id, err)
	}
	name, ok := fieldValue(attrs, "Type")
	if !ok {
		return Info{}, malformed
	}
	typ, ok := ParseValueType(name)
	if !ok {
		return Info{}, malformed
	}
	quoted, ok := fieldValue(attrs, "Description")
	if !ok {
		return Info{}, malformed
	}
	description, ok := unquote(quoted)
	if !ok {
		return Info{}, malformed
	}
	info := Info{ID: id, Number: number, Type: typ, Description: description}
	if v, ok := fieldValue(attrs, "Source"); ok {
		s, ok := unquote(v)
		if !ok {
			return Info{}, malformed
		}
		info.Source = s
	}
	if v, ok := fieldValue(attrs, "Version"); ok {
		info.Version = trimQuotes(v)
	}
	return info, nil
}

// ParseFormat parses a ##FORMAT declaration. All four fields are required.
func ParseFormat(line string) (Format, error) {
	malformed := &MalformedLineError{Tag: TagFormat, Line: line}
	body, ok := structuredBody(line, TagFormat)
	if !ok {
		return Format{}, malformed
	}
	attrs := SplitAttributes(body)
	if !onlyFields(attrs, formatFields) {
		return Format{}, malformed
	}
	id, ok := fieldValue(attrs, "ID")
	if !ok || id == "" {
		return Format{}, malformed
	}
	token, ok := fieldValue(attrs, "Number")
	if !ok {
		return Format{}, malformed
	}
	number, err := ParseFieldCount(token)
	if err != nil {
		return Format{}, fmt.Errorf("FORMAT %s: %w", id, err)
	}
	name, ok := fieldValue(attrs, "Type")
	if !ok {
		return Format{}, malformed
	}
	typ, ok := ParseValueType(name)
	if !ok {
		return Format{}, malformed
	}
	quoted, ok := fieldValue(attrs, "Description")
	if !ok {
		return Format{}, malformed
	}
	description, ok := unquote(quoted)
	if !ok {
		return Format{}, malformed
	}
	return Format{ID: id, Number: number, Type: typ, Description: description}, nil
}

// parseIDDescription handles the shared FILTER/ALT grammar: a required ID
// and a required quoted Description, nothing else.
func parseIDDescription(line, tag string) (string, string, error) {
	malformed := &MalformedLineError{Tag: tag, Line: line}
	body, ok := structuredBody(line, tag)
	if !ok {
		return "", "", malformed
	}
	attrs := SplitAttributes(body)
	if !onlyFields(attrs, filterFields) {
		return "", "", malformed
	}
	id, ok := fieldValue(attrs, "ID")
	if !ok || id == "" {
		return "", "", malformed
	}
	quoted, ok := fieldValue(attrs, "Description")
	if !ok {
		return "", "", malformed
	}
	description, ok := unquote(quoted)
	if !ok {
		return "", "", malformed
	}
	return id, description, nil
}

// ParseFilter parses a ##FILTER declaration.
func ParseFilter(line string) (Filter, error) {
	id, description, err := parseIDDescription(line, TagFilter)
	if err != nil {
		return Filter{}, err
	}
	return Filter{ID: id, Description: description}, nil
}

// ParseAlt parses a ##ALT declaration.
func ParseAlt(line string) (Alt, error) {
	id, description, err := parseIDDescription(line, TagAlt)
	if err != nil {
		return Alt{}, err
	}
	return Alt{ID: id, Description: description}, nil
}

// ParseContig parses a ##contig declaration. ID is required; length is kept
// when present and integral; every other attribute is discarded.
func ParseContig(line string) (Contig, error) {
	body, ok := structuredBody(line, TagContig)
	if !ok {
		return Contig{}, &MalformedLineError{Tag: TagContig, Line: line}
	}
	attrs := SplitAttributes(body)
	id, ok := fieldValue(attrs, "ID")
	if !ok || id == "" {
		return Contig{}, &MalformedLineError{Tag: TagContig, Line: line}
	}
	contig := Contig{ID: id, Length: -1}
	if v, ok := fieldValue(attrs, "length"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			contig.Length = n
		}
	}
	return contig, nil
}

// ParseGeneric parses any metadata line outside the five structured tags. It
// never fails: a line without "=" degrades to its text with the hash marks
// stripped, keyed against the NoValue sentinel, which keeps non-conformant
// vendor extensions out of the error path.
func ParseGeneric(line string) Generic {
	rest := strings.TrimPrefix(line, Marker)
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return Generic{Key: strings.TrimLeft(line, "#"), Value: NoValue}
	}
	key, value := rest[:eq], rest[eq+1:]
	if strings.HasPrefix(value, "<") || strings.HasPrefix(value, "[") {
		return Generic{Key: key, Attributes: SplitAttributes(trimBrackets(value))}
	}
	return Generic{Key: key, Value: value}
}

// trimBrackets strips one outer pair of angle or square brackets.
func trimBrackets(v string) string {
	if len(v) > 0 && (v[0] == '<' || v[0] == '[') {
		v = v[1:]
	}
	if len(v) > 0 && (v[len(v)-1] == '>' || v[len(v)-1] == ']') {
		v = v[:len(v)-1]
	}
	return v
}
