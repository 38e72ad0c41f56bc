package header

// ValueType enumerates the value types an INFO or FORMAT declaration may name
// in its Type attribute.
type ValueType uint8

// The declared VCF field types.
const (
	InvalidType ValueType = iota
	Integer
	Float
	Flag // presence/absence, no value
	Character
	String
)

var valueTypeNames = map[string]ValueType{
	"Integer":   Integer,
	"Float":     Float,
	"Flag":      Flag,
	"Character": Character,
	"String":    String,
}

// ParseValueType maps a Type attribute name to its ValueType. The match is
// exact and case-sensitive; ok is false for anything outside the five names.
func ParseValueType(name string) (ValueType, bool) {
	t, ok := valueTypeNames[name]
	return t, ok
}

func (t ValueType) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Flag:
		return "Flag"
	case Character:
		return "Character"
	case String:
		return "String"
	}
	return "Invalid"
}
