package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAttributesQuotedComma(t *testing.T) {
	attrs := SplitAttributes(`ID=DP,Description="a,b,c",Source="x"`)
	require.Len(t, attrs, 3)
	assert.Equal(t, Attribute{Key: "ID", Value: "DP"}, attrs[0])
	assert.Equal(t, Attribute{Key: "Description", Value: `"a,b,c"`}, attrs[1])
	assert.Equal(t, Attribute{Key: "Source", Value: `"x"`}, attrs[2])
}

func TestSplitAttributesOrderAndDuplicates(t *testing.T) {
	attrs := SplitAttributes("b=2,a=1,b=3")
	require.Len(t, attrs, 3)
	assert.Equal(t, "b", attrs[0].Key)
	assert.Equal(t, "a", attrs[1].Key)
	assert.Equal(t, "b", attrs[2].Key)

	// Get resolves to the first occurrence.
	v, ok := attrs.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = attrs.Get("missing")
	assert.False(t, ok)
}

func TestSplitAttributesEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Attributes
	}{
		{"empty body", "", nil},
		{"single pair", "ID=X", Attributes{{Key: "ID", Value: "X"}}},
		{"trailing comma", "ID=X,", Attributes{{Key: "ID", Value: "X"}}},
		{"empty value", "ID=", Attributes{{Key: "ID", Value: ""}}},
		{"bare token", "Flag", Attributes{{Key: "Flag", Value: ""}}},
		{"empty quoted value", `D=""`, Attributes{{Key: "D", Value: `""`}}},
		{"unterminated quote", `D="abc`, Attributes{{Key: "D", Value: `"abc`}}},
		{"quote after text stays literal", `D=ab"c,E=1`, Attributes{
			{Key: "D", Value: `ab"c`},
			{Key: "E", Value: "1"},
		}},
		{"equals inside value", "cmd=bwa mem ref=hg38,x=y", Attributes{
			{Key: "cmd", Value: "bwa mem ref=hg38"},
			{Key: "x", Value: "y"},
		}},
		{"quoted equals and commas", `a="x=1,y=2",b=3`, Attributes{
			{Key: "a", Value: `"x=1,y=2"`},
			{Key: "b", Value: "3"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAttributes(tt.body))
		})
	}
}

// Re-tokenizing a committed pair must reproduce it exactly: the preserved
// quote characters protect embedded commas on the second pass too.
func TestSplitAttributesRoundTrip(t *testing.T) {
	attrs := SplitAttributes(`ID=DP,Description="a,b,c",note="",free=text`)
	require.Len(t, attrs, 4)
	for _, a := range attrs {
		again := SplitAttributes(a.Key + "=" + a.Value)
		require.Len(t, again, 1, "pair %q", a.Key)
		assert.Equal(t, a, again[0])
	}
}
