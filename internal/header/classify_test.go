package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want LineKind
	}{
		{`##INFO=<ID=DP,Number=1,Type=Integer,Description="Depth">`, LineInfo},
		{`##FILTER=<ID=q10,Description="Quality below 10">`, LineFilter},
		{`##ALT=<ID=DEL,Description="Deletion">`, LineAlt},
		{`##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">`, LineFormat},
		{`##contig=<ID=chr1,length=248956422>`, LineContig},
		{"##fileformat=VCFv4.3", LineGeneric},
		{"##fileDate=20230101", LineGeneric},
		{"##info=<ID=x>", LineGeneric},   // tag match is case-sensitive
		{"##INFOX=<ID=x>", LineGeneric},  // and exact
		{"##CONTIG=<ID=x>", LineGeneric},
		{"##custom", LineGeneric},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.line), "line: %s", tt.line)
	}
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "INFO", LineInfo.String())
	assert.Equal(t, "FILTER", LineFilter.String())
	assert.Equal(t, "ALT", LineAlt.String())
	assert.Equal(t, "FORMAT", LineFormat.String())
	assert.Equal(t, "contig", LineContig.String())
	assert.Equal(t, "generic", LineGeneric.String())
}
