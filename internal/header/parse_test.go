package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInfo(t *testing.T) {
	info, err := ParseInfo(`##INFO=<ID=DP,Number=1,Type=Integer,Description="Depth">`)
	require.NoError(t, err)
	assert.Equal(t, Info{
		ID:          "DP",
		Number:      FieldCount(1),
		Type:        Integer,
		Description: "Depth",
	}, info)
}

func TestParseInfoSourceVersion(t *testing.T) {
	line := `##INFO=<ID=AF,Number=A,Type=Float,Description="Allele Frequency",Source="dbSNP",Version="144">`
	info, err := ParseInfo(line)
	require.NoError(t, err)
	assert.Equal(t, PerAltAllele, info.Number)
	assert.Equal(t, "dbSNP", info.Source)
	assert.Equal(t, "144", info.Version)
}

func TestParseInfoBareVersion(t *testing.T) {
	info, err := ParseInfo(`##INFO=<ID=H2,Number=0,Type=Flag,Description="HapMap2 membership",Version=2>`)
	require.NoError(t, err)
	assert.Equal(t, "2", info.Version)
}

func TestParseInfoShuffledFields(t *testing.T) {
	info, err := ParseInfo(`##INFO=<Type=Integer,ID=DP,Description="Depth",Number=1>`)
	require.NoError(t, err)
	assert.Equal(t, "DP", info.ID)
	assert.Equal(t, Integer, info.Type)
}

func TestParseInfoWhitespaceAfterComma(t *testing.T) {
	info, err := ParseInfo(`##INFO=<ID=DP, Number=1, Type=Integer, Description="Depth">`)
	require.NoError(t, err)
	assert.Equal(t, "DP", info.ID)
	assert.Equal(t, FieldCount(1), info.Number)
}

func TestParseInfoQuotedComma(t *testing.T) {
	info, err := ParseInfo(`##INFO=<ID=CSQ,Number=.,Type=String,Description="Consequence annotations, pipe separated">`)
	require.NoError(t, err)
	assert.Equal(t, UnknownCount, info.Number)
	assert.Equal(t, "Consequence annotations, pipe separated", info.Description)
}

func TestParseInfoMissingType(t *testing.T) {
	line := `##INFO=<ID=DP,Number=1,Description="Depth">`
	_, err := ParseInfo(line)
	var malformed *MalformedLineError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "INFO", malformed.Tag)
	assert.Equal(t, line, malformed.Line)
}

func TestParseInfoRejects(t *testing.T) {
	lines := []string{
		`##INFO=<ID=DP,Number=1,Type=Integer,Description=Depth>`,         // unquoted description
		`##INFO=<ID=DP,Number=1,Type=Banana,Description="d">`,            // unknown type
		`##INFO=<ID=,Number=1,Type=Integer,Description="d">`,             // empty ID
		`##INFO=<ID=DP,Number=1,Type=Integer,Description="d",Extra="e">`, // attribute outside the grammar
		`##INFO=<ID=DP,Number=1,Type=Integer,Description="d",Source=x>`,  // unquoted source
		`##INFO=ID=DP,Number=1,Type=Integer,Description="d"`,             // missing bracket shell
		`##INFO=<ID=DP,Number=1,Type=Integer,Description="d"`,            // unterminated shell
	}
	for _, line := range lines {
		_, err := ParseInfo(line)
		assert.Error(t, err, "line: %s", line)
	}
}

func TestParseInfoBadNumber(t *testing.T) {
	_, err := ParseInfo(`##INFO=<ID=DP,Number=abc,Type=Integer,Description="d">`)
	var countErr *InvalidFieldCountError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, "abc", countErr.Token)
}

func TestParseFilter(t *testing.T) {
	filter, err := ParseFilter(`##FILTER=<ID=q10,Description="Quality below 10">`)
	require.NoError(t, err)
	assert.Equal(t, Filter{ID: "q10", Description: "Quality below 10"}, filter)
}

func TestParseAlt(t *testing.T) {
	alt, err := ParseAlt(`##ALT=<ID=DEL,Description="Deletion">`)
	require.NoError(t, err)
	assert.Equal(t, Alt{ID: "DEL", Description: "Deletion"}, alt)
}

func TestParseFilterRejectsExtras(t *testing.T) {
	_, err := ParseFilter(`##FILTER=<ID=q10,Description="q",Extra=1>`)
	var malformed *MalformedLineError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "FILTER", malformed.Tag)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat(`##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">`)
	require.NoError(t, err)
	assert.Equal(t, Format{
		ID:          "GT",
		Number:      FieldCount(1),
		Type:        String,
		Description: "Genotype",
	}, format)
}

func TestParseFormatRequiresAllFields(t *testing.T) {
	lines := []string{
		`##FORMAT=<Number=1,Type=String,Description="g">`, // no ID
		`##FORMAT=<ID=GT,Type=String,Description="g">`,    // no Number
		`##FORMAT=<ID=GT,Number=1,Description="g">`,       // no Type
		`##FORMAT=<ID=GT,Number=1,Type=String>`,           // no Description
	}
	for _, line := range lines {
		_, err := ParseFormat(line)
		var malformed *MalformedLineError
		require.ErrorAs(t, err, &malformed, "line: %s", line)
		assert.Equal(t, "FORMAT", malformed.Tag)
		assert.Equal(t, line, malformed.Line)
	}
}

func TestParseContig(t *testing.T) {
	contig, err := ParseContig(`##contig=<ID=chr1,length=248956422>`)
	require.NoError(t, err)
	assert.Equal(t, "chr1", contig.ID)
	require.True(t, contig.HasLength())
	assert.Equal(t, int64(248956422), contig.Length)
}

func TestParseContigNoLength(t *testing.T) {
	contig, err := ParseContig(`##contig=<ID=chrM>`)
	require.NoError(t, err)
	assert.Equal(t, "chrM", contig.ID)
	assert.False(t, contig.HasLength())
}

func TestParseContigDiscardsExtras(t *testing.T) {
	contig, err := ParseContig(`##contig=<ID=20,length=62435964,assembly=B36,md5=f126cdf8a6e0c7f379d618ff66beb2da,species="Homo sapiens">`)
	require.NoError(t, err)
	assert.Equal(t, Contig{ID: "20", Length: 62435964}, contig)
}

func TestParseContigRequiresID(t *testing.T) {
	_, err := ParseContig(`##contig=<length=1000>`)
	var malformed *MalformedLineError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "contig", malformed.Tag)
}

func TestParseGenericScalar(t *testing.T) {
	g := ParseGeneric("##fileDate=20230101")
	assert.Equal(t, Generic{Key: "fileDate", Value: "20230101"}, g)
}

func TestParseGenericNoValue(t *testing.T) {
	g := ParseGeneric("##custom")
	assert.Equal(t, Generic{Key: "custom", Value: NoValue}, g)
}

func TestParseGenericEmptyValue(t *testing.T) {
	g := ParseGeneric("##key=")
	assert.Equal(t, Generic{Key: "key", Value: ""}, g)
}

func TestParseGenericValueKeepsEquals(t *testing.T) {
	g := ParseGeneric("##reference=file:///seq/refs/GRCh38.fasta")
	assert.Equal(t, "reference", g.Key)
	assert.Equal(t, "file:///seq/refs/GRCh38.fasta", g.Value)
}

func TestParseGenericBracketed(t *testing.T) {
	g := ParseGeneric("##PEDIGREE=<Name_0=G0-ID,Name_1=G1-ID>")
	assert.Equal(t, "PEDIGREE", g.Key)
	assert.Empty(t, g.Value)
	assert.Equal(t, Attributes{
		{Key: "Name_0", Value: "G0-ID"},
		{Key: "Name_1", Value: "G1-ID"},
	}, g.Attributes)
}

func TestParseGenericBracketedQuoted(t *testing.T) {
	g := ParseGeneric(`##SAMPLE=<ID=NA12878,Description="CEU daughter, v2">`)
	assert.Equal(t, "SAMPLE", g.Key)
	v, ok := g.Attributes.Get("Description")
	require.True(t, ok)
	assert.Equal(t, `"CEU daughter, v2"`, v)
}

func TestParseGenericSquareBrackets(t *testing.T) {
	g := ParseGeneric("##META=[ID=Assay,Type=String]")
	assert.Equal(t, "META", g.Key)
	assert.Equal(t, Attributes{
		{Key: "ID", Value: "Assay"},
		{Key: "Type", Value: "String"},
	}, g.Attributes)
}

func TestGenericText(t *testing.T) {
	scalar := ParseGeneric("##fileformat=VCFv4.2")
	assert.Equal(t, "VCFv4.2", scalar.Text())

	bracketed := ParseGeneric("##PEDIGREE=<Name_0=G0,Name_1=G1>")
	assert.Equal(t, "<Name_0=G0,Name_1=G1>", bracketed.Text())
}
