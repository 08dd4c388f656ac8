package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenome_23AndMe(t *testing.T) {
	content := `# This data file generated by 23andMe
rsid	chromosome	position	genotype
rs1801133	1	11856378	CT
rs429358	19	44908684	TC
rs4244285	10	94781859	GA
`
	variants, err := ParseGenome(content, Format23AndMe)
	require.NoError(t, err)
	assert.Len(t, variants, 3)

	v := variants["rs1801133"]
	assert.Equal(t, "1", v.Chromosome)
	assert.Equal(t, "11856378", v.Position)
	assert.Equal(t, "CT", v.Genotype)
}

func TestParseGenome_SkipsCommentsAndMalformedLines(t *testing.T) {
	content := `# comment
rsid	chromosome	position	genotype

rs123	1	100	AA
not-a-valid-line
rs456	2	200	GG
`
	variants, err := ParseGenome(content, Format23AndMe)
	require.NoError(t, err)
	assert.Len(t, variants, 2)
}

func TestParseGenome_DropsNonRSIdentifiers(t *testing.T) {
	content := "i705513\t1\t100\tAA\nrs123\t1\t200\tCC\n"

	variants, err := ParseGenome(content, Format23AndMe)
	require.NoError(t, err)
	assert.Len(t, variants, 1)
	assert.Contains(t, variants, "rs123")
}

func TestParseGenome_LowercasesRSIDs(t *testing.T) {
	content := "RS123\t1\t100\tAG\n"

	variants, err := ParseGenome(content, Format23AndMe)
	require.NoError(t, err)
	assert.Contains(t, variants, "rs123")
}

func TestParseGenome_Ancestry(t *testing.T) {
	content := `rsid	chromosome	position	allele1	allele2
rs123	1	100	A	G
rs456	2	200	C	0
`
	variants, err := ParseGenome(content, FormatAncestry)
	require.NoError(t, err)

	assert.Equal(t, "AG", variants["rs123"].Genotype)
	// 0 marks a no-call on one strand.
	assert.Equal(t, "C-", variants["rs456"].Genotype)
}

func TestParseGenome_MyHeritage(t *testing.T) {
	content := `"rsid","chromosome","position","genotype"
"rs123","1","100","AG"
`
	variants, err := ParseGenome(content, FormatMyHeritage)
	require.NoError(t, err)
	assert.Equal(t, "AG", variants["rs123"].Genotype)
}

func TestParseGenome_FTDNA(t *testing.T) {
	content := "rs123,1,100,TT\n"

	variants, err := ParseGenome(content, FormatFTDNA)
	require.NoError(t, err)
	assert.Equal(t, "TT", variants["rs123"].Genotype)
}

func TestParseGenome_GeneraAcceptsTabsAndCommas(t *testing.T) {
	variants, err := ParseGenome("rs123\t1\t100\tAA\n", FormatGenera)
	require.NoError(t, err)
	assert.Equal(t, "AA", variants["rs123"].Genotype)

	variants, err = ParseGenome("rs123,1,100,AA\n", FormatGenera)
	require.NoError(t, err)
	assert.Equal(t, "AA", variants["rs123"].Genotype)
}

func TestParseGenome_NebulaVCF(t *testing.T) {
	content := "chr1\t11856378\trs1801133\tC\tT\t.\tPASS\t.\tGT:DP\t0/1:30\n" +
		"chr2\t200\trs456\tG\tA\t.\tPASS\t.\tGT\t1/1\n" +
		"chr3\t300\trs789\tT\tC\t.\tPASS\t.\tGT\t0|0\n"

	variants, err := ParseGenome(content, FormatNebula)
	require.NoError(t, err)

	assert.Equal(t, "CT", variants["rs1801133"].Genotype)
	assert.Equal(t, "1", variants["rs1801133"].Chromosome)
	assert.Equal(t, "AA", variants["rs456"].Genotype)
	assert.Equal(t, "TT", variants["rs789"].Genotype)
}

func TestParseGenome_NebulaMissingRSIDGetsPositionalID(t *testing.T) {
	content := "chr1\t100\t.\tC\tT\t.\tPASS\t.\tGT\t0/1\n"

	variants, err := ParseGenome(content, FormatNebula)
	require.NoError(t, err)
	assert.Contains(t, variants, "chr1:100")
}

func TestParseGenome_NebulaUnknownGenotype(t *testing.T) {
	content := "chr1\t100\trs123\tC\tT\t.\tPASS\t.\tGT\t./.\n"

	variants, err := ParseGenome(content, FormatNebula)
	require.NoError(t, err)
	assert.Equal(t, "--", variants["rs123"].Genotype)
}

func TestParseGenome_GenericFallback(t *testing.T) {
	variants, err := ParseGenome("rs123\t1\t100\tAG\n", "unknown-format")
	require.NoError(t, err)
	assert.Equal(t, "AG", variants["rs123"].Genotype)

	variants, err = ParseGenome("rs123,1,100,AG\n", "unknown-format")
	require.NoError(t, err)
	assert.Equal(t, "AG", variants["rs123"].Genotype)
}

func TestParseGenome_Empty(t *testing.T) {
	_, err := ParseGenome("# only comments\n", Format23AndMe)
	assert.Error(t, err)
}
