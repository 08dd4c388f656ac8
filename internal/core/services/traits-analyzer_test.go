package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genome-analysis-service/internal/core/domain"
)

func TestAnalyzeTraits_CountsFoundAndMissing(t *testing.T) {
	result := AnalyzeTraits(map[string]domain.Variant{
		"rs4680": {RSID: "rs4680", Genotype: "AA"},
	})

	// rs4680 appears in two trait entries (cognition and pain sensitivity).
	assert.Equal(t, 2, result.TraitsFound)
	assert.Equal(t, len(domain.TraitsDatabase)-2, result.TraitsNotFound)
	assert.Equal(t, len(domain.TraitsDatabase), result.TotalTraitsChecked)
}

func TestAnalyzeTraits_HomozygousInterpretation(t *testing.T) {
	result := AnalyzeTraits(map[string]domain.Variant{
		"rs4680": {RSID: "rs4680", Genotype: "AA"},
	})

	cognitive := result.ResultsByCategory["Cognitive"]
	require.Len(t, cognitive, 1)
	tr := cognitive[0]
	assert.Equal(t, "rs4680", tr.RSID)
	assert.True(t, tr.HasRiskAllele)
	assert.Equal(t, 2, tr.RiskAlleleCount)
	assert.Contains(t, tr.Interpretation, "two copies")
}

func TestAnalyzeTraits_HeterozygousInterpretation(t *testing.T) {
	result := AnalyzeTraits(map[string]domain.Variant{
		"rs4680": {RSID: "rs4680", Genotype: "AG"},
	})

	cognitive := result.ResultsByCategory["Cognitive"]
	require.Len(t, cognitive, 1)
	assert.Equal(t, 1, cognitive[0].RiskAlleleCount)
	assert.Contains(t, cognitive[0].Interpretation, "one copy")
}

func TestAnalyzeTraits_NoRiskAllele(t *testing.T) {
	result := AnalyzeTraits(map[string]domain.Variant{
		"rs4680": {RSID: "rs4680", Genotype: "GG"},
	})

	cognitive := result.ResultsByCategory["Cognitive"]
	require.Len(t, cognitive, 1)
	assert.False(t, cognitive[0].HasRiskAllele)
	assert.Equal(t, "Typical/common variant", cognitive[0].Effect)
}

func TestAnalyzeTraits_DuplicateRSIDEntriesMatchSameVariant(t *testing.T) {
	// rs1801260 is listed under both Cognitive and Sleep.
	result := AnalyzeTraits(map[string]domain.Variant{
		"rs1801260": {RSID: "rs1801260", Genotype: "CC"},
	})

	assert.Len(t, result.ResultsByCategory["Cognitive"], 1)
	assert.Len(t, result.ResultsByCategory["Sleep"], 1)
}

func TestAnalyzeTraits_MissingGroupedByCategory(t *testing.T) {
	result := AnalyzeTraits(map[string]domain.Variant{
		"rs0000001": {RSID: "rs0000001", Genotype: "AA"},
	})

	assert.Zero(t, result.TraitsFound)
	total := 0
	for _, cat := range domain.TraitCategories {
		total += len(result.MissingByCategory[cat])
	}
	assert.Equal(t, len(domain.TraitsDatabase), total)
}
