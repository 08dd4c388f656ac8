package clinvar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clinvar_alleles.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRepository_LoadsRecords(t *testing.T) {
	path := writeTSV(t, "#RS# (dbSNP)\tGeneSymbol\tPhenotypeList\tClinicalSignificance\tReviewStatus\tChromosome\tPositionVCF\n"+
		"1801133\tMTHFR\tHomocystinuria\tPathogenic\tcriteria provided\t1\t11856378\n"+
		"429358\tAPOE\tAlzheimer disease\trisk factor\treviewed by expert panel\t19\t44908684\n")

	repo, err := NewRepository(path)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Count())

	record, ok := repo.Lookup("rs1801133")
	require.True(t, ok)
	assert.Equal(t, "MTHFR", record.Gene)
	assert.Equal(t, "Homocystinuria", record.Condition)
	assert.Equal(t, "Pathogenic", record.ClinicalSignificance)
	assert.Equal(t, "1", record.Chromosome)
	assert.Equal(t, "11856378", record.Position)
}

func TestRepository_LookupIsCaseInsensitive(t *testing.T) {
	path := writeTSV(t, "RS# (dbSNP)\tGeneSymbol\tClinicalSignificance\n"+
		"1801133\tMTHFR\tPathogenic\n")

	repo, err := NewRepository(path)
	require.NoError(t, err)

	_, ok := repo.Lookup("RS1801133")
	assert.True(t, ok)
	_, ok = repo.Lookup("rs999")
	assert.False(t, ok)
}

func TestRepository_SkipsRowsWithoutRSID(t *testing.T) {
	path := writeTSV(t, "RS# (dbSNP)\tGeneSymbol\tClinicalSignificance\n"+
		"\tBRCA1\tPathogenic\n"+
		"80357906\tBRCA1\tPathogenic\n")

	repo, err := NewRepository(path)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Count())
}

func TestRepository_ToleratesShortRows(t *testing.T) {
	path := writeTSV(t, "RS# (dbSNP)\tGeneSymbol\tPhenotypeList\tClinicalSignificance\n"+
		"123\tGENE1\n"+
		"456\tGENE2\tSome condition\tBenign\n")

	repo, err := NewRepository(path)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Count())

	record, ok := repo.Lookup("rs123")
	require.True(t, ok)
	assert.Empty(t, record.Condition)
}

func TestNewRepository_EmptyPath(t *testing.T) {
	repo, err := NewRepository("")
	require.NoError(t, err)
	assert.Zero(t, repo.Count())
}

func TestNewRepository_MissingFile(t *testing.T) {
	repo, err := NewRepository(filepath.Join(t.TempDir(), "nope.tsv"))
	assert.Error(t, err)
	// The repository still works, just empty.
	require.NotNil(t, repo)
	assert.Zero(t, repo.Count())
}

func TestNewRepository_MissingRSIDColumn(t *testing.T) {
	path := writeTSV(t, "GeneSymbol\tClinicalSignificance\nBRCA1\tPathogenic\n")

	repo, err := NewRepository(path)
	assert.Error(t, err)
	assert.Zero(t, repo.Count())
}
