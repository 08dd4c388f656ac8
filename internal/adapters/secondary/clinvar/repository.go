package clinvar

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"genome-analysis-service/internal/core/domain"
)

// Column names in the ClinVar variant_summary-style alleles TSV.
const (
	colRSID         = "RS# (dbSNP)"
	colGene         = "GeneSymbol"
	colCondition    = "PhenotypeList"
	colSignificance = "ClinicalSignificance"
	colReviewStatus = "ReviewStatus"
	colChromosome   = "Chromosome"
	colPosition     = "PositionVCF"
)

// Repository holds the decompressed ClinVar alleles table in memory, keyed by
// "rs<id>".
type Repository struct {
	records map[string]domain.ClinVarRecord
}

// NewRepository loads the TSV at path. An empty path yields an empty
// repository; a read error returns the empty repository alongside the error
// so the caller can degrade instead of refusing to start.
func NewRepository(path string) (*Repository, error) {
	repo := &Repository{records: make(map[string]domain.ClinVarRecord)}
	if path == "" {
		return repo, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return repo, fmt.Errorf("open clinvar data: %w", err)
	}
	defer f.Close()

	if err := repo.load(f); err != nil {
		return repo, fmt.Errorf("load clinvar data: %w", err)
	}
	return repo, nil
}

func (r *Repository) load(f io.Reader) error {
	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimPrefix(name, "#")] = i
	}
	if _, ok := index[colRSID]; !ok {
		return fmt.Errorf("missing %q column", colRSID)
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows, keep the rest of the table usable.
			continue
		}

		rsid := strings.TrimSpace(field(row, colRSID))
		if rsid == "" {
			continue
		}

		r.records["rs"+rsid] = domain.ClinVarRecord{
			RSID:                 "rs" + rsid,
			Gene:                 field(row, colGene),
			Condition:            field(row, colCondition),
			ClinicalSignificance: field(row, colSignificance),
			ReviewStatus:         field(row, colReviewStatus),
			Chromosome:           field(row, colChromosome),
			Position:             field(row, colPosition),
		}
	}

	return nil
}

func (r *Repository) Lookup(rsid string) (*domain.ClinVarRecord, bool) {
	record, ok := r.records[strings.ToLower(rsid)]
	if !ok {
		return nil, false
	}
	return &record, true
}

func (r *Repository) Count() int {
	return len(r.records)
}
