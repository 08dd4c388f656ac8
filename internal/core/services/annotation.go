package services

import (
	"sort"
	"strings"

	"genome-analysis-service/internal/core/domain"
	ports "genome-analysis-service/internal/core/ports/output"
)

// AnnotationService answers direct variant lookups against every loaded
// annotation source.
type AnnotationService struct {
	clinvar ports.ClinVarRepository
}

func NewAnnotationService(clinvar ports.ClinVarRepository) *AnnotationService {
	return &AnnotationService{clinvar: clinvar}
}

// Lookup merges the ClinVar record, curated SNP entry and trait entries for a
// single rsID.
func (s *AnnotationService) Lookup(rsid string) (*domain.VariantAnnotation, error) {
	rsid = strings.ToLower(strings.TrimSpace(rsid))
	if rsid == "" {
		return nil, domain.ErrInvalidRSID
	}
	if !strings.HasPrefix(rsid, "rs") {
		rsid = "rs" + rsid
	}

	annotation := &domain.VariantAnnotation{RSID: rsid}

	if record, ok := s.clinvar.Lookup(rsid); ok {
		annotation.ClinVar = record
	}
	if info, ok := domain.SNPDatabase[rsid]; ok {
		annotation.Curated = &info
	}
	for _, trait := range domain.TraitsDatabase {
		if strings.ToLower(trait.RSID) == rsid {
			annotation.Traits = append(annotation.Traits, trait)
		}
	}
	sort.Slice(annotation.Traits, func(i, j int) bool {
		return annotation.Traits[i].Trait < annotation.Traits[j].Trait
	})

	if annotation.ClinVar == nil && annotation.Curated == nil && len(annotation.Traits) == 0 {
		return nil, domain.ErrVariantNotFound
	}

	return annotation, nil
}

// Stats reports the sizes of the loaded annotation sources.
func (s *AnnotationService) Stats() domain.DatasetStats {
	return domain.DatasetStats{
		ClinVarRecords: s.clinvar.Count(),
		CuratedSNPs:    len(domain.SNPDatabase),
		TraitSNPs:      len(domain.TraitsDatabase),
	}
}
