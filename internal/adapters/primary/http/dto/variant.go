package dto

import (
	"genome-analysis-service/internal/core/domain"
)

type VariantAnnotationResponse struct {
	RSID    string                `json:"rsid"`
	ClinVar *domain.ClinVarRecord `json:"clinvar,omitempty"`
	Curated *domain.SNPInfo       `json:"curated,omitempty"`
	Traits  []domain.TraitSNP     `json:"traits,omitempty"`
}

func ToVariantAnnotationResponse(a *domain.VariantAnnotation) VariantAnnotationResponse {
	return VariantAnnotationResponse{
		RSID:    a.RSID,
		ClinVar: a.ClinVar,
		Curated: a.Curated,
		Traits:  a.Traits,
	}
}

type HealthResponse struct {
	Status         string `json:"status"`
	ClinVarRecords int    `json:"clinvarRecords"`
	CuratedSNPs    int    `json:"curatedSnps"`
	TraitSNPs      int    `json:"traitSnps"`
}
