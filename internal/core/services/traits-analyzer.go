package services

import (
	"fmt"
	"strings"

	"genome-analysis-service/internal/core/domain"
)

// AnalyzeTraits checks every trait SNP against the parsed genome and groups
// findings (and gaps) by trait category.
func AnalyzeTraits(variants map[string]domain.Variant) *domain.TraitsAnalysisResult {
	result := &domain.TraitsAnalysisResult{
		TotalTraitsChecked: len(domain.TraitsDatabase),
		ResultsByCategory:  make(map[string][]domain.TraitResult),
		MissingByCategory:  make(map[string][]string),
	}
	for _, cat := range domain.TraitCategories {
		result.ResultsByCategory[cat] = []domain.TraitResult{}
		result.MissingByCategory[cat] = []string{}
	}

	for _, info := range domain.TraitsDatabase {
		rsid := strings.ToLower(info.RSID)

		variant, ok := variants[rsid]
		if !ok {
			result.TraitsNotFound++
			result.MissingByCategory[info.Category] = append(
				result.MissingByCategory[info.Category],
				fmt.Sprintf("%s (%s): %s", info.RSID, info.Gene, info.Trait),
			)
			continue
		}

		result.TraitsFound++
		genotype := strings.ReplaceAll(strings.ToUpper(variant.Genotype), "-", "")
		result.ResultsByCategory[info.Category] = append(
			result.ResultsByCategory[info.Category],
			analyzeSingleTrait(rsid, genotype, info),
		)
	}

	return result
}

func analyzeSingleTrait(rsid, genotype string, info domain.TraitSNP) domain.TraitResult {
	riskAllele := strings.ToUpper(info.RiskAllele)
	riskCount := strings.Count(genotype, riskAllele)
	hasRisk := riskCount > 0

	var interpretation string
	switch riskCount {
	case 0:
		interpretation = fmt.Sprintf("You do not carry the %s allele associated with this trait.", riskAllele)
	case 1:
		interpretation = fmt.Sprintf("You carry one copy of the %s allele (heterozygous). %s", riskAllele, info.Effect)
	default:
		interpretation = fmt.Sprintf("You carry two copies of the %s allele (homozygous). %s", riskAllele, info.Effect)
	}

	effect := info.Effect
	if !hasRisk {
		effect = "Typical/common variant"
	}

	return domain.TraitResult{
		RSID:            rsid,
		Gene:            info.Gene,
		Category:        info.Category,
		Trait:           info.Trait,
		Genotype:        genotype,
		HasRiskAllele:   hasRisk,
		RiskAlleleCount: riskCount,
		Effect:          effect,
		Interpretation:  interpretation,
		Description:     info.Description,
	}
}
