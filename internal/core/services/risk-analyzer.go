package services

import (
	"strings"

	"genome-analysis-service/internal/core/domain"
	ports "genome-analysis-service/internal/core/ports/output"
)

// RiskAnalyzer matches genotyped variants against the curated SNP table and
// the bundled ClinVar dataset.
type RiskAnalyzer struct {
	clinvar ports.ClinVarRepository
	snps    map[string]domain.SNPInfo
}

func NewRiskAnalyzer(clinvar ports.ClinVarRepository) *RiskAnalyzer {
	return &RiskAnalyzer{clinvar: clinvar, snps: domain.SNPDatabase}
}

func (a *RiskAnalyzer) Analyze(variants map[string]domain.Variant) *domain.DiseaseRiskResult {
	result := &domain.DiseaseRiskResult{
		TotalVariantsAnalyzed: len(variants),
		Categories:            make(map[string]int),
	}

	for rsid, variant := range variants {
		if info, ok := a.snps[rsid]; ok {
			if match, ok := evaluateSNPMatch(rsid, variant.Genotype, info); ok {
				a.bucket(result, match)
			}
		}

		if record, ok := a.clinvar.Lookup(rsid); ok {
			result.ClinVarMatches++

			// Curated entries take precedence over raw ClinVar rows.
			if _, curated := a.snps[rsid]; !curated {
				if match, ok := clinVarMatch(rsid, variant.Genotype, record); ok {
					if match.RiskLevel == domain.RiskHigh {
						result.HighRiskVariants = append(result.HighRiskVariants, match)
					} else {
						result.ModerateRiskVariants = append(result.ModerateRiskVariants, match)
					}
					result.Categories["ClinVar"]++
				}
			}
		}
	}

	return result
}

func (a *RiskAnalyzer) bucket(result *domain.DiseaseRiskResult, match domain.VariantMatch) {
	switch match.RiskLevel {
	case domain.RiskHigh:
		result.HighRiskVariants = append(result.HighRiskVariants, match)
	case domain.RiskModerate:
		result.ModerateRiskVariants = append(result.ModerateRiskVariants, match)
	case domain.RiskLow:
		result.LowRiskVariants = append(result.LowRiskVariants, match)
	case domain.RiskBeneficial:
		result.BeneficialVariants = append(result.BeneficialVariants, match)
	}

	if match.Category == "Drug Metabolism" {
		result.PharmacogenomicVariants = append(result.PharmacogenomicVariants, match)
	}

	result.Categories[match.Category]++
}

// evaluateSNPMatch counts risk alleles in the genotype. Heterozygous carriers
// are downgraded one level.
func evaluateSNPMatch(rsid, genotype string, info domain.SNPInfo) (domain.VariantMatch, bool) {
	genotype = strings.ReplaceAll(strings.ToUpper(genotype), "-", "")

	riskCount := strings.Count(genotype, strings.ToUpper(info.RiskAllele))
	if riskCount == 0 {
		return domain.VariantMatch{}, false
	}

	var riskLevel domain.RiskLevel
	var description string
	if riskCount >= 2 {
		riskLevel = info.Significance
		description = "Homozygous for risk variant. " + info.Description
	} else {
		if info.Significance == domain.RiskHigh {
			riskLevel = domain.RiskModerate
		} else {
			riskLevel = domain.RiskLow
		}
		description = "Heterozygous carrier. " + info.Description
	}

	return domain.VariantMatch{
		RSID:                 rsid,
		Genotype:             genotype,
		Gene:                 info.Gene,
		Condition:            info.Condition,
		ClinicalSignificance: string(info.Significance),
		RiskLevel:            riskLevel,
		Description:          description,
		Recommendations:      info.Recommendations,
		Category:             info.Category,
	}, true
}

func clinVarMatch(rsid, genotype string, record *domain.ClinVarRecord) (domain.VariantMatch, bool) {
	sig := strings.ToLower(record.ClinicalSignificance)
	if !strings.Contains(sig, "pathogenic") && !strings.Contains(sig, "risk factor") {
		return domain.VariantMatch{}, false
	}

	// "likely pathogenic" contains "pathogenic", so check it first.
	riskLevel := domain.RiskModerate
	if strings.Contains(sig, "pathogenic") && !strings.Contains(sig, "likely pathogenic") {
		riskLevel = domain.RiskHigh
	}

	gene := record.Gene
	if gene == "" {
		gene = "Unknown"
	}
	condition := record.Condition
	if condition == "" {
		condition = "Unknown condition"
	}

	return domain.VariantMatch{
		RSID:                 rsid,
		Genotype:             strings.ReplaceAll(strings.ToUpper(genotype), "-", ""),
		Gene:                 gene,
		Condition:            condition,
		ClinicalSignificance: record.ClinicalSignificance,
		RiskLevel:            riskLevel,
		Description:          "ClinVar classification: " + record.ClinicalSignificance,
		Recommendations:      []string{"Consult with a genetic counselor for interpretation"},
		Category:             "ClinVar",
	}, true
}
