package services

import (
	"fmt"
	"strings"
	"time"

	"genome-analysis-service/internal/core/domain"
)

// GenerateReports renders the markdown reports shipped back in the callback
// payload, keyed by report type.
func GenerateReports(risk *domain.DiseaseRiskResult, traits *domain.TraitsAnalysisResult) map[string]string {
	return map[string]string{
		"disease_risk": GenerateDiseaseRiskReport(risk),
		"traits":       GenerateTraitsReport(traits, "Subject"),
	}
}

func GenerateDiseaseRiskReport(result *domain.DiseaseRiskResult) string {
	var b strings.Builder

	b.WriteString("# Disease Risk Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n---\n\n", time.Now().Format("January 2, 2006"))

	b.WriteString("## Overview\n\n")
	b.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Variants Analyzed | %d |\n", result.TotalVariantsAnalyzed)
	fmt.Fprintf(&b, "| ClinVar Matches | %d |\n", result.ClinVarMatches)
	fmt.Fprintf(&b, "| High Risk Findings | %d |\n", len(result.HighRiskVariants))
	fmt.Fprintf(&b, "| Moderate Risk Findings | %d |\n", len(result.ModerateRiskVariants))
	fmt.Fprintf(&b, "| Beneficial Variants | %d |\n", len(result.BeneficialVariants))
	fmt.Fprintf(&b, "| Pharmacogenomic Findings | %d |\n", len(result.PharmacogenomicVariants))
	b.WriteString("\n---\n\n")

	writeMatchSection(&b, "High Risk Variants", result.HighRiskVariants)
	writeMatchSection(&b, "Moderate Risk Variants", result.ModerateRiskVariants)
	writeMatchSection(&b, "Beneficial Variants", result.BeneficialVariants)
	writeMatchSection(&b, "Pharmacogenomic Variants", result.PharmacogenomicVariants)

	b.WriteString(`## Important Notes

1. **Genetics is not destiny** - These findings describe statistical risk, not diagnoses. Environment and lifestyle play major roles.

2. **Consult professionals** - Discuss significant findings with a physician or genetic counselor before acting on them.

3. **Research is ongoing** - Clinical interpretations may be refined as research evolves.

---
*Generated by the Genome Analysis Service*
`)

	return b.String()
}

func writeMatchSection(b *strings.Builder, title string, matches []domain.VariantMatch) {
	if len(matches) == 0 {
		return
	}

	fmt.Fprintf(b, "## %s\n\n", title)
	for _, m := range matches {
		fmt.Fprintf(b, "### %s (%s)\n\n", m.Gene, m.RSID)
		fmt.Fprintf(b, "- **Condition:** %s\n", m.Condition)
		fmt.Fprintf(b, "- **Genotype:** %s\n", m.Genotype)
		fmt.Fprintf(b, "- **Clinical Significance:** %s\n", m.ClinicalSignificance)
		fmt.Fprintf(b, "- **Details:** %s\n", m.Description)
		if len(m.Recommendations) > 0 {
			b.WriteString("- **Recommendations:**\n")
			for _, r := range m.Recommendations {
				fmt.Fprintf(b, "  - %s\n", r)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("---\n\n")
}

func GenerateTraitsReport(result *domain.TraitsAnalysisResult, subjectName string) string {
	var b strings.Builder

	b.WriteString("# Personal Traits & Wellness Report\n\n")
	fmt.Fprintf(&b, "**Subject:** %s\n**Generated:** %s\n\n---\n\n", subjectName, time.Now().Format("January 2, 2006"))

	b.WriteString(`## Overview

This report analyzes your genetic variants related to personal traits, wellness, and characteristics beyond disease risk. These insights are based on peer-reviewed research but should be considered informational - genetics is just one factor influencing these traits.

`)
	b.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Total Trait SNPs Checked | %d |\n", result.TotalTraitsChecked)
	fmt.Fprintf(&b, "| SNPs Found in Your Data | %d |\n", result.TraitsFound)
	fmt.Fprintf(&b, "| SNPs Not Available | %d |\n", result.TraitsNotFound)
	b.WriteString("\n---\n\n")

	for _, category := range domain.TraitCategories {
		findings := result.ResultsByCategory[category]
		if len(findings) == 0 {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", category)

		// Group findings by trait name, preserving first-seen order.
		var traitOrder []string
		byTrait := make(map[string][]domain.TraitResult)
		for _, f := range findings {
			if _, ok := byTrait[f.Trait]; !ok {
				traitOrder = append(traitOrder, f.Trait)
			}
			byTrait[f.Trait] = append(byTrait[f.Trait], f)
		}

		for _, trait := range traitOrder {
			fmt.Fprintf(&b, "### %s\n\n", trait)
			for _, f := range byTrait[trait] {
				fmt.Fprintf(&b, "**%s** (%s)\n\n", f.Gene, f.RSID)
				fmt.Fprintf(&b, "- **Genotype:** %s\n", f.Genotype)
				fmt.Fprintf(&b, "- **Interpretation:** %s\n", f.Interpretation)
				fmt.Fprintf(&b, "- **Background:** %s\n\n", f.Description)
			}
		}

		b.WriteString("---\n\n")
	}

	hasMissing := false
	for _, missing := range result.MissingByCategory {
		if len(missing) > 0 {
			hasMissing = true
			break
		}
	}
	if hasMissing {
		b.WriteString(`## Data Not Available

The following traits could not be analyzed because the SNPs were not found in your genome file. This is normal - different DNA testing services test different SNPs.

`)
		for _, category := range domain.TraitCategories {
			missing := result.MissingByCategory[category]
			if len(missing) == 0 {
				continue
			}
			fmt.Fprintf(&b, "### %s\n", category)
			limit := len(missing)
			if limit > 5 {
				limit = 5
			}
			for _, item := range missing[:limit] {
				fmt.Fprintf(&b, "- %s\n", item)
			}
			if len(missing) > 5 {
				fmt.Fprintf(&b, "- *...and %d more*\n", len(missing)-5)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(`---

## Important Notes

1. **Genetics is not destiny** - These are tendencies and probabilities, not certainties. Environment, lifestyle, and other genetic factors also play major roles.

2. **Research is ongoing** - Scientific understanding of these associations continues to evolve. Some findings may be refined or revised.

3. **Individual variation** - Even with "risk" variants, many people do not exhibit the associated traits, and vice versa.

4. **Consult professionals** - For mental health, cognitive, or significant wellness concerns, consult qualified healthcare providers.

---
*Generated by the Genome Analysis Service*
`)

	return b.String()
}
