package domain

type RiskLevel string

const (
	RiskHigh       RiskLevel = "high"
	RiskModerate   RiskLevel = "moderate"
	RiskLow        RiskLevel = "low"
	RiskBeneficial RiskLevel = "beneficial"
)

// VariantMatch is a genotyped variant that matched an annotation source.
type VariantMatch struct {
	RSID                 string    `json:"rsid"`
	Genotype             string    `json:"genotype"`
	Gene                 string    `json:"gene"`
	Condition            string    `json:"condition"`
	ClinicalSignificance string    `json:"clinicalSignificance"`
	RiskLevel            RiskLevel `json:"riskLevel"`
	Description          string    `json:"description"`
	Recommendations      []string  `json:"recommendations"`
	Category             string    `json:"category"`
}

// DiseaseRiskResult buckets matches by risk level. Drug Metabolism matches are
// additionally tracked as pharmacogenomic.
type DiseaseRiskResult struct {
	TotalVariantsAnalyzed   int
	ClinVarMatches          int
	HighRiskVariants        []VariantMatch
	ModerateRiskVariants    []VariantMatch
	LowRiskVariants         []VariantMatch
	BeneficialVariants      []VariantMatch
	PharmacogenomicVariants []VariantMatch
	Categories              map[string]int
}
