package domain

// TraitResult is the interpretation of a single trait SNP found in a genome.
type TraitResult struct {
	RSID            string `json:"rsid"`
	Gene            string `json:"gene"`
	Category        string `json:"category"`
	Trait           string `json:"trait"`
	Genotype        string `json:"genotype"`
	HasRiskAllele   bool   `json:"hasRiskAllele"`
	RiskAlleleCount int    `json:"riskAlleleCount"`
	Effect          string `json:"effect"`
	Interpretation  string `json:"interpretation"`
	Description     string `json:"description"`
}

type TraitsAnalysisResult struct {
	TotalTraitsChecked int
	TraitsFound        int
	TraitsNotFound     int
	ResultsByCategory  map[string][]TraitResult
	// Trait SNPs the tested genome did not cover, as "rsid (GENE): trait".
	MissingByCategory map[string][]string
}
