package domain

// Variant is a single genotyped position parsed from a consumer genome export.
type Variant struct {
	RSID       string
	Chromosome string
	Position   string
	Genotype   string
}

// ClinVarRecord is one row of the bundled ClinVar alleles table, keyed by rsID.
type ClinVarRecord struct {
	RSID                 string `json:"rsid"`
	Gene                 string `json:"gene"`
	Condition            string `json:"condition"`
	ClinicalSignificance string `json:"clinicalSignificance"`
	ReviewStatus         string `json:"reviewStatus"`
	Chromosome           string `json:"chromosome"`
	Position             string `json:"position"`
}

// VariantAnnotation merges everything the service knows about a single rsID.
type VariantAnnotation struct {
	RSID    string         `json:"rsid"`
	ClinVar *ClinVarRecord `json:"clinvar,omitempty"`
	Curated *SNPInfo       `json:"curated,omitempty"`
	Traits  []TraitSNP     `json:"traits,omitempty"`
}

// DatasetStats describes the annotation sources currently loaded.
type DatasetStats struct {
	ClinVarRecords int `json:"clinvarRecords"`
	CuratedSNPs    int `json:"curatedSnps"`
	TraitSNPs      int `json:"traitSnps"`
}
