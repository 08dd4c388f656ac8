package domain

// SNPInfo is a curated clinically significant variant.
type SNPInfo struct {
	RSID            string    `json:"rsid"`
	Gene            string    `json:"gene"`
	Category        string    `json:"category"`
	RiskAllele      string    `json:"riskAllele"`
	NormalAllele    string    `json:"normalAllele"`
	Significance    RiskLevel `json:"significance"`
	Condition       string    `json:"condition"`
	Description     string    `json:"description"`
	Recommendations []string  `json:"recommendations"`
}

// SNPDatabase is the curated table of clinically significant SNPs, keyed by
// lowercase rsID.
var SNPDatabase = map[string]SNPInfo{
	// Cardiovascular Health
	"rs1801133": {
		RSID:         "rs1801133",
		Gene:         "MTHFR",
		Category:     "Cardiovascular",
		RiskAllele:   "T",
		NormalAllele: "C",
		Significance: RiskModerate,
		Condition:    "MTHFR C677T Variant",
		Description:  "Affects folate metabolism and homocysteine levels. Associated with increased cardiovascular disease risk.",
		Recommendations: []string{
			"Consider methylfolate supplementation",
			"Monitor homocysteine levels",
			"Ensure adequate B12 intake",
		},
	},
	"rs429358": {
		RSID:         "rs429358",
		Gene:         "APOE",
		Category:     "Cardiovascular/Neurological",
		RiskAllele:   "C",
		NormalAllele: "T",
		Significance: RiskHigh,
		Condition:    "APOE4 Variant",
		Description:  "Associated with increased risk of Alzheimer's disease and cardiovascular disease.",
		Recommendations: []string{
			"Regular cardiovascular monitoring",
			"Consider cognitive assessments",
			"Heart-healthy diet",
			"Regular exercise",
		},
	},
	"rs7412": {
		RSID:            "rs7412",
		Gene:            "APOE",
		Category:        "Cardiovascular/Neurological",
		RiskAllele:      "T",
		NormalAllele:    "C",
		Significance:    RiskBeneficial,
		Condition:       "APOE2 Variant",
		Description:     "Associated with reduced cardiovascular risk and possible longevity benefits.",
		Recommendations: []string{},
	},
	"rs1800566": {
		RSID:         "rs1800566",
		Gene:         "NQO1",
		Category:     "Detoxification",
		RiskAllele:   "T",
		NormalAllele: "C",
		Significance: RiskModerate,
		Condition:    "NQO1*2 Variant",
		Description:  "Reduced ability to detoxify certain compounds. May affect drug metabolism.",
		Recommendations: []string{
			"Avoid excessive oxidative stress",
			"Consider antioxidant supplementation",
			"Discuss medication metabolism with healthcare provider",
		},
	},

	// Pharmacogenomics
	"rs1799853": {
		RSID:         "rs1799853",
		Gene:         "CYP2C9",
		Category:     "Drug Metabolism",
		RiskAllele:   "T",
		NormalAllele: "C",
		Significance: RiskModerate,
		Condition:    "CYP2C9*2 Variant",
		Description:  "Reduced metabolism of warfarin, NSAIDs, and other medications.",
		Recommendations: []string{
			"May need lower doses of warfarin",
			"Inform healthcare providers before surgery",
			"Caution with certain pain medications",
		},
	},
	"rs1057910": {
		RSID:         "rs1057910",
		Gene:         "CYP2C9",
		Category:     "Drug Metabolism",
		RiskAllele:   "C",
		NormalAllele: "A",
		Significance: RiskModerate,
		Condition:    "CYP2C9*3 Variant",
		Description:  "Significantly reduced metabolism of many medications including warfarin.",
		Recommendations: []string{
			"May need significantly lower doses of warfarin",
			"Inform all healthcare providers",
			"Consider pharmacogenomic testing before new medications",
		},
	},
	"rs4244285": {
		RSID:         "rs4244285",
		Gene:         "CYP2C19",
		Category:     "Drug Metabolism",
		RiskAllele:   "A",
		NormalAllele: "G",
		Significance: RiskHigh,
		Condition:    "CYP2C19*2 Variant",
		Description:  "Poor metabolizer of clopidogrel (Plavix), PPIs, and some antidepressants.",
		Recommendations: []string{
			"Alternative antiplatelet therapy may be needed",
			"Inform cardiologist before procedures",
			"May need alternative medications",
		},
	},
	"rs12248560": {
		RSID:         "rs12248560",
		Gene:         "CYP2C19",
		Category:     "Drug Metabolism",
		RiskAllele:   "T",
		NormalAllele: "C",
		Significance: RiskModerate,
		Condition:    "CYP2C19*17 Variant",
		Description:  "Ultra-rapid metabolizer. May need higher doses of some medications.",
		Recommendations: []string{
			"Standard doses may be less effective",
			"Discuss with healthcare provider",
			"Monitor medication effectiveness",
		},
	},
	"rs4986893": {
		RSID:         "rs4986893",
		Gene:         "CYP2C19",
		Category:     "Drug Metabolism",
		RiskAllele:   "A",
		NormalAllele: "G",
		Significance: RiskHigh,
		Condition:    "CYP2C19*3 Variant",
		Description:  "Non-functional enzyme. Poor metabolizer of many medications.",
		Recommendations: []string{
			"Significant drug metabolism impairment",
			"Alternative medications may be needed",
			"Comprehensive pharmacogenomic review recommended",
		},
	},

	// Metabolic Health
	"rs1801282": {
		RSID:         "rs1801282",
		Gene:         "PPARG",
		Category:     "Metabolic",
		RiskAllele:   "G",
		NormalAllele: "C",
		Significance: RiskModerate,
		Condition:    "PPARG Pro12Ala Variant",
		Description:  "Associated with insulin sensitivity and type 2 diabetes risk.",
		Recommendations: []string{
			"Monitor blood glucose regularly",
			"Maintain healthy weight",
			"Regular exercise",
			"Low glycemic diet",
		},
	},
	"rs7903146": {
		RSID:         "rs7903146",
		Gene:         "TCF7L2",
		Category:     "Metabolic",
		RiskAllele:   "T",
		NormalAllele: "C",
		Significance: RiskHigh,
		Condition:    "TCF7L2 Risk Variant",
		Description:  "One of the strongest genetic risk factors for type 2 diabetes.",
		Recommendations: []string{
			"Regular diabetes screening",
			"Strict glycemic control",
			"Lifestyle modifications critical",
			"Consider early intervention",
		},
	},
	"rs1800562": {
		RSID:         "rs1800562",
		Gene:         "HFE",
		Category:     "Metabolic",
		RiskAllele:   "A",
		NormalAllele: "G",
		Significance: RiskHigh,
		Condition:    "Hereditary Hemochromatosis (C282Y)",
		Description:  "Risk for iron overload disorder. Two copies significantly increase risk.",
		Recommendations: []string{
			"Regular iron and ferritin testing",
			"Avoid iron supplements unless deficient",
			"Limit vitamin C with meals",
			"Consider therapeutic phlebotomy if elevated",
		},
	},

	// Nutrition & Vitamins
	"rs12934922": {
		RSID:         "rs12934922",
		Gene:         "BCMO1",
		Category:     "Nutrition",
		RiskAllele:   "T",
		NormalAllele: "A",
		Significance: RiskModerate,
		Condition:    "Beta-Carotene Conversion Variant",
		Description:  "Reduced ability to convert beta-carotene to vitamin A.",
		Recommendations: []string{
			"May need preformed vitamin A (retinol)",
			"Include animal sources of vitamin A",
			"Consider retinol supplementation",
		},
	},
	"rs7041": {
		RSID:         "rs7041",
		Gene:         "GC",
		Category:     "Nutrition",
		RiskAllele:   "T",
		NormalAllele: "G",
		Significance: RiskModerate,
		Condition:    "Vitamin D Binding Protein Variant",
		Description:  "May affect vitamin D transport and bioavailability.",
		Recommendations: []string{
			"Regular vitamin D level testing",
			"May need higher supplementation",
			"Sun exposure for natural synthesis",
		},
	},
	"rs602662": {
		RSID:         "rs602662",
		Gene:         "FUT2",
		Category:     "Nutrition",
		RiskAllele:   "A",
		NormalAllele: "G",
		Significance: RiskModerate,
		Condition:    "Vitamin B12 Absorption Variant",
		Description:  "May affect B12 absorption from food sources.",
		Recommendations: []string{
			"Regular B12 level monitoring",
			"May benefit from sublingual B12",
			"Consider methylcobalamin form",
		},
	},

	// Inflammation & Immunity
	"rs1800795": {
		RSID:         "rs1800795",
		Gene:         "IL6",
		Category:     "Inflammation",
		RiskAllele:   "C",
		NormalAllele: "G",
		Significance: RiskModerate,
		Condition:    "IL-6 Promoter Variant",
		Description:  "Associated with increased inflammatory response.",
		Recommendations: []string{
			"Anti-inflammatory diet",
			"Omega-3 fatty acids",
			"Regular exercise",
			"Stress management",
		},
	},
	"rs1800896": {
		RSID:         "rs1800896",
		Gene:         "IL10",
		Category:     "Inflammation",
		RiskAllele:   "A",
		NormalAllele: "G",
		Significance: RiskModerate,
		Condition:    "IL-10 Variant",
		Description:  "Affects anti-inflammatory cytokine production.",
		Recommendations: []string{
			"Support immune balance",
			"Anti-inflammatory lifestyle",
			"Consider probiotics",
		},
	},

	// Detoxification
	"rs1695": {
		RSID:         "rs1695",
		Gene:         "GSTP1",
		Category:     "Detoxification",
		RiskAllele:   "G",
		NormalAllele: "A",
		Significance: RiskModerate,
		Condition:    "GSTP1 Variant",
		Description:  "Reduced glutathione S-transferase activity. Affects detoxification.",
		Recommendations: []string{
			"Support glutathione production",
			"Cruciferous vegetables",
			"NAC or glutathione supplementation",
			"Limit toxin exposure",
		},
	},
	"rs4680": {
		RSID:         "rs4680",
		Gene:         "COMT",
		Category:     "Neurological",
		RiskAllele:   "A",
		NormalAllele: "G",
		Significance: RiskModerate,
		Condition:    "COMT Val158Met Variant",
		Description:  "Affects dopamine and estrogen metabolism. The 'worrier' vs 'warrior' gene.",
		Recommendations: []string{
			"SAMe may help if slow COMT",
			"Stress management techniques",
			"Avoid excessive caffeine if slow COMT",
		},
	},

	// Sleep & Circadian
	"rs73598374": {
		RSID:         "rs73598374",
		Gene:         "ADA",
		Category:     "Sleep",
		RiskAllele:   "T",
		NormalAllele: "C",
		Significance: RiskLow,
		Condition:    "Adenosine Deaminase Variant",
		Description:  "Associated with deep sleep architecture.",
		Recommendations: []string{
			"Maintain consistent sleep schedule",
			"Optimize sleep environment",
		},
	},

	// Caffeine Metabolism
	"rs762551": {
		RSID:         "rs762551",
		Gene:         "CYP1A2",
		Category:     "Drug Metabolism",
		RiskAllele:   "C",
		NormalAllele: "A",
		Significance: RiskLow,
		Condition:    "Caffeine Metabolism Variant",
		Description:  "Slow caffeine metabolizer. Caffeine has longer effects.",
		Recommendations: []string{
			"Limit afternoon caffeine",
			"May be more sensitive to caffeine effects",
			"Consider cutting caffeine earlier in day",
		},
	},

	// Celiac & Gluten
	"rs2187668": {
		RSID:         "rs2187668",
		Gene:         "HLA-DQ2",
		Category:     "Autoimmune",
		RiskAllele:   "T",
		NormalAllele: "C",
		Significance: RiskModerate,
		Condition:    "Celiac Disease Risk (HLA-DQ2)",
		Description:  "Genetic predisposition to celiac disease.",
		Recommendations: []string{
			"Consider celiac antibody testing if symptoms present",
			"Monitor for gluten sensitivity symptoms",
			"Genetic risk does not mean disease will develop",
		},
	},

	// Cancer Risk
	"rs1042522": {
		RSID:         "rs1042522",
		Gene:         "TP53",
		Category:     "Cancer",
		RiskAllele:   "C",
		NormalAllele: "G",
		Significance: RiskModerate,
		Condition:    "p53 Codon 72 Variant",
		Description:  "May affect p53 tumor suppressor function.",
		Recommendations: []string{
			"Regular cancer screenings",
			"Healthy lifestyle",
			"Avoid known carcinogens",
		},
	},

	// Cardiovascular - Additional
	"rs1333049": {
		RSID:         "rs1333049",
		Gene:         "9p21",
		Category:     "Cardiovascular",
		RiskAllele:   "C",
		NormalAllele: "G",
		Significance: RiskHigh,
		Condition:    "9p21 Coronary Artery Disease Risk",
		Description:  "One of the strongest genetic markers for coronary artery disease.",
		Recommendations: []string{
			"Aggressive cardiovascular risk management",
			"Regular cardiac assessments",
			"Strict blood pressure control",
			"Lipid management",
		},
	},
	"rs10757274": {
		RSID:         "rs10757274",
		Gene:         "9p21",
		Category:     "Cardiovascular",
		RiskAllele:   "G",
		NormalAllele: "A",
		Significance: RiskHigh,
		Condition:    "9p21 Myocardial Infarction Risk",
		Description:  "Associated with increased risk of heart attack.",
		Recommendations: []string{
			"Heart-healthy lifestyle critical",
			"Regular cardiac monitoring",
			"Know heart attack warning signs",
		},
	},

	// Clotting Factors
	"rs6025": {
		RSID:         "rs6025",
		Gene:         "F5",
		Category:     "Blood Clotting",
		RiskAllele:   "T",
		NormalAllele: "C",
		Significance: RiskHigh,
		Condition:    "Factor V Leiden",
		Description:  "Increased risk of blood clots (deep vein thrombosis, pulmonary embolism).",
		Recommendations: []string{
			"Avoid prolonged immobility",
			"Discuss with doctor before surgery or travel",
			"Caution with estrogen-containing medications",
			"Stay hydrated",
		},
	},
	"rs1799963": {
		RSID:         "rs1799963",
		Gene:         "F2",
		Category:     "Blood Clotting",
		RiskAllele:   "A",
		NormalAllele: "G",
		Significance: RiskHigh,
		Condition:    "Prothrombin G20210A",
		Description:  "Increased risk of venous thromboembolism.",
		Recommendations: []string{
			"Avoid prolonged immobility",
			"Inform healthcare providers",
			"Caution with hormonal therapies",
			"Compression stockings for long travel",
		},
	},
}
