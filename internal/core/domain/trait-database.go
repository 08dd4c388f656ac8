package domain

// TraitSNP is a variant associated with a non-disease trait.
type TraitSNP struct {
	RSID        string   `json:"rsid"`
	Gene        string   `json:"gene"`
	Category    string   `json:"category"`
	Trait       string   `json:"trait"`
	RiskAllele  string   `json:"riskAllele"`
	Effect      string   `json:"effect"`
	Description string   `json:"description"`
	References  []string `json:"references"`
}

var TraitCategories = []string{
	"Cognitive",
	"Metabolism",
	"Sleep",
	"Physical",
	"Athletic",
	"Mental Health",
	"Longevity",
	"Sensitivity",
}

// TraitsDatabase holds trait-associated SNPs. A few rsIDs appear twice under
// different traits (e.g. CLOCK, COMT), so entries are keyed by a unique label
// and matching is done on the entry's RSID field.
var TraitsDatabase = map[string]TraitSNP{
	// Cognitive: autism spectrum
	"rs2710102": {
		RSID: "rs2710102", Gene: "CNTNAP2", Category: "Cognitive",
		Trait:       "Autism Spectrum Risk",
		RiskAllele:  "C",
		Effect:      "Slightly increased risk of autism spectrum traits",
		Description: "CNTNAP2 is involved in neural development and language. Variants associated with autism and language delays.",
		References:  []string{"PMID:18179900"},
	},
	"rs7794745": {
		RSID: "rs7794745", Gene: "CNTNAP2", Category: "Cognitive",
		Trait:       "Autism Spectrum Risk",
		RiskAllele:  "T",
		Effect:      "Associated with autism spectrum traits",
		Description: "Another CNTNAP2 variant linked to autism and social communication differences.",
		References:  []string{"PMID:18179900"},
	},
	"rs1858830": {
		RSID: "rs1858830", Gene: "MET", Category: "Cognitive",
		Trait:       "Autism Spectrum Risk",
		RiskAllele:  "C",
		Effect:      "Increased autism risk (2x with CC genotype)",
		Description: "MET gene regulates brain development. C allele associated with autism in multiple studies.",
		References:  []string{"PMID:17053076"},
	},
	"rs4307059": {
		RSID: "rs4307059", Gene: "CDH9/CDH10", Category: "Cognitive",
		Trait:       "Autism Spectrum Risk",
		RiskAllele:  "T",
		Effect:      "Associated with autism spectrum",
		Description: "Cadherin genes involved in neuronal connectivity.",
		References:  []string{"PMID:19404256"},
	},

	// Cognitive: ADHD
	"rs1800955": {
		RSID: "rs1800955", Gene: "DRD4", Category: "Cognitive",
		Trait:       "ADHD Risk",
		RiskAllele:  "C",
		Effect:      "Increased ADHD risk, novelty seeking",
		Description: "Dopamine receptor D4 variant. Associated with attention and novelty-seeking behavior.",
		References:  []string{"PMID:11943377"},
	},
	"rs27072": {
		RSID: "rs27072", Gene: "DAT1/SLC6A3", Category: "Cognitive",
		Trait:       "ADHD Risk",
		RiskAllele:  "A",
		Effect:      "Associated with ADHD and dopamine transport",
		Description: "Dopamine transporter gene. Affects dopamine reuptake in the brain.",
		References:  []string{"PMID:12893112"},
	},
	"rs5569": {
		RSID: "rs5569", Gene: "NET/SLC6A2", Category: "Cognitive",
		Trait:       "ADHD Risk",
		RiskAllele:  "T",
		Effect:      "Associated with ADHD symptoms",
		Description: "Norepinephrine transporter. Affects attention and arousal systems.",
		References:  []string{"PMID:16642436"},
	},
	"rs1801260": {
		RSID: "rs1801260", Gene: "CLOCK", Category: "Cognitive",
		Trait:       "ADHD Risk / Circadian Rhythm",
		RiskAllele:  "C",
		Effect:      "Evening preference, possible ADHD link",
		Description: "Circadian rhythm gene affecting sleep patterns and potentially ADHD.",
		References:  []string{"PMID:17346975"},
	},

	// Cognitive: performance
	"rs363050": {
		RSID: "rs363050", Gene: "SNAP25", Category: "Cognitive",
		Trait:       "Cognitive Performance",
		RiskAllele:  "G",
		Effect:      "Associated with higher IQ scores",
		Description: "SNAP25 is crucial for neurotransmitter release. G allele linked to better cognitive performance.",
		References:  []string{"PMID:19197363"},
	},
	"rs17070145": {
		RSID: "rs17070145", Gene: "KIBRA", Category: "Cognitive",
		Trait:       "Memory Performance",
		RiskAllele:  "T",
		Effect:      "Better episodic memory",
		Description: "T allele carriers show enhanced memory recall in multiple studies.",
		References:  []string{"PMID:16741276"},
	},
	"rs6265": {
		RSID: "rs6265", Gene: "BDNF", Category: "Cognitive",
		Trait:       "Memory & Learning",
		RiskAllele:  "T",
		Effect:      "Reduced memory performance, anxiety risk",
		Description: "BDNF Val66Met. Met carriers may have reduced hippocampal volume and memory. Also affects mood.",
		References:  []string{"PMID:12805289", "PMID:15728823"},
	},
	"rs4680": {
		RSID: "rs4680", Gene: "COMT", Category: "Cognitive",
		Trait:       "Cognitive Style / Stress Response",
		RiskAllele:  "A",
		Effect:      "Warrior vs Worrier: A=better cognition under low stress, G=better under high stress",
		Description: "COMT Val158Met affects dopamine in prefrontal cortex. Met/Met (AA): better working memory but more stress sensitive. Val/Val (GG): more stress resilient but lower baseline cognition.",
		References:  []string{"PMID:11182883"},
	},
	"rs1800497": {
		RSID: "rs1800497", Gene: "ANKK1/DRD2", Category: "Cognitive",
		Trait:       "Learning & Reward Processing",
		RiskAllele:  "T",
		Effect:      "Reduced dopamine receptors, different learning style",
		Description: "Taq1A polymorphism. T allele (A1) linked to fewer D2 receptors, affecting reward-based learning.",
		References:  []string{"PMID:9449002"},
	},

	// Metabolism: caffeine
	"rs762551": {
		RSID: "rs762551", Gene: "CYP1A2", Category: "Metabolism",
		Trait:       "Caffeine Metabolism",
		RiskAllele:  "C",
		Effect:      "Slow caffeine metabolizer",
		Description: "AA genotype = fast metabolizer (can drink more coffee). AC/CC = slow metabolizer (caffeine stays longer, higher cardiovascular risk with high intake).",
		References:  []string{"PMID:16522833"},
	},
	"rs2472297": {
		RSID: "rs2472297", Gene: "CYP1A2", Category: "Metabolism",
		Trait:       "Caffeine Consumption",
		RiskAllele:  "T",
		Effect:      "Higher caffeine consumption tendency",
		Description: "Affects how much caffeine you naturally tend to consume.",
		References:  []string{"PMID:21490707"},
	},
	"rs4410790": {
		RSID: "rs4410790", Gene: "AHR", Category: "Metabolism",
		Trait:       "Caffeine Sensitivity",
		RiskAllele:  "T",
		Effect:      "Higher caffeine sensitivity",
		Description: "Affects caffeine's effects on the body, including anxiety and sleep disruption.",
		References:  []string{"PMID:25288136"},
	},

	// Metabolism: alcohol
	"rs671": {
		RSID: "rs671", Gene: "ALDH2", Category: "Metabolism",
		Trait:       "Alcohol Metabolism",
		RiskAllele:  "A",
		Effect:      "Alcohol flush reaction, poor alcohol tolerance",
		Description: "Common in East Asian populations. A allele causes acetaldehyde buildup, flushing, and nausea.",
		References:  []string{"PMID:20626054"},
	},
	"rs1229984": {
		RSID: "rs1229984", Gene: "ADH1B", Category: "Metabolism",
		Trait:       "Alcohol Metabolism",
		RiskAllele:  "T",
		Effect:      "Fast alcohol metabolism, protective against alcoholism",
		Description: "Processes alcohol faster, making intoxication less pleasant. Protective against alcohol dependence.",
		References:  []string{"PMID:18385738"},
	},

	// Metabolism: lactose
	"rs4988235": {
		RSID: "rs4988235", Gene: "MCM6/LCT", Category: "Metabolism",
		Trait:       "Lactose Tolerance",
		RiskAllele:  "G",
		Effect:      "Lactose intolerance (GG genotype)",
		Description: "G/G = likely lactose intolerant. A/G or A/A = lactose tolerant (lactase persistence).",
		References:  []string{"PMID:11788828"},
	},

	// Metabolism: vitamins
	"rs12934922": {
		RSID: "rs12934922", Gene: "BCMO1", Category: "Metabolism",
		Trait:       "Beta-Carotene Conversion",
		RiskAllele:  "T",
		Effect:      "Poor converter of beta-carotene to Vitamin A",
		Description: "May need preformed Vitamin A (retinol) instead of relying on plant sources.",
		References:  []string{"PMID:19103647"},
	},
	"rs7041": {
		RSID: "rs7041", Gene: "GC", Category: "Metabolism",
		Trait:       "Vitamin D Levels",
		RiskAllele:  "T",
		Effect:      "Lower vitamin D levels",
		Description: "Affects vitamin D binding protein. May need more sun or supplementation.",
		References:  []string{"PMID:20418485"},
	},
	"rs602662": {
		RSID: "rs602662", Gene: "FUT2", Category: "Metabolism",
		Trait:       "Vitamin B12 Absorption",
		RiskAllele:  "A",
		Effect:      "Lower B12 levels",
		Description: "Affects B12 absorption. May benefit from monitoring B12 status.",
		References:  []string{"PMID:18779456"},
	},

	// Metabolism: weight
	"rs9939609": {
		RSID: "rs9939609", Gene: "FTO", Category: "Metabolism",
		Trait:       "Energy & Weight Regulation",
		RiskAllele:  "A",
		Effect:      "Increased appetite, obesity risk",
		Description: "FTO affects hunger hormones. A allele carriers may feel less satiated after eating.",
		References:  []string{"PMID:17434869"},
	},

	// Sleep
	"rs57875989": {
		RSID: "rs57875989", Gene: "DEC2/BHLHE41", Category: "Sleep",
		Trait:       "Sleep Duration",
		RiskAllele:  "G",
		Effect:      "Short sleeper (needs less sleep)",
		Description: "Rare variant allowing some people to function well on 4-6 hours of sleep.",
		References:  []string{"PMID:19679812"},
	},
	"rs12649507": {
		RSID: "rs12649507", Gene: "ADA", Category: "Sleep",
		Trait:       "Sleep Depth",
		RiskAllele:  "A",
		Effect:      "Deeper sleep, more slow-wave sleep",
		Description: "Affects adenosine metabolism which regulates sleep pressure.",
		References:  []string{"PMID:15931224"},
	},
	"rs1801260_clock": {
		RSID: "rs1801260", Gene: "CLOCK", Category: "Sleep",
		Trait:       "Chronotype (Morning/Evening)",
		RiskAllele:  "C",
		Effect:      "Evening preference (night owl)",
		Description: "C allele associated with being a night owl. T allele with morning preference.",
		References:  []string{"PMID:12957359"},
	},
	"rs10830963": {
		RSID: "rs10830963", Gene: "MTNR1B", Category: "Sleep",
		Trait:       "Melatonin Sensitivity",
		RiskAllele:  "G",
		Effect:      "Higher fasting glucose, sleep disruption effects on metabolism",
		Description: "Affects melatonin receptor. Night eating/late meals may particularly affect blood sugar.",
		References:  []string{"PMID:19060906"},
	},

	// Physical: hair
	"rs1805007": {
		RSID: "rs1805007", Gene: "MC1R", Category: "Physical",
		Trait:       "Red Hair",
		RiskAllele:  "T",
		Effect:      "Red hair, fair skin, increased sun sensitivity",
		Description: "One of several MC1R variants causing red hair phenotype.",
		References:  []string{"PMID:8651275"},
	},
	"rs1805008": {
		RSID: "rs1805008", Gene: "MC1R", Category: "Physical",
		Trait:       "Red Hair",
		RiskAllele:  "T",
		Effect:      "Red hair, fair skin",
		Description: "Another MC1R variant for red hair.",
		References:  []string{"PMID:8651275"},
	},
	"rs12821256": {
		RSID: "rs12821256", Gene: "KITLG", Category: "Physical",
		Trait:       "Blonde Hair",
		RiskAllele:  "C",
		Effect:      "Blonde hair",
		Description: "Affects hair color through melanocyte development.",
		References:  []string{"PMID:25283252"},
	},

	// Physical: baldness
	"rs2180439": {
		RSID: "rs2180439", Gene: "Chr20p11", Category: "Physical",
		Trait:       "Male Pattern Baldness",
		RiskAllele:  "T",
		Effect:      "Increased baldness risk",
		Description: "One of several variants associated with androgenetic alopecia.",
		References:  []string{"PMID:18849991"},
	},
	"rs6152": {
		RSID: "rs6152", Gene: "AR", Category: "Physical",
		Trait:       "Male Pattern Baldness",
		RiskAllele:  "A",
		Effect:      "Increased baldness risk",
		Description: "Androgen receptor gene variant. Key predictor of male pattern baldness.",
		References:  []string{"PMID:15902657"},
	},
	"rs1385699": {
		RSID: "rs1385699", Gene: "Chr7p21.1", Category: "Physical",
		Trait:       "Male Pattern Baldness",
		RiskAllele:  "T",
		Effect:      "Increased baldness risk",
		Description: "Genome-wide association with baldness.",
		References:  []string{"PMID:18849991"},
	},

	// Physical: eyes and skin
	"rs12913832": {
		RSID: "rs12913832", Gene: "HERC2/OCA2", Category: "Physical",
		Trait:       "Eye Color",
		RiskAllele:  "G",
		Effect:      "Blue eyes (GG), Brown eyes (AA)",
		Description: "Major determinant of blue vs brown eyes. GG = ~80% blue. AA = brown.",
		References:  []string{"PMID:18172690"},
	},
	"rs1800407": {
		RSID: "rs1800407", Gene: "OCA2", Category: "Physical",
		Trait:       "Eye Color",
		RiskAllele:  "T",
		Effect:      "Green/hazel eyes",
		Description: "Modifies eye color, associated with green and hazel.",
		References:  []string{"PMID:18172690"},
	},
	"rs12896399": {
		RSID: "rs12896399", Gene: "SLC24A4", Category: "Physical",
		Trait:       "Eye Color",
		RiskAllele:  "T",
		Effect:      "Lighter eye color",
		Description: "Contributes to lighter eye pigmentation.",
		References:  []string{"PMID:18488028"},
	},
	"rs1426654": {
		RSID: "rs1426654", Gene: "SLC24A5", Category: "Physical",
		Trait:       "Skin Pigmentation",
		RiskAllele:  "A",
		Effect:      "Lighter skin",
		Description: "Major gene for European skin lightening. A allele = lighter skin.",
		References:  []string{"PMID:16357253"},
	},

	// Athletic
	"rs1815739": {
		RSID: "rs1815739", Gene: "ACTN3", Category: "Athletic",
		Trait:       "Muscle Fiber Type",
		RiskAllele:  "T",
		Effect:      "Endurance athlete type (TT = no fast-twitch protein)",
		Description: "ACTN3 R577X. CC = sprint/power. TT = endurance. CT = mixed. Elite sprinters rarely have TT.",
		References:  []string{"PMID:12879365"},
	},
	"rs4994": {
		RSID: "rs4994", Gene: "ADRB3", Category: "Athletic",
		Trait:       "Exercise Recovery",
		RiskAllele:  "T",
		Effect:      "May have slower recovery from exercise",
		Description: "Affects metabolic rate and fat oxidation during exercise.",
		References:  []string{"PMID:9771751"},
	},
	"rs8192678": {
		RSID: "rs8192678", Gene: "PPARGC1A", Category: "Athletic",
		Trait:       "Aerobic Capacity",
		RiskAllele:  "A",
		Effect:      "Better response to endurance training",
		Description: "PGC-1alpha affects mitochondrial biogenesis. Important for endurance.",
		References:  []string{"PMID:14557860"},
	},
	"rs1042713": {
		RSID: "rs1042713", Gene: "ADRB2", Category: "Athletic",
		Trait:       "Exercise Performance",
		RiskAllele:  "G",
		Effect:      "Better endurance performance",
		Description: "Beta-2 adrenergic receptor. Affects bronchodilation and metabolic response to exercise.",
		References:  []string{"PMID:17456243"},
	},

	// Mental Health
	"rs6295": {
		RSID: "rs6295", Gene: "HTR1A", Category: "Mental Health",
		Trait:       "Depression/Anxiety Risk",
		RiskAllele:  "G",
		Effect:      "Increased anxiety and depression risk",
		Description: "Serotonin receptor variant. G allele associated with mood disorders.",
		References:  []string{"PMID:16631126"},
	},
	"rs25531": {
		RSID: "rs25531", Gene: "SLC6A4", Category: "Mental Health",
		Trait:       "Stress Sensitivity",
		RiskAllele:  "G",
		Effect:      "Lower serotonin transporter expression, more stress sensitive",
		Description: "Part of 5-HTTLPR. Affects how you respond to life stress.",
		References:  []string{"PMID:12869766"},
	},
	"rs4570625": {
		RSID: "rs4570625", Gene: "TPH2", Category: "Mental Health",
		Trait:       "Emotional Processing",
		RiskAllele:  "T",
		Effect:      "Enhanced emotional reactivity",
		Description: "Affects serotonin synthesis in the brain. Influences emotional responses.",
		References:  []string{"PMID:16402131"},
	},
	"rs1800532": {
		RSID: "rs1800532", Gene: "TPH1", Category: "Mental Health",
		Trait:       "Mood Regulation",
		RiskAllele:  "A",
		Effect:      "Associated with mood disorders",
		Description: "Tryptophan hydroxylase variant affecting serotonin production.",
		References:  []string{"PMID:10369410"},
	},
	"rs6313": {
		RSID: "rs6313", Gene: "HTR2A", Category: "Mental Health",
		Trait:       "SSRI Response",
		RiskAllele:  "T",
		Effect:      "May respond differently to SSRI antidepressants",
		Description: "Serotonin receptor 2A. Affects response to serotonergic medications.",
		References:  []string{"PMID:16642437"},
	},

	// Longevity
	"rs429358": {
		RSID: "rs429358", Gene: "APOE", Category: "Longevity",
		Trait:       "Longevity / Alzheimer's",
		RiskAllele:  "C",
		Effect:      "APOE4 - reduced longevity, increased Alzheimer's risk",
		Description: "APOE4 carriers have higher cardiovascular and Alzheimer's risk. APOE2 is protective.",
		References:  []string{"PMID:8346443"},
	},
	"rs2802292": {
		RSID: "rs2802292", Gene: "FOXO3", Category: "Longevity",
		Trait:       "Longevity",
		RiskAllele:  "G",
		Effect:      "Associated with longevity",
		Description: "FOXO3 is a key longevity gene. G allele found more often in centenarians.",
		References:  []string{"PMID:18765803"},
	},
	"rs1042522": {
		RSID: "rs1042522", Gene: "TP53", Category: "Longevity",
		Trait:       "Cancer Risk / Longevity",
		RiskAllele:  "C",
		Effect:      "Pro72 variant - different cancer profile",
		Description: "p53 codon 72. Affects cancer risk profile and cellular aging.",
		References:  []string{"PMID:12474142"},
	},

	// Sensitivity
	"rs1799971": {
		RSID: "rs1799971", Gene: "OPRM1", Category: "Sensitivity",
		Trait:       "Pain Sensitivity / Opioid Response",
		RiskAllele:  "G",
		Effect:      "Higher pain sensitivity, may need more pain medication",
		Description: "Mu-opioid receptor. G allele associated with higher pain sensitivity and opioid requirements.",
		References:  []string{"PMID:15583379"},
	},
	"rs4680_pain": {
		RSID: "rs4680", Gene: "COMT", Category: "Sensitivity",
		Trait:       "Pain Sensitivity",
		RiskAllele:  "A",
		Effect:      "Met/Met - higher pain sensitivity",
		Description: "COMT affects pain processing. Met/Met individuals may be more pain sensitive.",
		References:  []string{"PMID:14985765"},
	},
}
