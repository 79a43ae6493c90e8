package tagger

// tagRules map semantic tags to the lowercase keyword lists that trigger
// them. Order fixes tag order in output; the first matching keyword per tag
// wins.
var tagRules = []struct {
	tag      string
	keywords []string
}{
	{"finding", []string{
		"found that", "discovered", "revealed", "identified",
		"shows that", "indicates", "demonstrates", "evidence shows",
	}},
	{"recommendation", []string{
		"recommend", "should", "must", "need to", "propose",
		"suggest", "advise", "call for", "urge",
	}},
	{"allegation", []string{
		"alleged", "accused", "claimed", "reportedly",
		"suspected", "under investigation", "scandal",
	}},
	{"statistic", []string{
		"percent", "percentage", "ksh", "billion", "million",
		"trillion", "increased by", "decreased by", "growth of",
	}},
	{"legal_reference", []string{
		"article", "section", "act", "constitution",
		"law", "regulation", "statute",
	}},
	{"corruption", []string{
		"corruption", "embezzlement", "fraud", "theft",
		"bribery", "kickback", "misappropriation",
	}},
	{"debt", []string{
		"debt", "loan", "borrowing", "credit",
		"interest", "repayment", "default",
	}},
	{"human_rights", []string{
		"right to", "human rights", "freedom",
		"dignity", "equality", "justice",
	}},
}

// institutionNames are matched lowercase as substrings.
var institutionNames = []string{
	"treasury", "parliament", "county", "eacc", "oag", "cob", "imf", "world bank",
}

// negativeStems flag violation language next to an article reference.
var negativeStems = []string{"violat", "breach", "fail", "deny", "ignore", "disregard"}
