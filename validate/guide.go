package validate

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// simpleExplanations translate the most commonly referenced articles into
// plain language for the guide.
var simpleExplanations = map[string]string{
	"1":   "All power belongs to the people of Kenya. Government gets authority from you.",
	"10":  "Lists the values that should guide government: honesty, fairness, participation.",
	"35":  "You have the right to get information from the government. They must give you documents when you ask.",
	"43":  "You have rights to healthcare, food, water, housing, education, and social security.",
	"73":  "Public officials must act with integrity. Authority is a public trust, not for private gain.",
	"201": "Government money must be managed openly, with public participation, and fairly.",
	"229": "Public jobs must be given based on merit, not connections.",
}

func simpleExplanation(article string) string {
	if exp, ok := simpleExplanations[article]; ok {
		return exp
	}
	return fmt.Sprintf("Article %s of the Constitution", article)
}

const rule = "================================================================================"

// citizenGuide renders the plain-text guide: key findings, the most violated
// articles with examples, and what a citizen can do about it.
func citizenGuide(detailed map[string]ArticleResult, summary Summary) string {
	var b strings.Builder

	b.WriteString("YOUR CONSTITUTIONAL RIGHTS: What They Promise vs. What You Get\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("INTRODUCTION\n")
	b.WriteString("The Constitution of Kenya (2010) is your contract with the government. ")
	b.WriteString("It lists what the government must do for you and what rights you have. ")
	b.WriteString("This guide shows you which parts of the Constitution are being violated.\n\n")

	b.WriteString("KEY FINDINGS\n")
	fmt.Fprintf(&b, "- %d constitutional articles were referenced in the audit\n", summary.TotalArticlesReferenced)
	fmt.Fprintf(&b, "- %d articles show evidence of violation\n", summary.ArticlesWithViolations)
	fmt.Fprintf(&b, "- %d specific violations were documented\n\n", summary.TotalViolationInstances)

	b.WriteString("MOST VIOLATED RIGHTS\n")
	b.WriteString(rule + "\n\n")

	for _, res := range topViolated(detailed, 15) {
		fmt.Fprintf(&b, "ARTICLE %s\n", res.ArticleNumber)
		b.WriteString(strings.Repeat("-", 40) + "\n")
		fmt.Fprintf(&b, "What it means: %s\n\n", simpleExplanation(res.ArticleNumber))

		examples := 0
		for _, check := range res.Validations {
			if !check.IsViolation || examples == 3 {
				continue
			}
			examples++
			context := check.Context
			if len(context) > 150 {
				context = context[:150]
			}
			fmt.Fprintf(&b, "%d. %s...\n", examples, context)
		}
		if examples > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Total violations found: %d\n\n", res.ViolationCount)
	}

	b.WriteString("WHAT YOU CAN DO\n")
	b.WriteString(rule + "\n\n")
	b.WriteString("1. KNOW YOUR RIGHTS: The Constitution belongs to you\n")
	b.WriteString("2. DEMAND INFORMATION: Use Article 35 to request documents\n")
	b.WriteString("3. REPORT VIOLATIONS: File complaints with EACC and KNCHR\n")
	b.WriteString("4. PARTICIPATE: Attend county budget forums\n")
	b.WriteString("5. ORGANIZE: Join with others to demand accountability\n\n")
	b.WriteString("Remember: Sovereignty belongs to you (Article 1). Use it.\n\n")

	b.WriteString("Generated from the audit analysis\n")
	fmt.Fprintf(&b, "Date: %s\n", time.Now().Format("January 2, 2006"))
	return b.String()
}

// topViolated returns up to n article results with at least one violation,
// most violated first.
func topViolated(detailed map[string]ArticleResult, n int) []ArticleResult {
	var out []ArticleResult
	for _, res := range detailed {
		if res.ViolationCount > 0 {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ViolationCount != out[j].ViolationCount {
			return out[i].ViolationCount > out[j].ViolationCount
		}
		return out[i].ArticleNumber < out[j].ArticleNumber
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
