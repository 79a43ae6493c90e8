package pdfscan

import (
	"reflect"
	"testing"
)

func testMiners() *Miners {
	return NewMiners(100, 2035, nil)
}

func TestMonetary_Normalization(t *testing.T) {
	m := testMiners()

	tests := []struct {
		text     string
		amount   float64
		unit     string
		currency string
	}{
		{"The ministry lost KSh 2.4 billion in one year.", 2.4e9, "billion", "local"},
		{"A fine of KES 500,000 was imposed.", 500000, "units", "local"},
		{"Donors pledged $1.2 million for the program.", 1.2e6, "million", "foreign"},
		{"External debt rose by USD 3 billion.", 3e9, "billion", "foreign"},
		{"Contractors were paid 9 billion shillings in total.", 9e9, "billion", "local"},
		{"The deficit reached KSh 1.1 trillion.", 1.1e12, "trillion", "local"},
		{"An advance of $2.4B remains unaccounted for.", 2.4e9, "billion", "foreign"},
	}

	for _, tt := range tests {
		got := m.Monetary(tt.text, 1)
		if len(got) != 1 {
			t.Errorf("Monetary(%q) returned %d values, want 1", tt.text, len(got))
			continue
		}
		v := got[0]
		if v.Amount != tt.amount {
			t.Errorf("Monetary(%q) amount = %v, want %v", tt.text, v.Amount, tt.amount)
		}
		if v.Unit != tt.unit {
			t.Errorf("Monetary(%q) unit = %q, want %q", tt.text, v.Unit, tt.unit)
		}
		if v.Currency != tt.currency {
			t.Errorf("Monetary(%q) currency = %q, want %q", tt.text, v.Currency, tt.currency)
		}
		if v.Page != 1 {
			t.Errorf("Monetary(%q) page = %d, want 1", tt.text, v.Page)
		}
	}
}

func TestMonetary_NoFalsePositiveInsideWords(t *testing.T) {
	// WHAT: "shoes 500" must not parse as a local-currency amount.
	// WHY: an earlier prefix pattern matched the "sh" substring of ordinary
	// words followed by digits.
	m := testMiners()
	got := m.Monetary("The clerk bought shoes 500 meters away.", 1)
	if len(got) != 0 {
		t.Fatalf("Monetary matched inside a word: %+v", got)
	}
}

func TestMonetary_DedupByAmountAndOffset(t *testing.T) {
	m := testMiners()
	text := "Losses of KSh 2.4 billion were confirmed; a further KSh 2.4 billion is suspected."

	got := m.Monetary(text, 3)
	if len(got) != 2 {
		t.Fatalf("Monetary returned %d values, want 2 (same amount, distinct offsets)", len(got))
	}
	if got[0].Offset >= got[1].Offset {
		t.Errorf("results not offset-ordered: %d then %d", got[0].Offset, got[1].Offset)
	}

	// Determinism: identical input yields identical output.
	again := m.Monetary(text, 3)
	if !reflect.DeepEqual(got, again) {
		t.Error("Monetary is not deterministic on identical input")
	}
}

func TestMonetary_ContextWindow(t *testing.T) {
	m := NewMiners(10, 2035, nil)
	got := m.Monetary("aaaaaaaaaaaaaaaaaaaa KSh 100 bbbbbbbbbbbbbbbbbbbb", 1)
	if len(got) != 1 {
		t.Fatalf("want 1 value, got %d", len(got))
	}
	if n := len(got[0].Context); n > len("KSh 100 ")+20 {
		t.Errorf("context too wide (%d chars): %q", n, got[0].Context)
	}
}

func TestMagnitudeFor(t *testing.T) {
	tests := []struct {
		text string
		mult float64
		unit string
	}{
		{"KSh 2.4 billion", 1e9, "billion"},
		{"KSh 1 trillion", 1e12, "trillion"},
		{"$5 million", 1e6, "million"},
		{"KSh 500,000", 1, "units"},
		{"$2.4B", 1e9, "billion"},
		{"$1.2 T", 1e12, "trillion"},
		{"$3M", 1e6, "million"},
		// Uppercase letters inside ordinary words are not abbreviations.
		{"KSh 100 Budget", 1, "units"},
	}
	for _, tt := range tests {
		mult, unit := magnitudeFor(tt.text)
		if mult != tt.mult || unit != tt.unit {
			t.Errorf("magnitudeFor(%q) = (%v, %q), want (%v, %q)", tt.text, mult, unit, tt.mult, tt.unit)
		}
	}
}

func TestPercentages(t *testing.T) {
	m := testMiners()
	got := m.Percentages("Debt service consumed 63.5% of revenue, up from 48%.", 2)
	if len(got) != 2 {
		t.Fatalf("Percentages returned %d, want 2", len(got))
	}
	if got[0].Value != 63.5 || got[1].Value != 48 {
		t.Errorf("values = %v, %v; want 63.5, 48", got[0].Value, got[1].Value)
	}
}

func TestYears_Filter(t *testing.T) {
	// WHAT: years outside [1900, MaxYear] are dropped; future years inside
	// the bound survive (budget projections).
	m := NewMiners(100, 2035, nil)
	got := m.Years("Founded in 1850, reformed in 1999, projected through 2031 and 2099.", 1)
	want := []int{1999, 2031}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Years = %v, want %v", got, want)
	}
}

func TestArticles(t *testing.T) {
	m := testMiners()
	got := m.Articles("Violations of Article 201 and article 10(2) were cited, alongside Article 201 again.", 1)
	want := []string{"10(2)", "201"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Articles = %v, want %v", got, want)
	}
}

func TestLegal(t *testing.T) {
	m := testMiners()
	got := m.Legal("Breaches of the Public Finance Management Act and the Constitution of Kenya 2010 were found.", 1)
	if len(got) < 2 {
		t.Fatalf("Legal = %v, want at least 2 references", got)
	}
}

func TestInstitutions(t *testing.T) {
	m := testMiners()
	got := m.Institutions("The EACC referred the file to the ODPP; the National Treasury objected.", 1)
	want := []string{"EACC", "National Treasury", "ODPP"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Institutions = %v, want %v", got, want)
	}
}

func TestCitations(t *testing.T) {
	m := testMiners()
	got := m.Citations("As reported [1] and later confirmed [2, 5].", 1)
	want := []string{"[1]", "[2, 5]"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Citations = %v, want %v", got, want)
	}
}

func TestScandals_OneMentionPerScandal(t *testing.T) {
	m := testMiners()
	text := "The NYS scandal dwarfed earlier NYS losses; the KEMSA scandal followed."
	got := m.Scandals(text, 4)
	if len(got) != 2 {
		t.Fatalf("Scandals = %d mentions, want 2 (one per scandal)", len(got))
	}
	if got[0].Name != "NYS" || got[0].Keyword != "NYS scandal" {
		t.Errorf("first mention = %q/%q, want NYS via first keyword variant", got[0].Name, got[0].Keyword)
	}
	if got[1].Name != "KEMSA" {
		t.Errorf("second mention = %q, want KEMSA", got[1].Name)
	}
}

func TestScandals_AttachesAmount(t *testing.T) {
	m := testMiners()
	got := m.Scandals("The NYS scandal cost taxpayers KSh 9 billion.", 1)
	if len(got) != 1 {
		t.Fatalf("want 1 mention, got %d", len(got))
	}
	if got[0].Amount == "" {
		t.Error("expected nearby amount attached to mention")
	}
}

func TestKeywords_WholeWordOnly(t *testing.T) {
	m := testMiners()
	got := m.Keywords("Public debt and procurement irregularities persist; indebtedness aside.", 1)
	want := []string{"debt", "procurement"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords = %v, want %v", got, want)
	}
}

func TestFigures(t *testing.T) {
	m := testMiners()
	got := m.Figures("Figure 3.1: Debt service as a share of revenue over time. More text follows.", 7)
	if len(got) != 1 {
		t.Fatalf("Figures = %d, want 1", len(got))
	}
	if got[0].Number != "3.1" {
		t.Errorf("number = %q, want 3.1", got[0].Number)
	}
	if got[0].Page != 7 {
		t.Errorf("page = %d, want 7", got[0].Page)
	}
}

func TestScenarioSentence(t *testing.T) {
	// One sentence exercising four miners at once.
	m := NewMiners(100, 2035, nil)
	text := "The budget shows KSh 9 billion lost in the NYS scandal during 2018 (Article 201)."

	money := m.Monetary(text, 1)
	if len(money) != 1 || money[0].Amount != 9e9 || money[0].Currency != "local" || money[0].Unit != "billion" {
		t.Errorf("Monetary = %+v, want one local 9e9 billion", money)
	}
	if years := m.Years(text, 1); !reflect.DeepEqual(years, []int{2018}) {
		t.Errorf("Years = %v, want [2018]", years)
	}
	if arts := m.Articles(text, 1); !reflect.DeepEqual(arts, []string{"201"}) {
		t.Errorf("Articles = %v, want [201]", arts)
	}
	scandals := m.Scandals(text, 1)
	if len(scandals) != 1 || scandals[0].Name != "NYS" {
		t.Errorf("Scandals = %+v, want one NYS mention", scandals)
	}
}

func TestMiner_PanicIsolation(t *testing.T) {
	// A panicking miner must yield its zero result, not abort the page.
	m := testMiners()
	var out []string
	m.safe("boom", 1, func() {
		panic("synthetic failure")
	})
	if out != nil {
		t.Errorf("expected zero result after panic, got %v", out)
	}
}
