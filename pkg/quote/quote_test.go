package quote

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmptyDefaults(t *testing.T) {
	q := Empty()
	if q.LoanProgram != ProgramConventional {
		t.Errorf("Empty().LoanProgram = %q, expected %q", q.LoanProgram, ProgramConventional)
	}
	if q.Term != 30 {
		t.Errorf("Empty().Term = %d, expected 30", q.Term)
	}
	if q.Valid() {
		t.Error("Empty() should not be a valid quote")
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name       string
		loanAmount string
		rate       string
		expected   bool
	}{
		{"Amount and rate", "300000", "6.5", true},
		{"Formatted amount", "$300,000", "6.5", true},
		{"Missing rate", "300000", "", false},
		{"Missing amount", "", "6.5", false},
		{"Zero amount", "0", "6.5", false},
		{"Unparseable amount", "TBD", "6.5", false},
		{"Negative rate", "300000", "-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Empty()
			q.LoanAmount = tt.loanAmount
			q.Rate = tt.rate
			if got := q.Valid(); got != tt.expected {
				t.Errorf("Valid() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTermYears(t *testing.T) {
	q := Empty()
	q.Term = 15
	if got := q.TermYears(); got != 15 {
		t.Errorf("TermYears() = %d, expected 15", got)
	}
	q.Term = 0
	if got := q.TermYears(); got != 30 {
		t.Errorf("TermYears() with unset term = %d, expected 30", got)
	}
	q.Term = -5
	if got := q.TermYears(); got != 30 {
		t.Errorf("TermYears() with negative term = %d, expected 30", got)
	}
}

func TestProgramOrDefault(t *testing.T) {
	var q Quote
	if got := q.ProgramOrDefault(); got != ProgramConventional {
		t.Errorf("ProgramOrDefault() = %q, expected %q", got, ProgramConventional)
	}
	q.LoanProgram = ProgramVA
	if got := q.ProgramOrDefault(); got != ProgramVA {
		t.Errorf("ProgramOrDefault() = %q, expected %q", got, ProgramVA)
	}
}

func TestMerge(t *testing.T) {
	base := Empty()
	base.LenderName = "First Federal"
	base.LoanAmount = "300000"
	base.Rate = "6.5"
	base.AppraisalFee = "550"

	overlay := Quote{
		Rate:            "6.25",
		UnderwritingFee: "995",
		LoanProgram:     ProgramFHA,
		Term:            15,
	}

	merged := Merge(base, overlay)

	if merged.LenderName != "First Federal" {
		t.Errorf("blank overlay field should keep base value, got LenderName = %q", merged.LenderName)
	}
	if merged.LoanAmount != "300000" {
		t.Errorf("blank overlay field should keep base value, got LoanAmount = %q", merged.LoanAmount)
	}
	if merged.AppraisalFee != "550" {
		t.Errorf("blank overlay field should keep base value, got AppraisalFee = %q", merged.AppraisalFee)
	}
	if merged.Rate != "6.25" {
		t.Errorf("overlay field should override base, got Rate = %q", merged.Rate)
	}
	if merged.UnderwritingFee != "995" {
		t.Errorf("overlay field should override base, got UnderwritingFee = %q", merged.UnderwritingFee)
	}
	if merged.LoanProgram != ProgramFHA {
		t.Errorf("overlay program should override base, got %q", merged.LoanProgram)
	}
	if merged.Term != 15 {
		t.Errorf("overlay term should override base, got %d", merged.Term)
	}

	// Merging a zero overlay changes nothing.
	unchanged := Merge(base, Quote{})
	if unchanged.Rate != base.Rate || unchanged.Term != base.Term || unchanged.LoanProgram != base.LoanProgram {
		t.Error("merging an empty overlay should leave the base unchanged")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	q := Empty()
	q.LenderName = "First Federal"
	q.LoanOfficer = "Dana Whitfield"
	q.LoanAmount = "$300,000"
	q.Rate = "6.5"
	q.LenderCredit = "500"
	q.HomeownersInsAnnual = "1400"

	out, err := yaml.Marshal(q)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	text := string(out)

	// Marshalled keys follow the extraction schema, not Go's lowercased
	// field names.
	for _, key := range []string{"lenderName:", "loanOfficer:", "loanAmount:", "lenderCredit:", "homeownersInsAnnual:"} {
		if !strings.Contains(text, key) {
			t.Errorf("marshalled YAML missing key %q:\n%s", key, text)
		}
	}
	for _, key := range []string{"lendername:", "loanamount:", "homeownersinsannual:"} {
		if strings.Contains(text, key) {
			t.Errorf("marshalled YAML carries lowercased key %q:\n%s", key, text)
		}
	}
	if strings.Contains(text, "processingFee:") {
		t.Errorf("blank fields should be omitted:\n%s", text)
	}

	var back Quote
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if back != q {
		t.Errorf("round trip changed the quote:\n%+v\n%+v", back, q)
	}
}

func TestReputationKey(t *testing.T) {
	q := Empty()
	q.LoanOfficer = "Dana Whitfield"
	q.LenderName = "First Federal"
	if got := q.ReputationKey(); got != "Dana Whitfield|First Federal" {
		t.Errorf("ReputationKey() = %q", got)
	}
}
