package llm

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/contractwatch/contractwatch/internal/common"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                     "{\"a\":1}",
		"```json\n{\"a\":1}\n```":       "{\"a\":1}",
		"```\n{\"a\":1}\n```":           "{\"a\":1}",
		"  ```json\n{\"a\":1}\n```  ":   "{\"a\":1}",
		"no fences, just text":          "no fences, just text",
	}
	for in, want := range cases {
		if got := StripCodeFence(in); got != want {
			t.Errorf("StripCodeFence(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeUnparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "```json\n```", "not json at all", "[1,2,3]"} {
		_, err := Sanitize(raw, discard())
		if !errors.Is(err, common.ErrResponseParse) {
			t.Errorf("Sanitize(%q): expected ErrResponseParse, got %v", raw, err)
		}
	}
}

func TestSanitizeHappyPath(t *testing.T) {
	raw := "```json\n" + `{
		"title": " Office Lease ",
		"vendor_name": "Acme Properties",
		"contract_type": "lease",
		"direction": "inbound",
		"start_date": "2026-01-01",
		"end_date": "January 1, 2028",
		"monthly_value": 2500.50,
		"total_value": "60012",
		"auto_renews": true,
		"renewal_term": "annual",
		"notice_period_days": 60,
		"key_clauses": [
			{"clause_type": "termination", "content": "Either party may terminate.", "page_reference": "p. 4", "confidence_score": 85, "source_document": "lease.pdf"}
		],
		"summary": "A two-year office lease."
	}` + "\n```"

	c, err := Sanitize(raw, discard())
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if c.Title == nil || *c.Title != "Office Lease" {
		t.Errorf("title: got %v", c.Title)
	}
	if c.ContractType == nil || *c.ContractType != "lease" {
		t.Errorf("contract_type: got %v", c.ContractType)
	}
	if c.EndDate == nil || *c.EndDate != "2028-01-01" {
		t.Errorf("end_date not normalized: got %v", c.EndDate)
	}
	if c.MonthlyValue == nil || *c.MonthlyValue != 2500.50 {
		t.Errorf("monthly_value: got %v", c.MonthlyValue)
	}
	if c.TotalValue == nil || *c.TotalValue != 60012 {
		t.Errorf("total_value string coercion: got %v", c.TotalValue)
	}
	if c.AutoRenews == nil || !*c.AutoRenews {
		t.Errorf("auto_renews: got %v", c.AutoRenews)
	}
	if c.NoticePeriodDays == nil || *c.NoticePeriodDays != 60 {
		t.Errorf("notice_period_days: got %v", c.NoticePeriodDays)
	}
	if len(c.KeyClauses) != 1 {
		t.Fatalf("key_clauses: got %d", len(c.KeyClauses))
	}
	cl := c.KeyClauses[0]
	if cl.ClauseType != "termination" || cl.Content != "Either party may terminate." {
		t.Errorf("clause: got %+v", cl)
	}
	if cl.ConfidenceScore == nil || *cl.ConfidenceScore != 85 {
		t.Errorf("confidence: got %v", cl.ConfidenceScore)
	}
	if cl.SourceDocument == nil || *cl.SourceDocument != "lease.pdf" {
		t.Errorf("source_document: got %v", cl.SourceDocument)
	}
}

func TestSanitizeDropsBadFields(t *testing.T) {
	raw := `{
		"title": 42,
		"contract_type": "rental",
		"direction": "sideways",
		"start_date": "soonish",
		"monthly_value": -100,
		"total_value": "not a number",
		"notice_period_days": 30.5,
		"renewal_term": "decade"
	}`
	c, err := Sanitize(raw, discard())
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if c.Title != nil {
		t.Errorf("non-string title should drop, got %v", *c.Title)
	}
	if c.ContractType != nil {
		t.Errorf("invalid contract_type should drop, got %v", *c.ContractType)
	}
	if c.Direction != nil {
		t.Errorf("invalid direction should drop, got %v", *c.Direction)
	}
	if c.StartDate != nil {
		t.Errorf("unparseable date should drop, got %v", *c.StartDate)
	}
	if c.MonthlyValue != nil {
		t.Errorf("negative money should drop, got %v", *c.MonthlyValue)
	}
	if c.TotalValue != nil {
		t.Errorf("non-numeric money should drop, got %v", *c.TotalValue)
	}
	if c.NoticePeriodDays != nil {
		t.Errorf("fractional days should drop, got %v", *c.NoticePeriodDays)
	}
	if c.KeyClauses == nil || len(c.KeyClauses) != 0 {
		t.Errorf("missing clauses should be empty list, got %v", c.KeyClauses)
	}
}

func TestSanitizeBooleanCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want *bool
	}{
		{`{"auto_renews": true}`, boolPtr(true)},
		{`{"auto_renews": false}`, boolPtr(false)},
		{`{"auto_renews": 1}`, boolPtr(true)},
		{`{"auto_renews": 0}`, boolPtr(false)},
		{`{"auto_renews": "no"}`, boolPtr(false)},
		{`{"auto_renews": "OFF"}`, boolPtr(false)},
		{`{"auto_renews": "yes"}`, boolPtr(true)},
		{`{"auto_renews": "definitely"}`, boolPtr(true)},
		{`{"auto_renews": ""}`, nil},
		{`{"auto_renews": null}`, nil},
		{`{}`, nil},
	}
	for _, tc := range cases {
		c, err := Sanitize(tc.raw, discard())
		if err != nil {
			t.Fatalf("sanitize %q: %v", tc.raw, err)
		}
		switch {
		case tc.want == nil && c.AutoRenews != nil:
			t.Errorf("%s: expected nil, got %v", tc.raw, *c.AutoRenews)
		case tc.want != nil && (c.AutoRenews == nil || *c.AutoRenews != *tc.want):
			t.Errorf("%s: expected %v, got %v", tc.raw, *tc.want, c.AutoRenews)
		}
	}
}

func TestSanitizeClampsConfidence(t *testing.T) {
	raw := `{"key_clauses": [
		{"clause_type": "sla", "content": "a", "confidence_score": -10},
		{"clause_type": "sla", "content": "b", "confidence_score": 150},
		{"clause_type": "sla", "content": "c", "confidence_score": "high"},
		{"clause_type": "sla", "content": "d", "confidence_score": 72.6}
	]}`
	c, err := Sanitize(raw, discard())
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if len(c.KeyClauses) != 4 {
		t.Fatalf("clauses: got %d", len(c.KeyClauses))
	}
	if got := c.KeyClauses[0].ConfidenceScore; got == nil || *got != 0 {
		t.Errorf("negative confidence: got %v, want 0", got)
	}
	if got := c.KeyClauses[1].ConfidenceScore; got == nil || *got != 100 {
		t.Errorf("overshoot confidence: got %v, want 100", got)
	}
	if got := c.KeyClauses[2].ConfidenceScore; got != nil {
		t.Errorf("non-numeric confidence: got %v, want nil", *got)
	}
	if got := c.KeyClauses[3].ConfidenceScore; got == nil || *got != 73 {
		t.Errorf("fractional confidence: got %v, want 73", got)
	}
}

func TestSanitizeNonListClauses(t *testing.T) {
	c, err := Sanitize(`{"key_clauses": "none found"}`, discard())
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if c.KeyClauses == nil || len(c.KeyClauses) != 0 {
		t.Errorf("expected empty clause list, got %v", c.KeyClauses)
	}
}

func TestBaselineJSONOmitsChangesSummary(t *testing.T) {
	c, err := Sanitize(`{"title": "X", "changes_summary": "added an exhibit"}`, discard())
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if c.ChangesSummary == nil || *c.ChangesSummary != "added an exhibit" {
		t.Fatalf("changes_summary: got %v", c.ChangesSummary)
	}
	baseline, err := c.BaselineJSON()
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}
	if strings.Contains(baseline, "changes_summary") {
		t.Errorf("baseline should not carry changes_summary: %s", baseline)
	}
	if err := ValidateBaselineJSON(baseline); err != nil {
		t.Errorf("baseline should validate against the schema: %v", err)
	}
}

func TestValidateBaselineJSONRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "[]", `{"key_clauses": "nope"}`, "not json"} {
		if err := ValidateBaselineJSON(bad); err == nil {
			t.Errorf("expected validation failure for %q", bad)
		}
	}
}

func boolPtr(b bool) *bool { return &b }
