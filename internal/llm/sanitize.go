package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/common"
)

var (
	openFence  = regexp.MustCompile("^```(?:json)?\n?")
	closeFence = regexp.MustCompile("\n?```$")
)

// StripCodeFence removes an optional surrounding markdown code fence.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = openFence.ReplaceAllString(s, "")
	s = closeFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Sanitize decodes and defensively coerces a raw model response into a
// typed candidate. Individual bad fields degrade to nil with a warning;
// the only fatal (retryable) condition is a response that does not decode
// as a JSON object at all.
func Sanitize(raw string, logger *slog.Logger) (*Candidate, error) {
	if logger == nil {
		logger = slog.Default()
	}
	text := StripCodeFence(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", common.ErrResponseParse)
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrResponseParse, err)
	}

	s := sanitizer{m: m, log: logger}
	cand := &Candidate{
		Title:            s.str("title"),
		VendorName:       s.str("vendor_name"),
		ContractType:     s.enum("contract_type", constants.ValidContractType),
		Direction:        s.enum("direction", constants.ValidDirection),
		StartDate:        s.date("start_date"),
		EndDate:          s.date("end_date"),
		MonthlyValue:     s.money("monthly_value"),
		TotalValue:       s.money("total_value"),
		AutoRenews:       s.boolean("auto_renews"),
		RenewalTerm:      s.enum("renewal_term", constants.ValidRenewalTerm),
		NoticePeriodDays: s.nonNegativeInt("notice_period_days"),
		KeyClauses:       s.clauses("key_clauses"),
		Summary:          s.str("summary"),
		ChangesSummary:   s.str("changes_summary"),
	}
	return cand, nil
}

type sanitizer struct {
	m   map[string]any
	log *slog.Logger
}

func (s sanitizer) warn(field string, value any) {
	s.log.Warn("llm.sanitize.field_dropped", "field", field, "value", fmt.Sprintf("%v", value))
}

func (s sanitizer) str(key string) *string {
	v, ok := s.m[key]
	if !ok || v == nil {
		return nil
	}
	str, ok := v.(string)
	if !ok {
		s.warn(key, v)
		return nil
	}
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}
	return &str
}

func (s sanitizer) enum(key string, valid func(string) bool) *string {
	v := s.str(key)
	if v == nil {
		return nil
	}
	if !valid(*v) {
		s.warn(key, *v)
		return nil
	}
	return v
}

// dateLayouts are the calendar shapes we accept from the model. The prompt
// asks for YYYY-MM-DD but models occasionally return close variants.
var dateLayouts = []string{"2006-01-02", "2006/01/02", "January 2, 2006", "Jan 2, 2006", "2 January 2006"}

func (s sanitizer) date(key string) *string {
	v := s.str(key)
	if v == nil {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *v); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	s.warn(key, *v)
	return nil
}

func (s sanitizer) money(key string) *float64 {
	v, ok := s.m[key]
	if !ok || v == nil {
		return nil
	}
	f, ok := asFloat(v)
	if !ok || f < 0 {
		s.warn(key, v)
		return nil
	}
	return &f
}

func (s sanitizer) nonNegativeInt(key string) *int {
	v, ok := s.m[key]
	if !ok || v == nil {
		return nil
	}
	f, ok := asFloat(v)
	if !ok || f < 0 || f != math.Trunc(f) {
		s.warn(key, v)
		return nil
	}
	n := int(f)
	return &n
}

// falsy mirrors the loose boolean cast applied to non-boolean auto-renew
// values: recognized falsy strings map to false, "" to nil, anything else
// to true.
var falsy = map[string]struct{}{
	"false": {}, "f": {}, "0": {}, "no": {}, "n": {}, "off": {},
}

func (s sanitizer) boolean(key string) *bool {
	v, ok := s.m[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case bool:
		return &t
	case float64:
		b := t != 0
		return &b
	case string:
		str := strings.ToLower(strings.TrimSpace(t))
		if str == "" {
			return nil
		}
		_, isFalsy := falsy[str]
		b := !isFalsy
		return &b
	default:
		s.warn(key, v)
		return nil
	}
}

func (s sanitizer) clauses(key string) []CandidateClause {
	v, ok := s.m[key]
	if !ok || v == nil {
		return []CandidateClause{}
	}
	list, ok := v.([]any)
	if !ok {
		s.warn(key, v)
		return []CandidateClause{}
	}

	out := make([]CandidateClause, 0, len(list))
	for _, item := range list {
		cm, ok := item.(map[string]any)
		if !ok {
			s.warn(key, item)
			continue
		}
		cs := sanitizer{m: cm, log: s.log}
		clause := CandidateClause{
			PageReference:  cs.str("page_reference"),
			SourceDocument: cs.str("source_document"),
		}
		if t := cs.str("clause_type"); t != nil {
			clause.ClauseType = *t
		}
		if c := cs.str("content"); c != nil {
			clause.Content = *c
		}
		if raw, ok := cm["confidence_score"]; ok && raw != nil {
			if f, ok := asFloat(raw); ok {
				score := int(math.Round(f))
				if score < 0 {
					score = 0
				} else if score > 100 {
					score = 100
				}
				clause.ConfidenceScore = &score
			} else {
				cs.warn("confidence_score", raw)
			}
		}
		out = append(out, clause)
	}
	return out
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
