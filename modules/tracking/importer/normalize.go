package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/activity"
)

// Value normalizers for raw extract cells. Every normalizer fails closed:
// unusable input yields the zero/sentinel result, never an error, so the row
// processor decides per field whether to default or reject.

// The extracts come from a Peruvian client: free-text dates are day-first.
// Ambiguous values like 05/03/2024 always resolve to day=5, month=3. No
// locale autodetection beyond that fixed rule.
var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/06",
	"2/1/06",
	"2006-01-02",
	time.RFC3339,
}

// excel serial day 0 is 1899-12-30 (the 1900 leap-year bug is baked in).
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// NormalizeDate converts a raw cell to a calendar date. Returns ok=false for
// empty, blank, or unparsable input.
func NormalizeDate(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return dateOnly(v), true
	case float64:
		if v <= 0 {
			return time.Time{}, false
		}
		return dateOnly(excelEpoch.AddDate(0, 0, int(v))), true
	case int:
		return NormalizeDate(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dayFirstLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return dateOnly(t), true
			}
		}
		// excel sometimes renders date cells as bare serials
		if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
			return dateOnly(excelEpoch.AddDate(0, 0, int(f))), true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	y, m, d := u.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizePercent converts a raw cell to a completion percentage on the
// 0-100 scale. Strings with a trailing % keep their numeric prefix unscaled;
// bare numerics at or below 1 are read as fractions and scaled by 100, which
// makes a literal 1.0 ambiguous: it always reads as 100, matching how the
// extracts are filled in. Unusable input yields 0; results are clamped to
// [0, 100].
func NormalizePercent(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return clampPercent(scalePercent(v))
	case int:
		return clampPercent(scalePercent(float64(v)))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		if strings.Contains(s, "%") {
			n, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, "%", "")), 64)
			if err != nil {
				return 0
			}
			return clampPercent(n)
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return clampPercent(scalePercent(n))
	default:
		return 0
	}
}

func scalePercent(v float64) float64 {
	if v <= 1 {
		return v * 100
	}
	return v
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// statusRules is ordered: the first matching substring wins, so specific
// tokens must precede generic ones. The extracts mix Spanish and English
// status text, so each state carries tokens for both.
var statusRules = []struct {
	token  string
	status activity.Status
}{
	{"cerrada", activity.StatusClosed},
	{"closed", activity.StatusClosed},
	{"atrasada", activity.StatusLate},
	{"late", activity.StatusLate},
	{"block", activity.StatusBlocked},
	{"bloque", activity.StatusBlocked},
}

// NormalizeStatus canonicalizes free-text status cells. Anything that matches
// no rule, including blank input, is Abierta.
func NormalizeStatus(raw any) activity.Status {
	s := strings.ToLower(strings.TrimSpace(cellString(raw)))
	for _, rule := range statusRules {
		if strings.Contains(s, rule.token) {
			return rule.status
		}
	}
	return activity.StatusOpen
}

func cellString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func isBlank(raw any) bool {
	if raw == nil {
		return true
	}
	return strings.TrimSpace(cellString(raw)) == ""
}
