package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// rawContext accepts whatever shape the caller sent. Scalars are typed as any
// so a string "80000" or a number 80000 both normalize to the same context.
type rawContext struct {
	Name         any                   `json:"name"`
	City         any                   `json:"city"`
	Phone        any                   `json:"phone"`
	LoanAmount   any                   `json:"loanAmount"`
	TenureMonths any                   `json:"tenureMonths"`
	Purpose      any                   `json:"purpose"`
	Verification *VerificationResult   `json:"verification"`
	Underwriting *UnderwritingDecision `json:"underwriting"`
	Documents    map[string]bool       `json:"documents"`
	Sanction     *SanctionLetter       `json:"sanction"`
}

// Normalize coerces a caller-supplied context blob into a well-typed Context.
// Absent or malformed input degrades to zero values, never an error, and the
// result is independent of the input blob. Applying Normalize to the JSON of
// an already-normalized context is a no-op.
func Normalize(raw json.RawMessage) Context {
	var rc rawContext
	if len(raw) > 0 {
		// Invalid JSON degrades to an empty context, never an error.
		_ = json.Unmarshal(raw, &rc)
	}
	return Context{
		Name:         coerceString(rc.Name),
		City:         coerceString(rc.City),
		Phone:        coerceString(rc.Phone),
		LoanAmount:   coerceAmount(rc.LoanAmount),
		TenureMonths: int(coerceAmount(rc.TenureMonths)),
		Purpose:      coerceString(rc.Purpose),
		Verification: rc.Verification,
		Underwriting: rc.Underwriting,
		Documents:    rc.Documents,
		Sanction:     rc.Sanction,
	}
}

func coerceString(v any) string {
	s, _ := v.(string)
	return s
}

// coerceAmount parses numeric fields from numbers or strings. String input is
// stripped of everything except digits and dots before parsing. Anything that
// does not end up a finite positive number is discarded as zero.
func coerceAmount(v any) int64 {
	switch n := v.(type) {
	case float64:
		return positiveWhole(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return positiveWhole(f)
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, n)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return positiveWhole(f)
	default:
		return 0
	}
}

func positiveWhole(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return int64(math.Round(f))
}
