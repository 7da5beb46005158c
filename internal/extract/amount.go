// Package extract holds the pure field extractors that recover typed loan
// application fields from free-form chat text. Every function is side-effect
// free; fill-if-empty semantics are enforced by the capture stage, not here.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	amountRe = regexp.MustCompile(`(?i)(₹|rs\.?|\$)?\s*(\d[\d,]*(?:\.\d+)?)(?:\s*(k|thousand|lakhs?|million|m)\b)?`)
	tenureRe = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:months?|mos?)\b`)
)

// Amount parses a loan amount: an optional currency marker, a numeric literal
// with thousands separators, and an optional scale word. Unscaled numerals
// need at least three numeric characters so that a stray "12" (e.g. a tenure)
// is never read as an amount; a scale word lifts that floor, which is what
// makes "50k" parse. The result is rounded to the nearest rupee.
func Amount(message string) (int64, bool) {
	for _, m := range amountRe.FindAllStringSubmatch(message, -1) {
		literal, scale := m[2], strings.ToLower(m[3])
		if scale == "" && len(literal) < 3 {
			continue
		}
		base, err := strconv.ParseFloat(strings.ReplaceAll(literal, ",", ""), 64)
		if err != nil || base <= 0 {
			continue
		}
		switch scale {
		case "k", "thousand":
			base *= 1_000
		case "lakh", "lakhs":
			base *= 100_000
		case "m", "million":
			base *= 1_000_000
		}
		return int64(math.Round(base)), true
	}
	return 0, false
}

// Tenure parses a loan tenure as an integer followed by a month marker
// ("months", "month", "mos" or "mo").
func Tenure(message string) (int, bool) {
	m := tenureRe.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	months, err := strconv.Atoi(m[1])
	if err != nil || months <= 0 {
		return 0, false
	}
	return months, true
}
