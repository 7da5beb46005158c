// Package format holds shared user-facing formatting helpers.
package format

import (
	"strconv"
	"strings"
)

// IndianAmount renders n with Indian digit grouping: the last three digits
// form one group and every group before it has two digits (1234567 becomes
// "12,34,567").
func IndianAmount(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return sign + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + strings.Join(groups, ",") + "," + tail
}

// Rate renders an interest rate without trailing zeros ("11", "10.5").
func Rate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
