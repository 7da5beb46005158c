package extract

import (
	"regexp"
	"strings"
)

// KYC is the identity triplet recovered from a single message. Empty fields
// mean the message did not carry them.
type KYC struct {
	Name  string
	City  string
	Phone string
}

var (
	nonDigitRe   = regexp.MustCompile(`\D`)
	anyDigitRe   = regexp.MustCompile(`\d`)
	phoneTailRe  = regexp.MustCompile(`(\d{10})\d*$`)
	nameShapeRe  = regexp.MustCompile(`[a-zA-Z]{2,}\s+[a-zA-Z]{2,}`)
	digitRunRe   = regexp.MustCompile(`\d{6,}`)
	alphaTokenRe = regexp.MustCompile(`^[a-zA-Z ]{2,}$`)
)

// KYCFields pulls name, city and phone out of free text such as
// "Ayush Prajapati, Varanasi, 9876543210", in any order. cities is the known
// city directory; its order breaks ties. Phone is the last 10-digit window of
// the message's digits, city is the first directory entry contained in the
// message, and name is the first comma/pipe-separated token shaped like two
// or more alphabetic words. When no directory city matched, the last purely
// alphabetic leftover token is taken as the city.
func KYCFields(message string, cities []string) KYC {
	var out KYC
	text := strings.TrimSpace(message)
	if text == "" {
		return out
	}

	digits := nonDigitRe.ReplaceAllString(text, "")
	if m := phoneTailRe.FindStringSubmatch(digits); m != nil {
		out.Phone = m[1]
	}

	lower := strings.ToLower(text)
	for _, city := range cities {
		if strings.Contains(lower, strings.ToLower(city)) {
			out.City = city
			break
		}
	}

	var parts []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == '|' }) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	// Name tokens must be digit-free: free text such as "I need 80000 for 12
	// months" is name-shaped as a substring but is never a name.
	for _, part := range parts {
		if anyDigitRe.MatchString(part) {
			continue
		}
		if out.City != "" && strings.Contains(strings.ToLower(part), strings.ToLower(out.City)) {
			continue
		}
		if nameShapeRe.MatchString(part) {
			out.Name = part
			break
		}
	}

	if out.City == "" {
		for i := len(parts) - 1; i >= 0; i-- {
			token := parts[i]
			if digitRunRe.MatchString(token) || token == out.Name {
				continue
			}
			if alphaTokenRe.MatchString(token) {
				out.City = token
				break
			}
		}
	}

	return out
}
