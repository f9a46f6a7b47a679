package taxonomy

import (
	"regexp"
	"strconv"
	"strings"
)

// Renewal-length buckets (days): none, short, standard/one-year, long, very-long.
const (
	RenewalNone     = 0
	RenewalShort    = 1 // under six months
	RenewalStandard = 2 // roughly one year
	RenewalLong     = 3 // up to three years
	RenewalVeryLong = 4
)

// Notice-period buckets (days): none, short, standard, long.
const (
	NoticeNone     = 0
	NoticeShort    = 1 // <= 30 days
	NoticeStandard = 2 // 31-90 days
	NoticeLong     = 3 // > 90 days
)

// EncodeBinary maps yes/no strings (case-insensitive) to 1/0. Any other
// value, including empty cells, is missing.
func EncodeBinary(raw string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return 1, true
	case "no":
		return 0, true
	default:
		return 0, false
	}
}

// BucketRenewal maps a renewal-length value (raw day count or free text like
// "3 years") to a 5-level code. Unparseable or non-positive input buckets to
// RenewalNone; the function is total.
func BucketRenewal(raw string) (int, bool) {
	days := extractDays(raw)
	switch {
	case days <= 0:
		return RenewalNone, true
	case days < 180:
		return RenewalShort, true
	case days <= 400:
		return RenewalStandard, true
	case days <= 1100:
		return RenewalLong, true
	default:
		return RenewalVeryLong, true
	}
}

// BucketNotice maps a termination-notice value to a 4-level code.
// Unparseable or non-positive input buckets to NoticeNone; the function is total.
func BucketNotice(raw string) (int, bool) {
	days := extractDays(raw)
	switch {
	case days <= 0:
		return NoticeNone, true
	case days <= 30:
		return NoticeShort, true
	case days <= 90:
		return NoticeStandard, true
	default:
		return NoticeLong, true
	}
}

// intToken matches the first integer in a cell plus any unit word that
// directly follows it ("365", "3 years", "90-day notice").
var intToken = regexp.MustCompile(`(-?\d+)(?:\.\d+)?[\s-]*([A-Za-z]*)`)

// extractDays pulls a day count out of a raw cell. The first integer token
// wins; a token with a year unit is converted at 365 days per year. Returns
// 0 when no integer is present.
func extractDays(raw string) int {
	m := intToken.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Out-of-range day counts saturate rather than fail; anything this
		// large lands in the top bucket regardless.
		if strings.HasPrefix(m[1], "-") {
			return 0
		}
		return 1 << 30
	}

	unit := strings.ToLower(m[2])
	if strings.HasPrefix(unit, "year") || strings.HasPrefix(unit, "yr") {
		return n * 365
	}
	return n
}
