package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDigit = regexp.MustCompile(`\D`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Phone accepts any formatting but requires exactly 10 digits.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	digits := reDigit.ReplaceAllString(s, "")
	return s, len(digits) == 10
}

// Date checks YYYY-MM-DD format and optional inclusive min/max bounds
// (lexicographic comparison is valid for this format).
func Date(s, min, max string) (string, bool) {
	s = strings.TrimSpace(s)
	if !reDate.MatchString(s) {
		return "", false
	}
	if min != "" && s < min {
		return "", false
	}
	if max != "" && s > max {
		return "", false
	}
	return s, true
}

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	} // clamp to avoid abuse
	return n
}

// ID validates a simple resource identifier (product ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Price parses a non-negative price filter value.
func Price(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}
