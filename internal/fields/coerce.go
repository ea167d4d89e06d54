package fields

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ocrDigits maps characters that OCR engines commonly misread in numeric
// context back to the digit they stand for. Applied only as a retry on
// numeric candidates that failed to parse as captured, never to names,
// where the substitution would corrupt legitimate text.
var ocrDigits = strings.NewReplacer(
	"O", "0",
	"º", "0",
	"I", "1",
	"l", "1",
	"S", "5",
	"B", "8",
	"Z", "2",
	"G", "6",
	"§", "5",
)

// CleanOCRDigits applies the confusable-character substitution table.
func CleanOCRDigits(value string) string {
	if value == "" {
		return ""
	}
	return ocrDigits.Replace(value)
}

var (
	reCurrencySign = regexp.MustCompile(`(?i)R\$\s*`)
	reAnyDigit     = regexp.MustCompile(`\d`)
	reNonNumeric   = regexp.MustCompile(`[^\d.]`)
)

// Amounts above this are assumed to be OCR garbage (digit runs glued
// together), not real boleto values.
const maxPlausibleAmount = 99999999.0

// ParseCurrency converts a Brazilian-formatted currency string to a
// non-negative value rounded to cents. Returns nil for empty input,
// input without digits, or anything that does not survive parsing.
//
// Separator rules: when both "," and "." are present, "." is a thousands
// separator and "," the decimal mark. A lone "," is a decimal mark. A
// lone "." is a decimal mark only when exactly two digits follow the
// last one; otherwise every "." is a thousands separator.
func ParseCurrency(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = reCurrencySign.ReplaceAllString(s, "")
	if !reAnyDigit.MatchString(s) {
		return nil
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if i := strings.LastIndex(s, "."); i >= 0 {
		if len(s)-i-1 != 2 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	s = reNonNumeric.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	if v > maxPlausibleAmount {
		return nil
	}
	v = roundCents(v)
	return &v
}

// roundCents rounds half away from zero on the cent boundary.
// Values are non-negative by grammar (a leading "-" never parses).
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// reDateRun tolerates corrupted or missing separators between the
// DD/MM/YYYY groups ("/" misread as "I"/"l"/"." or dropped entirely).
var reDateRun = regexp.MustCompile(`(\d{2})[/\s.Il]?(\d{2})[/\s.Il]?(\d{4})`)

// ParseDate extracts a DD/MM/YYYY-shaped run from raw and returns it as
// ISO YYYY-MM-DD, or nil when no plausible date is present.
//
// Two validation levels exist because the boundary check happens twice in
// the pipeline: the lenient variant (strict=false) accepts structurally
// plausible dates during best-effort ingestion, while the strict variant
// rejects calendrically impossible dates (31/02, month 13) and must be
// the one used at the point of persistence.
func ParseDate(raw string, strict bool) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	m := reDateRun.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if day < 1 || day > 31 || month < 1 || month > 12 || year <= 1900 {
		return nil
	}
	if strict {
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
			return nil
		}
	}

	iso := m[3] + "-" + m[2] + "-" + m[1]
	return &iso
}
