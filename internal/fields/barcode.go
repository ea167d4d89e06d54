package fields

import "regexp"

// Digitable-line candidates, in priority order. Segmented shapes are
// preferred over a bare digit run because a structured match is far less
// likely to be a false positive.
var barcodePatterns = []*regexp.Regexp{
	// Canonical segmented line: 5+5, 5+6, 5+6 digit groups with optional
	// dots, a single check digit, and the trailing 14-digit segment.
	regexp.MustCompile(`\b\d{5}\.?\d{5}[ ]+\d{5}\.?\d{6}[ ]+\d{5}\.?\d{6}[ ]+\d[ ]+\d{14}\b`),
	// Same shape but tolerant of newlines between groups (column-wrap and
	// OCR artifacts).
	regexp.MustCompile(`\b\d{5}\.?\d{5}\s+\d{5}\.?\d{6}\s+\d{5}\.?\d{6}\s+\d\s+\d{14}\b`),
	// Already-flattened digitable line or a barcode recovered without
	// segment punctuation.
	regexp.MustCompile(`\b\d{47,48}\b`),
}

var reNonDigit = regexp.MustCompile(`\D`)

// extractBarcode returns the digitable line as a digits-only string of
// length 47 or 48, or nil when no candidate shape matches. The candidate
// patterns admit only digits and separators, so a matched run needs no
// confusable-character repair.
func (e *Extractor) extractBarcode(text string) *string {
	for _, re := range barcodePatterns {
		m := re.FindString(text)
		if m == "" {
			continue
		}
		digits := reNonDigit.ReplaceAllString(m, "")
		if len(digits) == 47 || len(digits) == 48 {
			return strPtr(digits)
		}
	}
	return nil
}
