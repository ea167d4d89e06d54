package ocr

import (
	"regexp"
	"strings"
)

var (
	reSlipDate    = regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`)
	reSlipAmount  = regexp.MustCompile(`r\$\s*\d|\b\d{1,3}(\.\d{3})*,\d{2}\b`)
	reDigitRun    = regexp.MustCompile(`\d{10,}`)
	reSlipMarkers = regexp.MustCompile(`vencimento|benefici[áa]rio|cedente|pagador|sacado|nosso n[úu]mero`)
)

// heuristicConfidence scores decoded text by how much it looks like a
// Brazilian payment slip. Each marker family adds a fixed boost.
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if reSlipDate.MatchString(txtL) {
		score += 0.15
	}
	if reSlipAmount.MatchString(txtL) {
		score += 0.15
	}
	// long digit runs suggest the digitable line survived decoding
	if reDigitRun.MatchString(txtL) {
		score += 0.2
	}
	if reSlipMarkers.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1 // enough content
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
