package fields

import (
	"regexp"
	"strings"
)

// Document-number label spellings vary across bank templates
// ("Nº Documento", "No. do Documento", "Nº Documento/Guia", "Guia").
// "Nosso Número" is a bank-internal tracking number used as the fallback
// identifier when no document number is printed.
var (
	reGuideDocument = regexp.MustCompile(`(?i)(?:N[ºo.]? ?(?:do )?Documento(?: ?/ ?Guia)?|Guia)[\s.:]*([^\s.:]\S*)`)
	reGuideNosso    = regexp.MustCompile(`(?i)Nosso N[úu]mero[\s.:]*([^\s.:]\S*)`)
)

// extractGuideNumber returns the first token following the document-number
// label, falling back to the "our number" label. First match wins: the
// identifier block sits at the top of the slip and later repetitions are
// boilerplate.
func (e *Extractor) extractGuideNumber(text string) *string {
	for _, re := range []*regexp.Regexp{reGuideDocument, reGuideNosso} {
		if m := re.FindStringSubmatch(text); m != nil {
			v := strings.TrimSpace(strings.ReplaceAll(m[1], "--", ""))
			if v != "" {
				return strPtr(v)
			}
		}
	}
	return nil
}
