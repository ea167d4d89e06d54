package fields

import "regexp"

// currencyToken is a lazy reach from a label to the first currency-shaped
// token: optional R$, digits with dot/comma separators.
const currencyToken = `[^\d]*?((?:R\$ ?)?[\d.,]+)`

// Label-anchored amount patterns. Templates repeat labels (column header
// plus summary block), and the summary block comes last in reading
// order, so the LAST match per label is taken as authoritative. This is
// a heuristic tied to the common template family, not a guarantee.
var (
	reDocumentAmount = regexp.MustCompile(`(?i)(?:\(=\) ?)?Valor (?:do )?Documento` + currencyToken)
	reChargedAmount  = regexp.MustCompile(`(?i)(?:\(=\) ?)?Valor Cobrado` + currencyToken)
	reDiscount       = regexp.MustCompile(`(?i)(?:\(-\) ?)?(?:Desconto(?: ?/ ?Abatimento)?|Abatimento)` + currencyToken)
	reInterest       = regexp.MustCompile(`(?i)(?:\(\+\) ?)?(?:Juros(?: ?/ ?Multa)?|Multa|Outros Acr[ée]scimos)` + currencyToken)
)

// Amounts holds the four monetary sub-fields of one document.
type Amounts struct {
	Amount           *float64
	DocumentAmount   *float64
	Discount         *float64
	InterestAndFines *float64
}

// extractAmounts recovers the monetary fields. DocumentAmount is parsed
// directly; Amount comes from "Valor Cobrado" when present and non-zero,
// otherwise it falls back to DocumentAmount; zero is never a valid
// terminal payable value. Discount and InterestAndFines have no
// fallback; absence means nil.
func (e *Extractor) extractAmounts(text string) Amounts {
	doc := e.lastAmount(text, reDocumentAmount)
	charged := e.lastAmount(text, reChargedAmount)

	amount := charged
	if amount == nil || *amount == 0 {
		amount = doc
	}

	return Amounts{
		Amount:           amount,
		DocumentAmount:   doc,
		Discount:         e.lastAmount(text, reDiscount),
		InterestAndFines: e.lastAmount(text, reInterest),
	}
}

func (e *Extractor) lastAmount(text string, re *regexp.Regexp) *float64 {
	ms := re.FindAllStringSubmatch(text, -1)
	if len(ms) == 0 {
		return nil
	}
	return ParseCurrency(ms[len(ms)-1][1])
}
