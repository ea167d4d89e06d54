package fields

import "regexp"

// Options is the explicit extraction policy. There is no ambient state:
// callers construct an Extractor with the policy they want and every
// invocation is a pure function of (text, fileName).
type Options struct {
	// OCRSubstitution lets the confusable-character table repair a date
	// candidate that failed to parse as captured. Barcode and amount
	// candidates are matched by digit-only grammars and returned
	// untouched: the table never widens what a pattern can match, and
	// it is never applied to names. The two legacy parsers disagreed on
	// substitution, so it stays an explicit policy, not a constant.
	OCRSubstitution bool
}

// DefaultOptions matches the behavior of the richer legacy parser:
// substitution on.
func DefaultOptions() Options {
	return Options{OCRSubstitution: true}
}

// Extractor recovers structured payment data from the text of one boleto
// document. Extractors are stateless and safe for concurrent use.
type Extractor struct {
	opts Options
}

func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

const dateRun = `[^\d\n]*(\d{2}[/\s.Il]?\d{2}[/\s.Il]?\d{4})`

// Date labels stay on the same logical line as the label; the last
// occurrence wins for the same reason as the amount labels.
var (
	reDueDate      = regexp.MustCompile(`(?i)Vencimento` + dateRun)
	reDocumentDate = regexp.MustCompile(`(?i)Data (?:do )?Documento` + dateRun)
)

// Extract normalizes rawText once and runs every field extractor
// independently. Field absence is represented as nil, never as an error.
// Dates are coerced leniently here; the persistence boundary re-validates
// them strictly.
func (e *Extractor) Extract(rawText, fileName string) Extraction {
	text := Normalize(rawText)
	amounts := e.extractAmounts(text)

	return Extraction{
		Recipient:        e.extractRecipient(text),
		Drawee:           e.extractDrawee(text),
		DocumentDate:     e.lastDate(text, reDocumentDate),
		DueDate:          e.lastDate(text, reDueDate),
		DocumentAmount:   amounts.DocumentAmount,
		Amount:           amounts.Amount,
		Discount:         amounts.Discount,
		InterestAndFines: amounts.InterestAndFines,
		Barcode:          e.extractBarcode(text),
		GuideNumber:      e.extractGuideNumber(text),
		PixQrCodeText:    e.extractPixPayload(text),
		FileName:         fileName,
	}
}

// lastDate coerces the last labeled date. The raw capture is parsed
// first: the date grammar already tolerates misread separators (I, l,
// "."), so running the substitution table up front would turn a
// separator into a digit and shift every group. Substitution is a
// retry for captures that failed to parse as written, never a
// preprocessor.
func (e *Extractor) lastDate(text string, re *regexp.Regexp) *string {
	ms := re.FindAllStringSubmatch(text, -1)
	if len(ms) == 0 {
		return nil
	}
	raw := ms[len(ms)-1][1]
	if d := ParseDate(raw, false); d != nil {
		return d
	}
	if e.opts.OCRSubstitution {
		return ParseDate(CleanOCRDigits(raw), false)
	}
	return nil
}
