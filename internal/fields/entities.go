package fields

import (
	"regexp"
	"strings"
)

// Each role captures non-greedily from its label up to the next known
// section label of the boleto layout. The terminator lists are fixed per
// role: recipient blocks run into the date/bank-reference columns,
// drawee blocks run into the instruction/footer area.
var (
	reRecipient = regexp.MustCompile(
		`(?is)(?:Benefici[áa]rio|Cedente)[\s.:]*([^\s.:].*?)(?:Data (?:do )?Documento|Vencimento|Nosso N[úu]mero|Ag[êe]ncia|CNPJ)`)
	reDrawee = regexp.MustCompile(
		`(?is)(?:Pagador|Sacado)[\s.:]*([^\s.:].*?)(?:Instru[çc][õo]es|Descri[çc][ãa]o do Ato|Autentica[çc][ãa]o Mec[âa]nica|FICHA DE COMPENSA[ÇC][ÃA]O)`)
)

var (
	reWrappedLine = regexp.MustCompile(`\s*\n\s*`)
	reSpaceRun    = regexp.MustCompile(`\s{2,}`)
	reDashRun     = regexp.MustCompile(`[-_]+`)
)

// extractRecipient returns the payee/beneficiary display name.
func (e *Extractor) extractRecipient(text string) *string {
	return matchEntity(text, reRecipient)
}

// extractDrawee returns the payer display name.
func (e *Extractor) extractDrawee(text string) *string {
	return matchEntity(text, reDrawee)
}

func matchEntity(text string, re *regexp.Regexp) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := cleanEntity(m[1])
	if v == "" {
		return nil
	}
	return strPtr(v)
}

// cleanEntity removes line-wrap artifacts from a captured name region:
// internal newlines become " / ", space runs collapse, dash/underscore
// runs (form ruling picked up by OCR) become a single space.
func cleanEntity(v string) string {
	v = strings.TrimSpace(v)
	v = reWrappedLine.ReplaceAllString(v, " / ")
	v = reDashRun.ReplaceAllString(v, " ")
	v = reSpaceRun.ReplaceAllString(v, " ")
	return strings.TrimSpace(v)
}
