package fields

import "regexp"

// PIX "copia e cola" payload: the EMV-QR payload format indicator
// ("000201") followed by at least 100 characters from the EMV character
// set. The payload is opaque; it is stored verbatim for the paying app.
var rePixPayload = regexp.MustCompile(`000201[A-Za-z0-9*@$.%+/=_-]{100,}`)

func (e *Extractor) extractPixPayload(text string) *string {
	m := rePixPayload.FindString(text)
	if m == "" {
		return nil
	}
	return strPtr(m)
}
