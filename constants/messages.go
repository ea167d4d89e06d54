package constants

// MessageKey is a stable, user-facing rejection key. Clients localize
// these; the values are part of the API contract and must not change.
type MessageKey string

const (
	MsgAmountNotFound     MessageKey = "amountNotFound"     // no payable amount recovered
	MsgAmountIsZero       MessageKey = "amountIsZero"       // amount resolved to 0, not payable
	MsgBarcodeNotFound    MessageKey = "barcodeNotFound"    // no digitable line recovered
	MsgDuplicateBoleto    MessageKey = "duplicateBoleto"    // same barcode already stored for company
	MsgPdfProcessingError MessageKey = "pdfProcessingError" // text acquisition failed upstream
)
