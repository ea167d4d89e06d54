package fields

import (
	"fmt"

	"github.com/brpayflow/boleto-tracker/constants"
)

// GateError is a business-rule rejection of an extraction result. The
// Key is stable and user-facing; callers map it to a localized message
// and an HTTP/gRPC 4xx-equivalent, never to a retry.
type GateError struct {
	Key    constants.MessageKey
	Detail string
}

func (e *GateError) Error() string {
	if e.Detail == "" {
		return string(e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Detail)
}

// Gate applies the three hard checks required before an extraction may
// be persisted: the payable amount must exist and be non-zero, and the
// barcode must exist (it is the dedup key and the payment encoding).
// Every other nil field is acceptable and stored as-is.
func Gate(x Extraction) *GateError {
	if x.Amount == nil {
		return &GateError{Key: constants.MsgAmountNotFound, Detail: x.FileName}
	}
	if *x.Amount == 0 {
		return &GateError{Key: constants.MsgAmountIsZero, Detail: x.FileName}
	}
	if x.Barcode == nil {
		return &GateError{Key: constants.MsgBarcodeNotFound, Detail: x.FileName}
	}
	return nil
}
