package constants

// BoletoStatus is the Kanban workflow position of a boleto.
type BoletoStatus string

// Stable values (store these exact strings in DB).
const (
	StatusToPay     BoletoStatus = "TO_PAY"    // uploaded, waiting for payment
	StatusVerifying BoletoStatus = "VERIFYING" // payment sent, awaiting confirmation
	StatusPaid      BoletoStatus = "PAID"      // settled
)

// AllStatuses lists the valid workflow statuses in board order.
var AllStatuses = []BoletoStatus{StatusToPay, StatusVerifying, StatusPaid}

// IsValidStatus reports whether s is one of the stable status values.
func IsValidStatus(s string) bool {
	for _, st := range AllStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// JobStatus is the canonical status for rows in extract_jobs.
type JobStatus string

const (
	JobStatusQueued  JobStatus = "QUEUED"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusTextOK  JobStatus = "TEXT_OK"  // stage 1 completed (text acquired)
	JobStatusParseOK JobStatus = "PARSE_OK" // stage 2 completed (boleto persisted)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)
