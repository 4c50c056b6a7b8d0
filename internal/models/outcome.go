package models

const (
	BulkOutcomeSuccess = "success"
	BulkOutcomeFailed  = "failed"
)

// BulkOutcome reports one id's result inside a bulk approve/reject. A
// failed id never fails the batch.
type BulkOutcome struct {
	ID     string `json:"id"`
	Status string `json:"status" example:"success"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

type BulkOutcomeResponse struct {
	Kind     string        `json:"kind" example:"bulkOutcome"`
	Outcomes []BulkOutcome `json:"outcomes"`
}
