package models

// EntrySuggestion is one debit/credit pairing with the system's certainty
// in it. The proposer produces one as the primary proposal; the ranker
// produces more of them as alternatives.
type EntrySuggestion struct {
	DebitAccountID  string
	CreditAccountID string
	Confidence      float64
	Explanation     string
	Source          string
}

// PairKey identifies the account pairing regardless of explanation, used
// to deduplicate alternatives.
func (s EntrySuggestion) PairKey() string {
	return s.DebitAccountID + "|" + s.CreditAccountID
}

type EntryAlternativeResponse struct {
	DebitAccountID  string  `json:"debitAccountId"`
	CreditAccountID string  `json:"creditAccountId"`
	Confidence      float64 `json:"confidence" example:"0.60"`
	Explanation     string  `json:"explanation,omitempty"`
}

type EntryAlternativesResponse struct {
	Kind         string                     `json:"kind" example:"entryAlternatives"`
	EntryID      string                     `json:"entryId"`
	Alternatives []EntryAlternativeResponse `json:"alternatives"`
}

func (s EntrySuggestion) ToAlternativeResponse() EntryAlternativeResponse {
	return EntryAlternativeResponse{
		DebitAccountID:  s.DebitAccountID,
		CreditAccountID: s.CreditAccountID,
		Confidence:      s.Confidence,
		Explanation:     s.Explanation,
	}
}
