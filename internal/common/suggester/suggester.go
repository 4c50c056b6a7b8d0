package suggester

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/models"

	"google.golang.org/genai"
)

const logIdentifier = "[ENTRY-SUGGESTER]"

const systemInstruction = `You are an accountant preparing double-entry bookkeeping
records for a small business. Given one bank transaction and the chart of
accounts, pick the debit account and the credit account, estimate your
confidence, and explain the choice in one sentence. Only use account ids
from the provided chart of accounts. A negative amount is money leaving
the business, a positive amount is money coming in.`

// Input is everything the model needs to suggest a debit/credit pair for
// one raw transaction.
type Input struct {
	Description     string
	Amount          string
	Currency        string
	Date            string
	Accounts        []models.Account
	BusinessContext string
}

// Client suggests a double-entry pair for a raw transaction. Callers own
// the deadline; a slow model surfaces as ctx.Err.
type Client interface {
	Suggest(ctx context.Context, in Input) (*models.EntrySuggestion, error)
}

type client struct {
	genaiClient *genai.Client
	model       string
}

func New(genaiClient *genai.Client, model string) Client {
	return &client{
		genaiClient: genaiClient,
		model:       model,
	}
}

type suggestionPayload struct {
	DebitAccountID  string  `json:"debit_account_id"`
	CreditAccountID string  `json:"credit_account_id"`
	Confidence      float64 `json:"confidence"`
	Explanation     string  `json:"explanation"`
}

func (c *client) Suggest(ctx context.Context, in Input) (*models.EntrySuggestion, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"debit_account_id": {
					Type:        genai.TypeString,
					Description: "Account id to debit.",
				},
				"credit_account_id": {
					Type:        genai.TypeString,
					Description: "Account id to credit.",
				},
				"confidence": {
					Type:        genai.TypeNumber,
					Description: "Confidence between 0 and 1.",
				},
				"explanation": {
					Type:        genai.TypeString,
					Description: "One sentence rationale.",
				},
			},
			Required: []string{"debit_account_id", "credit_account_id", "confidence", "explanation"},
		},
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, genai.Text(c.buildPrompt(in)), cfg)
	if err != nil {
		return nil, fmt.Errorf("generate suggestion: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("empty suggestion response")
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Warn(ctx, logIdentifier,
			log.String("status", "unparseable model response"),
			log.String("response", raw))
		return nil, fmt.Errorf("decode suggestion response: %w", err)
	}

	suggestion, err := c.toSuggestion(payload, in.Accounts)
	if err != nil {
		return nil, err
	}

	return suggestion, nil
}

func (c *client) buildPrompt(in Input) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Transaction: %q, amount %s %s on %s.\n", in.Description, in.Amount, in.Currency, in.Date)

	sb.WriteString("Chart of accounts:\n")
	for _, account := range in.Accounts {
		fmt.Fprintf(&sb, "- id=%s name=%q type=%s\n", account.ID, account.Name, account.Type)
	}

	if in.BusinessContext != "" {
		fmt.Fprintf(&sb, "Business context: %s\n", in.BusinessContext)
	}

	return sb.String()
}

func (c *client) toSuggestion(payload suggestionPayload, accounts []models.Account) (*models.EntrySuggestion, error) {
	known := make(map[string]struct{}, len(accounts))
	for _, account := range accounts {
		known[account.ID] = struct{}{}
	}

	if _, ok := known[payload.DebitAccountID]; !ok {
		return nil, fmt.Errorf("unknown debit account %q in suggestion", payload.DebitAccountID)
	}
	if _, ok := known[payload.CreditAccountID]; !ok {
		return nil, fmt.Errorf("unknown credit account %q in suggestion", payload.CreditAccountID)
	}
	if payload.DebitAccountID == payload.CreditAccountID {
		return nil, fmt.Errorf("suggestion debits and credits the same account %q", payload.DebitAccountID)
	}

	confidence := payload.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &models.EntrySuggestion{
		DebitAccountID:  payload.DebitAccountID,
		CreditAccountID: payload.CreditAccountID,
		Confidence:      confidence,
		Explanation:     payload.Explanation,
	}, nil
}
