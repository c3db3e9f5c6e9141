package chat

import "time"

type ChatRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
	Message   string `json:"message" validate:"required,min=1,max=1000"`
}

type ResetRequest struct {
	SessionID string `json:"session_id" validate:"required,max=64"`
}

// PartFact is a literal catalog fact shown to the user. Price and SKU pass
// through the phrasing layer unchanged.
type PartFact struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	StockCount   int     `json:"stock_count"`
	Availability string  `json:"availability"`
}

// FactPayload is everything the controller decided this turn: what to show
// and what the phrasing layer may reword. Business values are literal.
type FactPayload struct {
	Intent       string     `json:"intent"`
	State        string     `json:"state"`
	Prompt       string     `json:"prompt,omitempty"`
	Parts        []PartFact `json:"parts,omitempty"`
	Alternatives []PartFact `json:"alternatives,omitempty"`
	FaqAnswer    string     `json:"faq_answer,omitempty"`
	Verbatim     bool       `json:"verbatim,omitempty"`
	Escalated    bool       `json:"escalated,omitempty"`
	ContextReset bool       `json:"context_reset,omitempty"`
}

type ChatResponse struct {
	SessionID string      `json:"session_id"`
	Reply     string      `json:"reply"`
	Facts     FactPayload `json:"facts"`
}

type ResetResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type HistoryMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	SessionID string                   `json:"session_id"`
	Messages  []HistoryMessageResponse `json:"messages"`
}
