package entity

import "time"

// Lead is an append-only record; it is written exactly once, when the lead
// capture flow reaches its final stage.
type Lead struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	Phone            string    `db:"phone"`
	Email            string    `db:"email"`
	VehicleMake      string    `db:"vehicle_make"`
	PartCategory     string    `db:"part_category"`
	Message          string    `db:"message"`
	ServiceRequested bool      `db:"service_requested"`
	CreatedAt        time.Time `db:"created_at"`
}

type ChatMessage struct {
	ID        string    `db:"id"`
	SessionID string    `db:"session_id"`
	Role      string    `db:"role"`
	Content   string    `db:"content"`
	Intent    string    `db:"intent"`
	CreatedAt time.Time `db:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
