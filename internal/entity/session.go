package entity

import "time"

type DialogueState string

const (
	StateIdle                  DialogueState = "idle"
	StateAwaitingVehicleDetail DialogueState = "awaiting_vehicle_detail"
	StateAwaitingPartDetail    DialogueState = "awaiting_part_detail"
	StateLeadCapture           DialogueState = "lead_capture"
	StateEscalated             DialogueState = "escalated"
)

type LeadCaptureStage string

const (
	LeadStageNone          LeadCaptureStage = "none"
	LeadStageAskName       LeadCaptureStage = "ask_name"
	LeadStageAskContact    LeadCaptureStage = "ask_contact"
	LeadStageAskPreference LeadCaptureStage = "ask_preference"
	LeadStageDone          LeadCaptureStage = "done"
)

var leadStageOrder = map[LeadCaptureStage]int{
	LeadStageNone:          0,
	LeadStageAskName:       1,
	LeadStageAskContact:    2,
	LeadStageAskPreference: 3,
	LeadStageDone:          4,
}

// Next returns the stage that follows s. Stages only ever advance one step
// forward; any other transition goes through a reset to LeadStageNone.
func (s LeadCaptureStage) Next() LeadCaptureStage {
	switch s {
	case LeadStageNone:
		return LeadStageAskName
	case LeadStageAskName:
		return LeadStageAskContact
	case LeadStageAskContact:
		return LeadStageAskPreference
	case LeadStageAskPreference:
		return LeadStageDone
	default:
		return LeadStageDone
	}
}

func (s LeadCaptureStage) Order() int {
	return leadStageOrder[s]
}

// SessionContext holds every mutable conversational slot for one session.
// It is owned exclusively by the dialogue service: one in-flight request per
// session id mutates it, then saves it back to the store.
type SessionContext struct {
	ID    string        `json:"id"`
	State DialogueState `json:"state"`

	CurrentMake  string `json:"current_make"`
	CurrentModel string `json:"current_model"`
	LastCategory string `json:"last_category"`
	LastSKUShown string `json:"last_sku_shown"`

	PreviousIntents    []IntentLabel `json:"previous_intents"`
	TurnCount          int           `json:"turn_count"`
	TurnsSinceResolved int           `json:"turns_since_resolved"`
	ConsecutiveUnknown int           `json:"consecutive_unknown"`
	ConsecutiveAbuse   int           `json:"consecutive_abuse"`
	FriendlyMode       bool          `json:"friendly_mode"`

	LeadStage          LeadCaptureStage `json:"lead_stage"`
	LeadName           string           `json:"lead_name"`
	LeadPhone          string           `json:"lead_phone"`
	LeadEmail          string           `json:"lead_email"`
	LeadPreference     string           `json:"lead_preference"`
	LeadAttempts       int              `json:"lead_attempts"`
	PendingInstallLead bool             `json:"pending_install_lead"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSessionContext(id string) *SessionContext {
	now := time.Now()
	return &SessionContext{
		ID:        id,
		State:     StateIdle,
		LeadStage: LeadStageNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PushIntent records an intent at the front of the history, truncating to
// capacity. Most recent intent is always index 0.
func (s *SessionContext) PushIntent(intent IntentLabel, capacity int) {
	if capacity <= 0 {
		capacity = 3
	}
	s.PreviousIntents = append([]IntentLabel{intent}, s.PreviousIntents...)
	if len(s.PreviousIntents) > capacity {
		s.PreviousIntents = s.PreviousIntents[:capacity]
	}
}

func (s *SessionContext) LastIntent() IntentLabel {
	if len(s.PreviousIntents) == 0 {
		return IntentUnknown
	}
	return s.PreviousIntents[0]
}

// Corrupted reports whether the context violates a structural invariant and
// must be replaced with a fresh one rather than trusted.
func (s *SessionContext) Corrupted(intentCapacity int) bool {
	if intentCapacity <= 0 {
		intentCapacity = 3
	}
	if len(s.PreviousIntents) > intentCapacity {
		return true
	}
	if _, ok := leadStageOrder[s.LeadStage]; !ok {
		return true
	}
	return false
}

// ResetSlots clears every conversational slot but keeps the session id. Used
// for the explicit reset command, the context timeout and corruption recovery.
func (s *SessionContext) ResetSlots() {
	s.State = StateIdle
	s.CurrentMake = ""
	s.CurrentModel = ""
	s.LastCategory = ""
	s.LastSKUShown = ""
	s.PreviousIntents = nil
	s.TurnsSinceResolved = 0
	s.ConsecutiveUnknown = 0
	s.ConsecutiveAbuse = 0
	s.FriendlyMode = false
	s.ResetLeadCapture()
}

func (s *SessionContext) ResetLeadCapture() {
	s.LeadStage = LeadStageNone
	s.LeadName = ""
	s.LeadPhone = ""
	s.LeadEmail = ""
	s.LeadPreference = ""
	s.LeadAttempts = 0
	s.PendingInstallLead = false
	if s.State == StateLeadCapture {
		s.State = StateIdle
	}
}
