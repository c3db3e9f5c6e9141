package chatService

import (
	"strings"
	"time"

	"golang.org/x/net/context"

	"AutoPartsBot/internal/api/chat"
	"AutoPartsBot/internal/entity"
	"AutoPartsBot/pkg/log"
	"AutoPartsBot/pkg/nlp"
)

const (
	promptAskName       = "I can arrange that. What's your name?"
	promptAskContact    = "Thanks! What's the best phone number or email to reach you?"
	promptAskPreference = "Got it. When would you prefer we contact you, morning or afternoon?"
	promptLeadDone      = "You're all set. We'll be in touch soon."
)

// handleInstallation answers with the install time estimate when the category
// is known and offers to book the work. A booking phrase in the message skips
// straight into lead capture.
func (s *chatService) handleInstallation(session *entity.SessionContext, resolved string) (chat.FactPayload, bool) {
	session.ConsecutiveUnknown = 0

	if hasBookingPhrase(resolved) {
		return s.startLeadCapture(session, true)
	}

	_, category := nlp.ExtractVehicleAndPart(resolved, s.datasets.CategorySynonyms, nil)
	if category == "" {
		category = session.LastCategory
	}
	if category != "" {
		session.LastCategory = category
	}

	session.PendingInstallLead = true

	prompt := "Our partner garage can handle the installation. Would you like me to book it for you?"
	if estimate, ok := s.datasets.InstallTimes[category]; ok {
		prompt = "Installing " + strings.ToLower(category) + " usually takes about " + estimate + ". Would you like me to book it for you?"
	}

	return chat.FactPayload{
		Intent: entity.IntentInstallationHelp.String(),
		Prompt: prompt,
	}, true
}

func (s *chatService) startLeadCapture(session *entity.SessionContext, serviceRequested bool) (chat.FactPayload, bool) {
	session.ConsecutiveUnknown = 0
	session.State = entity.StateLeadCapture
	session.LeadStage = entity.LeadStageAskName
	session.LeadAttempts = 0
	session.PendingInstallLead = serviceRequested

	return chat.FactPayload{
		Intent: entity.IntentLeadCapture.String(),
		Prompt: promptAskName,
	}, true
}

// handleLeadStage validates the answer for the current stage and advances one
// step forward. Invalid answers re-prompt the same stage, bounded by the
// attempt limit before falling back to escalation.
func (s *chatService) handleLeadStage(ctx context.Context, requestID string, session *entity.SessionContext, message string) (chat.FactPayload, bool) {
	input := strings.TrimSpace(message)

	switch session.LeadStage {
	case entity.LeadStageAskName:
		if !s.utils.IsValidName(input) {
			return s.leadRetry(session, promptAskName)
		}
		session.LeadName = input
		session.LeadStage = session.LeadStage.Next()
		session.LeadAttempts = 0
		return chat.FactPayload{
			Intent: entity.IntentLeadCapture.String(),
			Prompt: promptAskContact,
		}, true

	case entity.LeadStageAskContact:
		details := s.utils.ExtractContactDetails(input)
		if details.Phone == "" && details.Email == "" {
			return s.leadRetry(session, promptAskContact)
		}
		session.LeadPhone = details.Phone
		session.LeadEmail = details.Email
		session.LeadStage = session.LeadStage.Next()
		session.LeadAttempts = 0
		return chat.FactPayload{
			Intent: entity.IntentLeadCapture.String(),
			Prompt: promptAskPreference,
		}, true

	case entity.LeadStageAskPreference:
		if input == "" {
			return s.leadRetry(session, promptAskPreference)
		}
		session.LeadPreference = input
		session.LeadStage = session.LeadStage.Next()
		return s.completeLead(ctx, requestID, session)

	default:
		// A stage outside the flow means the state drifted; recover by
		// leaving the flow.
		session.ResetLeadCapture()
		return s.handleUnknown(session)
	}
}

func (s *chatService) leadRetry(session *entity.SessionContext, prompt string) (chat.FactPayload, bool) {
	session.LeadAttempts++
	if session.LeadAttempts >= s.opts.LeadMaxAttempts {
		session.ResetLeadCapture()
		return chat.FactPayload{
			Intent:    entity.IntentLeadCapture.String(),
			Prompt:    promptOfferHuman,
			Escalated: true,
		}, false
	}

	return chat.FactPayload{
		Intent: entity.IntentLeadCapture.String(),
		Prompt: "That doesn't look right. " + prompt,
	}, false
}

// completeLead writes the lead record and closes the flow. Persistence
// failure is logged and softened to a follow-up promise, never an error to
// the user.
func (s *chatService) completeLead(ctx context.Context, requestID string, session *entity.SessionContext) (chat.FactPayload, bool) {
	lead := entity.Lead{
		Name:             session.LeadName,
		Phone:            session.LeadPhone,
		Email:            session.LeadEmail,
		VehicleMake:      session.CurrentMake,
		PartCategory:     session.LastCategory,
		Message:          session.LeadPreference,
		ServiceRequested: session.PendingInstallLead,
		CreatedAt:        time.Now(),
	}

	prompt := promptLeadDone
	if err := s.appendLead(ctx, lead); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"session_id": session.ID,
			"error":      err.Error(),
		}).Error("Failed to persist lead")
		prompt = promptLeadFallback
	}

	session.ResetLeadCapture()
	return chat.FactPayload{
		Intent:   entity.IntentLeadCapture.String(),
		Prompt:   prompt,
		Verbatim: true,
	}, true
}

func (s *chatService) appendLead(ctx context.Context, lead entity.Lead) error {
	if s.chatRepo == nil {
		return nil
	}

	id, err := s.utils.NewULIDFromTimestamp(lead.CreatedAt)
	if err != nil {
		return err
	}
	lead.ID = id

	client, err := s.chatRepo.NewClient(false)
	if err != nil {
		return err
	}

	return client.Leads.CreateLead(ctx, lead)
}

func hasBookingPhrase(message string) bool {
	clean := " " + nlp.CleanText(message) + " "
	for _, phrase := range []string{"book", "booking", "appointment", "schedule", "call me", "contact me"} {
		if strings.Contains(clean, " "+phrase+" ") {
			return true
		}
	}
	return false
}
