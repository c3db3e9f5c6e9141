package chatService

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/context"

	"AutoPartsBot/internal/api/chat"
	"AutoPartsBot/internal/entity"
	contextPkg "AutoPartsBot/pkg/context"
	"AutoPartsBot/pkg/log"
	"AutoPartsBot/pkg/nlp"
)

const (
	promptAskVehicle   = "Which vehicle is this for? Let me know the make, for example Honda or Toyota."
	promptAskPart      = "What part are you looking for?"
	promptDeEscalate   = "I understand this can be frustrating. I'm here to help with your auto parts needs, so let's keep things friendly."
	promptEscalated    = "I've passed this conversation to one of our team members. Someone will be with you shortly."
	promptOfferHuman   = "I'm having trouble understanding. Would you like me to connect you with a human agent?"
	promptContextReset = "Let's start over. What can I help you find today?"
	promptNoMatch      = "I couldn't find an exact match for that."
	promptSameAsBefore = "That's the same part I showed you earlier."
	promptChitchat     = "Happy to help! Ask me about parts, prices or store info any time."
	promptGoodbye      = "You're welcome! Come back any time you need a part."
	promptPromotions   = "We run seasonal promotions in store. Right now orders over $100 ship free."
	promptCarSales     = "We only sell auto parts and accessories, not vehicles. Can I help you find a part?"
	promptLeadFallback = "We'll follow up with you by phone to confirm the details."
)

func (s *chatService) HandleMessage(ctx context.Context, sessionID, message string) (chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(message) == "" {
		return chat.ChatResponse{}, chat.ErrEmptyMessage
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return chat.ChatResponse{}, chat.ErrSessionLoad
	}

	contextWasReset := false
	if session.Corrupted(s.opts.IntentCapacity) {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"session_id": sessionID,
		}).Warn("Session context violates invariants, starting fresh")
		session.ResetSlots()
		contextWasReset = true
	}

	session.TurnCount++

	facts, resolved := s.dispatch(ctx, requestID, session, message)
	facts.State = string(session.State)
	if contextWasReset {
		facts.ContextReset = true
	}

	if resolved {
		session.TurnsSinceResolved = 0
	} else {
		session.TurnsSinceResolved++
		if session.TurnsSinceResolved >= s.opts.ContextTimeout {
			session.ResetSlots()
			facts.ContextReset = true
			facts.State = string(session.State)
			if facts.Prompt == "" {
				facts.Prompt = promptContextReset
			} else {
				facts.Prompt = facts.Prompt + " " + promptContextReset
			}
		}
	}

	session.PushIntent(entity.ParseIntentLabel(facts.Intent), s.opts.IntentCapacity)

	if err := s.sessions.Save(ctx, session); err != nil {
		return chat.ChatResponse{}, chat.ErrSessionSave
	}

	reply := s.phrase(ctx, requestID, facts)
	s.persistTranscript(ctx, requestID, sessionID, message, reply, facts.Intent)

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"intent":     facts.Intent,
		"state":      facts.State,
		"turn":       session.TurnCount,
	}).Info("Handled chat turn")

	return chat.ChatResponse{
		SessionID: sessionID,
		Reply:     reply,
		Facts:     facts,
	}, nil
}

// dispatch runs one turn of the state machine and reports whether the turn
// resolved to something actionable. Unresolved turns feed the context timeout.
func (s *chatService) dispatch(ctx context.Context, requestID string, session *entity.SessionContext, message string) (chat.FactPayload, bool) {
	if isResetCommand(message) {
		session.ResetSlots()
		return chat.FactPayload{
			Intent:       entity.IntentChitchat.String(),
			Prompt:       promptContextReset,
			ContextReset: true,
		}, true
	}

	if session.State == entity.StateEscalated {
		return chat.FactPayload{
			Intent:    session.LastIntent().String(),
			Prompt:    promptEscalated,
			Escalated: true,
			Verbatim:  true,
		}, true
	}

	// Lead capture consumes raw input; no classification mid-flow.
	if session.State == entity.StateLeadCapture {
		return s.handleLeadStage(ctx, requestID, session, message)
	}

	if session.PendingInstallLead && isAffirmative(message) {
		return s.startLeadCapture(session, true)
	}

	// Two requests in one message get a disambiguation question before any
	// resolution or classification happens.
	if facts, ok := s.handleMultiQuery(message); ok {
		session.ConsecutiveUnknown = 0
		return facts, true
	}

	coref := nlp.ResolveReferences(message, nlp.CorefContext{
		VehicleMake:  session.CurrentMake,
		VehicleModel: session.CurrentModel,
		PartCategory: session.LastCategory,
		LastSKU:      session.LastSKUShown,
	})
	resolved := coref.Message

	intent := s.classify(ctx, requestID, resolved)

	if intent == entity.IntentAbuse {
		return s.handleAbuse(session)
	}
	session.ConsecutiveAbuse = 0

	switch {
	case intent.IsFaq():
		return s.handleFaq(session, resolved, intent)

	case intent == entity.IntentInstallationHelp:
		return s.handleInstallation(session, resolved)

	case intent == entity.IntentRequestQuote, intent == entity.IntentLeadCapture:
		return s.startLeadCapture(session, intent == entity.IntentRequestQuote)

	// An awaiting state only captures turns the classifier could not place,
	// so chitchat or promotions mid-slot-filling still get their own answers.
	case intent == entity.IntentProductSearch,
		intent == entity.IntentUnknown &&
			(session.State == entity.StateAwaitingVehicleDetail ||
				session.State == entity.StateAwaitingPartDetail):
		return s.handleProductSearch(session, resolved, intent)

	case intent == entity.IntentChitchat:
		session.ConsecutiveUnknown = 0
		// Thanks or goodbye closes the conversation and clears its slots.
		if isClosing(resolved) {
			session.ResetSlots()
			return chat.FactPayload{
				Intent: intent.String(),
				Prompt: promptGoodbye,
			}, true
		}
		return chat.FactPayload{
			Intent: intent.String(),
			Prompt: promptChitchat,
		}, true

	case intent == entity.IntentPromotions:
		session.ConsecutiveUnknown = 0
		return chat.FactPayload{
			Intent: intent.String(),
			Prompt: promptPromotions,
		}, true

	case intent == entity.IntentCarSales:
		session.ConsecutiveUnknown = 0
		return chat.FactPayload{
			Intent: intent.String(),
			Prompt: promptCarSales,
		}, true

	default:
		return s.handleUnknown(session)
	}
}

// classify asks the LLM boundary for an intent label and falls back to the
// rule-based classifier on error, timeout or an unrecognized label.
func (s *chatService) classify(ctx context.Context, requestID, text string) entity.IntentLabel {
	if s.llm != nil {
		cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		label, err := s.llm.ClassifyIntent(cctx, text)
		if err != nil {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Intent classification failed, using rule-based fallback")
		} else if parsed := entity.ParseIntentLabel(label); parsed != entity.IntentUnknown {
			return parsed
		}
	}

	return nlp.ClassifyRules(text)
}

func (s *chatService) handleAbuse(session *entity.SessionContext) (chat.FactPayload, bool) {
	session.ConsecutiveAbuse++
	session.ConsecutiveUnknown = 0
	session.FriendlyMode = true

	if session.ConsecutiveAbuse >= s.opts.AbuseEscalation {
		session.State = entity.StateEscalated
		return chat.FactPayload{
			Intent:    entity.IntentAbuse.String(),
			Prompt:    promptEscalated,
			Escalated: true,
			Verbatim:  true,
		}, true
	}

	return chat.FactPayload{
		Intent:   entity.IntentAbuse.String(),
		Prompt:   promptDeEscalate,
		Verbatim: true,
	}, true
}

func (s *chatService) handleUnknown(session *entity.SessionContext) (chat.FactPayload, bool) {
	session.ConsecutiveUnknown++

	if session.ConsecutiveUnknown >= s.opts.UnknownEscalation {
		session.ConsecutiveUnknown = 0
		return chat.FactPayload{
			Intent:    entity.IntentUnknown.String(),
			Prompt:    promptOfferHuman,
			Escalated: true,
		}, false
	}

	return chat.FactPayload{
		Intent: entity.IntentUnknown.String(),
		Prompt: "Sorry, I didn't catch that. You can ask about parts, prices, store hours or shipping.",
	}, false
}

func (s *chatService) ResetSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return chat.ErrInvalidSession
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return chat.ErrSessionLoad
	}

	session.ResetSlots()
	if err := s.sessions.Save(ctx, session); err != nil {
		return chat.ErrSessionSave
	}
	return nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error) {
	if sessionID == "" {
		return nil, chat.ErrInvalidSession
	}
	if s.chatRepo == nil {
		return nil, nil
	}

	client, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return client.Messages.GetMessagesBySession(ctx, sessionID, limit)
}

func (s *chatService) persistTranscript(ctx context.Context, requestID, sessionID, userMessage, reply, intent string) {
	if s.chatRepo == nil {
		return
	}

	client, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to open transcript client")
		return
	}

	now := time.Now()
	for _, msg := range []entity.ChatMessage{
		{SessionID: sessionID, Role: entity.RoleUser, Content: userMessage, Intent: intent, CreatedAt: now},
		{SessionID: sessionID, Role: entity.RoleAssistant, Content: reply, Intent: intent, CreatedAt: now},
	} {
		id, err := s.utils.NewULIDFromTimestamp(now)
		if err != nil {
			continue
		}
		msg.ID = id
		if err := client.Messages.CreateMessage(ctx, msg); err != nil {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Failed to persist transcript message")
		}
	}
}

// phrase renders the fact payload into text. Verbatim payloads and missing
// LLM both use the deterministic template; otherwise the LLM rewords the
// rendered facts.
func (s *chatService) phrase(ctx context.Context, requestID string, facts chat.FactPayload) string {
	rendered := renderFacts(facts)

	if facts.Verbatim || s.llm == nil {
		return rendered
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	phrased, err := s.llm.PhraseResponse(cctx, rendered)
	if err != nil || phrased == "" {
		if err != nil {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Phrasing failed, using canned template")
		}
		return rendered
	}
	return phrased
}

func isResetCommand(message string) bool {
	switch nlp.CleanText(message) {
	case "reset", "start over", "restart", "clear":
		return true
	}
	return false
}

func isClosing(message string) bool {
	clean := " " + nlp.CleanText(message) + " "
	for _, phrase := range []string{"thanks", "thank you", "bye", "goodbye", "that s all", "thats all"} {
		if strings.Contains(clean, " "+phrase+" ") {
			return true
		}
	}
	return false
}

func isAffirmative(message string) bool {
	switch nlp.CleanText(message) {
	case "yes", "yes please", "yeah", "yep", "sure", "ok", "okay", "please", "sounds good":
		return true
	}
	return false
}
