package chatService

import (
	"fmt"
	"strings"

	"AutoPartsBot/internal/api/chat"
	"AutoPartsBot/internal/entity"
	"AutoPartsBot/pkg/nlp"
)

// handleProductSearch fills the make and category slots from the message,
// asks for whichever is still missing, and otherwise runs the matcher over
// the make's candidates.
func (s *chatService) handleProductSearch(session *entity.SessionContext, resolved string, intent entity.IntentLabel) (chat.FactPayload, bool) {
	vehicleMake, category := nlp.ExtractVehicleAndPart(resolved, s.datasets.CategorySynonyms, nil)

	// Explicit mentions overwrite slots; silence never clears them.
	if vehicleMake != "" {
		if vehicleMake != session.CurrentMake {
			session.CurrentModel = ""
		}
		session.CurrentMake = vehicleMake
	}
	if category != "" {
		session.LastCategory = category
	}

	// A turn that fills neither slot and was not classified as a search is
	// just an unrecognized answer to our question.
	if intent != entity.IntentProductSearch && vehicleMake == "" && category == "" {
		return s.handleUnknown(session)
	}
	session.ConsecutiveUnknown = 0

	if session.CurrentMake == "" {
		session.State = entity.StateAwaitingVehicleDetail
		return chat.FactPayload{
			Intent: entity.IntentProductSearch.String(),
			Prompt: promptAskVehicle,
		}, false
	}
	if session.LastCategory == "" {
		session.State = entity.StateAwaitingPartDetail
		return chat.FactPayload{
			Intent: entity.IntentProductSearch.String(),
			Prompt: promptAskPart,
		}, false
	}

	session.State = entity.StateIdle
	return s.runSearch(session, resolved), true
}

// handleMultiQuery catches messages that chain two requests ("Honda battery
// or Toyota tires") and asks which one to take first instead of guessing.
// It only fires when at least two segments mention a vehicle or a part.
func (s *chatService) handleMultiQuery(message string) (chat.FactPayload, bool) {
	if !nlp.DetectMultiQuery(message) {
		return chat.FactPayload{}, false
	}

	segments := nlp.SplitMultiQuery(message)
	if len(segments) > 2 {
		segments = segments[:2]
	}

	var summaries []string
	for _, segment := range segments {
		vehicleMake, category := nlp.ExtractVehicleAndPart(segment, s.datasets.CategorySynonyms, nil)
		switch {
		case vehicleMake != "" && category != "":
			summaries = append(summaries, vehicleMake+" "+category)
		case vehicleMake != "":
			summaries = append(summaries, vehicleMake+" parts")
		case category != "":
			summaries = append(summaries, category)
		}
	}
	if len(summaries) < 2 {
		return chat.FactPayload{}, false
	}

	return chat.FactPayload{
		Intent: entity.IntentProductSearch.String(),
		Prompt: "I see you're asking about multiple items: " + strings.Join(summaries, " and ") +
			". Which one would you like me to help with first?",
	}, true
}

// runSearch is driven by the session slots, not just the current message. The
// make and remembered category narrow the candidates so a slot-filling answer
// like a bare make still searches the part the user asked for.
func (s *chatService) runSearch(session *entity.SessionContext, resolved string) chat.FactPayload {
	facts := chat.FactPayload{Intent: entity.IntentProductSearch.String()}

	candidates := s.catalogRepo.Lookup(session.CurrentMake, "", "")
	if len(candidates) == 0 {
		facts.Prompt = "We don't currently stock parts for " + session.CurrentMake + "."
		if makes := s.catalogRepo.AvailableMakes(); len(makes) > 0 {
			facts.Prompt += " We carry parts for " + strings.Join(makes, ", ") + "."
		}
		facts.Alternatives = toPartFacts(s.stockedFallback(session))
		return facts
	}

	if session.LastCategory != "" {
		filtered := s.catalogRepo.Lookup(session.CurrentMake, "", session.LastCategory)
		if len(filtered) == 0 {
			facts.Prompt = promptNoMatch
			facts.Alternatives = toPartFacts(s.stockedFallback(session))
			return facts
		}
		candidates = filtered
	}

	tokens := nlp.ExtractTokens(resolved)
	result := s.matcher.Match(tokens, candidates)

	if result.Empty() {
		facts.Prompt = promptNoMatch
		facts.Alternatives = toPartFacts(s.stockedFallback(session))
		return facts
	}

	top := result.Top(s.opts.MaxResults)
	parts := make([]entity.Part, 0, len(top))
	for _, scored := range top {
		parts = append(parts, scored.Part)
	}
	facts.Parts = toPartFacts(parts)

	if top[0].Part.SKU == session.LastSKUShown {
		facts.Prompt = promptSameAsBefore
	}
	session.LastSKUShown = top[0].Part.SKU

	if !top[0].Part.Availability.Stocked() || top[0].Part.StockCount <= 0 {
		facts.Prompt = strings.TrimSpace(facts.Prompt + " That part is currently out of stock.")
		facts.Alternatives = toPartFacts(s.stockedFallback(session))
	}

	return facts
}

// stockedFallback offers in-stock parts from the same category across other
// makes, or failing that anything stocked for the current make.
func (s *chatService) stockedFallback(session *entity.SessionContext) []entity.Part {
	alternatives := s.catalogRepo.StockedAlternatives(session.LastCategory, s.opts.AlternativeLimit)
	if len(alternatives) > 0 {
		return alternatives
	}

	var out []entity.Part
	for _, part := range s.catalogRepo.Lookup(session.CurrentMake, "", "") {
		if len(out) >= s.opts.AlternativeLimit {
			break
		}
		if part.Availability.Stocked() && part.StockCount > 0 {
			out = append(out, part)
		}
	}
	return out
}

func toPartFacts(parts []entity.Part) []chat.PartFact {
	facts := make([]chat.PartFact, 0, len(parts))
	for _, part := range parts {
		facts = append(facts, chat.PartFact{
			SKU:          part.SKU,
			Name:         part.Name,
			Make:         part.Make,
			Model:        part.Model,
			Category:     part.Category,
			Price:        part.Price,
			StockCount:   part.StockCount,
			Availability: string(part.Availability),
		})
	}
	return facts
}

// renderFacts is the canned phrasing template. It is the reply of record
// whenever the LLM is absent, errors out or must not reword the payload.
func renderFacts(facts chat.FactPayload) string {
	var b strings.Builder

	if facts.FaqAnswer != "" {
		return facts.FaqAnswer
	}

	if facts.Prompt != "" {
		b.WriteString(facts.Prompt)
	}

	if len(facts.Parts) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("Here's what I found:")
		for _, part := range facts.Parts {
			b.WriteString(fmt.Sprintf("\n- %s %s %s (%s): $%.2f, %d in stock",
				part.Make, part.Model, part.Name, part.SKU, part.Price, part.StockCount))
		}
	}

	if len(facts.Alternatives) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("Here are some in-stock alternatives:")
		for _, part := range facts.Alternatives {
			b.WriteString(fmt.Sprintf("\n- %s %s %s (%s): $%.2f, %d in stock",
				part.Make, part.Model, part.Name, part.SKU, part.Price, part.StockCount))
		}
	}

	if b.Len() == 0 {
		return promptChitchat
	}
	return b.String()
}
