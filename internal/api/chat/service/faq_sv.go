package chatService

import (
	"strings"

	"AutoPartsBot/internal/api/chat"
	"AutoPartsBot/internal/entity"
	"AutoPartsBot/pkg/nlp"
)

// handleFaq matches by keyword overlap against the FAQ set and returns the
// winning answer verbatim. The phrasing layer never rewords policy text.
func (s *chatService) handleFaq(session *entity.SessionContext, resolved string, intent entity.IntentLabel) (chat.FactPayload, bool) {
	entry, found := bestFaqMatch(resolved, intent, s.datasets.Faqs)
	if !found {
		return s.handleUnknown(session)
	}

	session.ConsecutiveUnknown = 0
	return chat.FactPayload{
		Intent:    intent.String(),
		FaqAnswer: entry.Answer,
		Verbatim:  true,
	}, true
}

// bestFaqMatch scores entries by how many of their keywords appear in the
// message, with a bonus when the entry's declared intent matches the
// classified one. Ties go to higher priority, then dataset order.
func bestFaqMatch(message string, intent entity.IntentLabel, faqs []entity.FaqEntry) (entity.FaqEntry, bool) {
	clean := " " + nlp.CleanText(message) + " "

	best := entity.FaqEntry{}
	bestScore := 0
	found := false

	for _, entry := range faqs {
		score := 0
		for _, keyword := range entry.Keywords {
			kw := nlp.CleanText(keyword)
			if kw != "" && strings.Contains(clean, " "+kw+" ") {
				score++
			}
		}
		if score == 0 {
			continue
		}
		if entity.ParseIntentLabel(entry.Intent) == intent {
			score += 2
		}

		if score > bestScore || (score == bestScore && found && entry.Priority > best.Priority) {
			best = entry
			bestScore = score
			found = true
		}
	}

	return best, found
}
