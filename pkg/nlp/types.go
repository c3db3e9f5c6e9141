package nlp

import "AutoPartsBot/internal/entity"

// Similarity scores two strings in [0,1]. The matcher takes it as a pluggable
// backend so the scoring implementation can be swapped without touching the
// threshold or combination logic.
type Similarity func(a, b string) float64

// MatchThreshold is the minimum combined score a candidate needs to appear in
// a MatchResult.
const MatchThreshold = 0.55

// FuzzyCutoff is the minimum similarity for typo correction when normalizing
// vehicle makes and part categories.
const FuzzyCutoff = 0.70

type ScoredPart struct {
	Part  entity.Part
	Score float64
}

// MatchResult is ordered by descending score; ties keep catalog insertion
// order. It is produced fresh per query and never persisted.
type MatchResult struct {
	Scored []ScoredPart
}

func (m MatchResult) Empty() bool {
	return len(m.Scored) == 0
}

func (m MatchResult) Top(n int) []ScoredPart {
	if n > len(m.Scored) {
		n = len(m.Scored)
	}
	return m.Scored[:n]
}

// CorefContext is the read-only slice of session state the coreference
// resolver needs. Resolution never mutates session state.
type CorefContext struct {
	VehicleMake  string
	VehicleModel string
	PartCategory string
	LastSKU      string
}
