package nlp

import "strings"

// Coreference phrases, longest first so "same part" is consumed before a bare
// "it" inside it could be.
var corefPartPhrases = []string{
	"the one you showed",
	"same part",
	"same one",
	"that part",
	"those",
	"it",
}

var corefVehiclePhrases = []string{
	"same car",
	"same make",
	"that car",
	"that make",
	"my car",
	"my vehicle",
	"that vehicle",
}

// ResolvedReference reports which referents a message carried and the
// rewritten message with phrases substituted.
type ResolvedReference struct {
	Message      string
	UsedPart     bool
	UsedVehicle  bool
	Unresolvable bool
}

// ResolveReferences rewrites coreference phrases in a message using prior
// context. A part phrase substitutes the last category, a vehicle phrase the
// current make. A phrase with no matching context slot is left as written and
// flagged unresolvable so the controller can ask for clarification instead of
// guessing. A message without reference phrases passes through untouched, so
// resolution is idempotent.
func ResolveReferences(message string, ctx CorefContext) ResolvedReference {
	clean := CleanText(message)
	result := ResolvedReference{Message: message}

	for _, phrase := range corefPartPhrases {
		if !containsPhrase(clean, phrase) {
			continue
		}
		// The category reads better in a rewritten message; the SKU is the
		// fallback antecedent when only a specific part was shown.
		replacement := ctx.PartCategory
		if replacement == "" {
			replacement = ctx.LastSKU
		}
		if replacement == "" {
			result.Unresolvable = true
			continue
		}
		result.Message = replacePhrase(result.Message, phrase, replacement)
		result.UsedPart = true
		clean = CleanText(result.Message)
	}

	for _, phrase := range corefVehiclePhrases {
		if !containsPhrase(clean, phrase) {
			continue
		}
		if ctx.VehicleMake == "" {
			result.Unresolvable = true
			continue
		}
		replacement := ctx.VehicleMake
		if ctx.VehicleModel != "" {
			replacement = ctx.VehicleMake + " " + ctx.VehicleModel
		}
		result.Message = replacePhrase(result.Message, phrase, replacement)
		result.UsedVehicle = true
		clean = CleanText(result.Message)
	}

	return result
}

// containsPhrase matches on word boundaries so "it" never fires inside
// "fitting" or "with".
func containsPhrase(clean, phrase string) bool {
	return strings.Contains(" "+clean+" ", " "+phrase+" ")
}

func replacePhrase(message, phrase, replacement string) string {
	words := strings.Fields(message)
	phraseWords := strings.Fields(phrase)

	for i := 0; i+len(phraseWords) <= len(words); i++ {
		if !phraseMatchesAt(words, phraseWords, i) {
			continue
		}
		out := make([]string, 0, len(words))
		out = append(out, words[:i]...)
		out = append(out, replacement)
		out = append(out, words[i+len(phraseWords):]...)
		return strings.Join(out, " ")
	}
	return message
}

func phraseMatchesAt(words, phraseWords []string, at int) bool {
	for j, pw := range phraseWords {
		if CleanText(words[at+j]) != pw {
			return false
		}
	}
	return true
}
