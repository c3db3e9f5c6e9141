package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "for": true, "my": true, "i": true,
	"me": true, "do": true, "you": true, "have": true, "need": true,
	"want": true, "some": true, "any": true, "to": true, "of": true,
	"is": true, "are": true, "in": true, "on": true, "and": true,
	"please": true, "looking": true, "find": true, "get": true,
	"show": true, "buy": true,
}

// CleanText lowercases, strips diacritics and punctuation, and collapses
// whitespace.
func CleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		result = text
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

// ExtractTokens splits cleaned text into query tokens, dropping stop words
// and single characters.
func ExtractTokens(text string) []string {
	var tokens []string
	for _, word := range strings.Fields(CleanText(text)) {
		if len(word) > 1 && !stopWords[word] {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// vehicleSynonyms maps lowercase make spellings, abbreviations and common
// typos to canonical makes.
var vehicleSynonyms = map[string]string{
	"honda": "Honda", "hond": "Honda",
	"toyota": "Toyota", "toyta": "Toyota",
	"ford":      "Ford",
	"bmw":       "BMW",
	"nissan":    "Nissan",
	"chevrolet": "Chevrolet", "chevy": "Chevrolet",
	"subaru":     "Subaru",
	"audi":       "Audi",
	"volkswagen": "Volkswagen", "vw": "Volkswagen",
	"jeep":     "Jeep",
	"mercedes": "Mercedes-Benz", "mercedes-benz": "Mercedes-Benz",
	"hyundai": "Hyundai", "kia": "Kia", "mazda": "Mazda",
	"mitsubishi": "Mitsubishi", "lexus": "Lexus", "acura": "Acura",
	"infiniti": "Infiniti", "volvo": "Volvo",
}

// partPatterns maps single-word part mentions to canonical categories.
var partPatterns = map[string]string{
	"battery": "Battery", "batteries": "Battery", "battry": "Battery",
	"tire": "Tires", "tires": "Tires", "tyre": "Tires", "tyres": "Tires",
	"brake": "Brakes", "brakes": "Brakes",
	"oil":    "Engine Oil",
	"filter": "Filters", "filters": "Filters",
	"spark": "Spark Plugs", "plug": "Spark Plugs", "plugs": "Spark Plugs",
	"suspension": "Suspension", "shock": "Suspension", "shocks": "Suspension",
	"light": "Lighting", "lights": "Lighting", "headlight": "Lighting",
	"headlights": "Lighting", "bulb": "Lighting", "bulbs": "Lighting",
	"lamp": "Lighting", "lamps": "Lighting",
	"mirror": "Accessories", "mirrors": "Accessories",
	"bumper": "Accessories", "bumpers": "Accessories",
	"wiper": "Accessories", "wipers": "Accessories",
	"mat": "Accessories", "mats": "Accessories",
	"seat": "Accessories", "seats": "Accessories",
	"cover": "Accessories", "covers": "Accessories",
	"windshield": "Accessories", "fender": "Accessories",
	"sensor": "Electrical", "sensors": "Electrical",
	"switch": "Electrical", "switches": "Electrical",
	"alternator": "Electrical",
}

// compoundParts are multi-word mentions that must win over their single-word
// components ("oil filter" is a filter, not engine oil).
var compoundParts = []struct {
	phrase   string
	category string
}{
	{"spark plug", "Spark Plugs"},
	{"spark plugs", "Spark Plugs"},
	{"oil filter", "Filters"},
	{"air filter", "Filters"},
	{"fuel filter", "Filters"},
	{"cabin filter", "Filters"},
	{"engine oil", "Engine Oil"},
	{"rear mirror", "Accessories"},
	{"side mirror", "Accessories"},
	{"front mirror", "Accessories"},
	{"rear bumper", "Accessories"},
	{"front bumper", "Accessories"},
	{"rear light", "Lighting"},
	{"side light", "Lighting"},
	{"front light", "Lighting"},
	{"brake pad", "Brakes"},
	{"brake pads", "Brakes"},
}

// NormalizeMake resolves a make mention to its canonical name, tolerating
// typos via fuzzy matching. Returns "" when nothing clears the cutoff.
func NormalizeMake(makeInput string, sim Similarity) string {
	if makeInput == "" {
		return ""
	}
	if sim == nil {
		sim = DefaultSimilarity
	}

	lower := strings.ToLower(strings.TrimSpace(makeInput))
	if canonical, ok := vehicleSynonyms[lower]; ok {
		return canonical
	}

	bestScore := 0.0
	best := ""
	for key, canonical := range vehicleSynonyms {
		score := sim(lower, key)
		if score > bestScore {
			bestScore = score
			best = canonical
		}
	}
	if bestScore >= FuzzyCutoff {
		return best
	}

	return ""
}

// NormalizeCategory resolves a part mention to a canonical category using the
// loaded synonym table first, then the built-in patterns, then fuzzy matching.
func NormalizeCategory(category string, synonyms map[string]string, sim Similarity) string {
	if category == "" {
		return ""
	}
	if sim == nil {
		sim = DefaultSimilarity
	}

	lower := strings.ToLower(strings.TrimSpace(category))
	if canonical, ok := synonyms[lower]; ok {
		return canonical
	}
	if canonical, ok := partPatterns[lower]; ok {
		return canonical
	}

	bestScore := 0.0
	best := ""
	for key, canonical := range synonyms {
		score := sim(lower, key)
		if score > bestScore {
			bestScore = score
			best = canonical
		}
	}
	for key, canonical := range partPatterns {
		score := sim(lower, key)
		if score > bestScore {
			bestScore = score
			best = canonical
		}
	}
	if bestScore >= FuzzyCutoff {
		return best
	}

	return cases.Title(language.English).String(lower)
}

// ExtractVehicleAndPart pulls an explicit make and part category out of a
// message. Either result may be empty; the caller decides what missing slots
// mean. Compound part phrases are checked before single words so "oil filter"
// does not resolve to engine oil.
func ExtractVehicleAndPart(message string, synonyms map[string]string, sim Similarity) (string, string) {
	if sim == nil {
		sim = DefaultSimilarity
	}
	clean := CleanText(message)
	words := strings.Fields(clean)

	vehicleMake := ""
	for _, word := range words {
		if canonical, ok := vehicleSynonyms[word]; ok {
			vehicleMake = canonical
			break
		}
	}

	partCategory := ""
	for _, compound := range compoundParts {
		if strings.Contains(clean, compound.phrase) {
			partCategory = compound.category
			break
		}
	}

	if partCategory == "" {
		for _, word := range words {
			if canonical, ok := partPatterns[word]; ok {
				partCategory = canonical
				break
			}
			if canonical, ok := synonyms[word]; ok {
				partCategory = canonical
				break
			}
		}
	}

	// Fuzzy fallback for typos, longer tokens only to avoid noise.
	if vehicleMake == "" {
		for _, word := range words {
			if len(word) < 4 || stopWords[word] {
				continue
			}
			if canonical := fuzzyLookup(word, vehicleSynonyms, sim); canonical != "" {
				vehicleMake = canonical
				break
			}
		}
	}
	if partCategory == "" {
		for _, word := range words {
			if len(word) < 4 || stopWords[word] {
				continue
			}
			if canonical := fuzzyLookup(word, partPatterns, sim); canonical != "" {
				partCategory = canonical
				break
			}
			if canonical := fuzzyLookup(word, synonyms, sim); canonical != "" {
				partCategory = canonical
				break
			}
		}
	}

	return vehicleMake, partCategory
}

func fuzzyLookup(word string, table map[string]string, sim Similarity) string {
	bestScore := 0.0
	best := ""
	for key, canonical := range table {
		score := sim(word, key)
		if score > bestScore {
			bestScore = score
			best = canonical
		}
	}
	if bestScore >= FuzzyCutoff {
		return best
	}
	return ""
}
