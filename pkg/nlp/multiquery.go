package nlp

import (
	"regexp"
	"strings"
)

// multiQuerySeparators are the connectives that can chain two requests in one
// message ("Honda battery or Toyota tires").
var multiQuerySeparators = []string{" or ", " and ", " & ", ", "}

var multiQuerySplit = regexp.MustCompile(`(?i)\s+(?:or|and|&)\s+|,\s+`)

// DetectMultiQuery reports whether a message contains a connective that may
// join two distinct requests. Callers still have to check that more than one
// side actually mentions something searchable.
func DetectMultiQuery(message string) bool {
	lower := strings.ToLower(message)
	for _, sep := range multiQuerySeparators {
		if strings.Contains(lower, sep) {
			return true
		}
	}
	return false
}

// SplitMultiQuery breaks a message at its connectives, keeping segment order.
func SplitMultiQuery(message string) []string {
	var segments []string
	for _, segment := range multiQuerySplit.Split(message, -1) {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
