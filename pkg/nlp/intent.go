package nlp

import (
	"strings"

	"AutoPartsBot/internal/entity"
)

// intentKeywords backs the rule-based classifier used when the LLM boundary is
// unavailable. Buckets are checked in order; first bucket with a hit wins.
var intentKeywords = []struct {
	label    entity.IntentLabel
	keywords []string
}{
	{entity.IntentAbuse, []string{
		"stupid", "idiot", "useless", "dumb", "trash", "garbage", "hate you",
		"shut up", "worst", "scam", "sucks",
	}},
	{entity.IntentCarSales, []string{
		"buy a car", "sell a car", "sell my car", "buy a vehicle",
		"purchase a car", "trade in", "trade-in",
	}},
	{entity.IntentPromotions, []string{
		"discount", "promo", "promotion", "deal", "deals", "sale", "coupon",
		"offer", "offers", "cheaper",
	}},
	{entity.IntentInstallationHelp, []string{
		"install", "installation", "fit it", "fitting", "mount", "replace it",
		"how do i change", "how to change", "mechanic",
	}},
	{entity.IntentRequestQuote, []string{
		"quote", "quotation", "estimate", "how much for", "price for",
		"bulk", "wholesale",
	}},
	{entity.IntentLeadCapture, []string{
		"call me", "contact me", "reach me", "get back to me", "callback",
		"call back",
	}},
	{entity.IntentFaqShipping, []string{
		"shipping", "ship", "delivery", "deliver", "track", "tracking",
		"arrive", "freight",
	}},
	{entity.IntentFaqPolicy, []string{
		"return", "returns", "refund", "warranty", "exchange", "policy",
		"guarantee", "cancel",
	}},
	{entity.IntentFaqStoreInfo, []string{
		"hours", "open", "close", "location", "address", "where are you",
		"phone number", "contact number", "parking",
	}},
	{entity.IntentChitchat, []string{
		"hello", "hi", "hey", "thanks", "thank you", "good morning",
		"good afternoon", "good evening", "how are you", "bye", "goodbye",
	}},
}

// productKeywords mark a message as a product search when no other bucket
// fired. The part pattern tables do most of the work; these cover generic
// phrasing.
var productKeywords = []string{
	"part", "parts", "stock", "available", "price", "cost", "much",
	"carry", "sell", "need", "looking",
}

// ClassifyRules is the deterministic fallback intent classifier. It never
// errors; anything it cannot place is IntentUnknown.
func ClassifyRules(message string) entity.IntentLabel {
	clean := CleanText(message)
	if clean == "" {
		return entity.IntentUnknown
	}
	padded := " " + clean + " "

	for _, bucket := range intentKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(padded, " "+kw+" ") {
				return bucket.label
			}
		}
	}

	// Any recognizable make or part mention implies a product search.
	vehicleMake, partCategory := ExtractVehicleAndPart(message, nil, nil)
	if vehicleMake != "" || partCategory != "" {
		return entity.IntentProductSearch
	}

	for _, kw := range productKeywords {
		if strings.Contains(padded, " "+kw+" ") {
			return entity.IntentProductSearch
		}
	}

	return entity.IntentUnknown
}
