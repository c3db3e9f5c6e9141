package entity

// IntentLabel is the closed-but-extensible set of intents the controller
// dispatches on. The classifier boundary may return anything; labels outside
// this set map to IntentUnknown so the controller switch stays total.
type IntentLabel string

const (
	IntentProductSearch    IntentLabel = "product_search"
	IntentFaqStoreInfo     IntentLabel = "faq_store_info"
	IntentFaqPolicy        IntentLabel = "faq_policy"
	IntentFaqShipping      IntentLabel = "faq_shipping"
	IntentInstallationHelp IntentLabel = "installation_help"
	IntentRequestQuote     IntentLabel = "request_quote"
	IntentLeadCapture      IntentLabel = "lead_capture"
	IntentChitchat         IntentLabel = "chitchat"
	IntentPromotions       IntentLabel = "promotions"
	IntentCarSales         IntentLabel = "car_sales"
	IntentAbuse            IntentLabel = "abuse"
	IntentUnknown          IntentLabel = "unknown"
)

var knownIntents = map[IntentLabel]bool{
	IntentProductSearch:    true,
	IntentFaqStoreInfo:     true,
	IntentFaqPolicy:        true,
	IntentFaqShipping:      true,
	IntentInstallationHelp: true,
	IntentRequestQuote:     true,
	IntentLeadCapture:      true,
	IntentChitchat:         true,
	IntentPromotions:       true,
	IntentCarSales:         true,
	IntentAbuse:            true,
	IntentUnknown:          true,
}

func ParseIntentLabel(raw string) IntentLabel {
	label := IntentLabel(raw)
	if !knownIntents[label] {
		return IntentUnknown
	}
	return label
}

func (i IntentLabel) IsFaq() bool {
	return i == IntentFaqStoreInfo || i == IntentFaqPolicy || i == IntentFaqShipping
}

func (i IntentLabel) String() string {
	return string(i)
}
