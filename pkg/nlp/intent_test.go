package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"AutoPartsBot/internal/entity"
)

func TestClassifyRules(t *testing.T) {
	cases := []struct {
		message string
		want    entity.IntentLabel
	}{
		{"I need a battery for my Honda", entity.IntentProductSearch},
		{"do you have brakes in stock", entity.IntentProductSearch},
		{"what are your hours", entity.IntentFaqStoreInfo},
		{"what is your return policy", entity.IntentFaqPolicy},
		{"how long does shipping take", entity.IntentFaqShipping},
		{"how do i install this", entity.IntentInstallationHelp},
		{"can you give me a quote", entity.IntentRequestQuote},
		{"please call me back tomorrow", entity.IntentLeadCapture},
		{"hello", entity.IntentChitchat},
		{"any discount going on", entity.IntentPromotions},
		{"I want to buy a car", entity.IntentCarSales},
		{"you are stupid", entity.IntentAbuse},
		{"qwerty asdfgh", entity.IntentUnknown},
		{"", entity.IntentUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyRules(tc.message), "message: %q", tc.message)
	}
}

func TestClassifyRulesAbuseWinsOverProduct(t *testing.T) {
	// Abuse is checked before everything else.
	assert.Equal(t, entity.IntentAbuse, ClassifyRules("your stupid batteries are trash"))
}
