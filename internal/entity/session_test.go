package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushIntentBounded(t *testing.T) {
	s := NewSessionContext("s1")

	for i := 0; i < 10; i++ {
		s.PushIntent(IntentProductSearch, 3)
		assert.LessOrEqual(t, len(s.PreviousIntents), 3)
	}

	s.PushIntent(IntentChitchat, 3)
	assert.Equal(t, IntentChitchat, s.LastIntent())
	assert.Len(t, s.PreviousIntents, 3)
}

func TestLeadStageOnlyAdvancesForward(t *testing.T) {
	stage := LeadStageNone
	for stage != LeadStageDone {
		next := stage.Next()
		assert.Equal(t, stage.Order()+1, next.Order())
		stage = next
	}
	assert.Equal(t, LeadStageDone, LeadStageDone.Next())
}

func TestCorruptedDetectsOverflow(t *testing.T) {
	s := NewSessionContext("s1")
	assert.False(t, s.Corrupted(3))

	s.PreviousIntents = []IntentLabel{IntentUnknown, IntentUnknown, IntentUnknown, IntentUnknown}
	assert.True(t, s.Corrupted(3))
}

func TestCorruptedDetectsInvalidStage(t *testing.T) {
	s := NewSessionContext("s1")
	s.LeadStage = LeadCaptureStage("halfway")
	assert.True(t, s.Corrupted(3))
}

func TestResetSlotsKeepsIdentity(t *testing.T) {
	s := NewSessionContext("s1")
	s.CurrentMake = "Honda"
	s.LastCategory = "Battery"
	s.State = StateLeadCapture
	s.LeadStage = LeadStageAskContact
	s.LeadName = "Jo"
	s.ConsecutiveUnknown = 2
	s.FriendlyMode = true
	s.TurnCount = 7

	s.ResetSlots()

	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, StateIdle, s.State)
	assert.Empty(t, s.CurrentMake)
	assert.Empty(t, s.LastCategory)
	assert.Equal(t, LeadStageNone, s.LeadStage)
	assert.Empty(t, s.LeadName)
	assert.Zero(t, s.ConsecutiveUnknown)
	assert.False(t, s.FriendlyMode)
	assert.Equal(t, 7, s.TurnCount)
}

func TestParseIntentLabelOpenEnumeration(t *testing.T) {
	assert.Equal(t, IntentProductSearch, ParseIntentLabel("product_search"))
	assert.Equal(t, IntentUnknown, ParseIntentLabel("order_pizza"))
	assert.Equal(t, IntentUnknown, ParseIntentLabel(""))
}
