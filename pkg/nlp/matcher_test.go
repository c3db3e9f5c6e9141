package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AutoPartsBot/internal/entity"
)

func testCatalog() []entity.Part {
	return []entity.Part{
		{SKU: "HB-100", Name: "Premium Battery", Make: "Honda", Model: "Civic", Category: "Battery", Synonyms: []string{"car battery", "accumulator"}, Price: 129.99, StockCount: 5, Availability: entity.AvailabilityInStock},
		{SKU: "TB-200", Name: "Brake Pad Set", Make: "Toyota", Model: "Corolla", Category: "Brakes", Price: 89.50, StockCount: 8, Availability: entity.AvailabilityInStock},
		{SKU: "HS-300", Name: "Iridium Plug Set", Make: "Honda", Model: "Accord", Category: "Spark Plugs", Price: 45.00, StockCount: 12, Availability: entity.AvailabilityInStock},
		{SKU: "FB-400", Name: "Heavy Duty Battery", Make: "Ford", Model: "F-150", Category: "Battery", Price: 159.99, StockCount: 0, Availability: entity.AvailabilityOutOfStock},
	}
}

func TestMatchTypoToleratesBattery(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match([]string{"honda", "battry"}, testCatalog())

	require.False(t, result.Empty())
	assert.Equal(t, "HB-100", result.Scored[0].Part.SKU)
	assert.GreaterOrEqual(t, result.Scored[0].Score, MatchThreshold)
}

func TestMatchExactCategoryScoresFull(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match([]string{"honda", "battery"}, testCatalog())

	require.False(t, result.Empty())
	assert.Equal(t, "HB-100", result.Scored[0].Part.SKU)
	assert.InDelta(t, 1.0, result.Scored[0].Score, 0.001)
}

func TestMatchMultiWordCategoryComponent(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match([]string{"plugs"}, testCatalog())

	require.False(t, result.Empty())
	assert.Equal(t, "HS-300", result.Scored[0].Part.SKU)
}

func TestMatchDeterministicTieOrder(t *testing.T) {
	m := NewMatcher(nil)
	catalog := testCatalog()

	first := m.Match([]string{"battery"}, catalog)
	require.Len(t, first.Scored, 2)
	// HB-100 precedes FB-400 in catalog order; equal scores keep that order.
	assert.Equal(t, "HB-100", first.Scored[0].Part.SKU)
	assert.Equal(t, "FB-400", first.Scored[1].Part.SKU)

	for i := 0; i < 10; i++ {
		again := m.Match([]string{"battery"}, catalog)
		require.Equal(t, len(first.Scored), len(again.Scored))
		for j := range first.Scored {
			assert.Equal(t, first.Scored[j].Part.SKU, again.Scored[j].Part.SKU)
			assert.Equal(t, first.Scored[j].Score, again.Scored[j].Score)
		}
	}
}

func TestMatchEmptyCatalog(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match([]string{"battery"}, nil)

	assert.True(t, result.Empty())
	assert.Empty(t, result.Top(3))
}

func TestMatchEmptyTokens(t *testing.T) {
	m := NewMatcher(nil)

	assert.True(t, m.Match(nil, testCatalog()).Empty())
}

func TestMatchBelowThresholdDiscarded(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match([]string{"windscreen", "wiper", "fluid"}, testCatalog())

	for _, scored := range result.Scored {
		assert.GreaterOrEqual(t, scored.Score, MatchThreshold)
	}
}

func TestMatchPartialVehiclePlusPartPenalized(t *testing.T) {
	m := NewMatcher(nil)

	// "toyota battery": no candidate matches both tokens, so the mean drags
	// every score below an exact single-field hit.
	result := m.Match([]string{"toyota", "battery"}, testCatalog())

	for _, scored := range result.Scored {
		assert.Less(t, scored.Score, 1.0)
	}
}

func TestDefaultSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, DefaultSimilarity("Battery", "battery"))
	assert.InDelta(t, 0.857, DefaultSimilarity("battry", "battery"), 0.01)
	assert.Equal(t, 0.0, DefaultSimilarity("", "battery"))
	assert.Greater(t, DefaultSimilarity("brake", "brakes"), 0.7)
}

func TestTopBounds(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match([]string{"battery"}, testCatalog())
	assert.Len(t, result.Top(1), 1)
	assert.Len(t, result.Top(100), len(result.Scored))
}
