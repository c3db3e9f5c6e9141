package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "honda civic 2015", CleanText("  Honda, Civic! (2015)  "))
	assert.Equal(t, "resume", CleanText("résumé")[:6])
}

func TestExtractTokensDropsStopWords(t *testing.T) {
	tokens := ExtractTokens("I need a battery for my Honda")

	assert.Equal(t, []string{"battery", "honda"}, tokens)
}

func TestNormalizeMake(t *testing.T) {
	assert.Equal(t, "Honda", NormalizeMake("hond", nil))
	assert.Equal(t, "Toyota", NormalizeMake("toyta", nil))
	assert.Equal(t, "Chevrolet", NormalizeMake("chevy", nil))
	assert.Equal(t, "Toyota", NormalizeMake("Toyotaa", nil))
	assert.Equal(t, "", NormalizeMake("xylophone", nil))
	assert.Equal(t, "", NormalizeMake("", nil))
}

func TestNormalizeCategoryUsesSynonymTable(t *testing.T) {
	synonyms := map[string]string{"stop pads": "Brakes"}

	assert.Equal(t, "Brakes", NormalizeCategory("stop pads", synonyms, nil))
	assert.Equal(t, "Battery", NormalizeCategory("battry", nil, nil))
}

func TestExtractVehicleAndPart(t *testing.T) {
	vehicleMake, category := ExtractVehicleAndPart("I need a battery for my Honda", nil, nil)
	assert.Equal(t, "Honda", vehicleMake)
	assert.Equal(t, "Battery", category)
}

func TestExtractCompoundPartWinsOverComponents(t *testing.T) {
	_, category := ExtractVehicleAndPart("do you sell oil filters for toyota", nil, nil)
	assert.Equal(t, "Filters", category)

	_, category = ExtractVehicleAndPart("I need engine oil", nil, nil)
	assert.Equal(t, "Engine Oil", category)
}

func TestExtractVehicleTypo(t *testing.T) {
	vehicleMake, category := ExtractVehicleAndPart("spark plugs for my toyta", nil, nil)
	assert.Equal(t, "Toyota", vehicleMake)
	assert.Equal(t, "Spark Plugs", category)
}

func TestExtractNothing(t *testing.T) {
	vehicleMake, category := ExtractVehicleAndPart("hello there", nil, nil)
	assert.Empty(t, vehicleMake)
	assert.Empty(t, category)
}
