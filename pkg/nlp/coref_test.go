package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVehicleReference(t *testing.T) {
	ctx := CorefContext{VehicleMake: "Toyota", VehicleModel: "Corolla"}

	result := ResolveReferences("same car brakes", ctx)

	assert.Equal(t, "Toyota Corolla brakes", result.Message)
	assert.True(t, result.UsedVehicle)
	assert.False(t, result.Unresolvable)
}

func TestResolvePartReference(t *testing.T) {
	ctx := CorefContext{PartCategory: "Battery"}

	result := ResolveReferences("how much is that part", ctx)

	assert.Equal(t, "how much is Battery", result.Message)
	assert.True(t, result.UsedPart)
}

func TestResolveNoAntecedentKeepsPhrase(t *testing.T) {
	result := ResolveReferences("do you have it in stock", CorefContext{})

	assert.Equal(t, "do you have it in stock", result.Message)
	assert.True(t, result.Unresolvable)
}

func TestResolveWithoutReferencePassesThrough(t *testing.T) {
	ctx := CorefContext{VehicleMake: "Honda", PartCategory: "Brakes"}

	result := ResolveReferences("I need new headlights", ctx)

	assert.Equal(t, "I need new headlights", result.Message)
	assert.False(t, result.UsedPart)
	assert.False(t, result.UsedVehicle)
}

func TestResolveIsIdempotent(t *testing.T) {
	ctx := CorefContext{VehicleMake: "Toyota", VehicleModel: "Corolla", PartCategory: "Brakes"}

	once := ResolveReferences("same car brakes", ctx)
	twice := ResolveReferences(once.Message, ctx)

	assert.Equal(t, once.Message, twice.Message)
}

func TestResolveItInsideWordDoesNotFire(t *testing.T) {
	ctx := CorefContext{PartCategory: "Battery"}

	result := ResolveReferences("is this a good fit", ctx)

	assert.Equal(t, "is this a good fit", result.Message)
	assert.False(t, result.UsedPart)
}

func TestResolveFallsBackToShownSKU(t *testing.T) {
	ctx := CorefContext{LastSKU: "HB-100"}

	result := ResolveReferences("can you hold the one you showed", ctx)

	assert.Equal(t, "can you hold HB-100", result.Message)
	assert.True(t, result.UsedPart)
}

func TestResolveMyVehicleReference(t *testing.T) {
	ctx := CorefContext{VehicleMake: "Toyota", VehicleModel: "Corolla"}

	result := ResolveReferences("do these brakes fit my vehicle", ctx)

	assert.Equal(t, "do these brakes fit Toyota Corolla", result.Message)
	assert.True(t, result.UsedVehicle)
}

func TestResolveVehicleWithoutModel(t *testing.T) {
	ctx := CorefContext{VehicleMake: "Honda"}

	result := ResolveReferences("brakes for my car", ctx)

	assert.Equal(t, "brakes for Honda", result.Message)
	assert.True(t, result.UsedVehicle)
}
