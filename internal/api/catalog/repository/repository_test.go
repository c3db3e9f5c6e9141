package catalogRepository

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AutoPartsBot/internal/entity"
)

func testParts() []entity.Part {
	return []entity.Part{
		{SKU: "HB-100", Make: "Honda", Model: "Civic", Category: "Battery", StockCount: 5, Availability: entity.AvailabilityInStock},
		{SKU: "HB-101", Make: "Honda", Model: "Accord", Category: "Battery", StockCount: 2, Availability: entity.AvailabilityLimited},
		{SKU: "TB-200", Make: "Toyota", Model: "Corolla", Category: "Battery", StockCount: 4, Availability: entity.AvailabilityInStock},
		{SKU: "TB-201", Make: "Toyota", Model: "Corolla", Category: "Brakes", StockCount: 0, Availability: entity.AvailabilityOutOfStock},
		{SKU: "FB-300", Make: "Ford", Model: "F-150", Category: "Battery", StockCount: 7, Availability: entity.AvailabilityInStock},
	}
}

func newTestRepo() Repository {
	return New(testParts(), logrus.New())
}

func TestLookupWildcards(t *testing.T) {
	repo := newTestRepo()

	assert.Len(t, repo.Lookup("", "", ""), 5)
	assert.Len(t, repo.Lookup("Honda", "", ""), 2)
	assert.Len(t, repo.Lookup("", "", "Battery"), 4)
	assert.Len(t, repo.Lookup("Toyota", "Corolla", "Brakes"), 1)
	assert.Empty(t, repo.Lookup("BMW", "", ""))
}

func TestLookupCaseInsensitive(t *testing.T) {
	repo := newTestRepo()

	assert.Len(t, repo.Lookup("honda", "", "battery"), 2)
}

func TestLookupPreservesInsertionOrder(t *testing.T) {
	repo := newTestRepo()

	parts := repo.Lookup("", "", "Battery")
	require.Len(t, parts, 4)
	assert.Equal(t, "HB-100", parts[0].SKU)
	assert.Equal(t, "HB-101", parts[1].SKU)
	assert.Equal(t, "TB-200", parts[2].SKU)
	assert.Equal(t, "FB-300", parts[3].SKU)
}

func TestAvailableMakes(t *testing.T) {
	repo := newTestRepo()

	assert.Equal(t, []string{"Honda", "Toyota", "Ford"}, repo.AvailableMakes())
}

func TestBySKU(t *testing.T) {
	repo := newTestRepo()

	part, ok := repo.BySKU("TB-200")
	require.True(t, ok)
	assert.Equal(t, "Toyota", part.Make)

	_, ok = repo.BySKU("XX-999")
	assert.False(t, ok)
}

func TestDuplicateSKUKeepsFirst(t *testing.T) {
	parts := []entity.Part{
		{SKU: "A-1", Make: "Honda", Category: "Battery", StockCount: 1, Availability: entity.AvailabilityInStock},
		{SKU: "A-1", Make: "Ford", Category: "Brakes", StockCount: 9, Availability: entity.AvailabilityInStock},
	}
	repo := New(parts, logrus.New())

	part, ok := repo.BySKU("A-1")
	require.True(t, ok)
	assert.Equal(t, "Honda", part.Make)
}

func TestStockedAlternativesOnePerMake(t *testing.T) {
	repo := newTestRepo()

	alternatives := repo.StockedAlternatives("Battery", 5)
	require.Len(t, alternatives, 3)
	assert.Equal(t, "HB-100", alternatives[0].SKU)
	assert.Equal(t, "TB-200", alternatives[1].SKU)
	assert.Equal(t, "FB-300", alternatives[2].SKU)
}

func TestStockedAlternativesRespectsLimit(t *testing.T) {
	repo := newTestRepo()

	assert.Len(t, repo.StockedAlternatives("Battery", 2), 2)
}

func TestStockedAlternativesSkipsOutOfStock(t *testing.T) {
	repo := newTestRepo()

	assert.Empty(t, repo.StockedAlternatives("Brakes", 5))
}

func TestCategoriesAndModelsForMake(t *testing.T) {
	repo := newTestRepo()

	assert.Equal(t, []string{"Battery", "Brakes"}, repo.CategoriesForMake("Toyota"))
	assert.Equal(t, []string{"Civic", "Accord"}, repo.ModelsForMake("Honda"))
}

func TestEmptyCatalog(t *testing.T) {
	repo := New(nil, logrus.New())

	assert.Empty(t, repo.Lookup("", "", ""))
	assert.Empty(t, repo.AvailableMakes())
	assert.Empty(t, repo.StockedAlternatives("Battery", 3))
}
