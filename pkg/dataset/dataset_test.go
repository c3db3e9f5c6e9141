package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AutoPartsBot/internal/entity"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadParts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "parts.csv",
		"sku,name,make,model,year_range,category,synonyms,price,stock_count,availability,description\n"+
			"HB-100,Premium Battery,Honda,Civic,2016-2021,Battery,car battery|accumulator,129.99,5,In Stock,12V sealed\n"+
			",Missing SKU,Honda,Civic,,Battery,,10,1,In Stock,skipped\n")

	d := Load(dir)

	require.Len(t, d.Parts, 1)
	part := d.Parts[0]
	assert.Equal(t, "HB-100", part.SKU)
	assert.Equal(t, "Honda", part.Make)
	assert.Equal(t, entity.AvailabilityInStock, part.Availability)
	assert.Equal(t, []string{"car battery", "accumulator"}, part.Synonyms)
	assert.InDelta(t, 129.99, part.Price, 0.001)
	assert.Equal(t, 5, part.StockCount)
}

func TestLoadPartsColumnOrderIndependent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "parts.csv",
		"category,sku,make\nBattery,HB-100,Honda\n")

	d := Load(dir)

	require.Len(t, d.Parts, 1)
	assert.Equal(t, "Battery", d.Parts[0].Category)
}

func TestLoadFaqs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "faq.json",
		`[{"id":"hours_001","intent":"faq_store_info","keywords":["hours","open"],"answer":"9am to 6pm","priority":2}]`)

	d := Load(dir)

	require.Len(t, d.Faqs, 1)
	assert.Equal(t, "hours_001", d.Faqs[0].ID)
	assert.Equal(t, []string{"hours", "open"}, d.Faqs[0].Keywords)
	assert.Equal(t, 2, d.Faqs[0].Priority)
}

func TestLoadSynonymsAndInstallTimes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "category_synonyms.csv", "synonym,category\nstop pads,Brakes\n")
	writeFile(t, dir, "install_times.csv", "category,estimated_time\nBrakes,2 hours\n")

	d := Load(dir)

	assert.Equal(t, "Brakes", d.CategorySynonyms["stop pads"])
	assert.Equal(t, "2 hours", d.InstallTimes["Brakes"])
}

func TestMissingFilesDegradeToEmpty(t *testing.T) {
	d := Load(t.TempDir())

	assert.Empty(t, d.Parts)
	assert.Empty(t, d.Faqs)
	assert.Empty(t, d.CategorySynonyms)
	assert.Empty(t, d.InstallTimes)
}

func TestMalformedFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "faq.json", "{not json")
	writeFile(t, dir, "parts.csv", "sku\n\"unterminated")

	d := Load(dir)

	assert.Empty(t, d.Parts)
	assert.Empty(t, d.Faqs)
}
