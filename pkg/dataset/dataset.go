package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"AutoPartsBot/internal/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Datasets bundles the catalog and knowledge files loaded at startup. Missing
// files degrade to empty sets; the bot answers what it can from what loaded.
type Datasets struct {
	Parts            []entity.Part
	Faqs             []entity.FaqEntry
	CategorySynonyms map[string]string
	InstallTimes     map[string]string
}

// Load reads every dataset from dir. It never fails the process; each missing
// or malformed file is logged and skipped.
func Load(dir string) *Datasets {
	d := &Datasets{
		CategorySynonyms: make(map[string]string),
		InstallTimes:     make(map[string]string),
	}

	d.Parts = loadParts(dir + "/parts.csv")
	d.Faqs = loadFaqs(dir + "/faq.json")
	d.CategorySynonyms = loadSynonyms(dir + "/category_synonyms.csv")
	d.InstallTimes = loadInstallTimes(dir + "/install_times.csv")

	logrus.Info(fmt.Sprintf("Loaded datasets: %d parts, %d faqs, %d synonyms, %d install times",
		len(d.Parts), len(d.Faqs), len(d.CategorySynonyms), len(d.InstallTimes)))

	return d
}

func readCsv(path string) ([][]string, bool) {
	file, err := os.Open(path)
	if err != nil {
		logrus.Warn(fmt.Sprintf("Dataset file %s not readable, skipping: %v", path, err))
		return nil, false
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		logrus.Warn(fmt.Sprintf("Dataset file %s not parseable, skipping: %v", path, err))
		return nil, false
	}
	if len(rows) < 2 {
		return nil, false
	}
	return rows, true
}

// headerIndex maps lowercased column names to positions so column order in
// the CSV does not matter.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return idx
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func loadParts(path string) []entity.Part {
	rows, ok := readCsv(path)
	if !ok {
		return nil
	}

	idx := headerIndex(rows[0])
	parts := make([]entity.Part, 0, len(rows)-1)
	for _, row := range rows[1:] {
		sku := field(row, idx, "sku")
		if sku == "" {
			continue
		}

		price, _ := strconv.ParseFloat(field(row, idx, "price"), 64)
		stock, _ := strconv.Atoi(field(row, idx, "stock_count"))

		var synonyms []string
		for _, syn := range strings.Split(field(row, idx, "synonyms"), "|") {
			if syn = strings.TrimSpace(syn); syn != "" {
				synonyms = append(synonyms, syn)
			}
		}

		parts = append(parts, entity.Part{
			SKU:          sku,
			Name:         field(row, idx, "name"),
			Make:         field(row, idx, "make"),
			Model:        field(row, idx, "model"),
			YearRange:    field(row, idx, "year_range"),
			Category:     field(row, idx, "category"),
			Synonyms:     synonyms,
			Price:        price,
			StockCount:   stock,
			Availability: entity.Availability(field(row, idx, "availability")),
			Description:  field(row, idx, "description"),
		})
	}
	return parts
}

func loadFaqs(path string) []entity.FaqEntry {
	blob, err := os.ReadFile(path)
	if err != nil {
		logrus.Warn(fmt.Sprintf("Dataset file %s not readable, skipping: %v", path, err))
		return nil
	}

	var faqs []entity.FaqEntry
	if err := json.Unmarshal(blob, &faqs); err != nil {
		logrus.Warn(fmt.Sprintf("Dataset file %s not parseable, skipping: %v", path, err))
		return nil
	}
	return faqs
}

func loadSynonyms(path string) map[string]string {
	synonyms := make(map[string]string)

	rows, ok := readCsv(path)
	if !ok {
		return synonyms
	}

	idx := headerIndex(rows[0])
	for _, row := range rows[1:] {
		syn := strings.ToLower(field(row, idx, "synonym"))
		canonical := field(row, idx, "category")
		if syn != "" && canonical != "" {
			synonyms[syn] = canonical
		}
	}
	return synonyms
}

func loadInstallTimes(path string) map[string]string {
	times := make(map[string]string)

	rows, ok := readCsv(path)
	if !ok {
		return times
	}

	idx := headerIndex(rows[0])
	for _, row := range rows[1:] {
		category := field(row, idx, "category")
		duration := field(row, idx, "estimated_time")
		if category != "" && duration != "" {
			times[category] = duration
		}
	}
	return times
}
