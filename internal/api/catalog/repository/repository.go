package catalogRepository

import (
	"strings"

	"github.com/sirupsen/logrus"

	"AutoPartsBot/internal/entity"
)

// Repository is the read-only catalog index. It is built once from the parts
// dataset at startup and never mutated afterwards, so lookups need no locking.
// All listings preserve dataset insertion order.
type Repository interface {
	All() []entity.Part
	BySKU(sku string) (entity.Part, bool)
	Lookup(vehicleMake, model, category string) []entity.Part
	AvailableMakes() []string
	CategoriesForMake(vehicleMake string) []string
	ModelsForMake(vehicleMake string) []string
	StockedAlternatives(category string, limit int) []entity.Part
}

type repository struct {
	parts  []entity.Part
	bySKU  map[string]int
	byMake map[string][]int
	log    *logrus.Logger
}

func New(parts []entity.Part, log *logrus.Logger) Repository {
	r := &repository{
		parts:  parts,
		bySKU:  make(map[string]int, len(parts)),
		byMake: make(map[string][]int),
		log:    log,
	}

	for i, part := range parts {
		if _, dup := r.bySKU[part.SKU]; dup {
			log.Warnf("duplicate SKU %s in parts dataset, keeping first", part.SKU)
			continue
		}
		r.bySKU[part.SKU] = i
		makeKey := strings.ToLower(part.Make)
		r.byMake[makeKey] = append(r.byMake[makeKey], i)
	}

	return r
}

func (r *repository) All() []entity.Part {
	return r.parts
}

func (r *repository) BySKU(sku string) (entity.Part, bool) {
	i, ok := r.bySKU[sku]
	if !ok {
		return entity.Part{}, false
	}
	return r.parts[i], true
}

// Lookup filters by make, model and category. Empty arguments act as
// wildcards. Matching is case-insensitive on all three fields.
func (r *repository) Lookup(vehicleMake, model, category string) []entity.Part {
	vehicleMake = strings.ToLower(vehicleMake)
	model = strings.ToLower(model)
	category = strings.ToLower(category)

	var out []entity.Part
	for _, part := range r.parts {
		if vehicleMake != "" && strings.ToLower(part.Make) != vehicleMake {
			continue
		}
		if model != "" && strings.ToLower(part.Model) != model {
			continue
		}
		if category != "" && strings.ToLower(part.Category) != category {
			continue
		}
		out = append(out, part)
	}
	return out
}

func (r *repository) AvailableMakes() []string {
	seen := make(map[string]bool)
	var makes []string
	for _, part := range r.parts {
		if part.Make == "" || seen[part.Make] {
			continue
		}
		seen[part.Make] = true
		makes = append(makes, part.Make)
	}
	return makes
}

func (r *repository) CategoriesForMake(vehicleMake string) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, i := range r.byMake[strings.ToLower(vehicleMake)] {
		category := r.parts[i].Category
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}
	return categories
}

func (r *repository) ModelsForMake(vehicleMake string) []string {
	seen := make(map[string]bool)
	var models []string
	for _, i := range r.byMake[strings.ToLower(vehicleMake)] {
		model := r.parts[i].Model
		if model == "" || seen[model] {
			continue
		}
		seen[model] = true
		models = append(models, model)
	}
	return models
}

// StockedAlternatives lists other makes that stock the category, one part per
// make, capped at limit. Used when the requested make is out of stock.
func (r *repository) StockedAlternatives(category string, limit int) []entity.Part {
	category = strings.ToLower(category)
	seen := make(map[string]bool)

	var out []entity.Part
	for _, part := range r.parts {
		if len(out) >= limit {
			break
		}
		if strings.ToLower(part.Category) != category {
			continue
		}
		if !part.Availability.Stocked() || part.StockCount <= 0 {
			continue
		}
		if seen[part.Make] {
			continue
		}
		seen[part.Make] = true
		out = append(out, part)
	}
	return out
}
