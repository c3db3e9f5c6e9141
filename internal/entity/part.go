package entity

type Availability string

const (
	AvailabilityInStock    Availability = "In Stock"
	AvailabilityLimited    Availability = "Limited"
	AvailabilityOutOfStock Availability = "Out of Stock"
)

func (a Availability) Stocked() bool {
	return a == AvailabilityInStock || a == AvailabilityLimited
}

// Part is an immutable catalog record. The catalog is loaded once at startup
// and never mutated during a session.
type Part struct {
	SKU          string
	Name         string
	Make         string
	Model        string
	YearRange    string
	Category     string
	Synonyms     []string
	Price        float64
	StockCount   int
	Availability Availability
	Description  string
}

type FaqEntry struct {
	ID       string
	Category string
	Intent   string
	Question string
	Keywords []string
	Answer   string
	Priority int
}
