package catalog

type PartResponse struct {
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	YearRange    string   `json:"year_range,omitempty"`
	Category     string   `json:"category"`
	Synonyms     []string `json:"synonyms,omitempty"`
	Price        float64  `json:"price"`
	StockCount   int      `json:"stock_count"`
	Availability string   `json:"availability"`
	Description  string   `json:"description,omitempty"`
}

type PartListResponse struct {
	Parts []PartResponse `json:"parts"`
	Total int            `json:"total"`
}

type SearchRequest struct {
	Query string `json:"q" validate:"required,min=1,max=200"`
}

type SearchResultResponse struct {
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Make  string  `json:"make"`
	Model string  `json:"model"`
	Price float64 `json:"price"`
	Score float64 `json:"score"`
}

type SearchResponse struct {
	Query   string                 `json:"query"`
	Results []SearchResultResponse `json:"results"`
}

type MakeListResponse struct {
	Makes []string `json:"makes"`
}
