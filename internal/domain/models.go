package domain

// Record is one cleaned row of the profitability table. Monetary fields are
// always numeric after loading; categorical fields are case/whitespace
// normalized before any grouping happens.
type Record struct {
	Channel     string  `json:"channel"`      // trimmed, uppercase
	ProductType string  `json:"product_type"` // trimmed, lowercase
	City        string  `json:"city"`         // trimmed, original casing
	Price       float64 `json:"price"`
	Units       float64 `json:"units"`
	EBITDA      float64 `json:"ebitda_cartera"`
	FirstMile   float64 `json:"first_mile_cost"`
	LastMileVeh float64 `json:"last_mile_vehicle_cost"`
	// LogisticsTotal is always recomputed as FirstMile + LastMileVeh,
	// never read from the source file.
	LogisticsTotal float64 `json:"logistics_cost_total"`
}

// Dataset is the immutable in-memory table for one session. Query components
// filter into fresh slices and never mutate Records.
type Dataset struct {
	SourcePath string
	Records    []Record
	// CoercedCells counts monetary cells that failed to parse and were
	// coerced to 0.0. Aggregates over such cells may be understated.
	CoercedCells int
}

// MatchMode selects how a product-type query matches record product types.
type MatchMode string

const (
	// MatchSubstring is a case-insensitive contains match (interactive CLI).
	MatchSubstring MatchMode = "substring"
	// MatchExact matches a value picked from the enumerated type list
	// (dashboard selector).
	MatchExact MatchMode = "exact"
)

// Query selects the records both engines operate on: a product-type filter
// with its matching mode, plus the channel allowlist.
type Query struct {
	ProductType string
	Match       MatchMode
	Channels    []string
}

// CityRanking is one city inside a ranked channel group.
type CityRanking struct {
	City       string  `json:"city"`
	MeanEBITDA float64 `json:"mean_ebitda"`
}

// ChannelRanking is one top-channel group with its top cities.
type ChannelRanking struct {
	Channel    string        `json:"channel"`
	MeanEBITDA float64       `json:"mean_ebitda"`
	Cities     []CityRanking `json:"cities"`
}

// SimulationRow is the suggested pricing for one (channel, city) group.
type SimulationRow struct {
	Channel        string  `json:"channel"`
	City           string  `json:"city"`
	MeanPrice      float64 `json:"mean_price"`
	SuggestedTotal float64 `json:"suggested_total"`
	LogisticsTotal float64 `json:"logistics_cost_total"`
	Alert          bool    `json:"alert"`
}

// DatasetStatus reports load observability counters to callers.
type DatasetStatus struct {
	SourcePath   string `json:"source_path"`
	Rows         int    `json:"rows"`
	CoercedCells int    `json:"coerced_cells"`
}
