package portfolio

// Holding is one valued portfolio position.
type Holding struct {
	Symbol        string  `json:"symbol"`
	Shares        float64 `json:"shares"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentPrice  float64 `json:"current_price"`
	CurrentValue  float64 `json:"current_value"`
	CostBasis     float64 `json:"cost_basis"`
	UnrealizedPL  float64 `json:"unrealized_pl"`
	PLPercentage  float64 `json:"pl_percentage"`
}

// Summary is the valued portfolio: per-holding metrics plus aggregates.
// TotalCostBasis includes the cash balance so total P/L reflects deployed
// capital including uninvested cash.
type Summary struct {
	Balance             float64            `json:"balance"`
	Portfolio           map[string]float64 `json:"portfolio"`
	Holdings            []Holding          `json:"holdings"`
	TotalPortfolioValue float64            `json:"total_portfolio_value"`
	TotalCostBasis      float64            `json:"total_cost_basis"`
	TotalValue          float64            `json:"total_value"`
	TotalUnrealizedPL   float64            `json:"total_unrealized_pl"`
	TotalPLPercentage   float64            `json:"total_pl_percentage"`
}

// Position is one entry of the stored portfolio document. The document
// appears in two shapes across the bot's lifecycle: a bare share count, and
// a self-describing object with shares, buy_price, current_price and
// market_value. Parsing reduces both to this one struct; fields the document
// does not carry stay 0 and are resolved from the ledger and the live quote.
type Position struct {
	Symbol       string
	Shares       float64
	BuyPrice     float64
	CurrentPrice float64
	MarketValue  float64
}

// SummaryDocument is the parsed summary document.
type SummaryDocument struct {
	Balance   float64
	Positions []Position
}
