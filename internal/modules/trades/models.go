package trades

import "time"

// Trade sides as the bot writes them.
const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
)

// Record is one row of the bot's trade ledger.
type Record struct {
	Ticker    string    `bson:"ticker" json:"ticker"`
	Action    string    `bson:"action" json:"action"`
	Shares    float64   `bson:"shares" json:"shares"`
	Price     float64   `bson:"price" json:"price"`
	Amount    float64   `bson:"amount" json:"amount"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
