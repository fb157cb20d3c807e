package prices

// Quote is a snapshot of a symbol's price state with its derived intraday
// change. When IsMarketClosed is true the previous close was substituted for
// the price and the intraday delta is zero. A Price of 0 means the price is
// unknown, not that the security is worthless.
type Quote struct {
	Price          float64 `json:"price"`
	Change         float64 `json:"change"`
	ChangePercent  float64 `json:"changePercent"`
	PreviousClose  float64 `json:"previousClose"`
	IsMarketClosed bool    `json:"isMarketClosed"`
}

// failureQuote is the placeholder assigned to a symbol whose fetch failed.
func failureQuote() Quote {
	return Quote{IsMarketClosed: true}
}

// interpretQuote derives a Quote from the raw per-symbol source fields.
// No usable last price means the market is closed: the previous close stands
// in for the price and the intraday delta is zero.
func interpretQuote(src SourceQuote) Quote {
	if src.LastPrice <= 0 {
		q := Quote{IsMarketClosed: true}
		if src.PreviousClose > 0 {
			q.Price = src.PreviousClose
			q.PreviousClose = src.PreviousClose
		}
		return q
	}

	q := Quote{
		Price:         src.LastPrice,
		PreviousClose: src.PreviousClose,
	}
	if src.PreviousClose > 0 {
		q.Change = src.LastPrice - src.PreviousClose
		q.ChangePercent = q.Change / src.PreviousClose * 100
	}
	return q
}
