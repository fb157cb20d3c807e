package portfolio

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/tradeboard/internal/modules/prices"
)

// PriceResolver resolves a batch of symbols to quotes.
type PriceResolver interface {
	ResolvePrices(ctx context.Context, symbols []string) map[string]prices.Quote
}

// CostBasisSource resolves a symbol's cost basis from the trade ledger.
type CostBasisSource interface {
	LatestBuyPrice(ctx context.Context, symbol string) (float64, error)
}

// Valuator combines holdings, live prices, ledger cost bases and the cash
// balance into a valued portfolio summary.
type Valuator struct {
	prices PriceResolver
	ledger CostBasisSource
	log    zerolog.Logger
}

// NewValuator creates a new portfolio valuator
func NewValuator(priceResolver PriceResolver, ledger CostBasisSource, log zerolog.Logger) *Valuator {
	return &Valuator{
		prices: priceResolver,
		ledger: ledger,
		log:    log.With().Str("service", "valuator").Logger(),
	}
}

// Valuate computes per-holding and aggregate metrics for a parsed summary
// document. Prices for all holdings are resolved in one batched call. The
// "cash" pseudo-symbol is skipped; cash enters only through the balance.
func (v *Valuator) Valuate(ctx context.Context, doc SummaryDocument) (Summary, error) {
	symbols := make([]string, 0, len(doc.Positions))
	for _, pos := range doc.Positions {
		if isCash(pos.Symbol) {
			continue
		}
		symbols = append(symbols, pos.Symbol)
	}

	quotes := v.prices.ResolvePrices(ctx, symbols)

	summary := Summary{
		Balance:   doc.Balance,
		Portfolio: make(map[string]float64, len(symbols)),
		Holdings:  make([]Holding, 0, len(symbols)),
	}

	var totalValue, totalCost float64
	for _, pos := range doc.Positions {
		if isCash(pos.Symbol) {
			continue
		}

		holding, err := v.valuateHolding(ctx, pos, quotes[pos.Symbol])
		if err != nil {
			return Summary{}, err
		}

		totalValue += holding.CurrentValue
		totalCost += holding.CostBasis
		summary.Portfolio[pos.Symbol] = pos.Shares
		summary.Holdings = append(summary.Holdings, holding)
	}

	summary.TotalPortfolioValue = totalValue
	summary.TotalCostBasis = doc.Balance + totalCost
	summary.TotalValue = totalValue + doc.Balance
	summary.TotalUnrealizedPL = totalValue - totalCost
	if totalCost > 0 {
		summary.TotalPLPercentage = summary.TotalUnrealizedPL / totalCost * 100
	}

	return summary, nil
}

// valuateHolding derives the metrics for one position. The purchase price
// comes from the document when it carries one, otherwise from the latest BUY
// trade; 0 means unknown cost basis and reports 0% P/L rather than an
// undefined ratio. The current price prefers the live quote over the
// document's stored price.
func (v *Valuator) valuateHolding(ctx context.Context, pos Position, quote prices.Quote) (Holding, error) {
	purchase := pos.BuyPrice
	if purchase <= 0 {
		ledgerPrice, err := v.ledger.LatestBuyPrice(ctx, pos.Symbol)
		if err != nil {
			return Holding{}, fmt.Errorf("failed to resolve cost basis for %s: %w", pos.Symbol, err)
		}
		purchase = ledgerPrice
	}

	current := quote.Price
	if current == 0 {
		current = pos.CurrentPrice
	}

	currentValue := current * pos.Shares
	if currentValue == 0 && pos.MarketValue > 0 {
		currentValue = pos.MarketValue
	}

	holding := Holding{
		Symbol:        pos.Symbol,
		Shares:        pos.Shares,
		PurchasePrice: purchase,
		CurrentPrice:  current,
		CurrentValue:  currentValue,
		CostBasis:     purchase * pos.Shares,
	}
	holding.UnrealizedPL = holding.CurrentValue - holding.CostBasis
	if purchase > 0 {
		holding.PLPercentage = (current - purchase) / purchase * 100
	}

	return holding, nil
}

func isCash(symbol string) bool {
	return strings.EqualFold(symbol, prices.CashSymbol)
}
