package portfolio

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/example/tradeboard/internal/store"
)

// ParseSummaryDocument turns the raw summary document into its typed form.
// A missing balance or portfolio field defaults to zero/empty; a field of
// the wrong type is a hard error so a malformed document fails the request
// instead of producing a silently wrong valuation.
func ParseSummaryDocument(doc bson.D) (SummaryDocument, error) {
	var out SummaryDocument

	for _, el := range doc {
		switch el.Key {
		case "balance":
			balance, ok := store.ToFloat(el.Value)
			if !ok {
				return SummaryDocument{}, fmt.Errorf("summary document: balance is not numeric (%T)", el.Value)
			}
			out.Balance = balance
		case "portfolio":
			positions, err := parsePositions(el.Value)
			if err != nil {
				return SummaryDocument{}, err
			}
			out.Positions = positions
		}
	}

	return out, nil
}

func parsePositions(v interface{}) ([]Position, error) {
	entries, ok := v.(bson.D)
	if !ok {
		return nil, fmt.Errorf("summary document: portfolio is not a document (%T)", v)
	}

	positions := make([]Position, 0, len(entries))
	for _, entry := range entries {
		pos := Position{Symbol: entry.Key}

		if shares, ok := store.ToFloat(entry.Value); ok {
			// Bare shape: symbol -> share count.
			pos.Shares = shares
		} else if detail, ok := entry.Value.(bson.D); ok {
			// Self-describing shape.
			for _, field := range detail {
				val, numeric := store.ToFloat(field.Value)
				if !numeric {
					continue
				}
				switch field.Key {
				case "shares":
					pos.Shares = val
				case "buy_price":
					pos.BuyPrice = val
				case "current_price":
					pos.CurrentPrice = val
				case "market_value":
					pos.MarketValue = val
				}
			}
		} else {
			return nil, fmt.Errorf("summary document: position %q has unsupported shape (%T)", entry.Key, entry.Value)
		}

		positions = append(positions, pos)
	}

	return positions, nil
}
