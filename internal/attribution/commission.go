package attribution

import (
	"afftrack/internal/domain"
	"afftrack/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeCommission applies a campaign's rate to a sale. Fixed rates pay the
// rate value regardless of sale amount; percent rates pay value% of the sale
// and yield zero when no sale amount was reported. Results round to 2 dp,
// matching the decimal(10,2) columns.
func ComputeCommission(rate *models.CommissionRate, saleAmount *decimal.Decimal) decimal.Decimal {
	if rate == nil {
		return decimal.Zero
	}
	switch rate.Kind {
	case domain.RateKindFixed:
		return rate.Value.Round(2)
	case domain.RateKindPercent:
		if saleAmount == nil {
			return decimal.Zero
		}
		return saleAmount.Mul(rate.Value).Div(hundred).Round(2)
	default:
		return decimal.Zero
	}
}
