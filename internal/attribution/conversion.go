package attribution

import (
	"afftrack/internal/domain"
	"afftrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// NewConversion builds a pending conversion for a click. Commission defaults
// to zero when not supplied; amounts must not be negative. The one-to-one
// click invariant is enforced where state lives: the repository rejects a
// second conversion for the same click with ErrDuplicateConversion.
func NewConversion(click *models.Click, brand *models.Brand, saleAmount, commissionAmount *decimal.Decimal, metadata map[string]interface{}) (*models.Conversion, error) {
	if click == nil || click.ID == 0 {
		return nil, missingFieldErr("click")
	}
	if brand == nil || brand.ID == 0 {
		return nil, missingFieldErr("brand")
	}
	if saleAmount != nil && saleAmount.IsNegative() {
		return nil, validationErr("sale_amount", "sale amount cannot be negative")
	}
	if commissionAmount != nil && commissionAmount.IsNegative() {
		return nil, validationErr("commission_amount", "commission amount cannot be negative")
	}

	conv := &models.Conversion{
		ClickID:          click.ID,
		BrandID:          brand.ID,
		SaleAmount:       saleAmount,
		CommissionAmount: decimal.Zero,
		Status:           domain.ConversionPending,
	}
	if commissionAmount != nil {
		conv.CommissionAmount = *commissionAmount
	}
	if len(metadata) > 0 {
		conv.Metadata = datatypes.JSONMap(metadata)
	}
	return conv, nil
}
