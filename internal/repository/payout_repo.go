package repository

import (
	"afftrack/internal/attribution"
	"afftrack/internal/domain"
	"afftrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

func (r *PayoutRepository) Create(payout *models.Payout) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		payout.Code = provisionalCode()
		if err := tx.Create(payout).Error; err != nil {
			return err
		}
		code, err := mintCode(tx, &models.Payout{}, payout.ID, payout.CreatedAt)
		if err != nil {
			return err
		}
		payout.Code = code
		return nil
	})
}

func (r *PayoutRepository) GetByID(id uint) (*models.Payout, error) {
	var payout models.Payout
	if err := r.db.First(&payout, id).Error; err != nil {
		return nil, err
	}
	return &payout, nil
}

func (r *PayoutRepository) ListByBrand(brandID uint, status string, limit, offset int) ([]models.Payout, error) {
	q := r.db.Where("brand_id = ?", brandID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var payouts []models.Payout
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&payouts).Error
	return payouts, err
}

func (r *PayoutRepository) ListByAffiliate(affiliateID uint, limit, offset int) ([]models.Payout, error) {
	var payouts []models.Payout
	err := r.db.Where("affiliate_id = ?", affiliateID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&payouts).Error
	return payouts, err
}

// SaveTransition persists a transition already validated in memory. The
// expected-status guard is the compare-and-swap: when two transitions race,
// one update matches zero rows and loses.
func (r *PayoutRepository) SaveTransition(payout *models.Payout, expectedStatus string) error {
	res := r.db.Model(&models.Payout{}).
		Where("id = ? AND status = ?", payout.ID, expectedStatus).
		Updates(map[string]interface{}{
			"status":         payout.Status,
			"transaction_id": payout.TransactionID,
			"decline_reason": payout.DeclineReason,
			"notes":          payout.Notes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &attribution.Error{
			Code:    attribution.CodeInvalidTransition,
			Field:   "status",
			Message: "payout status changed concurrently",
		}
	}
	return nil
}

// AccruedBalance is the commission an affiliate can still be paid: approved
// conversion commissions attributed through their links, minus payouts that
// are not declined.
func (r *PayoutRepository) AccruedBalance(brandID, affiliateID uint) (decimal.Decimal, error) {
	var earned decimal.Decimal
	err := r.db.Raw(`
		SELECT COALESCE(SUM(cv.commission_amount), 0)
		FROM conversions cv
		JOIN clicks ck ON ck.id = cv.click_id
		JOIN links l ON l.id = ck.link_id
		WHERE l.affiliate_id = ? AND cv.brand_id = ? AND cv.status = ?
		  AND cv.deleted_at IS NULL AND ck.deleted_at IS NULL AND l.deleted_at IS NULL
	`, affiliateID, brandID, domain.ConversionApproved).Scan(&earned).Error
	if err != nil {
		return decimal.Zero, err
	}

	var committed decimal.Decimal
	err = r.db.Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM payouts
		WHERE affiliate_id = ? AND brand_id = ? AND status <> ? AND deleted_at IS NULL
	`, affiliateID, brandID, domain.PayoutDeclined).Scan(&committed).Error
	if err != nil {
		return decimal.Zero, err
	}

	return earned.Sub(committed), nil
}
